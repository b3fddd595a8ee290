// Copyright (c) 2026 FeeFlow. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (store, backend client) via constructors.
  - Zero Hidden State: No global variables are used to store config.

Demo-account credentials are configuration, not code: deployments point the
demo profiles at their own seeded accounts by overriding the FEEFLOW_DEMO_*
variables.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the FeeFlow portal core.
type Config struct {

	// Backend API
	APIBaseURL string `env:"FEEFLOW_API_BASE_URL" envDefault:"http://localhost:8080/api"`

	// StateDir is where the persisted session snapshot lives. When empty the
	// per-user config directory is used (see [Config.SessionStateDir]).
	StateDir string `env:"FEEFLOW_STATE_DIR"`

	Environment string `env:"FEEFLOW_ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"FEEFLOW_DEBUG"       envDefault:"false"`

	// Demo profile: administrator
	DemoAdminEmail    string `env:"FEEFLOW_DEMO_ADMIN_EMAIL"    envDefault:"admin@example.com"`
	DemoAdminPassword string `env:"FEEFLOW_DEMO_ADMIN_PASSWORD" envDefault:"Admin@123"`

	// Demo profiles: students
	DemoStudentEmail     string `env:"FEEFLOW_DEMO_STUDENT_EMAIL"      envDefault:"aditi.sharma@example.com"`
	DemoStudentPassword  string `env:"FEEFLOW_DEMO_STUDENT_PASSWORD"   envDefault:"Student1@123"`
	DemoStudent2Email    string `env:"FEEFLOW_DEMO_STUDENT_EMAIL_2"    envDefault:"rahul.desai@example.com"`
	DemoStudent2Password string `env:"FEEFLOW_DEMO_STUDENT_PASSWORD_2" envDefault:"Student2@123"`
	DemoStudent3Email    string `env:"FEEFLOW_DEMO_STUDENT_EMAIL_3"    envDefault:"sofia.fernandes@example.com"`
	DemoStudent3Password string `env:"FEEFLOW_DEMO_STUDENT_PASSWORD_3" envDefault:"Student3@123"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	cfg := &Config{}

	// Map environment variables to struct fields. Defaults above mirror the
	// seeded development backend.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// SessionStateDir resolves the directory holding the persisted session.
// Falls back to <user config dir>/feeflow, then to the working directory when
// the platform exposes no config dir.
func (c *Config) SessionStateDir() string {
	if c.StateDir != "" {
		return c.StateDir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ".feeflow"
	}
	return filepath.Join(base, "feeflow")
}

// IsDevelopment reports whether the portal is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the portal is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
