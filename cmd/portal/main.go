// Copyright (c) 2026 FeeFlow. All rights reserved.

// Command portal is the headless entry point for the FeeFlow portal core.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the persistent session store.
//  4. Construct the shared backend client.
//  5. Hydrate the session (before anything renders).
//  6. Wire roster, landing resolution, and the login orchestrator.
//
// Without credentials in the environment it reports the hydrated session
// state and exits. With FEEFLOW_LOGIN_EMAIL / FEEFLOW_LOGIN_PASSWORD set it
// performs a scripted login and prints the resolved landing route — the same
// sequence the UI shell drives interactively, useful as a deployment smoke
// check. FEEFLOW_LOGIN_ROLE optionally enters through the role-hinted login
// route.
//
// No flow logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/feeflow/portal/internal/landing"
	"github.com/feeflow/portal/internal/login"
	"github.com/feeflow/portal/internal/nav"
	"github.com/feeflow/portal/internal/platform/backend"
	"github.com/feeflow/portal/internal/platform/config"
	"github.com/feeflow/portal/internal/roster"
	"github.com/feeflow/portal/internal/session"
)

// logNavigator is the headless Navigator: destinations are logged instead of
// rendered.
type logNavigator struct {
	logger *slog.Logger
}

func (n *logNavigator) Navigate(route nav.Route) {
	n.logger.Info("navigate", slog.String("route", string(route)))
}

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	log := rawLog.With(slog.String("app", "feeflow-portal"))
	slog.SetDefault(log)

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "feeflow-portal"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("api_base_url", cfg.APIBaseURL),
	)

	// ── 3. Session Store ──────────────────────────────────────────────────
	store := session.NewFileStore(cfg.SessionStateDir(), log)

	// ── 4. Backend Client ─────────────────────────────────────────────────
	api := backend.New(cfg.APIBaseURL, log)

	// ── 5. Session Hydration ──────────────────────────────────────────────
	sessions := session.NewManager(store, api, log)
	sessions.Hydrate()

	// ── 6. Flow Wiring ────────────────────────────────────────────────────
	navigator := &logNavigator{logger: log}
	rosterClient := roster.NewClient(api, log)
	resolver := landing.NewResolver(rosterClient, navigator, log)
	flow := login.NewService(sessions, resolver, navigator, login.DemoAccounts(cfg), log)

	email := os.Getenv("FEEFLOW_LOGIN_EMAIL")
	password := os.Getenv("FEEFLOW_LOGIN_PASSWORD")
	if email == "" || password == "" {
		reportSession(log, sessions)
		return
	}

	// ── 7. Scripted Login ─────────────────────────────────────────────────
	// An optional role enters through the role-hinted login route, the same
	// way the UI shell reaches the flow from /login/{role}.
	if role := os.Getenv("FEEFLOW_LOGIN_ROLE"); role != "" {
		navigator.Navigate(nav.RoleLoginRoute(role))
		flow.SetRoleHint(session.Role(role))
	}
	flow.SetUsernameOrEmail(email)
	flow.SetPassword(password)
	if err := flow.Submit(context.Background()); err != nil {
		log.Error("scripted_login_failed", slog.String("message", flow.Error()))
		os.Exit(1)
	}
	if flow.PasswordChangeOpen() {
		// A scripted run cannot complete the interactive password rotation.
		log.Warn("scripted_login_requires_password_change")
		os.Exit(1)
	}
	reportSession(log, sessions)
}

// reportSession logs the current session state.
func reportSession(log *slog.Logger, sessions *session.Manager) {
	identity := sessions.Identity()
	if identity == nil {
		log.Info("session_state", slog.Bool("authenticated", false))
		return
	}
	log.Info("session_state",
		slog.Bool("authenticated", true),
		slog.String("principal", identity.PrincipalName),
		slog.String("role", string(identity.Role)),
	)
}

// must logs a structured fatal error and terminates the process if err is
// non-nil. It is intentionally limited to startup wiring.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
