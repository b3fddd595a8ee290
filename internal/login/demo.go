// Copyright (c) 2026 FeeFlow. All rights reserved.

package login

import (
	"github.com/feeflow/portal/internal/platform/config"
	"github.com/feeflow/portal/internal/session"
)

// DemoAccount is a preconfigured credential shortcut for exploration. It is
// not a separate authentication mechanism — selecting one only prefills the
// credential form.
type DemoAccount struct {
	ID              string
	Label           string
	RoleLabel       string
	Role            session.Role
	UsernameOrEmail string
	Password        string
	Description     string

	// SkipPasswordPrompt suppresses the forced password-change sub-flow for
	// this profile even when the backend flags mustChangePassword. Demo
	// profiles are throwaway accounts; walking visitors through a password
	// rotation would defeat their purpose.
	SkipPasswordPrompt bool
}

// DemoAccounts returns the static demo profiles, with credentials taken from
// configuration so deployments can point them at their own seeded accounts.
func DemoAccounts(cfg *config.Config) []DemoAccount {
	return []DemoAccount{
		{
			ID:                 "admin",
			Label:              "Administrator",
			RoleLabel:          "Administrator",
			Role:               session.RoleAdmin,
			UsernameOrEmail:    cfg.DemoAdminEmail,
			Password:           cfg.DemoAdminPassword,
			Description:        "Full access to manage students, fee plans, and payments.",
			SkipPasswordPrompt: true,
		},
		{
			ID:                 "student-aditi",
			Label:              "Aditi Sharma",
			RoleLabel:          "Student - Computer Science Engineering",
			Role:               session.RoleStudent,
			UsernameOrEmail:    cfg.DemoStudentEmail,
			Password:           cfg.DemoStudentPassword,
			Description:        "Computer Science Engineering student, academic year 2021-2025.",
			SkipPasswordPrompt: true,
		},
		{
			ID:                 "student-rahul",
			Label:              "Rahul Desai",
			RoleLabel:          "Student - Business Administration",
			Role:               session.RoleStudent,
			UsernameOrEmail:    cfg.DemoStudent2Email,
			Password:           cfg.DemoStudent2Password,
			Description:        "Business Administration student, academic year 2023-2027.",
			SkipPasswordPrompt: true,
		},
		{
			ID:                 "student-sofia",
			Label:              "Sofia Fernandes",
			RoleLabel:          "Student - Mechanical Engineering",
			Role:               session.RoleStudent,
			UsernameOrEmail:    cfg.DemoStudent3Email,
			Password:           cfg.DemoStudent3Password,
			Description:        "Mechanical Engineering student, academic year 2022-2026.",
			SkipPasswordPrompt: true,
		},
	}
}
