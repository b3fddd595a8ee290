// Copyright (c) 2026 FeeFlow. All rights reserved.

/*
Package login implements the portal's login orchestrator.

It sequences one submission attempt through its states:

	Idle -> Submitting -> RoleResolved -> (ForcedPasswordChange) -> Routed

A submission carries either manually entered credentials or a demo-profile
prefill. After authentication the role is resolved (server payload first,
demo profile as fallback), the forced password-change sub-flow may interpose,
and routing finishes at the admin console or at student landing resolution.

# Concurrency

The service is single-goroutine by design: state transitions happen on
discrete UI events, at most one network call is outstanding per flow step,
and a second submission is blocked by the Submitting state.
*/
package login

import (
	"context"
	"log/slog"
	"strings"

	"github.com/feeflow/portal/internal/landing"
	"github.com/feeflow/portal/internal/nav"
	"github.com/feeflow/portal/internal/platform/apperr"
	"github.com/feeflow/portal/internal/platform/validate"
	"github.com/feeflow/portal/internal/session"
	"github.com/feeflow/portal/pkg/uuidv7"
)

// User-facing copy. Product-fixed strings; do not reword casually.
const (
	msgMissingCredentials = "Enter your credentials or select a demo profile to continue."
	msgSignInFailed       = "Unable to sign in. Please check the credentials and try again."
	msgPasswordTooShort   = "New password must be at least 8 characters long."
	msgPasswordMismatch   = "Passwords do not match."
	msgChangeFailed       = "Unable to change password. Please try again."
)

// State is the orchestrator's position in the submission flow.
type State int

const (
	// StateIdle accepts input; submission is permitted when [Service.CanSubmit].
	StateIdle State = iota

	// StateSubmitting has one authentication call in flight; the UI disables
	// the submit control.
	StateSubmitting

	// StatePasswordChange has the forced password-change sub-flow open, with
	// routing deferred behind a [PendingIntent].
	StatePasswordChange

	// StateRouted is terminal: navigation has been handed to the Navigator.
	StateRouted
)

// Service orchestrates the login flow for one login screen instance.
type Service struct {
	sessions  *session.Manager
	resolver  *landing.Resolver
	navigator nav.Navigator
	accounts  []DemoAccount
	logger    *slog.Logger

	state           State
	activeAccountID string
	usernameOrEmail string
	password        string
	roleHint        session.Role
	errMessage      string

	demoPromptVisible bool
	passwordVisible   bool

	change *passwordChange
}

// NewService constructs a login [Service] in the Idle state with the demo
// prompt showing.
func NewService(
	sessions *session.Manager,
	resolver *landing.Resolver,
	navigator nav.Navigator,
	accounts []DemoAccount,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		sessions:          sessions,
		resolver:          resolver,
		navigator:         navigator,
		accounts:          accounts,
		logger:            logger.With(slog.String("component", "login")),
		state:             StateIdle,
		demoPromptVisible: true,
	}
}

// # Form State

// State returns the current flow state.
func (s *Service) State() State { return s.state }

// Error returns the inline error message, empty when none.
func (s *Service) Error() string { return s.errMessage }

// UsernameOrEmail returns the current username/email field value.
func (s *Service) UsernameOrEmail() string { return s.usernameOrEmail }

// Password returns the current password field value.
func (s *Service) Password() string { return s.password }

// SetUsernameOrEmail updates the username/email field. First manual input
// dismisses the demo prompt.
func (s *Service) SetUsernameOrEmail(value string) {
	s.demoPromptVisible = false
	s.usernameOrEmail = value
}

// SetPassword updates the password field. First manual input dismisses the
// demo prompt.
func (s *Service) SetPassword(value string) {
	s.demoPromptVisible = false
	s.password = value
}

// SetRoleHint records the optional role hint carried by the role-specific
// login entry (e.g. /login/student). It is consulted only when the signed
// token yields no usable role claim.
func (s *Service) SetRoleHint(role session.Role) {
	s.roleHint = role
}

// TogglePasswordVisibility flips the password field between masked and clear.
func (s *Service) TogglePasswordVisibility() {
	s.passwordVisible = !s.passwordVisible
}

// PasswordVisible reports whether the password field renders in clear text.
func (s *Service) PasswordVisible() bool { return s.passwordVisible }

// DismissDemoPrompt hides the demo-profile prompt ("maybe later").
func (s *Service) DismissDemoPrompt() { s.demoPromptVisible = false }

// DemoPromptVisible reports whether the demo-profile prompt should show: only
// before any interaction, and never over the password-change sub-flow.
func (s *Service) DemoPromptVisible() bool {
	return s.demoPromptVisible && s.change == nil && s.ActiveAccount() == nil
}

// # Demo Profiles

// Accounts returns the configured demo profiles.
func (s *Service) Accounts() []DemoAccount { return s.accounts }

// ActiveAccount returns the selected demo profile, or nil.
func (s *Service) ActiveAccount() *DemoAccount {
	for i := range s.accounts {
		if s.accounts[i].ID == s.activeAccountID {
			return &s.accounts[i]
		}
	}
	return nil
}

// SelectAccount toggles the demo profile with the given id. Selecting a new
// profile prefills the credential fields and clears any prior error;
// re-selecting the active profile deselects it and empties the fields.
// Ignored while a submission is in flight.
func (s *Service) SelectAccount(id string) {
	if s.state == StateSubmitting {
		return
	}

	s.demoPromptVisible = false
	s.errMessage = ""

	if s.activeAccountID == id {
		s.activeAccountID = ""
		s.usernameOrEmail = ""
		s.password = ""
		return
	}

	s.activeAccountID = ""
	s.usernameOrEmail = ""
	s.password = ""
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			s.activeAccountID = id
			s.usernameOrEmail = s.accounts[i].UsernameOrEmail
			s.password = s.accounts[i].Password
			return
		}
	}
}

// CanSubmit reports whether submission is permitted: a selected demo profile,
// or a non-empty manual username and password.
func (s *Service) CanSubmit() bool {
	if s.ActiveAccount() != nil {
		return true
	}
	return strings.TrimSpace(s.usernameOrEmail) != "" && strings.TrimSpace(s.password) != ""
}

// # Submission

// Submit runs one authentication attempt.
//
// Missing credentials are rejected locally with a validation message and no
// network call. An authentication failure returns the flow to Idle with the
// error surfaced inline. On success the role is resolved, the forced
// password-change sub-flow may open, and otherwise routing completes.
func (s *Service) Submit(ctx context.Context) error {
	if s.state == StateSubmitting || s.state == StatePasswordChange {
		return nil
	}
	s.errMessage = ""

	validator := &validate.Validator{}
	validator.Custom("credentials", !s.CanSubmit(), msgMissingCredentials)
	if err := validator.Err(); err != nil {
		s.errMessage = apperr.Message(err, msgMissingCredentials)
		return err
	}

	attemptID := uuidv7.New()
	s.state = StateSubmitting
	s.logger.Info("login_attempt",
		slog.String("attempt_id", attemptID),
		slog.Bool("demo_profile", s.ActiveAccount() != nil),
	)

	result, err := s.sessions.Login(ctx, session.Credentials{
		UsernameOrEmail: s.usernameOrEmail,
		Password:        s.password,
		RoleHint:        s.roleHint,
	})
	if err != nil {
		s.state = StateIdle
		s.errMessage = apperr.Message(err, msgSignInFailed)
		s.logger.Warn("login_attempt_failed", slog.String("attempt_id", attemptID))
		return err
	}

	active := s.ActiveAccount()
	role := resolveRole(result, active)
	intent := PendingIntent{Kind: IntentStudent, Email: signedInEmail(active, s.usernameOrEmail)}
	if role.IsAdmin() {
		intent = PendingIntent{Kind: IntentAdmin}
	}
	s.logger.Info("login_role_resolved",
		slog.String("attempt_id", attemptID),
		slog.String("role", string(role)),
	)

	if result.MustChangePassword && (active == nil || !active.SkipPasswordPrompt) {
		s.openPasswordChange(signedInEmail(active, s.usernameOrEmail), s.password, intent)
		return nil
	}

	s.execute(ctx, intent)
	return nil
}

// execute performs the navigation an intent describes and finishes the flow.
func (s *Service) execute(ctx context.Context, intent PendingIntent) {
	switch intent.Kind {
	case IntentAdmin:
		s.navigator.Navigate(nav.RouteAdmin)
	case IntentStudent:
		s.resolver.Resolve(ctx, intent.Email)
	}
	s.state = StateRouted
}

// resolveRole computes the routing role: server-reported role, else the
// first of the server-reported roles array, else the demo profile's role,
// else empty — normalized to uppercase.
func resolveRole(result *session.AuthResult, active *DemoAccount) session.Role {
	if result.Role != "" {
		return session.Role(result.Role).Normalize()
	}
	if len(result.Roles) > 0 && result.Roles[0] != "" {
		return session.Role(result.Roles[0]).Normalize()
	}
	if active != nil {
		return active.Role.Normalize()
	}
	return ""
}

// signedInEmail is the email believed to identify the principal: the demo
// profile's configured username when one is active, else the manual input.
func signedInEmail(active *DemoAccount, manual string) string {
	if active != nil {
		return active.UsernameOrEmail
	}
	return manual
}
