// Copyright (c) 2026 FeeFlow. All rights reserved.

package login

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/feeflow/portal/internal/platform/apperr"
	"github.com/feeflow/portal/internal/platform/constants"
	"github.com/feeflow/portal/internal/platform/validate"
)

// passwordChange is the forced password-change sub-flow's transient state.
// It exists only while the modal is open and is destroyed on success or
// cancel; the deferred navigation lives in intent, never in a closure.
type passwordChange struct {
	email           string
	currentPassword string
	newPassword     string
	confirmPassword string
	errMessage      string
	intent          PendingIntent
}

// openPasswordChange enters the sub-flow, deferring intent until it succeeds.
func (s *Service) openPasswordChange(email, currentPassword string, intent PendingIntent) {
	s.change = &passwordChange{
		email:           email,
		currentPassword: currentPassword,
		intent:          intent,
	}
	s.state = StatePasswordChange
	s.logger.Info("password_change_required", slog.String("principal", email))
}

// # Sub-flow State

// PasswordChangeOpen reports whether the forced password-change sub-flow is
// active.
func (s *Service) PasswordChangeOpen() bool { return s.change != nil }

// PasswordChangeError returns the sub-flow's inline error message.
func (s *Service) PasswordChangeError() string {
	if s.change == nil {
		return ""
	}
	return s.change.errMessage
}

// SetNewPassword updates the new-password field.
func (s *Service) SetNewPassword(value string) {
	if s.change != nil {
		s.change.newPassword = value
	}
}

// SetConfirmPassword updates the confirmation field.
func (s *Service) SetConfirmPassword(value string) {
	if s.change != nil {
		s.change.confirmPassword = value
	}
}

// # Sub-flow Operations

// SubmitPasswordChange validates and posts the new password.
//
// Local violations (too short, mismatched confirmation) surface inline and
// never reach the network. A backend failure keeps the sub-flow open for
// retry; it is re-enterable indefinitely until cancelled or successful.
// Success destroys the transient fields and resumes the deferred navigation.
func (s *Service) SubmitPasswordChange(ctx context.Context) error {
	if s.change == nil {
		return nil
	}
	s.change.errMessage = ""

	// Length is counted in characters, not bytes; a short multibyte
	// password must fail here, before any request is issued.
	tooShort := utf8.RuneCountInString(s.change.newPassword) < constants.MinPasswordLength
	validator := &validate.Validator{}
	validator.
		Custom("new_password", tooShort, msgPasswordTooShort).
		Match("confirm_password", s.change.newPassword, s.change.confirmPassword, msgPasswordMismatch)
	if err := validator.Err(); err != nil {
		s.change.errMessage = apperr.Message(err, msgChangeFailed)
		return err
	}

	err := s.sessions.ChangePassword(ctx, s.change.email, s.change.currentPassword, s.change.newPassword)
	if err != nil {
		s.change.errMessage = apperr.Message(err, msgChangeFailed)
		s.logger.Warn("password_change_failed", slog.String("principal", s.change.email))
		return err
	}

	intent := s.change.intent
	s.change = nil
	s.logger.Info("password_change_succeeded")
	s.execute(ctx, intent)
	return nil
}

// CancelPasswordChange abandons the sub-flow and returns to Idle without
// completing the deferred navigation.
func (s *Service) CancelPasswordChange() {
	s.change = nil
	s.state = StateIdle
}
