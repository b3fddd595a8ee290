// Copyright (c) 2026 FeeFlow. All rights reserved.

/*
Package apperr defines the centralized error handling framework for the portal.

It provides a rich error type that bridges the gap between low-level transport
errors and the inline messages the UI layer renders.

Architecture:

  - AppError: A struct containing a machine-readable Code and a user-displayable message.
  - Taxonomy: VALIDATION_ERROR (local, pre-network), AUTH_FAILED (credential
    rejection or unreachable endpoint), BACKEND_ERROR (non-login request failures).
  - Display: Message is always safe to surface inline; Cause is for operator logs only.

Decode warnings and roster-lookup degradations are deliberately NOT errors in
this taxonomy: the core degrades instead of failing, and only logs them.
*/
package apperr

import (
	"errors"
)

// Error codes carried by [AppError].
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeAuth       = "AUTH_FAILED"
	CodeBackend    = "BACKEND_ERROR"
)

// AppError is the canonical error type for the portal core.
//
// It carries a machine-readable code, a message safe to render inline, and an
// optional slice of field-level validation errors.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "VALIDATION_ERROR").
	Code string `json:"code"`
	// Message is a human-readable description safe to show to the user.
	Message string `json:"error"`
	// Cause is the underlying error, used for operator logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR values.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the form field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the displayable message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Constructors

// Validation creates a local, pre-network validation error. It never
// corresponds to a request that reached the backend.
func Validation(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: msg,
		Details: details,
	}
}

// Authentication creates an AUTH_FAILED error: the authentication endpoint
// rejected the credentials or could not be reached.
func Authentication(msg string, cause error) *AppError {
	return &AppError{
		Code:    CodeAuth,
		Message: msg,
		Cause:   cause,
	}
}

// Backend creates a BACKEND_ERROR for non-login request failures. The message
// follows the server-payload > transport > generic fallback chain and is
// always displayable.
func Backend(msg string, cause error) *AppError {
	return &AppError{
		Code:    CodeBackend,
		Message: msg,
		Cause:   cause,
	}
}

// # Helpers

// IsValidation reports whether err (or its chain) is a VALIDATION_ERROR.
func IsValidation(err error) bool {
	ae := As(err)
	return ae != nil && ae.Code == CodeValidation
}

// IsAuthentication reports whether err (or its chain) is an AUTH_FAILED error.
func IsAuthentication(err error) bool {
	ae := As(err)
	return ae != nil && ae.Code == CodeAuth
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// Message returns the displayable message of err, or fallback when err carries
// no [AppError] (an unclassified error is never shown raw to the user).
func Message(err error, fallback string) string {
	if ae := As(err); ae != nil && ae.Message != "" {
		return ae.Message
	}
	return fallback
}
