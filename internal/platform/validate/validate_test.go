// Copyright (c) 2026 FeeFlow. All rights reserved.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feeflow/portal/internal/platform/apperr"
	"github.com/feeflow/portal/internal/platform/validate"
)

func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "non-empty passes", value: "admin@example.com", wantErr: false},
		{name: "empty fails", value: "", wantErr: true},
		{name: "whitespace-only fails", value: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			err := v.Required("email", tt.value).Err()
			if tt.wantErr {
				assert.True(t, apperr.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_MinLen(t *testing.T) {
	v := &validate.Validator{}
	assert.NoError(t, v.MinLen("password", "Rotated@123", 8).Err())

	v = &validate.Validator{}
	assert.Error(t, v.MinLen("password", "short", 8).Err())

	// Rune count, not byte count.
	v = &validate.Validator{}
	assert.NoError(t, v.MinLen("password", "pässwörd", 8).Err())
}

func TestValidator_Match(t *testing.T) {
	v := &validate.Validator{}
	assert.NoError(t, v.Match("confirm", "Rotated@123", "Rotated@123", "Passwords do not match.").Err())

	v = &validate.Validator{}
	err := v.Match("confirm", "Rotated@123", "Other@123", "Passwords do not match.").Err()
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Passwords do not match.", appErr.Message)
}

func TestValidator_ErrUsesFirstFailureAsMessage(t *testing.T) {
	v := &validate.Validator{}
	err := v.
		Custom("new_password", true, "New password must be at least 8 characters long.").
		Custom("confirm_password", true, "Passwords do not match.").
		Err()
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "New password must be at least 8 characters long.", appErr.Message)
	assert.Len(t, appErr.Details, 2)
}

func TestValidator_HasErrors(t *testing.T) {
	v := &validate.Validator{}
	assert.False(t, v.HasErrors())

	v.Custom("field", true, "failed")
	assert.True(t, v.HasErrors())
}
