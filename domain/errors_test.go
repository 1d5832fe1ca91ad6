package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"user not found", ErrUserNotFound, "user not found"},
		{"invalid credentials", ErrInvalidCredentials, "invalid credentials"},
		{"user already exists", ErrUserAlreadyExists, "user already exists"},
		{"email not verified", ErrEmailNotVerified, "email not verified"},
		{"invalid otp", ErrOTPInvalid, "invalid otp code"},
		{"otp not found", ErrOTPNotFound, "otp not found or expired"},
		{"reset token invalid", ErrResetTokenInvalid, "invalid or expired reset token"},
		{"token invalid", ErrTokenInvalid, "invalid token"},
		{"token expired", ErrTokenExpired, "token has expired"},
		{"token malformed", ErrTokenMalformed, "malformed token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("expected message %q, got %q", tt.expected, tt.err.Error())
			}
		})
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	all := []error{
		ErrUserNotFound,
		ErrInvalidCredentials,
		ErrUserAlreadyExists,
		ErrEmailNotVerified,
		ErrOTPInvalid,
		ErrOTPNotFound,
		ErrResetTokenInvalid,
		ErrTokenInvalid,
		ErrTokenExpired,
		ErrTokenMalformed,
	}

	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors %q and %q should not match", a, b)
			}
		}
	}
}

func TestErrorWrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to load user: %w", ErrUserNotFound)

	if !errors.Is(wrapped, ErrUserNotFound) {
		t.Error("expected wrapped error to match ErrUserNotFound")
	}
	if errors.Is(wrapped, ErrInvalidCredentials) {
		t.Error("wrapped error should not match an unrelated sentinel")
	}
}
