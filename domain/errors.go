package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrEmailNotVerified   = errors.New("email not verified")
)

// OTP errors
var (
	ErrOTPInvalid  = errors.New("invalid otp code")
	ErrOTPNotFound = errors.New("otp not found or expired")
)

// Password reset errors
var (
	ErrResetTokenInvalid = errors.New("invalid or expired reset token")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)
