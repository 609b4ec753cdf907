package auth

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrNoLocalPassword     = errors.New("no local password set for this user")
	ErrAccountBlocked      = errors.New("account is blocked")
	ErrInvalidResetToken   = errors.New("reset token invalid or expired")
	ErrGoogleNotConfigured = errors.New("google login is not configured")
	ErrInvalidGoogleToken  = errors.New("invalid google id token")
	ErrUserNotFound        = errors.New("user not found")
)
