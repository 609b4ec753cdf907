package contact

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrNotConfigured = errors.New("email configuration is missing")
	ErrSendFailed    = errors.New("failed to send message")
)
