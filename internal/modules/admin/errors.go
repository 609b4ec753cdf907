package admin

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrCannotBlockAdmin = errors.New("cannot block admin users")
	ErrInvalidStatus    = errors.New(`status must be either "approved" or "rejected"`)
)
