package booking

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")

	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrPropertyNotFound = fmt.Errorf("property %w", ErrNotFound)
	ErrBookingNotFound  = fmt.Errorf("booking %w", ErrNotFound)

	ErrConflict     = errors.New("property already has an active booking")
	ErrInvalidState = errors.New("booking status does not allow this operation")

	// ErrConcurrentUpdate is returned when the booking kept changing under us
	// and every retry lost the race.
	ErrConcurrentUpdate = errors.New("booking changed concurrently")
)
