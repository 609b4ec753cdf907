package catalog

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrPropertyNotFound = errors.New("property not found")
	ErrDuplicateAddress = errors.New("a property with this address already exists")
)
