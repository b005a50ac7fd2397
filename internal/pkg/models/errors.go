package models

import "errors"

var (
	ErrDustbinNotFound  = errors.New("dustbin not found")
	ErrStoreUnavailable = errors.New("database not connected")
	ErrValidation       = errors.New("validation failed")
)

// ValidationError describes rejected input. It matches ErrValidation with
// errors.Is.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
