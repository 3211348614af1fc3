package ledger

import (
	"errors"
	"fmt"
)

// Validation failures reported by Add, always wrapped in *ValidationError.
var (
	ErrInvalidAmount    = errors.New("amount must be a positive number")
	ErrEmptyDescription = errors.New("description is required")
	ErrMissingCategory  = errors.New("category is required")
	ErrUnknownCategory  = errors.New("category does not exist")
	ErrTypeMismatch     = errors.New("transaction type does not match category type")
	ErrInvalidType      = errors.New("type must be income or expense")
	ErrInvalidDate      = errors.New("date is required")
)

// ValidationError names the draft field that failed validation.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
