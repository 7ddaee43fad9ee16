package domain

import (
	"errors"
	"fmt"
)

var (
	// Validation errors
	ErrMissingField     = errors.New("missing field")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidEntryType = errors.New("invalid entry type")

	// Report errors
	ErrNoExpenses = errors.New("no expenses recorded")

	// Storage errors
	ErrCorruptStore = errors.New("corrupt ledger store")
)

// ValidationError reports rejected user input for a single field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Field)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
