// Package services implements the transport-agnostic operation surface
// over the store. Every operation takes a context and is scoped to a
// project; cross-project reads fail with ErrNotFound.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity does not exist or is out of
	// scope for the calling project.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned on a name uniqueness violation.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotCancellable is returned when a run is not in a cancellable state.
	ErrNotCancellable = errors.New("run is not in a cancellable state")

	// ErrSuiteBusy is returned when a mutation would change a suite's
	// cases while a run of that suite is pending or running.
	ErrSuiteBusy = errors.New("suite has an active run")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
