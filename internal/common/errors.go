// Package common defines shared sentinel errors used across the service
// layers. Callers should use errors.Is (or errors.As for ValidationError)
// to match these values.
package common

import (
	"errors"
	"strings"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorAlreadyExists = errors.New("already exists")
)

// ValidationError reports malformed or missing input. Details holds one
// human-readable message per failed field, in the order the fields were
// checked.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Details, "; ")
}

// NewValidationError wraps the given field messages into a ValidationError.
func NewValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}
