package models

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the requested entity was not found
var ErrNotFound = errors.New("not found")

// ValidationError is a hard failure: the supplied value can never be
// accepted, and the triggering operation is aborted. Soft policy outcomes
// (denied withdrawals, failed eligibility checks) are reported as booleans
// instead and never use this type.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func validationErrorf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
