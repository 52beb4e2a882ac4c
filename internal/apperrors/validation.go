package apperrors

import (
	"fmt"
	"strings"
)

// FieldViolation names a single field-level rule that failed validation.
type FieldViolation struct {
	Field  string
	Reason string
}

// ValidationError aggregates every field-level violation found on an entity
// so callers can report all of them at once instead of failing field by field.
type ValidationError struct {
	Entity     string
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Reason)
	}
	return fmt.Sprintf("%s validation failed: %s", e.Entity, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError returns nil when no violations were collected, which
// lets validators build the slice unconditionally and return the result.
func NewValidationError(entity string, violations []FieldViolation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Entity: entity, Violations: violations}
}
