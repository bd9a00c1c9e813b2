package domain

import (
	"errors"
	"fmt"
)

// Validation kinds. Every command checks its input against these before it
// touches a store, so a failed command never leaves partial state behind.
var (
	ErrMissingField         = errors.New("missing field")
	ErrDateOutOfRange       = errors.New("date out of range")
	ErrNonPositivePrincipal = errors.New("non-positive principal")
	ErrInvalidNumericInput  = errors.New("invalid numeric input")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidHour          = errors.New("invalid hour")
	ErrInvalidChoice        = errors.New("invalid choice")
	ErrVehicleNotFound      = errors.New("vehicle not found")
)

// ValidationError wraps a sentinel with the offending field.
type ValidationError struct {
	Field   string
	Value   string
	Wrapped error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Wrapped, e.Field)
	}
	return fmt.Sprintf("%s: %s (value=%q)", e.Wrapped, e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Wrapped }

func NewValidationError(field, value string, wrapped error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Wrapped: wrapped}
}

// Kind returns the snake_case name of the sentinel wrapped by err,
// or "" if err is not one of ours.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrDateOutOfRange):
		return "date_out_of_range"
	case errors.Is(err, ErrNonPositivePrincipal):
		return "non_positive_principal"
	case errors.Is(err, ErrInvalidNumericInput):
		return "invalid_numeric_input"
	case errors.Is(err, ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, ErrInvalidHour):
		return "invalid_hour"
	case errors.Is(err, ErrInvalidChoice):
		return "invalid_choice"
	case errors.Is(err, ErrVehicleNotFound):
		return "not_found"
	}
	return ""
}
