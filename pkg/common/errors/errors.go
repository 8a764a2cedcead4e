package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the familystream library

var (
	// ErrClosed indicates that an operation was attempted on a closed resource
	ErrClosed = errors.New("resource is closed")

	// ErrEmptyResult indicates that a value was requested from a reduction
	// over an empty sequence
	ErrEmptyResult = errors.New("empty result")

	// ErrUninitializedField indicates that a stage read an optional field
	// before an earlier stage assigned it
	ErrUninitializedField = errors.New("uninitialized field")

	// ErrOverflow indicates that an integer reduction exceeded the range of int
	ErrOverflow = errors.New("integer overflow")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// ValidationError describes a rejected input value. It wraps
// ErrInvalidConfiguration so callers can match on either.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError without a hint.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint sets a remediation hint and returns the same error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap returns ErrInvalidConfiguration.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// FieldError reports a read of an optional field that has not been assigned.
type FieldError struct {
	Record string
	Field  string
}

// NewFieldError creates a FieldError for the named record and field.
func NewFieldError(record, field string) *FieldError {
	return &FieldError{Record: record, Field: field}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %s read before it was assigned", e.Record, e.Field)
}

// Unwrap returns ErrUninitializedField.
func (e *FieldError) Unwrap() error {
	return ErrUninitializedField
}

// OperationError wraps a failure of a named operation within a module.
type OperationError struct {
	Module    string
	Operation string
	Cause     error
	Context   string
}

// NewOperationError creates an OperationError wrapping cause.
func NewOperationError(module, operation string, cause error) *OperationError {
	return &OperationError{
		Module:    module,
		Operation: operation,
		Cause:     cause,
	}
}

// WithContext attaches extra detail and returns the same error for chaining.
func (e *OperationError) WithContext(context string) *OperationError {
	e.Context = context
	return e
}

func (e *OperationError) Error() string {
	msg := fmt.Sprintf("%s.%s failed: %v", e.Module, e.Operation, e.Cause)
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	return e.Cause
}

// IsValidationError reports whether err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// IsPreconditionViolation returns true if the error reports a stage that ran
// before the stage it depends on
func IsPreconditionViolation(err error) bool {
	return errors.Is(err, ErrUninitializedField)
}

// IsEmptyResult returns true if the error reports a value read from an
// empty reduction
func IsEmptyResult(err error) bool {
	return errors.Is(err, ErrEmptyResult)
}
