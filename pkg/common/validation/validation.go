// Package validation provides common validation utilities for the familystream library.
package validation

import (
	"slices"
	"strings"

	fserrors "github.com/saketk/familystream/pkg/common/errors"
)

// ValidateNonNegative validates that an integer value is non-negative (>= 0).
// Returns a ValidationError if the value is negative.
func ValidateNonNegative(module, field string, value int) error {
	if value < 0 {
		return fserrors.NewValidationError(module, field, value, "cannot be negative").
			WithHint("use 0 or a positive value")
	}
	return nil
}

// ValidateNotEmpty validates that a string value is not empty.
// Returns a ValidationError if the string is empty.
func ValidateNotEmpty(module, field string, value string) error {
	if value == "" {
		return fserrors.NewValidationError(module, field, value, "cannot be empty").
			WithHint("provide a non-empty " + field)
	}
	return nil
}

// ValidateOneOf validates that value is one of allowed.
func ValidateOneOf(module, field, value string, allowed []string) error {
	if !slices.Contains(allowed, value) {
		return fserrors.NewValidationError(module, field, value, "unsupported value").
			WithHint("use one of " + strings.Join(allowed, ", "))
	}
	return nil
}
