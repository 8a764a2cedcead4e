// Package validation provides common validation utilities for record fields
// and configuration values across the familystream library.
//
// Every function returns a *errors.ValidationError so callers get the same
// message format and can match failures with errors.IsValidationError.
package validation
