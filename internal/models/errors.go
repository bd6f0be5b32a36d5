package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrMissingCode = errors.New("country code is required")
)

// Sentinel errors for lookups.
var (
	ErrCountryNotFound = errors.New("country not found")
	ErrGraphNotLoaded  = errors.New("border graph not loaded")
)

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
