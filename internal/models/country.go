package models

import "strings"

// MaxCodeLength caps the length of a country code accepted from callers.
const MaxCodeLength = 16

// CountryRecord is a single country as supplied by the data source: its
// canonical code and the codes of the countries it shares a land border with.
type CountryRecord struct {
	Code       string   `json:"cca3"`
	Neighbours []string `json:"borders"`
}

// NormalizeCode trims surrounding whitespace and upper-cases a country code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateCode checks that a caller-supplied code is non-empty and within length limits.
func ValidateCode(code string) error {
	if code == "" {
		return ErrMissingCode
	}

	if len(code) > MaxCodeLength {
		return ErrFieldTooLong("country code", MaxCodeLength)
	}

	return nil
}
