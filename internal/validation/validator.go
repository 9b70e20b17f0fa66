package validation

import (
	"strings"
	"time"

	"taskboard/internal/domain"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidDate checks if a string parses as a calendar date (2006-01-02)
func (v *Validator) IsValidDate(s string) bool {
	_, err := time.Parse(domain.DateFormat, strings.TrimSpace(s))
	return err == nil
}

// IsValidStatus checks if a raw token normalizes to a known task status
func (v *Validator) IsValidStatus(s string) bool {
	return domain.NormalizeStatus(s).Valid()
}

// IsValidPriority checks if a raw token normalizes to a known priority
func (v *Validator) IsValidPriority(s string) bool {
	return domain.NormalizePriority(s).Valid()
}

// IsValidProgress checks if a progress value is within the 0-100 range
func (v *Validator) IsValidProgress(p int) bool {
	return p >= 0 && p <= 100
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
