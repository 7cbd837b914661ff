package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateDimension checks that a page or frame dimension can be used as a
// normalization denominator. It rejects zero, negative, NaN and infinite
// values with ErrCodeDegenerateGeometry.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeDegenerateGeometry, "%s must be finite, got %v", name, v)
	}
	if v <= 0 {
		return New(ErrCodeDegenerateGeometry, "%s must be positive, got %v", name, v)
	}
	return nil
}

// ValidateCoordinate checks that a coordinate or size read from a node tree
// is a finite number.
func ValidateCoordinate(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeMalformedNode, "%s must be finite, got %v", name, v)
	}
	return nil
}

// ValidateSelector validates a rectangle selector supplied on the command line
// or in an API request. Selectors are either a node id or "#<index>".
//
// Validation rules:
//   - Selector cannot be empty
//   - Maximum length of 256 characters
//   - No control characters
func ValidateSelector(sel string) error {
	if strings.TrimSpace(sel) == "" {
		return New(ErrCodeInvalidSelector, "selector cannot be empty")
	}

	if len(sel) > 256 {
		return New(ErrCodeInvalidSelector, "selector too long (max 256 characters)")
	}

	for _, r := range sel {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSelector, "selector contains invalid control characters")
		}
	}

	return nil
}
