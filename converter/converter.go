package converter

import (
	"errors"
)

// ErrConfig is wrapped by every error returned from a converter constructor.
var ErrConfig = errors.New("converter: invalid configuration")

// Converter is implemented by every converter in this package.
//
// Convert reports false if value cannot be converted.
// It must be safe to call Convert from multiple goroutines.
type Converter interface {
	Convert(value string) (interface{}, bool)
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// digits returns the length of the run of ASCII digits at the start of s.
func digits(s string) int {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}
