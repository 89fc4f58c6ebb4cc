package converter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Float converts decimal literals to float64 values.
//
// The accepted grammar is an optional sign, an integer part and/or a
// fractional part, and an optional exponent:
//
//	[+-]? (digits ('.' digits?)? | '.' digits) ([eE] [+-]? digits)?
//
// The case-insensitive words "nan", "inf" and "infinity", optionally signed,
// are also recognized but only match if the converter was created with
// Finite(false).
// Hexadecimal notation, digit separators and whitespace never match.
type Float struct {
	min    float64
	max    float64
	hasMin bool
	hasMax bool
	finite bool
}

// FloatOption configures a Float converter.
type FloatOption func(*Float)

// MinFloat sets an inclusive lower bound.
func MinFloat(v float64) FloatOption {
	return func(c *Float) {
		c.min = v
		c.hasMin = true
	}
}

// MaxFloat sets an inclusive upper bound.
func MaxFloat(v float64) FloatOption {
	return func(c *Float) {
		c.max = v
		c.hasMax = true
	}
}

// Finite controls whether NaN and infinite values may match.
// The default is true, meaning they never match.
func Finite(finite bool) FloatOption {
	return func(c *Float) {
		c.finite = finite
	}
}

// NewFloat returns a floating point converter.
//
// Bounds only apply to finite values: NaN and infinities accepted with
// Finite(false) are never rejected by them.
func NewFloat(opts ...FloatOption) (*Float, error) {
	c := &Float{finite: true}
	for _, o := range opts {
		o(c)
	}
	if c.hasMin && math.IsNaN(c.min) {
		return nil, fmt.Errorf("%w: minimum must not be NaN", ErrConfig)
	}
	if c.hasMax && math.IsNaN(c.max) {
		return nil, fmt.Errorf("%w: maximum must not be NaN", ErrConfig)
	}
	return c, nil
}

// Parse converts value to a float64.
func (c *Float) Parse(value string) (float64, bool) {
	f, ok := parseFloat(value)
	if !ok {
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		// Bounds only constrain finite values.
		if c.finite {
			return 0, false
		}
		return f, true
	}
	if c.hasMin && f < c.min {
		return 0, false
	}
	if c.hasMax && f > c.max {
		return 0, false
	}
	return f, true
}

// Convert implements Converter.
// On success the value is a float64.
func (c *Float) Convert(value string) (interface{}, bool) {
	f, ok := c.Parse(value)
	if !ok {
		return nil, false
	}
	return f, true
}

func parseFloat(s string) (float64, bool) {
	if f, ok := parseNonFinite(s); ok {
		return f, true
	}
	if !isDecimal(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out of range literals still carry the correctly signed infinity (or
		// zero) and are subject to the finiteness check like any other value.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}

func parseNonFinite(s string) (float64, bool) {
	sign := 1
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	switch {
	case strings.EqualFold(s, "nan"):
		return math.NaN(), true
	case strings.EqualFold(s, "inf"), strings.EqualFold(s, "infinity"):
		return math.Inf(sign), true
	}
	return 0, false
}

// isDecimal reports whether s is entirely a decimal floating point literal.
func isDecimal(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intPart := digits(s[i:])
	i += intPart
	fracPart := 0
	if i < len(s) && s[i] == '.' {
		i++
		fracPart = digits(s[i:])
		i += fracPart
	}
	if intPart == 0 && fracPart == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := digits(s[i:])
		if exp == 0 {
			return false
		}
		i += exp
	}
	return i == len(s)
}
