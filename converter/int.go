package converter

import (
	"fmt"
	"math/big"
)

// Int converts strings of ASCII decimal digits to arbitrary precision
// integers.
// Signs, whitespace and any other characters never match.
type Int struct {
	digits    int
	hasDigits bool
	min       *big.Int
	max       *big.Int
}

// IntOption configures an Int converter.
type IntOption func(*Int)

// Digits requires the input to be exactly n characters long.
// NewInt returns an error if n is not positive.
func Digits(n int) IntOption {
	return func(c *Int) {
		c.digits = n
		c.hasDigits = true
	}
}

// MinInt sets an inclusive lower bound.
func MinInt(v int64) IntOption {
	return MinBig(big.NewInt(v))
}

// MaxInt sets an inclusive upper bound.
func MaxInt(v int64) IntOption {
	return MaxBig(big.NewInt(v))
}

// MinBig sets an inclusive lower bound that may not fit in an int64.
// The value is copied.
func MinBig(v *big.Int) IntOption {
	return func(c *Int) {
		c.min = copyInt(v)
	}
}

// MaxBig sets an inclusive upper bound that may not fit in an int64.
// The value is copied.
func MaxBig(v *big.Int) IntOption {
	return func(c *Int) {
		c.max = copyInt(v)
	}
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}

// NewInt returns an integer converter.
//
// The bounds are not checked against each other: if the minimum is greater
// than the maximum the converter is valid but never matches.
func NewInt(opts ...IntOption) (*Int, error) {
	c := &Int{}
	for _, o := range opts {
		o(c)
	}
	if c.hasDigits && c.digits <= 0 {
		return nil, fmt.Errorf("%w: number of digits must be positive, got %d", ErrConfig, c.digits)
	}
	return c, nil
}

// Parse converts value to an integer.
// The returned value is newly allocated and may be modified by the caller.
func (c *Int) Parse(value string) (*big.Int, bool) {
	if c.hasDigits && len(value) != c.digits {
		return nil, false
	}
	if value == "" || digits(value) != len(value) {
		return nil, false
	}

	n, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, false
	}
	if c.min != nil && n.Cmp(c.min) < 0 {
		return nil, false
	}
	if c.max != nil && n.Cmp(c.max) > 0 {
		return nil, false
	}
	return n, true
}

// Convert implements Converter.
// On success the value is a *big.Int.
func (c *Int) Convert(value string) (interface{}, bool) {
	n, ok := c.Parse(value)
	if !ok {
		return nil, false
	}
	return n, true
}
