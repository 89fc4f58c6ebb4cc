package converter_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.soquee.net/convmux/converter"
)

func TestFloat(t *testing.T) {
	var testCases = []struct {
		value    string
		min, max *float64
		expect   float64
		noMatch  bool
	}{
		{value: "123", expect: 123},
		{value: "01", expect: 1},
		{value: "001", expect: 1},
		{value: "0", expect: 0},
		{value: "00", expect: 0},
		{value: "1", expect: 1},
		{value: "12", min: f(2), expect: 12},
		{value: "1", min: f(1), max: f(1), expect: 1},
		{value: "12", min: f(1), max: f(20), expect: 12},
		{value: "12", min: f(2), max: f(10), noMatch: true},
		{value: "1", min: f(2), max: f(13), noMatch: true},
		{value: "-1", min: f(2), max: f(13), noMatch: true},
		{value: "-1", min: f(-2), max: f(10), expect: -1},
		{value: "1.4", min: f(1), max: f(10), expect: 1.4},
		{value: "inf", min: f(1), max: f(100), noMatch: true},
		{value: "-inf", min: f(1), max: f(1000), noMatch: true},
		{value: "nan", min: f(1), max: f(1000), noMatch: true},
		{value: "1.5e100", min: f(0), max: f(1), noMatch: true},
		{value: "0.5e1", min: f(0), max: f(10), expect: 5},
		{value: "-1.6e1", min: f(-50), max: f(50), expect: -16},
		{value: "1.5e2", min: f(0), max: f(500), expect: 150},
		{value: "-1.6e10", min: f(-1.7e10), max: f(1.0e10), expect: -16000000000},
		{value: "+2", expect: 2},
		{value: ".5", expect: 0.5},
		{value: "5.", expect: 5},
		{value: "1E3", expect: 1000},
		{value: "1e-3", expect: 0.001},
		{value: "1e+3", expect: 1000},
		{value: "1e400", noMatch: true},
		{value: ".", noMatch: true},
		{value: "-", noMatch: true},
		{value: "1e", noMatch: true},
		{value: "e1", noMatch: true},
		{value: "1.2.3", noMatch: true},
		{value: "1_000", noMatch: true},
		{value: "0x1p-2", noMatch: true},
		{value: "infinit", noMatch: true},
	}

	for _, testCase := range testCases {
		var opts []converter.FloatOption
		if testCase.min != nil {
			opts = append(opts, converter.MinFloat(*testCase.min))
		}
		if testCase.max != nil {
			opts = append(opts, converter.MaxFloat(*testCase.max))
		}
		c, err := converter.NewFloat(opts...)
		require.NoError(t, err, testCase.value)

		actual, ok := c.Parse(testCase.value)
		if testCase.noMatch {
			assert.False(t, ok, testCase.value)
			continue
		}
		if assert.True(t, ok, testCase.value) {
			assert.Equal(t, testCase.expect, actual, testCase.value)
		}
	}
}

func f(v float64) *float64 {
	return &v
}

func TestFloatNonFiniteAllowed(t *testing.T) {
	c, err := converter.NewFloat(converter.Finite(false))
	require.NoError(t, err)
	for _, value := range []string{"nan", "NaN", "NAN", "nAn", "-inf", "inf", "-INF", "INF", "Infinity", "+inf"} {
		actual, ok := c.Parse(value)
		if assert.True(t, ok, value) {
			assert.True(t, math.IsNaN(actual) || math.IsInf(actual, 0), value)
		}
	}

	actual, ok := c.Parse("-inf")
	require.True(t, ok)
	assert.True(t, math.IsInf(actual, -1))

	actual, ok = c.Parse("1e400")
	require.True(t, ok)
	assert.True(t, math.IsInf(actual, 1))
}

func TestFloatNonFiniteIgnoresBounds(t *testing.T) {
	c, err := converter.NewFloat(converter.Finite(false), converter.MinFloat(0), converter.MaxFloat(1))
	require.NoError(t, err)

	actual, ok := c.Parse("nan")
	require.True(t, ok)
	assert.True(t, math.IsNaN(actual))

	for _, in := range []string{"inf", "-inf", "Infinity", "1e400", "-1e400"} {
		actual, ok := c.Parse(in)
		require.True(t, ok, in)
		assert.True(t, math.IsInf(actual, 0), in)
	}

	_, ok = c.Parse("2")
	assert.False(t, ok)
}

func TestFloatNonFiniteDisallowed(t *testing.T) {
	for _, opts := range [][]converter.FloatOption{nil, {converter.Finite(true)}} {
		c, err := converter.NewFloat(opts...)
		require.NoError(t, err)
		_, ok := c.Parse("nan")
		assert.False(t, ok)
	}
}

func TestFloatMalformed(t *testing.T) {
	for _, finite := range []bool{true, false} {
		c, err := converter.NewFloat(converter.Finite(finite))
		require.NoError(t, err)
		values := append(malformed(), " nan", "inf ", "n an")
		for _, value := range values {
			_, ok := c.Parse(value)
			assert.False(t, ok, "%q", value)
		}
	}
}

func TestFloatInvalidConfig(t *testing.T) {
	_, err := converter.NewFloat(converter.MinFloat(math.NaN()))
	assert.ErrorIs(t, err, converter.ErrConfig)
	_, err = converter.NewFloat(converter.MaxFloat(math.NaN()))
	assert.ErrorIs(t, err, converter.ErrConfig)

	// Inverted bounds are allowed but never match.
	c, err := converter.NewFloat(converter.MinFloat(2), converter.MaxFloat(1))
	require.NoError(t, err)
	_, ok := c.Parse("1.5")
	assert.False(t, ok)
}

func TestFloatConvert(t *testing.T) {
	c, err := converter.NewFloat(converter.MinFloat(0), converter.MaxFloat(10))
	require.NoError(t, err)
	v, ok := c.Convert("0.5e1")
	require.True(t, ok)
	assert.Equal(t, 5.0, v)

	c, err = converter.NewFloat(converter.MinFloat(0), converter.MaxFloat(1))
	require.NoError(t, err)
	v, ok = c.Convert("1.5e100")
	assert.False(t, ok)
	assert.Nil(t, v)
}
