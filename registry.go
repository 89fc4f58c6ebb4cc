package mux

import (
	"fmt"
	"math/big"
	"strconv"

	"code.soquee.net/convmux/converter"
	"code.soquee.net/convmux/internal/args"
)

const (
	typStatic   = "static"
	typWild     = "path"
	typString   = "string"
	typInt      = "int"
	typFloat    = "float"
	typDateTime = "dt"
	typUUID     = "uuid"
)

// kind describes a parameter type that may appear in a route.
type kind struct {
	// params are the argument names accepted by the type, in positional order.
	params []string
	// build returns the converter for the bound arguments.
	// It is nil for types that match without conversion.
	build func(map[string]string) (converter.Converter, error)
}

var kinds = map[string]kind{
	typWild:   {},
	typString: {},
	typInt: {
		params: []string{"num_digits", "min", "max"},
		build:  buildInt,
	},
	typFloat: {
		params: []string{"min", "max", "finite"},
		build:  buildFloat,
	},
	typDateTime: {
		params: []string{"format_string"},
		build:  buildDateTime,
	},
	typUUID: {
		build: func(map[string]string) (converter.Converter, error) {
			return converter.NewUUID(), nil
		},
	},
}

// newConverter parses the argument literal of a path parameter and returns
// the converter for it.
func newConverter(typ, literal string) (converter.Converter, error) {
	k := kinds[typ]
	parsed, err := args.Parse(literal)
	if err != nil {
		return nil, err
	}
	bound, err := parsed.Bind(k.params...)
	if err != nil {
		return nil, err
	}
	if k.build == nil {
		return nil, nil
	}
	return k.build(bound)
}

func buildInt(a map[string]string) (converter.Converter, error) {
	var opts []converter.IntOption
	if v, ok := a["num_digits"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: num_digits %q is not an integer", converter.ErrConfig, v)
		}
		opts = append(opts, converter.Digits(n))
	}
	if v, ok := a["min"]; ok {
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, fmt.Errorf("%w: min %q is not an integer", converter.ErrConfig, v)
		}
		opts = append(opts, converter.MinBig(n))
	}
	if v, ok := a["max"]; ok {
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, fmt.Errorf("%w: max %q is not an integer", converter.ErrConfig, v)
		}
		opts = append(opts, converter.MaxBig(n))
	}
	c, err := converter.NewInt(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func buildFloat(a map[string]string) (converter.Converter, error) {
	var opts []converter.FloatOption
	if v, ok := a["min"]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: min %q is not a number", converter.ErrConfig, v)
		}
		opts = append(opts, converter.MinFloat(f))
	}
	if v, ok := a["max"]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: max %q is not a number", converter.ErrConfig, v)
		}
		opts = append(opts, converter.MaxFloat(f))
	}
	if v, ok := a["finite"]; ok {
		finite, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: finite %q is not a boolean", converter.ErrConfig, v)
		}
		opts = append(opts, converter.Finite(finite))
	}
	c, err := converter.NewFloat(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func buildDateTime(a map[string]string) (converter.Converter, error) {
	c, err := converter.NewDateTime(a["format_string"])
	if err != nil {
		return nil, err
	}
	return c, nil
}
