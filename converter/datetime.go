package converter

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultDateTimeFormat is used by NewDateTime when no format is given.
// It matches values such as "2017-07-03T14:30:01Z".
const DefaultDateTimeFormat = "%Y-%m-%dT%H:%M:%SZ"

// field identifies what a token of a compiled format matches.
type field uint8

const (
	literal field = iota
	year
	shortYear
	month
	day
	hour
	minute
	second
	micro
)

var directives = map[byte]field{
	'Y': year,
	'y': shortYear,
	'm': month,
	'd': day,
	'H': hour,
	'M': minute,
	'S': second,
	'f': micro,
}

// width returns the minimum and maximum number of digits consumed by f.
func (f field) width() (int, int) {
	switch f {
	case year:
		return 4, 4
	case shortYear:
		return 2, 2
	case micro:
		return 1, 6
	}
	return 2, 2
}

type token struct {
	field field
	lit   string
}

// DateTime converts strings matching a strftime style format to time.Time
// values.
// The whole input must match the whole format.
//
// The following directives are understood:
//
//	%Y  four digit year
//	%y  two digit year, 69-99 are 1969-1999 and 00-68 are 2000-2068
//	%m  two digit month
//	%d  two digit day of the month
//	%H  two digit hour (24-hour clock)
//	%M  two digit minute
//	%S  two digit second
//	%f  fraction of a second, 1 to 6 digits
//	%%  a literal "%"
//
// Any other character in the format, including spaces, is matched verbatim.
// All directives except %f take a fixed number of digits; %f is greedy.
// Fields missing from the format default to the first instant of year 1.
// Results are in UTC.
type DateTime struct {
	format  string
	program []token
}

// NewDateTime compiles format and returns a date and time converter.
// If format is empty DefaultDateTimeFormat is used.
// Unknown directives, a trailing "%" and directives used more than once are
// configuration errors.
func NewDateTime(format string) (*DateTime, error) {
	if format == "" {
		format = DefaultDateTimeFormat
	}
	program, err := compileFormat(format)
	if err != nil {
		return nil, err
	}
	return &DateTime{
		format:  format,
		program: program,
	}, nil
}

// Format returns the format string used by the converter.
func (c *DateTime) Format() string {
	return c.format
}

func compileFormat(format string) ([]token, error) {
	var (
		program []token
		lit     strings.Builder
		seen    = make(map[field]bool)
	)
	flush := func() {
		if lit.Len() > 0 {
			program = append(program, token{field: literal, lit: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			lit.WriteByte(format[i])
			continue
		}
		i++
		if i == len(format) {
			return nil, fmt.Errorf("%w: format %q ends with a lone %%", ErrConfig, format)
		}
		if format[i] == '%' {
			lit.WriteByte('%')
			continue
		}
		f, ok := directives[format[i]]
		if !ok {
			return nil, fmt.Errorf("%w: unknown directive %%%c in format %q", ErrConfig, format[i], format)
		}
		key := f
		if key == shortYear {
			key = year
		}
		if seen[key] {
			return nil, fmt.Errorf("%w: directive %%%c repeats a field in format %q", ErrConfig, format[i], format)
		}
		seen[key] = true
		flush()
		program = append(program, token{field: f})
	}
	flush()
	return program, nil
}

// Parse converts value to a time.
func (c *DateTime) Parse(value string) (time.Time, bool) {
	var (
		y, mo, d     = 1, 1, 1
		h, mi, s, us int
		rest         = value
	)

	for _, tok := range c.program {
		if tok.field == literal {
			if !strings.HasPrefix(rest, tok.lit) {
				return time.Time{}, false
			}
			rest = rest[len(tok.lit):]
			continue
		}

		minWidth, maxWidth := tok.field.width()
		n := digits(rest)
		if n > maxWidth {
			n = maxWidth
		}
		if n < minWidth {
			return time.Time{}, false
		}
		v, err := strconv.Atoi(rest[:n])
		if err != nil {
			return time.Time{}, false
		}

		switch tok.field {
		case year:
			y = v
		case shortYear:
			if v < 69 {
				y = 2000 + v
			} else {
				y = 1900 + v
			}
		case month:
			mo = v
		case day:
			d = v
		case hour:
			h = v
		case minute:
			mi = v
		case second:
			s = v
		case micro:
			for i := n; i < 6; i++ {
				v *= 10
			}
			us = v
		}
		rest = rest[n:]
	}
	if rest != "" {
		return time.Time{}, false
	}

	if y < 1 || mo < 1 || mo > 12 || d < 1 || d > daysIn(time.Month(mo), y) ||
		h > 23 || mi > 59 || s > 59 {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(mo), d, h, mi, s, us*int(time.Microsecond), time.UTC), true
}

// Convert implements Converter.
// On success the value is a time.Time.
func (c *DateTime) Convert(value string) (interface{}, bool) {
	t, ok := c.Parse(value)
	if !ok {
		return nil, false
	}
	return t, true
}

func daysIn(m time.Month, y int) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
