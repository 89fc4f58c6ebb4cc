// Package args parses the argument list of a typed route parameter.
//
// In the route component {id int(2, min=1, max=12)} the argument literal is
// "2, min=1, max=12".
// Arguments are separated by commas and are either positional or named.
// Values containing commas, spaces or an equals sign must be quoted with
// single or double quotes; a backslash escapes the next character inside
// quotes.
package args

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/viant/parsly"
)

// ErrSyntax is wrapped by all errors returned from Parse and Bind.
var ErrSyntax = errors.New("args: invalid argument list")

// Args is a parsed argument list.
// Named arguments always follow positional ones.
type Args struct {
	Positional []string
	Named      map[string]string
}

// Len returns the total number of arguments.
func (a Args) Len() int {
	return len(a.Positional) + len(a.Named)
}

// Parse parses an argument literal.
// An empty or blank literal yields no arguments.
func Parse(literal string) (Args, error) {
	var result Args
	cursor := parsly.NewCursor("", []byte(literal), 0)
	cursor.MatchAny(whitespaceMatcher)
	if cursor.Pos >= len(cursor.Input) {
		return result, nil
	}

	for {
		key, value, err := matchArg(cursor)
		if err != nil {
			return Args{}, fmt.Errorf("%w %q: %v", ErrSyntax, literal, err)
		}
		switch {
		case key == "":
			if len(result.Named) > 0 {
				return Args{}, fmt.Errorf("%w %q: positional argument %q follows a named argument", ErrSyntax, literal, value)
			}
			result.Positional = append(result.Positional, value)
		default:
			if result.Named == nil {
				result.Named = make(map[string]string)
			}
			if _, ok := result.Named[key]; ok {
				return Args{}, fmt.Errorf("%w %q: argument %q repeated", ErrSyntax, literal, key)
			}
			result.Named[key] = value
		}

		more, err := matchSeparator(cursor)
		if err != nil {
			return Args{}, fmt.Errorf("%w %q: %v", ErrSyntax, literal, err)
		}
		if !more {
			return result, nil
		}
	}
}

// Bind assigns positional arguments to names in order and merges them with
// the named arguments.
// Unknown names, too many positional arguments, and names given both
// positionally and by name are errors.
func (a Args) Bind(names ...string) (map[string]string, error) {
	if len(a.Positional) > len(names) {
		return nil, fmt.Errorf("%w: takes at most %d arguments, got %d", ErrSyntax, len(names), len(a.Positional))
	}
	bound := make(map[string]string, a.Len())
	for i, v := range a.Positional {
		bound[names[i]] = v
	}
	for key, v := range a.Named {
		if !contains(names, key) {
			return nil, fmt.Errorf("%w: unknown argument %q", ErrSyntax, key)
		}
		if _, ok := bound[key]; ok {
			return nil, fmt.Errorf("%w: argument %q given twice", ErrSyntax, key)
		}
		bound[key] = v
	}
	return bound, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// matchArg matches one argument starting at the cursor, which is positioned
// past any leading whitespace.
func matchArg(cursor *parsly.Cursor) (key, value string, err error) {
	if cursor.Pos >= len(cursor.Input) {
		return "", "", errors.New("missing argument")
	}
	if isQuote(cursor.Input[cursor.Pos]) {
		value, err = matchQuoted(cursor)
		return "", value, err
	}

	rest := cursor.Input[cursor.Pos:]
	eqIndex := bytes.IndexByte(rest, '=')
	comaIndex := bytes.IndexByte(rest, ',')
	if eqIndex != -1 && (comaIndex == -1 || eqIndex < comaIndex) {
		match := cursor.MatchAny(eqTerminatorMatcher)
		if match.Code != eqTerminatorToken {
			return "", "", errors.New("malformed named argument")
		}
		key = match.Text(cursor)
		key = strings.TrimSpace(key[:len(key)-1])
		if !isName(key) {
			return "", "", fmt.Errorf("invalid argument name %q", key)
		}
		cursor.MatchAny(whitespaceMatcher)
		if cursor.Pos < len(cursor.Input) && isQuote(cursor.Input[cursor.Pos]) {
			value, err = matchQuoted(cursor)
			return key, value, err
		}
	}

	value = matchBare(cursor)
	if value == "" {
		if key != "" {
			return "", "", fmt.Errorf("missing value for %q", key)
		}
		return "", "", errors.New("empty argument")
	}
	return key, value, nil
}

// matchBare consumes an unquoted value up to, but not including, the next
// comma.
func matchBare(cursor *parsly.Cursor) string {
	start := cursor.Pos
	if bytes.IndexByte(cursor.Input[start:], ',') == -1 {
		cursor.Pos = len(cursor.Input)
		return strings.TrimSpace(string(cursor.Input[start:]))
	}
	match := cursor.MatchAny(comaTerminatorMatcher)
	if match.Code != comaTerminatorToken {
		return ""
	}
	text := match.Text(cursor)
	cursor.Pos--
	return strings.TrimSpace(text[:len(text)-1])
}

func matchQuoted(cursor *parsly.Cursor) (string, error) {
	match := cursor.MatchAny(singleQuotedMatcher, doubleQuotedMatcher)
	switch match.Code {
	case singleQuotedToken, doubleQuotedToken:
		return unquote(match.Text(cursor)), nil
	}
	return "", fmt.Errorf("unterminated quote at offset %d", cursor.Pos)
}

// matchSeparator consumes trailing whitespace and a comma.
// It reports false at the end of the input.
func matchSeparator(cursor *parsly.Cursor) (bool, error) {
	cursor.MatchAny(whitespaceMatcher)
	if cursor.Pos >= len(cursor.Input) {
		return false, nil
	}
	if cursor.Input[cursor.Pos] != ',' {
		return false, fmt.Errorf("unexpected %q at offset %d", cursor.Input[cursor.Pos], cursor.Pos)
	}
	cursor.Pos++
	cursor.MatchAny(whitespaceMatcher)
	if cursor.Pos >= len(cursor.Input) {
		return false, errors.New("trailing comma")
	}
	return true, nil
}

func isQuote(c byte) bool {
	return c == '\'' || c == '"'
}

// unquote removes the surrounding quotes and resolves backslash escapes.
func unquote(text string) string {
	text = text[1 : len(text)-1]
	if strings.IndexByte(text, '\\') == -1 {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && i+1 < len(text) {
			i++
		}
		sb.WriteByte(text[i])
	}
	return sb.String()
}

func isName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
