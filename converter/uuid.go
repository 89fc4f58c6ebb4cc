package converter

import (
	"strings"

	"github.com/google/uuid"
)

const urnPrefix = "urn:uuid:"

// UUID converts textual UUIDs to uuid.UUID values.
//
// Besides the canonical 8-4-4-4-12 form, hyphens may be missing or appear in
// any position and number, and the whole value may be prefixed with
// "urn:uuid:".
// Braces, whitespace and any other characters never match.
type UUID struct{}

// NewUUID returns a UUID converter.
func NewUUID() *UUID {
	return &UUID{}
}

// Parse converts value to a UUID.
func (c *UUID) Parse(value string) (uuid.UUID, bool) {
	value = strings.TrimPrefix(value, urnPrefix)
	if strings.IndexByte(value, '-') != -1 {
		value = strings.ReplaceAll(value, "-", "")
	}
	// uuid.Parse also accepts the 36, 38 and 45 character forms; only the bare
	// 32 hex digit form is wanted here.
	if len(value) != 32 {
		return uuid.Nil, false
	}
	u, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false
	}
	return u, true
}

// Convert implements Converter.
// On success the value is a uuid.UUID.
func (c *UUID) Convert(value string) (interface{}, bool) {
	u, ok := c.Parse(value)
	if !ok {
		return nil, false
	}
	return u, true
}
