package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// HexPrefix is a normalised two-character hex code (0-9a-f).
type HexPrefix string

// BookID is a normalised book identifier of the form "<prefix>-<number>".
type BookID string

const idSeparator = "-"

// ParseHexPrefix trims and lower-cases s and checks that it is exactly two hex characters.
func ParseHexPrefix(s string) (HexPrefix, error) {
	clean := strings.ToLower(strings.TrimSpace(s))
	if len(clean) != 2 || !isHexChar(clean[0]) || !isHexChar(clean[1]) {
		return "", &ValidationError{
			Field:  "prefix",
			Input:  s,
			Reason: "please provide two hex characters (0-9a-f)",
		}
	}
	return HexPrefix(clean), nil
}

// ParseCount parses a non-negative decimal integer, ignoring surrounding whitespace.
// Zero is accepted.
func ParseCount(s string) (int, error) {
	clean := strings.TrimSpace(s)
	invalid := &ValidationError{
		Field:  "number",
		Input:  s,
		Reason: "must be a non-negative integer",
	}

	if clean == "" {
		return 0, invalid
	}
	for i := 0; i < len(clean); i++ {
		if clean[i] < '0' || clean[i] > '9' {
			return 0, invalid
		}
	}

	n, err := strconv.Atoi(clean)
	if err != nil {
		// only overflow can get here
		return 0, invalid
	}
	return n, nil
}

// ParseBookID validates a composite identifier and returns its canonical form.
// The number part may carry surrounding whitespace; leading zeros are dropped.
func ParseBookID(s string) (BookID, error) {
	invalid := &ValidationError{
		Field:  "id",
		Input:  s,
		Reason: "please provide two hex characters (0-9a-f), a dash '-' and a non-negative integer",
	}

	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), idSeparator)
	if len(parts) != 2 {
		return "", invalid
	}

	// the prefix must be exactly two characters as typed, no inner padding
	if len(parts[0]) != 2 {
		return "", invalid
	}
	prefix, err := ParseHexPrefix(parts[0])
	if err != nil {
		return "", invalid
	}

	n, err := ParseCount(parts[1])
	if err != nil {
		return "", invalid
	}

	return NewBookID(prefix, n), nil
}

// NewBookID renders a prefix and number as a BookID.
func NewBookID(prefix HexPrefix, n int) BookID {
	return BookID(fmt.Sprintf("%s%s%d", prefix, idSeparator, n))
}

// Prefix returns the hex prefix part of the id.
func (id BookID) Prefix() HexPrefix {
	p, _, _ := strings.Cut(string(id), idSeparator)
	return HexPrefix(p)
}

// Number returns the numeric part of the id, or -1 if the id is malformed.
func (id BookID) Number() int {
	_, num, ok := strings.Cut(string(id), idSeparator)
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return -1
	}
	return n
}

func (id BookID) String() string {
	return string(id)
}

// IsHexPrefix reports whether s is a valid hex prefix.
func IsHexPrefix(s string) bool {
	_, err := ParseHexPrefix(s)
	return err == nil
}

// IsBookID reports whether s is a valid book identifier.
func IsBookID(s string) bool {
	_, err := ParseBookID(s)
	return err == nil
}

// IsNonNegativeInteger reports whether s parses as an integer >= 0.
func IsNonNegativeInteger(s string) bool {
	_, err := ParseCount(s)
	return err == nil
}

func isHexChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}
