package uuid4

import (
	"fmt"
)

const urnPrefix = "urn:uuid:"

// The five RFC 4122 fields: byte counts and their offsets in a UUID.
var (
	groupSizes  = [5]int{4, 2, 2, 2, 6}
	groupStarts = [5]int{0, 4, 6, 8, 10}
)

// Char is the set of character types the parser reads: narrow (byte),
// UTF-16 code units and runes. The algorithm is the same for all of them.
type Char interface {
	~byte | ~uint16 | ~rune
}

// Parse parses a UUID from its string representation.
// It accepts the following formats, with hex digits in either case:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx} (with or without hyphens)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//
// Each hyphen is skipped if present rather than required, and anything after
// the 32nd hex digit (a closing brace, for example) is not examined.
// The version and variant bits are not checked.
//
// On failure the returned error wraps ErrInvalidFormat.
func Parse(s string) (UUID, error) {
	return ParseChars([]byte(s))
}

// ParseBytes is like Parse but reads a byte slice.
func ParseBytes(b []byte) (UUID, error) {
	return ParseChars(b)
}

// ParseRunes is like Parse but reads wide characters.
func ParseRunes(r []rune) (UUID, error) {
	return ParseChars(r)
}

// ParseUTF16 is like Parse but reads UTF-16 code units, as produced by
// utf16.Encode or Windows APIs.
func ParseUTF16(u []uint16) (UUID, error) {
	return ParseChars(u)
}

// ParseChars parses a UUID from a sequence of characters of any Char type.
func ParseChars[C Char](s []C) (UUID, error) {
	var uuid UUID
	pos := 0

	if hasPrefix(s, urnPrefix) {
		pos = len(urnPrefix)
	}
	if pos < len(s) && s[pos] == '{' {
		pos++
	}
	if remaining := len(s) - pos; remaining < 32 {
		return Nil, fmt.Errorf("%w: %d characters left for 32 hex digits", ErrInvalidFormat, remaining)
	}

	for i, n := range groupSizes {
		if i > 0 && s[pos] == '-' {
			pos++
		}
		if i == len(groupSizes)-1 {
			if remaining := len(s) - pos; remaining < 2*n {
				return Nil, fmt.Errorf("%w: %d characters left for the node field", ErrInvalidFormat, remaining)
			}
		}
		start := groupStarts[i]
		for j := start; j < start+n; j++ {
			b, err := decodePair(s, pos)
			if err != nil {
				return Nil, err
			}
			uuid[j] = b
			pos += 2
		}
	}

	return uuid, nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("uuid4: Parse(%q): %v", s, err))
	}
	return uuid
}

func hasPrefix[C Char](s []C, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if rune(s[i]) != rune(prefix[i]) {
			return false
		}
	}
	return true
}

// decodePair decodes the two hex digits at s[pos] and s[pos+1], high nibble first.
func decodePair[C Char](s []C, pos int) (byte, error) {
	hi, ok := fromHexChar(s[pos])
	if !ok {
		return 0, invalidChar(s[pos], pos)
	}
	lo, ok := fromHexChar(s[pos+1])
	if !ok {
		return 0, invalidChar(s[pos+1], pos+1)
	}
	return hi<<4 | lo, nil
}

func fromHexChar[C Char](c C) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return byte(c - '0'), true
	case 'a' <= c && c <= 'f':
		return byte(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return byte(c-'A') + 10, true
	}
	return 0, false
}

func invalidChar[C Char](c C, pos int) error {
	return fmt.Errorf("%w: %q at offset %d is not a hex digit", ErrInvalidFormat, rune(c), pos)
}
