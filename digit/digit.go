package digit

import "github.com/wippyai/baseconv/errors"

// ToGlyph converts a non-negative digit value to its single-character glyph.
// Values 0-9 map to ASCII digits, 10-35 to 'A'-'Z', 36-61 to 'a'-'z', and
// 62+ to the code point value+61.
func ToGlyph(n int) rune {
	switch {
	case n < 10:
		return rune('0' + n)
	case n < 36:
		return rune('A' + n - 10)
	default:
		return rune(n + 61)
	}
}

// FromGlyph converts a glyph back to its digit value. It is the exact
// inverse of ToGlyph and fails with an invalid_digit error for any
// character outside the alphabet.
func FromGlyph(r rune) (int, error) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), nil
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, nil
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 36, nil
	case r >= 123:
		return int(r) - 61, nil
	default:
		return 0, errors.InvalidGlyph(errors.PhaseParse, r)
	}
}
