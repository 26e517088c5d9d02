package digit

import "strings"

// Item is one element of a digit sequence: a non-negative digit value or
// one of the structural markers.
type Item int

// Structural markers. All digit values are non-negative, so markers use
// the negative range.
const (
	RadixPoint  Item = -1 // '.'
	RepeatStart Item = -2 // '['
	RepeatEnd   Item = -3 // ']'
)

// IsDigit reports whether the item is a digit value rather than a marker.
func (i Item) IsDigit() bool {
	return i >= 0
}

// Sequence is an ordered run of digits and markers denoting a number's
// positional form, e.g. 255.03125 in base 10 is
// {2, 5, 5, RadixPoint, 0, 3, 1, 2, 5}.
type Sequence []Item

// FromDigits builds a marker-free sequence from plain digit values.
func FromDigits(digits []int) Sequence {
	seq := make(Sequence, len(digits))
	for i, d := range digits {
		seq[i] = Item(d)
	}
	return seq
}

// String renders the sequence using the glyph alphabet, with markers
// emitted verbatim.
func (s Sequence) String() string {
	var b strings.Builder
	for _, it := range s {
		switch it {
		case RadixPoint:
			b.WriteByte('.')
		case RepeatStart:
			b.WriteByte('[')
		case RepeatEnd:
			b.WriteByte(']')
		default:
			b.WriteRune(ToGlyph(int(it)))
		}
	}
	return b.String()
}

// Parse converts a string into a sequence, transcoding digit glyphs and
// keeping the markers '.', '[' and ']' verbatim. It fails with an
// invalid_digit error on any character outside the alphabet.
func Parse(s string) (Sequence, error) {
	seq := make(Sequence, 0, len(s))
	for _, r := range s {
		switch r {
		case '.':
			seq = append(seq, RadixPoint)
		case '[':
			seq = append(seq, RepeatStart)
		case ']':
			seq = append(seq, RepeatEnd)
		default:
			d, err := FromGlyph(r)
			if err != nil {
				return nil, err
			}
			seq = append(seq, Item(d))
		}
	}
	return seq, nil
}
