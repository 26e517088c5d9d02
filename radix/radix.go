package radix

import (
	"github.com/wippyai/baseconv/digit"
	"github.com/wippyai/baseconv/errors"
)

// Relation values reported alongside a produced Radix.
const (
	RelationExact   = 0  // the digits denote the exact value
	RelationRounded = -1 // digits were truncated toward zero
)

// Radix is a non-negative rational number in positional notation.
type Radix struct {
	IntegerPart  []int // most significant digit first
	NonRepeating []int // fractional digits before any repeating pattern
	Repeating    []int // repeating fractional pattern, empty if none
	Base         int
	Sign         int // 0 if all digits are zero, 1 otherwise
}

// FromSequence parses a digit sequence in the given base.
//
// The sequence splits on RadixPoint into integer and fractional halves,
// and the fractional half on the repeat markers into non-repeating and
// repeating parts. Every digit must be below the base; base 1 permits
// only digit values 0 and 1 (unary tally). Structural marker misuse and
// out-of-range digits are rejected.
func FromSequence(seq digit.Sequence, base int) (*Radix, error) {
	if base < 1 {
		return nil, errors.InvalidBase(errors.PhaseValidate, base)
	}

	r := &Radix{Base: base}

	// 0: integer part, 1: non-repeating fraction, 2: repeating fraction,
	// 3: after RepeatEnd (nothing may follow).
	part := 0
	for _, it := range seq {
		switch it {
		case digit.RadixPoint:
			if part != 0 {
				return nil, errors.New(errors.PhaseParse, errors.KindUnsupported).
					Detail("unexpected radix point").Build()
			}
			part = 1
		case digit.RepeatStart:
			if part != 1 {
				return nil, errors.New(errors.PhaseParse, errors.KindUnsupported).
					Detail("repeat marker outside fractional part").Build()
			}
			part = 2
		case digit.RepeatEnd:
			if part != 2 {
				return nil, errors.New(errors.PhaseParse, errors.KindUnsupported).
					Detail("unmatched repeat end marker").Build()
			}
			part = 3
		default:
			if part == 3 {
				return nil, errors.New(errors.PhaseParse, errors.KindUnsupported).
					Detail("digits after repeat end marker").Build()
			}
			d := int(it)
			if !ValidDigit(d, base) {
				return nil, errors.InvalidDigit(errors.PhaseValidate, d, base)
			}
			switch part {
			case 0:
				r.IntegerPart = append(r.IntegerPart, d)
			case 1:
				r.NonRepeating = append(r.NonRepeating, d)
			case 2:
				r.Repeating = append(r.Repeating, d)
			}
			if d != 0 {
				r.Sign = 1
			}
		}
	}

	if part == 2 {
		return nil, errors.New(errors.PhaseParse, errors.KindUnsupported).
			Detail("unterminated repeat marker").Build()
	}

	return r, nil
}

// ValidDigit reports whether d is a legal digit value in the base.
// Base 1 is special-cased: tally notation permits only 0 and 1.
func ValidDigit(d, base int) bool {
	if d < 0 {
		return false
	}
	if base == 1 {
		return d <= 1
	}
	return d < base
}

// Sequence renders the value as a digit sequence. The integer part
// defaults to a single zero digit when empty. Fractional digits are
// emitted after a radix point; a repeating pattern is always bracketed.
// When relation reports rounding, trailing fractional zeros are artifacts
// of truncation and are stripped; an exact result keeps its digits as
// written.
func (r *Radix) Sequence(relation int) digit.Sequence {
	integer := r.IntegerPart
	if len(integer) == 0 {
		integer = []int{0}
	}

	nonRepeating := r.NonRepeating
	if len(r.Repeating) == 0 && relation != RelationExact {
		for len(nonRepeating) > 0 && nonRepeating[len(nonRepeating)-1] == 0 {
			nonRepeating = nonRepeating[:len(nonRepeating)-1]
		}
	}

	size := len(integer) + 1 + len(nonRepeating) + len(r.Repeating) + 2
	out := make(digit.Sequence, 0, size)
	out = append(out, digit.FromDigits(integer)...)

	if len(nonRepeating) == 0 && len(r.Repeating) == 0 {
		return out
	}

	out = append(out, digit.RadixPoint)
	out = append(out, digit.FromDigits(nonRepeating)...)
	if len(r.Repeating) > 0 {
		out = append(out, digit.RepeatStart)
		out = append(out, digit.FromDigits(r.Repeating)...)
		out = append(out, digit.RepeatEnd)
	}
	return out
}
