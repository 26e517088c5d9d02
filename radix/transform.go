package radix

import (
	"math/big"

	"github.com/wippyai/baseconv/recurring"
)

// ConvertInteger re-expresses integer-part digits from one base in
// another. Both bases must be at least 1 and every digit valid in
// fromBase; the facade validates before calling.
func ConvertInteger(digits []int, fromBase, toBase int) []int {
	return bigToDigits(digitsToBig(digits, fromBase), toBase)
}

// ConvertFractional re-expresses fractional digits from one base in
// another, emitting at most maxDepth output digits.
//
// The input digits form the exact rational numerator/denominator pair
// num = Σ d[i]·fromBase^(len-1-i), den = fromBase^len. Each step
// multiplies the numerator by toBase, pulls the next digit with floor
// division, keeps the remainder, and reduces the pair by gcd so the
// coefficients stay bounded. The run stops before maxDepth only when the
// numerator hits exactly zero; exact reports whether that happened.
// Otherwise the result is truncated toward zero, never rounded.
func ConvertFractional(digits []int, fromBase, toBase, maxDepth int) (out []int, exact bool) {
	num := digitsToBig(digits, fromBase)
	den := new(big.Int).Exp(big.NewInt(int64(fromBase)), big.NewInt(int64(len(digits))), nil)
	reduce(num, den)

	to := big.NewInt(int64(toBase))
	quo := new(big.Int)
	rem := new(big.Int)
	out = make([]int, 0, maxDepth)
	for i := 0; i < maxDepth && num.Sign() != 0; i++ {
		num.Mul(num, to)
		quo.QuoRem(num, den, rem)
		out = append(out, int(quo.Int64()))
		num, rem = rem, num
		reduce(num, den)
	}
	return out, num.Sign() == 0
}

// FromRational converts an exact rational value into a Radix in the given
// base, with at most precision fractional digits. The value must be
// non-negative and the base at least 1; the facade validates both.
//
// The relation result is RelationExact when the digits denote the value
// exactly and RelationRounded when the fractional run was cut at
// precision digits (always truncating toward zero).
//
// With expandRepeating set the fractional digits are emitted literally.
// Otherwise a recurring suffix, when one is detected, is folded into the
// repeating part.
func FromRational(value *big.Rat, base, precision int, expandRepeating bool) (*Radix, int) {
	num := new(big.Int).Set(value.Num())
	den := new(big.Int).Set(value.Denom())

	intVal := new(big.Int)
	rem := new(big.Int)
	intVal.QuoRem(num, den, rem)
	num, rem = rem, num

	r := &Radix{
		IntegerPart: bigToDigits(intVal, base),
		Base:        base,
	}
	if precision > 0 {
		r.NonRepeating = make([]int, 0, precision)
	}

	to := big.NewInt(int64(base))
	quo := new(big.Int)
	for i := 0; i < precision && num.Sign() != 0; i++ {
		num.Mul(num, to)
		quo.QuoRem(num, den, rem)
		r.NonRepeating = append(r.NonRepeating, int(quo.Int64()))
		num, rem = rem, num
		reduce(num, den)
	}

	relation := RelationExact
	if num.Sign() != 0 {
		relation = RelationRounded
	}

	if !expandRepeating {
		r.NonRepeating, r.Repeating = recurring.Find(r.NonRepeating, recurring.DefaultMinRepeat)
	}

	for _, d := range r.IntegerPart {
		if d != 0 {
			r.Sign = 1
		}
	}
	for _, d := range r.NonRepeating {
		if d != 0 {
			r.Sign = 1
		}
	}
	for _, d := range r.Repeating {
		if d != 0 {
			r.Sign = 1
		}
	}

	return r, relation
}

// digitsToBig accumulates positional digits into their integer value.
// Grounded on the classic Horner loop: value = value·base + digit.
func digitsToBig(digits []int, base int) *big.Int {
	b := big.NewInt(int64(base))
	d := new(big.Int)
	value := new(big.Int)
	for _, v := range digits {
		value.Mul(value, b)
		value.Add(value, d.SetInt64(int64(v)))
	}
	return value
}

// bigToDigits re-emits a non-negative integer as positional digits, most
// significant first. Zero yields an empty run; rendering supplies the
// lone 0 digit. Base 1 produces tally notation: value copies of digit 1.
func bigToDigits(value *big.Int, base int) []int {
	if value.Sign() == 0 {
		return nil
	}

	if base == 1 {
		one := big.NewInt(1)
		v := new(big.Int).Set(value)
		var out []int
		for v.Sign() > 0 {
			out = append(out, 1)
			v.Sub(v, one)
		}
		return out
	}

	b := big.NewInt(int64(base))
	v := new(big.Int).Set(value)
	mod := new(big.Int)
	var out []int
	for v.Sign() > 0 {
		v.DivMod(v, b, mod)
		out = append(out, int(mod.Int64()))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// reduce divides num and den by their gcd in place.
func reduce(num, den *big.Int) {
	if num.Sign() == 0 {
		return
	}
	g := new(big.Int).GCD(nil, nil, num, den)
	if g.Cmp(big.NewInt(1)) > 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
}
