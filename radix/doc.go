// Package radix models a non-negative rational number in a positional
// base and converts it exactly between bases.
//
// A Radix holds integer-part digits (most significant first), the
// non-repeating fractional digits, and an optional repeating fractional
// pattern, all in a fixed base of at least 1. Base 1 is unary tally
// notation: only digit value 1 is representable, and zero renders as a
// single 0 digit.
//
// Base transforms go through an exact big-integer rational intermediate:
// the integer part is re-emitted with repeated division, the fractional
// part as a numerator/denominator pair from which output digits are pulled
// one at a time with floor division, reducing by gcd at every step to
// bound coefficient growth. No floating point is involved; wherever a
// depth limit cuts the run, the result is truncated toward zero, never
// rounded to nearest.
package radix
