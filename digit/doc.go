// Package digit implements the digit alphabet and digit-sequence model
// shared by the whole library.
//
// A single digit value maps to a textual glyph:
//
//	Value     Glyph
//	─────────────────────────
//	 0 -  9   '0' - '9'
//	10 - 35   'A' - 'Z'
//	36 - 61   'a' - 'z'
//	62 +      code point 123+
//
// The mapping is bijective and case-sensitive. For bases above 62 the
// structured Sequence form is recommended over strings.
//
// A Sequence is an ordered run of Items: non-negative digit values plus the
// three structural markers RadixPoint ('.'), RepeatStart ('[') and
// RepeatEnd (']'). A well-formed sequence contains at most one RadixPoint;
// the repeat markers appear at most once, as a matched pair after the radix
// point, with RepeatEnd as the final item.
package digit
