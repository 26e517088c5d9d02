// Package baseconv converts non-negative rational numbers between
// positional numeral bases.
//
// Any integer base of at least 1 is supported on both sides. Conversion
// runs through an exact arbitrary-precision rational intermediate, so no
// value error is introduced beyond the configured fractional depth, and a
// repeating fractional suffix can be detected and folded into compact
// bracket notation.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	baseconv/        Root package: the conversion facade (Convert, Converter)
//	├── digit/       Digit alphabet and digit-sequence model
//	├── radix/       Positional value model and exact base transform
//	├── recurring/   Repeating-pattern detection and expansion
//	├── errors/      Structured error types
//	└── cmd/baseconv CLI and interactive terminal front-end
//
// # Quick Start
//
// Convert a number represented as a string:
//
//	seq, err := baseconv.Convert("FF0.8", 16, 10)
//	fmt.Println(seq.String()) // "4080.5"
//
// Structured digit sequences work the same way and are the recommended
// form for bases above 62:
//
//	seq, err := baseconv.Convert([]int{15, 15}, 16, 8)
//	// seq is {3, 7, 7}
//
// A reusable Converter holds a fixed configuration:
//
//	c := baseconv.New(3, 10)
//	s, err := c.ConvertString("0.1") // "0.[3]"
//
// Direct numeric values carry their own value, so the input base is
// irrelevant and only the output base applies:
//
//	s, err := baseconv.ConvertString(0.1, 10, 8)
//
// # Representation
//
// Results are digit.Sequence values: digit values ordered most
// significant first, a RadixPoint marker between the integer and
// fractional halves, and a repeating fractional suffix enclosed in
// RepeatStart/RepeatEnd markers. The string form uses the fixed glyph
// alphabet 0-9, A-Z, a-z, then Unicode code points from 123 up.
//
// # Semantics
//
// Wherever the fractional depth limit cuts a result, digits are truncated
// toward zero, never rounded to nearest. Negative numbers are rejected.
// The engine is purely computational: conversions share no state and may
// run concurrently.
package baseconv
