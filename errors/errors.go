package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse    Phase = "parse"    // glyph/sequence parsing
	PhaseValidate Phase = "validate" // digit and base validation
	PhaseConvert  Phase = "convert"  // base transform
	PhaseRender   Phase = "render"   // sequence/string rendering
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidDigit Kind = "invalid_digit" // digit value too high for its base
	KindInvalidValue Kind = "invalid_value" // negative magnitude supplied
	KindInvalidBase  Kind = "invalid_base"  // base below 1
	KindUnsupported  Kind = "unsupported"   // input type the facade cannot interpret
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Digit  int
	Base   int
	// HasDigit distinguishes digit 0 from "no digit recorded".
	HasDigit bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.HasDigit {
		fmt.Fprintf(&b, ": digit %d", e.Digit)
		if e.Base > 0 {
			fmt.Fprintf(&b, " in base %d", e.Base)
		}
	} else if e.Base > 0 {
		fmt.Fprintf(&b, ": base %d", e.Base)
	}

	if e.Detail != "" {
		if e.HasDigit || e.Base > 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err is a *Error of the given kind, in any phase.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Digit sets the offending digit value
func (b *Builder) Digit(d int) *Builder {
	b.err.Digit = d
	b.err.HasDigit = true
	return b
}

// Base sets the base the digit or value was judged against
func (b *Builder) Base(base int) *Builder {
	b.err.Base = base
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidDigit creates an error for a digit value too high for its base
func InvalidDigit(phase Phase, digit, base int) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidDigit,
		Digit:    digit,
		Base:     base,
		HasDigit: true,
		Detail:   fmt.Sprintf("digit value %d not representable in base %d", digit, base),
	}
}

// InvalidGlyph creates an error for a character outside the digit alphabet
func InvalidGlyph(phase Phase, glyph rune) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidDigit,
		Value:  glyph,
		Detail: fmt.Sprintf("character %q is not a digit glyph", glyph),
	}
}

// InvalidValue creates an error for a negative magnitude
func InvalidValue(phase Phase, value any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidValue,
		Value:  value,
		Detail: fmt.Sprintf("negative value %v not supported", value),
	}
}

// InvalidBase creates an error for a base below 1
func InvalidBase(phase Phase, base int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidBase,
		Base:   base,
		Detail: "base must be at least 1",
	}
}

// Unsupported creates an unsupported input error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}
