// Package errors provides structured error types for the baseconv library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the offending digit or
// value, the base it was judged against, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseValidate, errors.KindInvalidDigit).
//		Digit(15).
//		Base(10).
//		Detail("digit exceeds input base").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidDigit(errors.PhaseValidate, 15, 10)
//	err := errors.InvalidValue(errors.PhaseParse, -3)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
