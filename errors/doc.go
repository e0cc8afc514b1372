// Package errors provides structured error types for the icon-encoder library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries a context path, the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseValidate, errors.KindFormat).
//		Path("icns", "dark").
//		Value(size).
//		Detail("declared size %d, have %d", size, len(data)).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Format(errors.PhaseParse, "missing IHDR")
//	err := errors.UnknownType("ic99")
//
// Kind sentinels match any phase:
//
//	if errors.Is(err, errors.ErrFormat) { ... }
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
