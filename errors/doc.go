// Package errors provides structured error types for the ethabi library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: the parameter path into nested values,
// the ABI type involved, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindOverflow).
//		Path("param[1]").
//		AbiType("uint8").
//		Detail("value 300 does not fit").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Overflow(errors.PhaseParse, path, "300", "uint8")
//	err := errors.OutOfBounds(errors.PhaseDecode, path, 96, 64)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
