// Package errors provides structured error types for the revitobjects library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the wrapper type, field
// path, slot identifier, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseHydrate, errors.KindTypeMismatch).
//		Path("Wall", "IsExternal").
//		GoType("string").
//		Slot("IsExternal").
//		Detail("text slot cannot hydrate a bool field").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MissingClassification("Wall")
//	err := errors.SlotNotFound(errors.PhaseSave, "IsExternal")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
