// Package errors provides standardized error handling for fireservice.
//
// # Overview
//
// The package defines one concrete error type per failure kind instead
// of an inheritance hierarchy: ValidationError, UnknownParameterError,
// ModificationError, SkipError and DefinitionError. All of them
// integrate with Go's standard error handling patterns, supporting
// errors.Is(), errors.As() and error wrapping chains.
//
// # Failure kinds
//
//   - ValidationError: an input value violated a required/type/range/
//     length/pattern constraint. Carries the field path and a message.
//   - UnknownParameterError: the raw input mapping held a key with no
//     declared field. Raised before any field initializes.
//   - ModificationError: a field was written twice on one instance.
//     Field values are initialize-once, then immutable.
//   - SkipError: the intentional short-circuit signalled from the
//     pre-phase. Not a failure; the orchestrator recovers it and hands
//     it to the post-phase as the skip cause.
//   - DefinitionError: an invalid service or field declaration,
//     surfaced at schema-definition time before any instance exists.
//
// # Field paths
//
// ValidationError.Field locates the failing slot. For nested list
// fields the path composes the outer field name with the index of
// every level traversed:
//
//	matrix[1][0]: field "matrix[1][0]": not of str type
//
// # Quick Start
//
// Check classification with the helper functions:
//
//	if _, err := runner.Call(ctx, svc, input, nil); err != nil {
//	    switch {
//	    case errors.IsValidation(err):
//	        ve, _ := errors.AsValidation(err)
//	        form.MarkInvalid(ve.Field, ve.Message)
//	    case errors.IsUnknownParameter(err):
//	        // reject the request
//	    default:
//	        // propagate
//	    }
//	}
//
// Only SkipError is ever recovered by the framework, and only when it
// is produced by the pre-phase. Every other kind propagates unmodified
// to the caller of Call.
package errors
