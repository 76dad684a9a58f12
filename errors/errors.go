// Package errors provides the typed failure values used throughout
// fireservice. It defines one error type per failure kind, standard
// sentinel variables, and helper functions for classification via
// the standard errors.Is/errors.As machinery.
package errors

import (
	"errors"
	"fmt"
)

// Standard error variables for common conditions.
var (
	// ErrNotImplemented indicates a service type did not supply an
	// execute phase. Reaching it at runtime is a programming error.
	ErrNotImplemented = errors.New("fire is not implemented")

	// ErrNilField indicates a field slot was declared without a field.
	ErrNilField = errors.New("field must not be nil")

	// ErrNilItem indicates a list field was declared without an item field.
	ErrNilItem = errors.New("list field needs a field as contained item type")
)

// ValidationError reports that an input value failed a field's
// validator chain or its kind-specific check.
//
// Field is the path of the failing slot. For nested list fields the
// path carries the index of every level traversed, e.g. "a[1][0]",
// giving the caller an exact coordinate of the failing leaf.
type ValidationError struct {
	Field   string // path of the field that failed validation
	Message string // human-readable failure description
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Message)
}

// NewValidation creates a ValidationError for the named field with a
// formatted message.
func NewValidation(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// UnknownParameterError reports that a raw input mapping contained a
// key with no matching declared field. It is raised before any field
// initializes.
type UnknownParameterError struct {
	Key string // the offending input key
}

// Error implements the error interface.
func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter %q provided", e.Key)
}

// ModificationError reports an attempt to initialize an
// already-initialized field on the same service instance. Field values
// are write-once; a second write fails even when the new value equals
// the old one.
type ModificationError struct {
	Field string // name of the field that was written twice
}

// Error implements the error interface.
func (e *ModificationError) Error() string {
	return fmt.Sprintf("attempt to change field %q", e.Field)
}

// SkipError is the cause attached to a skipped execution. It is not a
// failure: the orchestrator accepts it from the pre-phase and hands it
// to the post-phase as the skip cause instead of propagating it.
type SkipError struct {
	Reason string // optional explanation for the skip
}

// Error implements the error interface.
func (e *SkipError) Error() string {
	if e.Reason == "" {
		return "execution skipped"
	}
	return fmt.Sprintf("execution skipped: %s", e.Reason)
}

// DefinitionError reports an invalid service or field definition, such
// as a duplicate field name or a list declared without an item field.
// Definition errors surface at schema-definition time, before any
// instance exists.
type DefinitionError struct {
	Message string
	Err     error // optional underlying cause
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid definition: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("invalid definition: %s", e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *DefinitionError) Unwrap() error { return e.Err }

// NewDefinition creates a DefinitionError with a formatted message.
func NewDefinition(format string, args ...any) *DefinitionError {
	return &DefinitionError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation checks whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidation extracts a ValidationError from err's chain.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// IsUnknownParameter checks whether err is or wraps an UnknownParameterError.
func IsUnknownParameter(err error) bool {
	var ue *UnknownParameterError
	return errors.As(err, &ue)
}

// IsModification checks whether err is or wraps a ModificationError.
func IsModification(err error) bool {
	var me *ModificationError
	return errors.As(err, &me)
}

// IsSkip checks whether err is or wraps a SkipError.
func IsSkip(err error) bool {
	var se *SkipError
	return errors.As(err, &se)
}

// AsSkip extracts a SkipError from err's chain.
func AsSkip(err error) (*SkipError, bool) {
	var se *SkipError
	ok := errors.As(err, &se)
	return se, ok
}

// IsDefinition checks whether err is or wraps a DefinitionError.
func IsDefinition(err error) bool {
	var de *DefinitionError
	return errors.As(err, &de)
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}
