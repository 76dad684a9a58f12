package service

import (
	"github.com/google/uuid"

	"github.com/kpchand/fireservice/errors"
)

// Instance holds the validated field values for one Call invocation.
// Each field is written exactly once during input processing and is
// immutable afterwards; the instance is discarded when Call returns.
//
// An Instance is exclusively owned by the goroutine that invoked Call.
// The shared, read-only structure is the Definition, never the
// instance.
type Instance struct {
	id          string
	def         *Definition
	state       State
	values      map[string]any
	initialized map[string]bool
}

func newInstance(def *Definition) *Instance {
	return &Instance{
		id:          uuid.NewString(),
		def:         def,
		state:       StateInitializing,
		values:      make(map[string]any, len(def.fields)),
		initialized: make(map[string]bool, len(def.fields)),
	}
}

// ID returns the unique identifier of this invocation, used to
// correlate log records.
func (in *Instance) ID() string { return in.id }

// Definition returns the service definition this instance was built
// from.
func (in *Instance) Definition() *Definition { return in.def }

// State returns the lifecycle state the instance last reached.
func (in *Instance) State() State { return in.state }

// Get returns the initialized value of the named field, or nil when
// the field is unknown or was initialized to nil.
func (in *Instance) Get(name string) any {
	return in.values[name]
}

// GetOK returns the initialized value of the named field and whether
// the field was initialized at all.
func (in *Instance) GetOK(name string) (any, bool) {
	v, ok := in.values[name]
	return v, ok
}

// SetOnce writes a field value exactly once. A second write fails with
// a ModificationError regardless of whether the new value equals the
// old one; a write to an undeclared name fails with an
// UnknownParameterError.
func (in *Instance) SetOnce(name string, value any) error {
	if _, ok := in.def.index[name]; !ok {
		return &errors.UnknownParameterError{Key: name}
	}
	if in.initialized[name] {
		return &errors.ModificationError{Field: name}
	}
	in.values[name] = value
	in.initialized[name] = true
	return nil
}
