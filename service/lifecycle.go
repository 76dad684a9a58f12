package service

import "github.com/kpchand/fireservice/errors"

// State represents the lifecycle state of one Call invocation.
//
// The machine is linear with one branch:
//
//	StateInitializing → StateValidated → {StateSkipped, StateFired} → StateCompleted
//
// StateInitializing is the entry state; StateCompleted is terminal. A
// failure in any phase aborts the machine where it stands and the
// error propagates to the caller.
type State int

const (
	// StateInitializing indicates input is being validated and field
	// values initialized.
	StateInitializing State = iota
	// StateValidated indicates all fields initialized; no phase has
	// run yet.
	StateValidated
	// StateSkipped indicates the pre-phase skipped execution.
	StateSkipped
	// StateFired indicates the execute-phase ran.
	StateFired
	// StateCompleted indicates the post-phase finished.
	StateCompleted
)

// String returns a string representation of the lifecycle state.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateValidated:
		return "validated"
	case StateSkipped:
		return "skipped"
	case StateFired:
		return "fired"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// PreFireOutcome is the tagged result of the pre-phase: either proceed
// to the execute-phase or skip it with a cause. The zero value
// proceeds.
type PreFireOutcome struct {
	skip  bool
	cause error
}

// Proceed signals that the execute-phase should run.
func Proceed() PreFireOutcome {
	return PreFireOutcome{}
}

// Skip signals that the execute-phase must not run. The reason is
// carried to the post-phase as a *errors.SkipError cause; it is not a
// failure and Call returns nil.
func Skip(reason string) PreFireOutcome {
	return SkipCause(&errors.SkipError{Reason: reason})
}

// SkipCause is like Skip with a caller-supplied cause error.
func SkipCause(cause error) PreFireOutcome {
	return PreFireOutcome{skip: true, cause: cause}
}

// Skipped reports whether the outcome skips the execute-phase.
func (o PreFireOutcome) Skipped() bool { return o.skip }

// Cause returns the skip cause, or nil for a proceed outcome.
func (o PreFireOutcome) Cause() error { return o.cause }

// Result is the lifecycle result of one Call invocation: whether the
// execute-phase ran, the skip cause when it did not, and the captured
// return value when it did.
type Result struct {
	Fired     bool
	SkipCause error
	Value     any
}
