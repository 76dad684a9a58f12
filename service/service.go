package service

import (
	"context"

	"github.com/kpchand/fireservice/errors"
)

// Service is the phase contract a concrete service implements. One
// Call invocation runs the phases in a fixed order:
//
//  1. PreFire: pre-check; may return a Skip outcome to prevent the
//     execute-phase. Any error propagates and the post-phase does not
//     run.
//  2. Fire: the mandatory unit of work. Its return value is captured
//     as the Call return value. Any error propagates and the
//     post-phase does not run.
//  3. PostFire: always-run observer after a skip or a fire. It
//     receives whether Fire ran and the skip cause; its error
//     propagates, everything else it produces is discarded.
//
// Embed Base for default no-op PreFire and PostFire implementations.
// Fire has no default: a service type without an execute-phase does
// not satisfy this interface.
type Service interface {
	PreFire(ins *Instance) (PreFireOutcome, error)
	Fire(ctx context.Context, ins *Instance, extra map[string]any) (any, error)
	PostFire(ins *Instance, fired bool, cause error) error
}

// Base provides default no-op implementations of the optional phases.
// It deliberately does not implement Fire.
type Base struct{}

// PreFire proceeds unconditionally.
func (Base) PreFire(*Instance) (PreFireOutcome, error) {
	return Proceed(), nil
}

// PostFire observes nothing.
func (Base) PostFire(*Instance, bool, error) error {
	return nil
}

// Funcs adapts plain functions to the Service interface, for services
// small enough not to warrant a named type. Nil Pre and Post behave
// like Base; a nil Exec fails with errors.ErrNotImplemented, since the
// execute-phase is mandatory.
type Funcs struct {
	Pre  func(ins *Instance) (PreFireOutcome, error)
	Exec func(ctx context.Context, ins *Instance, extra map[string]any) (any, error)
	Post func(ins *Instance, fired bool, cause error) error
}

// PreFire implements Service.
func (f Funcs) PreFire(ins *Instance) (PreFireOutcome, error) {
	if f.Pre == nil {
		return Proceed(), nil
	}
	return f.Pre(ins)
}

// Fire implements Service.
func (f Funcs) Fire(ctx context.Context, ins *Instance, extra map[string]any) (any, error) {
	if f.Exec == nil {
		return nil, errors.ErrNotImplemented
	}
	return f.Exec(ctx, ins, extra)
}

// PostFire implements Service.
func (f Funcs) PostFire(ins *Instance, fired bool, cause error) error {
	if f.Post == nil {
		return nil
	}
	return f.Post(ins, fired, cause)
}
