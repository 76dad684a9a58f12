// Package fireservice is a library for declaring typed, validated
// input schemas for units of work ("services") and running them
// through a fixed three-phase lifecycle with structured,
// path-qualified validation errors.
//
// # Architecture
//
// The module is a small stack of in-process layers:
//
//	┌─────────────────────────────────────┐
//	│        Lifecycle Orchestrator       │  service.Runner
//	│   (pre-fire, fire, post-fire)       │  state machine, skip
//	└─────────────────────────────────────┘
//	           ↓ initializes via
//	┌─────────────────────────────────────┐
//	│          Field Type System          │  field.Field kinds,
//	│   (leaf kinds, recursive lists)     │  defaults, kind checks
//	└─────────────────────────────────────┘
//	           ↓ accepts/rejects via
//	┌─────────────────────────────────────┐
//	│          Validator Chains           │  validator.Func:
//	│  (required, length, interval, ...)  │  pure, ordered checks
//	└─────────────────────────────────────┘
//
// Failures are typed values in the errors package, each carrying the
// exact field path of the violation ("a[1][0]" for nested lists).
// Optional Prometheus instrumentation of call outcomes lives in the
// metric package.
//
// # Scope
//
// Everything is in-process function calls: no I/O, no background
// goroutines, no wire format. A caller supplies a raw map of input
// values and reads back a return value or a typed error.
package fireservice
