// Package service provides the service definition surface and the
// three-phase lifecycle orchestrator of fireservice.
//
// # Defining a service
//
// A service type is an ordered set of named fields, declared once:
//
//	var sendWelcomeEmail = service.Define("send-welcome-email").
//	    Field("name", field.String()).
//	    Field("email", field.Email()).
//	    MustBuild()
//
// The resulting Definition is immutable and safely shared by any
// number of concurrent invocations. Declaration order drives
// validation order and error precedence, nothing else.
//
// # Lifecycle
//
// One invocation runs through a fixed state machine:
//
//	initializing → validated → {skipped, fired} → completed
//
// Input processing first rejects unknown keys, then initializes every
// declared field in declaration order (absent keys take the field's
// default). Any failure aborts before the first phase runs. On
// success, PreFire may skip the execute-phase; Fire runs otherwise and
// its return value is captured; PostFire always runs afterwards,
// observing whether Fire ran and why not.
//
//	type welcomeEmail struct {
//	    service.Base
//	    mailer *Mailer
//	}
//
//	func (s *welcomeEmail) PreFire(ins *service.Instance) (service.PreFireOutcome, error) {
//	    if !s.mailer.Up() {
//	        return service.Skip("mailer is down"), nil
//	    }
//	    return service.Proceed(), nil
//	}
//
//	func (s *welcomeEmail) Fire(ctx context.Context, ins *service.Instance, extra map[string]any) (any, error) {
//	    return nil, s.mailer.Send(ins.Get("email").(string), ins.Get("name").(string))
//	}
//
//	runner := service.NewRunner(sendWelcomeEmail)
//	_, err := runner.Call(ctx, svc, map[string]any{
//	    "name":  "Murphy Cooper",
//	    "email": "murphy@example.com",
//	}, nil)
//
// # Execution model
//
// Fully synchronous: one Call runs start-to-finish on the invoking
// goroutine. Each Instance is exclusively owned by that goroutine and
// is immutable once its fields initialize; Definitions and Runners are
// the only shared structures and both are read-only.
package service
