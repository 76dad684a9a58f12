package service_test

import (
	"context"
	"fmt"

	"github.com/kpchand/fireservice/errors"
	"github.com/kpchand/fireservice/field"
	"github.com/kpchand/fireservice/service"
	"github.com/kpchand/fireservice/validator"
)

// greeter is a minimal service: one mandatory execute-phase.
type greeter struct {
	service.Base
}

func (greeter) Fire(_ context.Context, ins *service.Instance, _ map[string]any) (any, error) {
	return fmt.Sprintf("Hello %s, we are happy to see you back on Endurance!",
		ins.Get("name").(string)), nil
}

// Example demonstrates declaring a service and calling it with raw
// input.
func Example() {
	def := service.Define("send-welcome-email").
		Field("name", field.String(field.MinLength(1))).
		Field("email", field.Email()).
		MustBuild()

	out, err := service.NewRunner(def).Call(context.Background(), greeter{}, map[string]any{
		"name":  "Murphy Cooper",
		"email": "murphy@example.com",
	}, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output: Hello Murphy Cooper, we are happy to see you back on Endurance!
}

// maintenanceAware skips execution from its pre-phase when the system
// is under maintenance and observes the outcome in its post-phase.
type maintenanceAware struct {
	service.Base
	underMaintenance bool
}

func (s maintenanceAware) PreFire(*service.Instance) (service.PreFireOutcome, error) {
	if s.underMaintenance {
		return service.Skip("maintenance window"), nil
	}
	return service.Proceed(), nil
}

func (s maintenanceAware) Fire(context.Context, *service.Instance, map[string]any) (any, error) {
	return "did the work", nil
}

func (s maintenanceAware) PostFire(_ *service.Instance, fired bool, cause error) error {
	fmt.Printf("fired=%v cause=%v\n", fired, cause)
	return nil
}

// Example_skip demonstrates the skip short-circuit: the execute-phase
// never runs, the post-phase still observes the cause, and the call
// returns the absent value.
func Example_skip() {
	def := service.Define("maintenance-aware").
		Field("job", field.String(field.Validators(validator.NotRequired()))).
		MustBuild()

	out, err := service.NewRunner(def).Call(context.Background(),
		maintenanceAware{underMaintenance: true}, map[string]any{}, nil)
	fmt.Printf("out=%v err=%v\n", out, err)
	// Output:
	// fired=false cause=execution skipped: maintenance window
	// out=<nil> err=<nil>
}

// Example_nestedList demonstrates path-qualified validation errors for
// nested list fields.
func Example_nestedList() {
	def := service.Define("matrix-loader").
		Field("grid", field.List(field.List(field.Character()))).
		MustBuild()

	_, err := service.NewRunner(def).Call(context.Background(), greeter{}, map[string]any{
		"grid": []any{[]any{"a", "b"}, []any{"c", "dd"}},
	}, nil)

	ve, _ := errors.AsValidation(err)
	fmt.Println(ve.Field)
	fmt.Println(ve.Message)
	// Output:
	// grid[1][1]
	// should have length: 1 but has length: 2
}
