package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/kpchand/fireservice/errors"
	"github.com/kpchand/fireservice/metric"
)

// Runner orchestrates the three-phase lifecycle for one service
// definition. It is stateless between invocations and safe for
// concurrent use: each Call builds its own Instance.
type Runner struct {
	def     *Definition
	logger  *slog.Logger
	metrics *metric.Metrics
}

// RunnerOption is a functional option for configuring a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the structured logger used for call-level records.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

// WithMetrics enables Prometheus instrumentation of call outcomes,
// durations and validation failures.
func WithMetrics(m *metric.Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// NewRunner creates a runner for the definition.
func NewRunner(def *Definition, opts ...RunnerOption) *Runner {
	r := &Runner{
		def:    def,
		logger: slog.Default().With("service", def.name),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Call validates input against the definition, runs the lifecycle
// phases on svc and returns the execute-phase's return value, or nil
// when execution was skipped.
//
// input keys must be a subset of the declared field names; extra is
// passed through unchanged to the execute-phase only. The context is
// handed to Fire for the service's own use; the orchestrator itself
// never cancels a running call.
//
// On failure the returned error is one of the typed errors package
// kinds (or the service's own error from a phase), and the caller must
// treat the invocation as having produced no usable state.
func (r *Runner) Call(ctx context.Context, svc Service, input map[string]any, extra map[string]any) (any, error) {
	res, err := r.Exec(ctx, svc, input, extra)
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

// Exec is Call with the full lifecycle result: whether the
// execute-phase ran, the skip cause when it did not, and the captured
// return value.
func (r *Runner) Exec(ctx context.Context, svc Service, input map[string]any, extra map[string]any) (Result, error) {
	start := time.Now()
	ins := newInstance(r.def)
	log := r.logger.With("instance", ins.id)

	if err := r.processInput(ins, input); err != nil {
		log.Warn("input rejected", "error", err)
		r.recordCall(metric.StatusError, start)
		return Result{}, err
	}
	ins.state = StateValidated

	outcome, err := svc.PreFire(ins)
	if err != nil {
		log.Warn("pre-fire failed", "error", err)
		r.recordCall(metric.StatusError, start)
		return Result{}, err
	}

	var res Result
	if outcome.Skipped() {
		ins.state = StateSkipped
		cause := outcome.Cause()
		if cause == nil {
			cause = &errors.SkipError{}
		}
		res = Result{SkipCause: cause}
		log.Info("execution skipped", "cause", cause)
	} else {
		value, err := svc.Fire(ctx, ins, extra)
		if err != nil {
			log.Warn("fire failed", "error", err)
			r.recordCall(metric.StatusError, start)
			return Result{}, err
		}
		ins.state = StateFired
		res = Result{Fired: true, Value: value}
	}

	if err := svc.PostFire(ins, res.Fired, res.SkipCause); err != nil {
		log.Warn("post-fire failed", "error", err)
		r.recordCall(metric.StatusError, start)
		return res, err
	}
	ins.state = StateCompleted

	status := metric.StatusFired
	if !res.Fired {
		status = metric.StatusSkipped
	}
	r.recordCall(status, start)
	log.Debug("call completed", "fired", res.Fired, "duration", time.Since(start))
	return res, nil
}

// processInput maps the raw input onto the declared fields. Unknown
// keys are rejected before any field initializes; fields then
// initialize in declaration order, each written exactly once.
func (r *Runner) processInput(ins *Instance, input map[string]any) error {
	for key := range input {
		if _, ok := r.def.index[key]; !ok {
			return &errors.UnknownParameterError{Key: key}
		}
	}
	for _, nf := range r.def.fields {
		raw, present := input[nf.name]
		value, err := nf.field.Init(nf.name, raw, present)
		if err != nil {
			if ve, ok := errors.AsValidation(err); ok && r.metrics != nil {
				r.metrics.RecordValidationFailure(r.def.name, ve.Field)
			}
			return err
		}
		if err := ins.SetOnce(nf.name, value); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) recordCall(status string, start time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.RecordCall(r.def.name, status, time.Since(start))
}

// Call is a convenience for one-off invocations without runner
// configuration; it is equivalent to NewRunner(d).Call.
func (d *Definition) Call(ctx context.Context, svc Service, input map[string]any, extra map[string]any) (any, error) {
	return NewRunner(d).Call(ctx, svc, input, extra)
}
