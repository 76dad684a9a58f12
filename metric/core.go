// Package metric provides Prometheus instrumentation for service
// calls: invocation counts by outcome, call durations, and validation
// failures by field path.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Call outcome labels recorded on CallsTotal.
const (
	StatusFired   = "fired"
	StatusSkipped = "skipped"
	StatusError   = "error"
)

// Metrics contains the collectors shared by all services of one
// registry.
type Metrics struct {
	CallsTotal         *prometheus.CounterVec
	CallDuration       *prometheus.HistogramVec
	ValidationFailures *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		CallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fireservice",
				Subsystem: "calls",
				Name:      "total",
				Help:      "Total number of service calls by outcome (fired, skipped, error)",
			},
			[]string{"service", "status"},
		),

		CallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "fireservice",
				Subsystem: "calls",
				Name:      "duration_seconds",
				Help:      "Service call duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"service"},
		),

		ValidationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fireservice",
				Subsystem: "validation",
				Name:      "failures_total",
				Help:      "Total number of field validation failures by field path",
			},
			[]string{"service", "field"},
		),
	}
}

// RecordCall records one finished call with its outcome and duration.
func (m *Metrics) RecordCall(service, status string, duration time.Duration) {
	m.CallsTotal.WithLabelValues(service, status).Inc()
	m.CallDuration.WithLabelValues(service).Observe(duration.Seconds())
}

// RecordValidationFailure records a field validation failure.
func (m *Metrics) RecordValidationFailure(service, fieldPath string) {
	m.ValidationFailures.WithLabelValues(service, fieldPath).Inc()
}

// Collectors returns all collectors for registration.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.CallsTotal,
		m.CallDuration,
		m.ValidationFailures,
	}
}
