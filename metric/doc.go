// Package metric provides Prometheus instrumentation for fireservice
// calls.
//
// The core collectors count calls by outcome (fired, skipped, error),
// observe call durations, and count validation failures by field path.
// Hand Metrics to a service.Runner via service.WithMetrics; Registry
// additionally manages a private Prometheus registry and
// service-specific collectors.
//
//	reg := metric.NewRegistry()
//	runner := service.NewRunner(def, service.WithMetrics(reg.CoreMetrics()))
//
// The package never exposes the metrics anywhere by itself; how the
// PrometheusRegistry gets scraped or pushed is the embedding program's
// concern.
package metric
