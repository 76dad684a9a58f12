package metric

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kpchand/fireservice/errors"
)

// Registry manages the registration and lifecycle of metrics. It owns
// a private Prometheus registry pre-loaded with the core call metrics
// and accepts additional service-specific collectors under unique
// names.
type Registry struct {
	prometheusRegistry *prometheus.Registry
	metrics            *Metrics
	registered         map[string]prometheus.Collector
	mu                 sync.RWMutex
}

// NewRegistry creates a new metrics registry with the core call
// metrics already registered.
func NewRegistry() *Registry {
	r := &Registry{
		prometheusRegistry: prometheus.NewRegistry(),
		metrics:            NewMetrics(),
		registered:         make(map[string]prometheus.Collector),
	}
	for _, c := range r.metrics.Collectors() {
		r.prometheusRegistry.MustRegister(c)
	}
	return r
}

// PrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}

// CoreMetrics returns the core call metrics.
func (r *Registry) CoreMetrics() *Metrics {
	return r.metrics
}

// Register registers a service-specific collector under
// "service.metric". It fails when the name is already taken or when
// Prometheus rejects the collector.
func (r *Registry) Register(serviceName, metricName string, collector prometheus.Collector) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", serviceName, metricName)
	if _, exists := r.registered[key]; exists {
		return errors.Wrap(
			fmt.Errorf("metric %s already registered for service %s", metricName, serviceName),
			"Registry", "Register", "duplicate metric registration")
	}

	if err := r.prometheusRegistry.Register(collector); err != nil {
		var alreadyRegErr prometheus.AlreadyRegisteredError
		if stderrors.As(err, &alreadyRegErr) {
			return errors.Wrap(err, "Registry", "Register",
				fmt.Sprintf("prometheus conflict for metric %s", metricName))
		}
		return errors.Wrap(err, "Registry", "Register", "collector registration")
	}

	r.registered[key] = collector
	return nil
}

// Unregister removes a previously registered service collector.
// Returns true when the collector existed and was removed.
func (r *Registry) Unregister(serviceName, metricName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s.%s", serviceName, metricName)
	collector, exists := r.registered[key]
	if !exists {
		return false
	}
	delete(r.registered, key)
	return r.prometheusRegistry.Unregister(collector)
}
