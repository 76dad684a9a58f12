package metric

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_CoreMetricsRegistered(t *testing.T) {
	r := NewRegistry()
	r.CoreMetrics().RecordCall("svc", StatusFired, time.Millisecond)

	families, err := r.PrometheusRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["fireservice_calls_total"])
	assert.True(t, names["fireservice_calls_duration_seconds"])
}

func TestRegistry_RegisterServiceCollector(t *testing.T) {
	r := NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "emails_sent_total",
		Help: "Emails sent by the welcome service",
	})

	require.NoError(t, r.Register("welcome", "emails_sent", counter))
	counter.Inc()

	families, err := r.PrometheusRegistry().Gather()
	require.NoError(t, err)
	found := false
	for _, mf := range families {
		if mf.GetName() == "emails_sent_total" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRegistry_DuplicateNameFails(t *testing.T) {
	r := NewRegistry()
	first := prometheus.NewCounter(prometheus.CounterOpts{Name: "dup_total", Help: "dup"})
	second := prometheus.NewCounter(prometheus.CounterOpts{Name: "other_total", Help: "other"})

	require.NoError(t, r.Register("svc", "dup", first))
	assert.Error(t, r.Register("svc", "dup", second))
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "gone_total", Help: "gone"})

	require.NoError(t, r.Register("svc", "gone", counter))
	assert.True(t, r.Unregister("svc", "gone"))
	assert.False(t, r.Unregister("svc", "gone"))
}
