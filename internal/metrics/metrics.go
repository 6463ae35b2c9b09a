// Package metrics holds the Prometheus instrumentation for the cellar
// server. A Metrics value is bound to a registry so parallel tests never
// trip over duplicate collector registration.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for the operations counter.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics instruments the command dispatch path.
type Metrics struct {
	ops      *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New registers the cellar collectors on reg and returns them.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ops: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cellar",
			Name:      "commands_total",
			Help:      "Commands dispatched, by command and outcome.",
		}, []string{"command", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cellar",
			Name:      "command_duration_seconds",
			Help:      "Command dispatch latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"command"}),
	}
}

// Observe records one dispatched command.
func (m *Metrics) Observe(command string, start time.Time, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.ops.WithLabelValues(command, outcome).Inc()
	m.duration.WithLabelValues(command).Observe(time.Since(start).Seconds())
}
