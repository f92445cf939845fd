// Package observability collects Prometheus metrics for the engine.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine's instrument set. Create one per process and
// share it across transports.
type Metrics struct {
	// Requests counts protocol requests by type.
	Requests *prometheus.CounterVec
	// InstructionDuration observes leaf handler latency by instruction ID.
	InstructionDuration *prometheus.HistogramVec
	// Failures counts batch failures by error kind.
	Failures *prometheus.CounterVec
}

// New registers the instrument set on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gantry",
			Name:      "requests_total",
			Help:      "Protocol requests handled, by request type.",
		}, []string{"type"}),
		InstructionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gantry",
			Name:      "instruction_duration_seconds",
			Help:      "Leaf instruction execution time.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"instruction"}),
		Failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gantry",
			Name:      "failures_total",
			Help:      "Batch failures, by error kind.",
		}, []string{"kind"}),
	}
}

// NewNop returns metrics wired to a private registry, for tests and callers
// that do not export metrics.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
