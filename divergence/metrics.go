// SPDX-License-Identifier: MIT

package divergence

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution outcomes reported on the resolutions counter.
const (
	outcomeHit       = "hit"
	outcomeMiss      = "miss"
	outcomeAmbiguous = "ambiguous"
	outcomeNone      = "unimplemented"
)

// Metrics provides observability for a Registry.
type Metrics struct {
	// Resolutions by outcome: hit, miss, ambiguous, unimplemented
	Resolutions *prometheus.CounterVec

	// Successful Register calls
	Registrations prometheus.Counter

	// Handler evaluation latency
	EvaluateLatency prometheus.Histogram
}

// NewMetrics creates the registry metrics and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Resolutions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bijector_divergence_resolutions_total",
			Help: "Total KL handler resolutions by outcome",
		}, []string{"outcome"}),

		Registrations: f.NewCounter(prometheus.CounterOpts{
			Name: "bijector_divergence_registrations_total",
			Help: "Total KL handler registrations",
		}),

		EvaluateLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "bijector_divergence_evaluate_duration_seconds",
			Help:    "Duration of KL handler evaluation",
			Buckets: []float64{1e-6, 1e-5, 1e-4, 1e-3, 0.01, 0.1, 1},
		}),
	}
}

// IncrementResolution records a resolution outcome.
func (m *Metrics) IncrementResolution(outcome string) {
	if m != nil {
		m.Resolutions.WithLabelValues(outcome).Inc()
	}
}

// IncrementRegistration records a successful registration.
func (m *Metrics) IncrementRegistration() {
	if m != nil {
		m.Registrations.Inc()
	}
}

// ObserveEvaluateLatency records the duration of one handler call in seconds.
func (m *Metrics) ObserveEvaluateLatency(seconds float64) {
	if m != nil {
		m.EvaluateLatency.Observe(seconds)
	}
}
