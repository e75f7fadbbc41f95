// Package metrics instruments the orchestrator with Prometheus
// collectors. It is deliberately not an HTTP handler: Registry exposes a
// prometheus.Registerer the embedding service can mount on its own
// /metrics endpoint, the way the excluded HTTP layer would.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry bundles the three collectors the orchestrator emits:
//   - SolverDuration: wall-clock seconds per call, labeled by strategy.
//   - FallbackTotal: fallback invocations, labeled by reason.
//   - LastQuality: the most recent EvaluationRecord quality score.
type Registry struct {
	reg prometheus.Registerer

	SolverDuration *prometheus.HistogramVec
	FallbackTotal  *prometheus.CounterVec
	LastQuality    prometheus.Gauge
}

// New builds a Registry and registers its collectors against reg. Pass
// prometheus.NewRegistry() for an isolated registry (tests, multiple
// engine instances in one process) or prometheus.DefaultRegisterer to
// join the process-wide default.
func New(reg prometheus.Registerer) (*Registry, error) {
	m := &Registry{
		reg: reg,
		SolverDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "classplan",
			Subsystem: "orchestrator",
			Name:      "solver_duration_seconds",
			Help:      "Wall-clock time spent inside a solver invocation, by strategy.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"strategy"}),
		FallbackTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "classplan",
			Subsystem: "orchestrator",
			Name:      "fallback_total",
			Help:      "Count of one-shot Greedy fallback invocations, by reason.",
		}, []string{"reason"}),
		LastQuality: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "classplan",
			Subsystem: "orchestrator",
			Name:      "last_quality_score",
			Help:      "Quality score (0-100) of the most recently evaluated assignment.",
		}),
	}

	for _, c := range []prometheus.Collector{m.SolverDuration, m.FallbackTotal, m.LastQuality} {
		if err := m.reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveSolverDuration records seconds spent in strategy's solver call.
func (m *Registry) ObserveSolverDuration(strategy string, seconds float64) {
	m.SolverDuration.WithLabelValues(strategy).Observe(seconds)
}

// IncFallback records one fallback invocation for reason.
func (m *Registry) IncFallback(reason string) {
	m.FallbackTotal.WithLabelValues(reason).Inc()
}

// SetLastQuality records the quality score of the most recent call.
func (m *Registry) SetLastQuality(quality int) {
	m.LastQuality.Set(float64(quality))
}
