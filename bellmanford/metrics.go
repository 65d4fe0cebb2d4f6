package bellmanford

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for bellman_runs_total.
const (
	outcomeConverged     = "converged"
	outcomeNegativeCycle = "negative_cycle"
)

// Metrics holds the Prometheus collectors updated by ShortestPaths.
type Metrics struct {
	runs         *prometheus.CounterVec
	rounds       prometheus.Histogram
	relaxations  prometheus.Counter
	propagations prometheus.Counter
	unbounded    prometheus.Histogram
}

// NewMetrics creates the engine collectors and registers them on reg.
// Registering twice on the same registry fails with prometheus.AlreadyRegisteredError.
func NewMetrics(reg prometheus.Registerer) (m *Metrics, err error) {
	if reg == nil {
		return nil, fmt.Errorf("%w: registerer is nil", ErrOptionViolation)
	}
	// promauto panics on registration conflicts; surface them as errors.
	defer func() {
		if r := recover(); r != nil {
			m = nil
			if e, ok := r.(error); ok {
				err = fmt.Errorf("bellmanford: register metrics: %w", e)
				return
			}
			err = fmt.Errorf("bellmanford: register metrics: %v", r)
		}
	}()

	f := promauto.With(reg)
	return &Metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bellman_runs_total",
			Help: "Shortest-path runs by outcome",
		}, []string{"outcome"}),
		rounds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "bellman_relaxation_rounds",
			Help:    "Relaxation rounds executed per run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		relaxations: f.NewCounter(prometheus.CounterOpts{
			Name: "bellman_relaxations_total",
			Help: "Successful edge relaxations",
		}),
		propagations: f.NewCounter(prometheus.CounterOpts{
			Name: "bellman_propagations_total",
			Help: "Unbounded propagations started from negative-cycle seeds",
		}),
		unbounded: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "bellman_unbounded_vertices",
			Help:    "Vertices reported unbounded per run",
			Buckets: []float64{0, 1, 2, 5, 10, 50, 100, 1000},
		}),
	}, nil
}

// observe records one finished run.
func (m *Metrics) observe(outcome string, res *Result) {
	m.runs.WithLabelValues(outcome).Inc()
	m.rounds.Observe(float64(res.Rounds))
	m.relaxations.Add(float64(res.Relaxations))
	m.unbounded.Observe(float64(res.Unbounded))
}
