package bellmanford

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellman/core"
)

func TestMetrics_ObserveRuns(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	cyclic, _ := core.NewGraph(3)
	_, _ = cyclic.AddEdge(0, 1, 1)
	_, _ = cyclic.AddEdge(1, 2, -2)
	_, _ = cyclic.AddEdge(2, 1, 1)
	_, err = ShortestPaths(cyclic, 0, WithMetrics(m))
	require.NoError(t, err)

	plain, _ := core.NewGraph(2)
	_, _ = plain.AddEdge(0, 1, 3)
	_, err = ShortestPaths(plain, 0, WithMetrics(m))
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(outcomeNegativeCycle)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(outcomeConverged)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.propagations))

	n, err := testutil.GatherAndCount(reg,
		"bellman_runs_total",
		"bellman_relaxation_rounds",
		"bellman_relaxations_total",
		"bellman_propagations_total",
		"bellman_unbounded_vertices",
	)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestNewMetrics_Errors(t *testing.T) {
	_, err := NewMetrics(nil)
	assert.ErrorIs(t, err, ErrOptionViolation)

	reg := prometheus.NewRegistry()
	_, err = NewMetrics(reg)
	require.NoError(t, err)
	m, err := NewMetrics(reg)
	assert.Nil(t, m)
	assert.Error(t, err)
}

func TestRunner_PhaseSequence(t *testing.T) {
	g, _ := core.NewGraph(2)
	_, _ = g.AddEdge(0, 1, -1)
	_, _ = g.AddEdge(1, 0, -1)

	src, _ := g.Vertex(0)
	cfg := DefaultOptions()
	r := &runner{g: g, src: src, opts: cfg, log: cfg.Logger, result: &Result{}}
	assert.Equal(t, PhaseUninitialized, r.phase)

	r.init()
	assert.Equal(t, PhaseRelaxing, r.phase)
	assert.True(t, src.Dirty)

	require.True(t, r.relaxRounds())
	require.NoError(t, r.residualScan())
	assert.Equal(t, []int{1}, r.result.CycleSeeds)
	assert.Equal(t, PhaseRelaxing, r.phase, "the scan itself does not change phase")
	r.enter(PhaseCycleDetected)

	r.finalize()
	assert.Equal(t, PhaseFinalized, r.result.Phase)
}
