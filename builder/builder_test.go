// Package builder_test contains functional tests for the constructors,
// verifying topology, weights, determinism and error sentinels.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellman/builder"
	"github.com/katalvlaran/bellman/core"
)

// edgeList flattens g into [from, to, weight] triples in graph order.
func edgeList(g *core.Graph) [][3]int64 {
	var out [][3]int64
	for e := range g.Edges() {
		out = append(out, [3]int64{int64(e.From), int64(e.To), e.Weight})
	}
	return out
}

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(4, nil, builder.Path(0, 3))
	require.NoError(t, err)
	assert.Equal(t, [][3]int64{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}}, edgeList(g))
}

func TestCycle_WithSelfLoop(t *testing.T) {
	g, err := builder.BuildGraph(3,
		[]builder.BuilderOption{builder.WithConstantWeight(-1)},
		builder.Cycle(0, 2),
		builder.Cycle(1),
	)
	require.NoError(t, err)
	assert.Equal(t, [][3]int64{{0, 2, -1}, {1, 1, -1}, {2, 0, -1}}, edgeList(g))
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(4, nil, builder.Complete())
	require.NoError(t, err)
	assert.Equal(t, 12, g.Size())
	assert.Zero(t, g.Stats().SelfLoopCount)
}

func TestEdge_IgnoresWeightFn(t *testing.T) {
	g, err := builder.BuildGraph(2,
		[]builder.BuilderOption{builder.WithConstantWeight(100)},
		builder.Edge(1, 0, -4),
	)
	require.NoError(t, err)
	assert.Equal(t, [][3]int64{{1, 0, -4}}, edgeList(g))
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(12,
			[]builder.BuilderOption{builder.WithSeed(99), builder.WithUniformWeight(-3, 10)},
			builder.RandomSparse(0.3),
		)
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	assert.Equal(t, edgeList(a), edgeList(b))
	assert.Zero(t, a.Stats().SelfLoopCount)
}

func TestRandomSparse_Extremes(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(1)}

	g, err := builder.BuildGraph(5, opts, builder.RandomSparse(0))
	require.NoError(t, err)
	assert.Zero(t, g.Size())

	g, err = builder.BuildGraph(5, opts, builder.RandomSparse(1))
	require.NoError(t, err)
	assert.Equal(t, 20, g.Size())
}

func TestBuildGraph_Errors(t *testing.T) {
	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	tests := []struct {
		name string
		n    int
		opts []builder.BuilderOption
		con  builder.Constructor
		want error
	}{
		{"zero vertices", 0, nil, builder.Complete(), builder.ErrTooFewVertices},
		{"short path", 3, nil, builder.Path(2, 2), builder.ErrTooFewVertices},
		{"empty cycle", 3, nil, builder.Cycle(), builder.ErrTooFewVertices},
		{"bad probability", 3, seeded, builder.RandomSparse(1.5), builder.ErrInvalidProbability},
		{"no rng", 3, nil, builder.RandomSparse(0.5), builder.ErrNeedRNG},
		{"edge out of range", 3, nil, builder.Edge(0, 3, 1), builder.ErrConstructFailed},
		{"nil constructor", 3, nil, nil, builder.ErrConstructFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tt.n, tt.opts, tt.con)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildGraph_EdgeOutOfRangeKeepsCoreSentinel(t *testing.T) {
	_, err := builder.BuildGraph(2, nil, builder.Path(0, 5))
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}
