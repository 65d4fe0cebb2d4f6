package propagate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellman/core"
	"github.com/katalvlaran/bellman/cost"
	"github.com/katalvlaran/bellman/propagate"
)

// buildGraph creates an n-vertex graph with the given (from, to) edges, every
// vertex finite at cost 10.
func buildGraph(t *testing.T, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		_, err = g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}
	for v := range g.Vertices() {
		v.Cost = cost.Finite(10)
	}
	return g
}

func costs(g *core.Graph) []cost.Cost {
	out := make([]cost.Cost, 0, g.Order())
	for v := range g.Vertices() {
		out = append(out, v.Cost)
	}
	return out
}

func TestPropagate_Errors(t *testing.T) {
	_, err := propagate.Propagate(nil, []int{0})
	assert.ErrorIs(t, err, propagate.ErrGraphNil)

	g := buildGraph(t, 2)
	_, err = propagate.Propagate(g, []int{0, 5})
	assert.ErrorIs(t, err, propagate.ErrSeedOutOfRange)
	assert.Equal(t, cost.Finite(10), costs(g)[0], "no vertex is touched on a bad seed")

	_, err = propagate.Propagate(g, []int{0}, propagate.WithOnMark(nil))
	assert.ErrorIs(t, err, propagate.ErrOptionViolation)
	_, err = propagate.Propagate(g, []int{0}, propagate.WithOnDequeue(nil))
	assert.ErrorIs(t, err, propagate.ErrOptionViolation)
}

func TestPropagate_NoSeeds(t *testing.T) {
	g := buildGraph(t, 2, [2]int{0, 1})
	res, err := propagate.Propagate(g, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Marked)
	assert.Zero(t, res.Dequeued)
}

// TestPropagate_ReachableOnly marks the forward closure and leaves the rest.
//
//	0 → 1 → 2      3 → 1      4 (isolated)
func TestPropagate_ReachableOnly(t *testing.T) {
	g := buildGraph(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{3, 1})
	v3, _ := g.Vertex(3)
	v3.Predecessor = 4

	res, err := propagate.Propagate(g, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res.Marked)

	got := costs(g)
	assert.True(t, got[1].IsUnbounded())
	assert.True(t, got[2].IsUnbounded())
	assert.Equal(t, cost.Finite(10), got[0], "upstream vertex keeps its cost")
	assert.Equal(t, cost.Finite(10), got[3])
	assert.Equal(t, cost.Finite(10), got[4])
	assert.Equal(t, 4, v3.Predecessor, "predecessor of untouched vertex survives")
}

// TestPropagate_CycleAndDepth walks a cycle with a tail and checks BFS layering.
//
//	0 → 1 → 2 → 0,  2 → 3 → 4
func TestPropagate_CycleAndDepth(t *testing.T) {
	g := buildGraph(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 3}, [2]int{3, 4})

	depth := map[int]int{}
	res, err := propagate.Propagate(g, []int{0},
		propagate.WithOnMark(func(key, d int) { depth[key] = d }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Marked)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 4}, depth)
	assert.Equal(t, 5, res.Dequeued, "each vertex is dequeued exactly once")
}

func TestPropagate_Idempotent(t *testing.T) {
	g := buildGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 1})

	first, err := propagate.Propagate(g, []int{1})
	require.NoError(t, err)
	after := costs(g)

	second, err := propagate.Propagate(g, []int{1})
	require.NoError(t, err)
	assert.Equal(t, after, costs(g))
	assert.Equal(t, []int{1, 2}, first.Marked)
	assert.Empty(t, second.Marked)
}

// TestPropagate_DuplicateAndMultipleSeeds enqueues each seed once.
func TestPropagate_DuplicateAndMultipleSeeds(t *testing.T) {
	g := buildGraph(t, 4, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 3})

	var dequeued []int
	res, err := propagate.Propagate(g, []int{0, 1, 0},
		propagate.WithOnDequeue(func(key, _ int) { dequeued = append(dequeued, key) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Marked)
	assert.Equal(t, []int{0, 1, 2, 3}, dequeued)
}

// TestPropagate_ResetsStaleMarkers ensures scratch fields from an earlier pass
// do not suppress a later one.
func TestPropagate_ResetsStaleMarkers(t *testing.T) {
	g := buildGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})
	for v := range g.Vertices() {
		v.Visited = true
		v.Depth = 99
	}

	res, err := propagate.Propagate(g, []int{0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Marked)
	v2, _ := g.Vertex(2)
	assert.Equal(t, 2, v2.Depth)
}

func TestPropagate_SelfLoopAndParallel(t *testing.T) {
	g := buildGraph(t, 2, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 1})
	res, err := propagate.Propagate(g, []int{0})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Marked)
	assert.Equal(t, 2, res.Dequeued)
}
