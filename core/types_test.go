package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellman/core"
	"github.com/katalvlaran/bellman/cost"
)

// TestNewGraph_VertexCount covers the accepted and rejected sizes.
func TestNewGraph_VertexCount(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Order())

	g, err = core.NewGraph(-1)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrBadVertexCount)
}

// TestNewGraph_InitialAnnotations checks the starting state of every vertex.
func TestNewGraph_InitialAnnotations(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)

	keys := make([]int, 0, 4)
	for v := range g.Vertices() {
		keys = append(keys, v.Key)
		assert.True(t, v.Cost.IsUnreachable())
		assert.Equal(t, core.NoPredecessor, v.Predecessor)
		assert.False(t, v.Dirty)
		assert.Equal(t, 0, v.OutDegree())
	}
	assert.Equal(t, []int{0, 1, 2, 3}, keys)
}

// TestResetAnnotations verifies every per-run field is cleared.
func TestResetAnnotations(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	v, err := g.Vertex(1)
	require.NoError(t, err)
	v.Cost = cost.Unbounded()
	v.Predecessor = 0
	v.Dirty = true
	v.Visited = true
	v.Depth = 3

	g.ResetAnnotations()

	assert.True(t, v.Cost.IsUnreachable())
	assert.Equal(t, core.NoPredecessor, v.Predecessor)
	assert.False(t, v.Dirty)
	assert.False(t, v.Visited)
	assert.Zero(t, v.Depth)
}

func TestEdge_String(t *testing.T) {
	assert.Equal(t, "2→0(-5)", core.Edge{From: 2, To: 0, Weight: -5}.String())
}
