package bellmanford_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellman/bellmanford"
	"github.com/katalvlaran/bellman/builder"
	"github.com/katalvlaran/bellman/core"
	"github.com/katalvlaran/bellman/cost"
	"github.com/katalvlaran/bellman/dijkstra"
)

// randomGraph builds a seeded random digraph with weights in [lo, hi].
func randomGraph(t testing.TB, n int, p float64, lo, hi, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(lo, hi)},
		builder.RandomSparse(p),
	)
	require.NoError(t, err)
	return g
}

func TestProperty_MatchesDijkstraOnNonNegativeGraphs(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		g := randomGraph(t, 15, 0.2, 0, 50, seed)
		for _, src := range []int{0, 7} {
			want, err := dijkstra.Dijkstra(g, src)
			require.NoError(t, err)
			got, err := bellmanford.ShortestPaths(g, src)
			require.NoError(t, err)
			assert.Equal(t, want.Dist, got.Costs, "seed=%d source=%d", seed, src)
			assert.False(t, got.HasNegativeCycle())
		}
	}
}

// bruteForce enumerates every simple path from src. With no reachable
// negative cycle the cheapest simple path is the shortest path.
func bruteForce(g *core.Graph, src int) []cost.Cost {
	best := make([]cost.Cost, g.Order())
	for i := range best {
		best[i] = cost.Unreachable()
	}
	onPath := make([]bool, g.Order())
	var walk func(u int, d int64)
	walk = func(u int, d int64) {
		if cost.Less(cost.Finite(d), best[u]) {
			best[u] = cost.Finite(d)
		}
		onPath[u] = true
		v, _ := g.Vertex(u)
		for e := range v.Edges() {
			if !onPath[e.To] {
				walk(e.To, d+e.Weight)
			}
		}
		onPath[u] = false
	}
	walk(src, 0)
	best[src] = cost.Finite(0)
	return best
}

func TestProperty_MatchesBruteForceWithoutNegativeCycles(t *testing.T) {
	checked := 0
	for seed := int64(1); seed <= 200; seed++ {
		g := randomGraph(t, 7, 0.3, -3, 12, seed)
		res, err := bellmanford.ShortestPaths(g, 0)
		require.NoError(t, err)
		if res.HasNegativeCycle() {
			continue
		}
		checked++
		assert.Equal(t, bruteForce(g, 0), res.Costs, "seed=%d", seed)
	}
	assert.Positive(t, checked)
}

// unboundedOracle derives the unbounded set with Floyd-Warshall: v is
// unbounded when some k reachable from src lies on a negative cycle and
// reaches v.
func unboundedOracle(g *core.Graph, src int) []bool {
	n := g.Order()
	d := make([][]int64, n)
	reach := make([][]bool, n)
	for i := range d {
		d[i] = make([]int64, n)
		reach[i] = make([]bool, n)
		for j := range d[i] {
			d[i][j] = math.MaxInt64
		}
		reach[i][i] = true
	}
	for e := range g.Edges() {
		d[e.From][e.To] = min(d[e.From][e.To], e.Weight)
		reach[e.From][e.To] = true
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				reach[i][j] = reach[i][j] || (reach[i][k] && reach[k][j])
				if d[i][k] != math.MaxInt64 && d[k][j] != math.MaxInt64 && d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}
	out := make([]bool, n)
	for k := 0; k < n; k++ {
		if !reach[src][k] || d[k][k] >= 0 {
			continue
		}
		for v := 0; v < n; v++ {
			if reach[k][v] {
				out[v] = true
			}
		}
	}
	out[src] = false
	return out
}

func TestProperty_UnboundedSetMatchesOracle(t *testing.T) {
	cyclic := 0
	for seed := int64(1); seed <= 150; seed++ {
		g := randomGraph(t, 6, 0.3, -6, 8, seed)
		res, err := bellmanford.ShortestPaths(g, 0)
		require.NoError(t, err)
		want := unboundedOracle(g, 0)
		for v, c := range res.Costs {
			assert.Equal(t, want[v], c.IsUnbounded(), "seed=%d vertex=%d", seed, v)
		}
		if res.HasNegativeCycle() {
			cyclic++
		}
	}
	assert.Positive(t, cyclic)
}

func TestProperty_FullScanEquivalence(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		g := randomGraph(t, 10, 0.25, -4, 15, seed)
		lazy, err := bellmanford.ShortestPaths(g, 0)
		require.NoError(t, err)
		full, err := bellmanford.ShortestPaths(g, 0, bellmanford.WithFullScan())
		require.NoError(t, err)
		assert.Equal(t, lazy.Costs, full.Costs, "seed=%d", seed)
		assert.Equal(t, lazy.HasNegativeCycle(), full.HasNegativeCycle(), "seed=%d", seed)
		assert.LessOrEqual(t, lazy.Relaxations, full.Relaxations)
	}
}

// Costs never increase between rounds, and nothing that became unbounded
// during relaxation is finite in the result.
func TestProperty_Monotonicity(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		g := randomGraph(t, 9, 0.3, -5, 10, seed)

		// state right after initialization
		prev := make([]cost.Cost, g.Order())
		for v := range prev {
			prev[v] = cost.Unreachable()
		}
		prev[0] = cost.Finite(0)

		everUnbounded := make([]bool, g.Order())
		res, err := bellmanford.ShortestPaths(g, 0, bellmanford.WithOnRound(func(round, _ int) {
			cur := snapshot(g)
			for v := range cur {
				assert.False(t, cost.Less(prev[v], cur[v]), "seed=%d round=%d vertex=%d", seed, round, v)
				everUnbounded[v] = everUnbounded[v] || cur[v].IsUnbounded()
			}
			prev = cur
		}))
		require.NoError(t, err)
		for v, c := range res.Costs {
			if everUnbounded[v] && v != res.Source {
				assert.True(t, c.IsUnbounded(), "seed=%d vertex=%d", seed, v)
			}
		}
	}
}

func snapshot(g *core.Graph) []cost.Cost {
	out := make([]cost.Cost, 0, g.Order())
	for v := range g.Vertices() {
		out = append(out, v.Cost)
	}
	return out
}

func TestProperty_SourceInvariant(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := randomGraph(t, 8, 0.35, -8, 4, seed)
		for src := 0; src < g.Order(); src++ {
			t.Run(fmt.Sprintf("seed=%d/src=%d", seed, src), func(t *testing.T) {
				res, err := bellmanford.ShortestPaths(g, src)
				require.NoError(t, err)
				assert.Equal(t, cost.Finite(0), res.Costs[src])
				assert.Equal(t, core.NoPredecessor, res.Predecessors[src])
			})
		}
	}
}
