package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/bellman/core"
	"github.com/katalvlaran/bellman/cost"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be a vertex of g (ErrVertexNotFound).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// Distances are cost.Cost values, so long paths of large weights are exact
// rather than wrapped.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}
	// fail fast before any state is allocated
	for e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s", ErrNegativeWeight, e)
		}
	}

	n := g.Order()
	r := &runner{
		g:       g,
		dist:    make([]cost.Cost, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(source)
	r.process()

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single run. The graph is read-only.
type runner struct {
	g       *core.Graph
	dist    []cost.Cost // best known distance; Unreachable until reached
	prev    []int
	visited []bool // distance finalized
	pq      nodePQ
}

func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = cost.Unreachable()
		r.prev[v] = core.NoPredecessor
	}
	r.dist[source] = cost.Finite(0)

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: r.dist[source]})
}

// process pops the closest unsettled vertex until the heap is empty.
// Stale duplicates left by lazy decrease-key are skipped.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

func (r *runner) relax(u int) {
	uv, _ := r.g.Vertex(u)
	for e := range uv.Edges() {
		candidate := cost.Sum(r.dist[u], e.Weight)
		if !cost.Less(candidate, r.dist[e.To]) {
			continue
		}
		r.dist[e.To] = candidate
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: candidate})
	}
}

// nodeItem is a heap entry: a vertex and the distance it was pushed with.
type nodeItem struct {
	id   int
	dist cost.Cost
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return cost.Less(pq[i].dist, pq[j].dist) }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
