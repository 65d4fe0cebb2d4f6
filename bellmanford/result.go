package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/bellman/core"
	"github.com/katalvlaran/bellman/cost"
)

// Result is the classified outcome of one ShortestPaths run.
//
//   - Costs[v]: finite distance, cost.Unreachable() or cost.Unbounded().
//   - Predecessors[v]: previous vertex on a shortest path, or core.NoPredecessor.
//     Only meaningful for vertices with a finite cost.
//   - Rounds: relaxation rounds executed (at most V-1).
//   - Relaxations: successful edge relaxations across all rounds.
//   - CycleSeeds: vertices found relaxable after the last round, each of which
//     started a propagation. Empty when no negative cycle is reachable.
//   - Unbounded: number of vertices reported unbounded.
type Result struct {
	Source       int
	Costs        []cost.Cost
	Predecessors []int
	Rounds       int
	Relaxations  int
	CycleSeeds   []int
	Unbounded    int
	Phase        Phase
}

// HasNegativeCycle reports whether a negative cycle is reachable from the source.
func (r *Result) HasNegativeCycle() bool {
	return len(r.CycleSeeds) > 0
}

// Cost returns the classified cost of vertex v.
func (r *Result) Cost(v int) (cost.Cost, error) {
	if v < 0 || v >= len(r.Costs) {
		return cost.Cost{}, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}
	return r.Costs[v], nil
}

// PathTo reconstructs a shortest path from the source to dest.
// Returns ErrUnreachable or ErrUnbounded when no finite shortest path exists.
func (r *Result) PathTo(dest int) ([]int, error) {
	c, err := r.Cost(dest)
	if err != nil {
		return nil, err
	}
	switch {
	case c.IsUnreachable():
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dest)
	case c.IsUnbounded():
		return nil, fmt.Errorf("%w: %d", ErrUnbounded, dest)
	}

	// build reversed path; a finite chain never exceeds V vertices
	path := []int{dest}
	for cur := dest; cur != r.Source; {
		prev := r.Predecessors[cur]
		if prev == core.NoPredecessor || len(path) > len(r.Costs) {
			return nil, fmt.Errorf("%w: broken predecessor chain at %d", ErrUnreachable, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
