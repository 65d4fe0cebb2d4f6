package dijkstra

import (
	"errors"

	"github.com/katalvlaran/bellman/cost"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates a source key outside [0, N).
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates an edge with weight below zero.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Result holds distances and predecessors from one run.
//
//   - Dist[v]: the exact shortest distance for reached vertices,
//     cost.Unreachable() otherwise. Never cost.Unbounded().
//   - Prev[v]: predecessor on one shortest path, or core.NoPredecessor.
type Result struct {
	Source int
	Dist   []cost.Cost
	Prev   []int
}
