// Package core defines the central Graph, Vertex, and Edge types used by the
// shortest-path engines.
//
// Vertices are keyed 0..N-1 and fixed at construction. Each Vertex owns its
// outgoing edges; topology is append-only and is never changed by algorithms.
// Algorithms annotate vertices in place (Cost, Predecessor, Dirty, and the
// transient propagation fields Visited and Depth).
//
// This file declares Vertex, Edge, Graph, sentinel errors, and NewGraph.
//
// Errors:
//
//	ErrBadVertexCount   - negative vertex count passed to NewGraph.
//	ErrVertexOutOfRange - a vertex key outside [0, N).
package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bellman/cost"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates a negative vertex count.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an operation referenced a key outside [0, N).
	ErrVertexOutOfRange = errors.New("core: vertex key out of range")
)

// NoPredecessor marks a vertex whose cost was never improved through an edge.
const NoPredecessor = -1

// Vertex represents a node in the graph together with the per-run
// annotations written by the shortest-path engine and the propagator.
type Vertex struct {
	// Key is the stable index of this Vertex, in [0, N).
	Key int

	// Cost is the current best-known distance estimate from the source.
	Cost cost.Cost

	// Predecessor is the key of the vertex that last improved Cost,
	// or NoPredecessor.
	Predecessor int

	// Dirty is set when Cost changed since the outgoing edges were last scanned.
	Dirty bool

	// Visited and Depth are scratch fields owned by a propagation pass.
	// They carry no meaning outside of it.
	Visited bool
	Depth   int

	// out holds outgoing edges in insertion order.
	out []*Edge
}

// Edge is a directed, weighted connection From→To.
type Edge struct {
	// From is the source vertex key.
	From int

	// To is the destination vertex key.
	To int

	// Weight may be negative, zero, or positive.
	Weight int64
}

// String renders the edge as "from→to(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d→%d(%d)", e.From, e.To, e.Weight)
}

// Graph is an adjacency-list digraph with a fixed vertex set.
//
// Graph is not safe for concurrent mutation. Reading topology while another
// reader iterates is safe; vertex annotations are written by one algorithm
// run at a time.
type Graph struct {
	vertices []*Vertex
	edges    int // total edge count
}

// NewGraph creates a Graph with n vertices keyed 0..n-1 and no edges.
// Every vertex starts Unreachable with no predecessor.
//
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, n)
	}
	g := &Graph{vertices: make([]*Vertex, n)}
	for i := range g.vertices {
		g.vertices[i] = &Vertex{
			Key:         i,
			Cost:        cost.Unreachable(),
			Predecessor: NoPredecessor,
		}
	}

	return g, nil
}
