// File: methods.go
// Role: Edge insertion, bound-checked lookup, and iteration over vertices and edges.
// Determinism:
//   - Vertices() yields keys in ascending order.
//   - Edges() yields vertices in key order, each vertex's edges in insertion order.
// AI-HINT (file):
//   - Iterators are plain iter.Seq; stop early with break.
//   - Iterating never mutates adjacency, so vertex fields may be written inside a loop body.

package core

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/bellman/cost"
)

// inRange reports whether key addresses a vertex of g.
func (g *Graph) inRange(key int) bool {
	return key >= 0 && key < len(g.vertices)
}

// AddEdge appends a new edge from→to with the given weight to from's
// adjacency list. Parallel edges and self-loops are allowed.
//
// Returns ErrVertexOutOfRange if either endpoint is outside [0, N).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) (*Edge, error) {
	if !g.inRange(from) {
		return nil, fmt.Errorf("%w: from=%d (n=%d)", ErrVertexOutOfRange, from, len(g.vertices))
	}
	if !g.inRange(to) {
		return nil, fmt.Errorf("%w: to=%d (n=%d)", ErrVertexOutOfRange, to, len(g.vertices))
	}

	e := &Edge{From: from, To: to, Weight: weight}
	u := g.vertices[from]
	u.out = append(u.out, e)
	g.edges++

	return e, nil
}

// Vertex returns the vertex with the given key.
// Returns ErrVertexOutOfRange if key is outside [0, N).
//
// Complexity: O(1).
func (g *Graph) Vertex(key int) (*Vertex, error) {
	if !g.inRange(key) {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrVertexOutOfRange, key, len(g.vertices))
	}

	return g.vertices[key], nil
}

// HasVertex reports whether key addresses a vertex of g.
func (g *Graph) HasVertex(key int) bool {
	return g.inRange(key)
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns the number of edges.
func (g *Graph) Size() int { return g.edges }

// Vertices yields every vertex in ascending key order.
//
// Complexity: O(V) for a full pass.
func (g *Graph) Vertices() iter.Seq[*Vertex] {
	return func(yield func(*Vertex) bool) {
		for _, v := range g.vertices {
			if !yield(v) {
				return
			}
		}
	}
}

// Edges yields every edge of the graph, grouped by source vertex in key
// order and in insertion order within a vertex.
//
// Complexity: O(V + E) for a full pass.
func (g *Graph) Edges() iter.Seq[*Edge] {
	return func(yield func(*Edge) bool) {
		for _, v := range g.vertices {
			for _, e := range v.out {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Edges yields the outgoing edges of v in insertion order.
func (v *Vertex) Edges() iter.Seq[*Edge] {
	return func(yield func(*Edge) bool) {
		for _, e := range v.out {
			if !yield(e) {
				return
			}
		}
	}
}

// OutDegree returns the number of outgoing edges of v.
func (v *Vertex) OutDegree() int { return len(v.out) }

// ResetAnnotations clears every per-run field: Cost becomes Unreachable,
// Predecessor NoPredecessor, and Dirty, Visited, Depth their zero values.
//
// Complexity: O(V).
func (g *Graph) ResetAnnotations() {
	for _, v := range g.vertices {
		v.Cost = cost.Unreachable()
		v.Predecessor = NoPredecessor
		v.Dirty = false
		v.Visited = false
		v.Depth = 0
	}
}
