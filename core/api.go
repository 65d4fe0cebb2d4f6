// File: api.go
// Role: Read-only diagnostics over a built graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

import "math"

// GraphStats is a snapshot of a graph's size and weight profile.
type GraphStats struct {
	VertexCount       int
	EdgeCount         int
	NegativeEdgeCount int
	SelfLoopCount     int

	// MinWeight and MaxWeight are zero when EdgeCount == 0.
	MinWeight int64
	MaxWeight int64
}

// Stats produces a read-only snapshot of vertex/edge counts and the weight
// range, used to decide whether a negative-weight algorithm is needed.
//
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   g.edges,
		MinWeight:   math.MaxInt64,
		MaxWeight:   math.MinInt64,
	}
	for e := range g.Edges() {
		if e.Weight < 0 {
			stats.NegativeEdgeCount++
		}
		if e.From == e.To {
			stats.SelfLoopCount++
		}
		stats.MinWeight = min(stats.MinWeight, e.Weight)
		stats.MaxWeight = max(stats.MaxWeight, e.Weight)
	}
	if stats.EdgeCount == 0 {
		stats.MinWeight, stats.MaxWeight = 0, 0
	}

	return stats
}

// HasNegativeEdges reports whether any edge weight is below zero.
//
// Complexity: O(V + E) worst case; stops at the first negative edge.
func (g *Graph) HasNegativeEdges() bool {
	for e := range g.Edges() {
		if e.Weight < 0 {
			return true
		}
	}

	return false
}
