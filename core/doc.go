// Package core provides the adjacency-list digraph consumed by the
// shortest-path engines in this module.
//
// The Graph G = (V,E) has:
//
//   - A fixed vertex set keyed 0..N-1, chosen at NewGraph(n).
//   - Directed, integer-weighted edges; weights may be negative.
//   - Parallel edges and self-loops, each relaxed independently.
//   - Append-only topology: edges are added during construction and never
//     removed, so algorithms may treat the adjacency as immutable.
//
// Per-vertex annotations:
//
//	– Cost        current distance estimate (cost.Cost: finite, unreachable, unbounded)
//	– Predecessor vertex that last improved Cost, or NoPredecessor
//	– Dirty       Cost changed since the vertex's edges were last relaxed
//	– Visited     propagation scratch marker
//	– Depth       propagation scratch BFS layer
//
// Iteration:
//
//	for v := range g.Vertices() { ... }       // ascending key order
//	for e := range g.Edges() { ... }          // whole graph
//	for e := range v.Edges() { ... }          // one adjacency list
//
// All iterators are iter.Seq values; a break stops them early.
//
// Errors:
//
//	ErrBadVertexCount   - NewGraph(n) with n < 0.
//	ErrVertexOutOfRange - AddEdge or Vertex with a key outside [0, N).
//
// Complexity:
//
//	NewGraph  O(V)       AddEdge  O(1) amortized   Vertex O(1)
//	Edges     O(V+E)     Stats    O(V+E)           ResetAnnotations O(V)
//
// Thread safety:
//
//	Graph does no locking. Build it on one goroutine, then run one
//	algorithm at a time over it.
package core
