// Package dijkstra provides Dijkstra's shortest-path algorithm over the same
// core.Graph used by the Bellman-Ford engine, restricted to non-negative
// edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Distances are reported as cost.Cost: Finite for reached vertices,
//     Unreachable otherwise, never Unbounded.
//
// When to use:
//
//   - Graphs known to have no negative edges, where it is faster than Bellman-Ford.
//   - As a reference oracle: on non-negative graphs both engines must agree.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: source key outside [0, N).
//   - ErrNegativeWeight: any edge weight < 0 (fast O(E) pre-scan).
//
// Implementation notes:
//
//   - Lazy decrease-key: improved vertices are pushed again and stale heap
//     entries are skipped when popped.
//   - Distances are exact cost.Cost sums, matching the Bellman-Ford engine
//     on paths that pass beyond the int64 range.
//
// Thread safety:
//
//   - Dijkstra only reads the graph; it keeps its own distance slices and
//     never writes vertex annotations.
package dijkstra
