// Package propagate implements the breadth-first "unbounded" propagation
// used after Bellman-Ford relaxation finds residual relaxable edges.
//
// What:
//
//   - Propagate(g, seeds, opts...) sets Cost = cost.Unbounded() on every seed
//     and on every vertex reachable from a seed along forward edges.
//   - Vertices outside that closure keep their cost and predecessor.
//   - Hooks: WithOnMark (every newly unbounded vertex, with BFS depth) and
//     WithOnDequeue (every scanned vertex).
//
// Why breadth-first:
//
//	A FIFO queue gives distance-monotonic layering and guarantees each vertex
//	is enqueued at most once per call, so a pass is O(V + E). Predecessor-chain
//	walks only find the cycle itself, not everything downstream of it.
//
// Invariants:
//
//   - The scratch fields Visited and Depth are reset on every call across the
//     whole graph.
//   - A vertex that is already unbounded is never enqueued as a neighbor. The
//     engine keeps the unbounded set closed under reachability, so skipping it
//     never loses a downstream vertex.
//   - Calling Propagate twice with the same seeds marks nothing the second time.
//
// Errors:
//
//   - ErrGraphNil         nil graph.
//   - ErrSeedOutOfRange   a seed key outside [0, N); checked before any mutation.
//   - ErrOptionViolation  a nil hook.
//
// Complexity:
//
//   - Time:   O(V + E) per call (including the marker reset).
//   - Memory: O(V) for the queue.
package propagate
