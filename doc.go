// Package bellman computes single-source shortest paths on directed graphs
// whose edge weights may be negative, and classifies every vertex as
// finite, unreachable, or unbounded below (on or after a negative cycle
// reachable from the source).
//
// What is inside:
//
//	cost/         tagged Cost value: Finite | Unreachable | Unbounded, exact 128-bit sums
//	core/         int-keyed adjacency-list Graph with per-vertex run annotations
//	queue/        generic FIFO ring buffer
//	propagate/    breadth-first "unbounded" marking from negative-cycle seeds
//	bellmanford/  the engine: dirty-flag relaxation, early stop, residual scan
//	dijkstra/     non-negative reference algorithm over the same Graph
//	builder/      deterministic graph fixtures (path, cycle, complete, random)
//	graphio/      "N M / H / u v w" input parser and text/YAML/JSON output
//	cmd/bellman/  command-line front end (solve, generate, version)
//
// Quick ASCII example:
//
//	0 --2--> 1 --(-3)--> 2
//	         ^           |
//	         +----1------+
//
//	costs from 0: [0, unbounded, unbounded]
//
// The source always reports cost 0, even when a negative cycle runs back
// through it.
package bellman
