// Package bellmanford computes single-source shortest paths on directed
// graphs whose edges may carry negative weights, including graphs with
// negative cycles.
//
// Overview:
//
//   - Every vertex is classified as a finite cost, unreachable (+∞), or
//     unbounded (−∞): on a negative cycle reachable from the source, or
//     reachable from one.
//   - Relaxation runs in rounds over "dirty" vertices only and stops as soon
//     as a round relaxes nothing.
//   - After V-1 rounds, any edge that still relaxes seeds a breadth-first
//     propagation (package propagate) marking its downstream closure unbounded.
//   - The source always reports 0.
//
// When to use:
//
//   - Graphs with negative edges (arbitrage, potentials, constraint systems).
//   - When you must tell "unbounded" apart from "unreachable" per vertex rather
//     than just detect that some negative cycle exists.
//
// Phases:
//
//	uninitialized → relaxing → converged | cycle-detected → finalized
//
// Options:
//
//   - WithLogger(*slog.Logger): Debug records per phase/round/seed, one Info summary.
//   - WithMetrics(*Metrics):    Prometheus collectors (see NewMetrics).
//   - WithFullScan():           relax all vertices each round (diagnostic).
//   - WithOnRound(fn):          hook after every round.
//
// Error handling (sentinel errors):
//
//   - ErrGraphNil, ErrEmptyGraph, ErrSourceOutOfRange, ErrOptionViolation:
//     configuration errors, returned before anything is computed.
//     IsConfigError reports membership.
//   - ErrVertexOutOfRange, ErrUnreachable, ErrUnbounded: returned by
//     Result.Cost and Result.PathTo.
//
// Complexity:
//
//   - Time:  O(V·E) worst case for relaxation; O(V+E) per propagation seed.
//   - Space: O(V).
//
// Thread safety:
//
//   - ShortestPaths writes the vertex annotations of the graph it is given.
//     Do not run two engines over the same *core.Graph concurrently.
//
// See also:
//
//   - dijkstra: the non-negative reference algorithm over the same graph type.
//   - graphio:  text input/output adapters.
package bellmanford
