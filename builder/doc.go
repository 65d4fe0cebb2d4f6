// Package builder provides deterministic, functional-options-style graph
// fixtures for tests, benchmarks and the problem generator.
//
// The package offers:
//
//   - An orchestrator, BuildGraph(n, bopts, cons...), that creates an
//     n-vertex core.Graph and applies constructors in order.
//   - Topology constructors:
//     – Path(from, to):   chain over a key range.
//     – Cycle(keys...):   closed directed cycle (one key = self-loop).
//     – Complete():       every ordered pair, no self-loops.
//     – RandomSparse(p):  each ordered pair with probability p (needs an RNG).
//     – Edge(from, to, w): one explicit edge with a fixed weight.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:  constant DefaultEdgeWeight.
//     – ConstantWeightFn: fixed user-provided value.
//     – UniformWeightFn:  uniform ∼U[min,max], signed ranges allowed.
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order produce the
//     same graph, edge for edge.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRNG, ErrConstructFailed) wrapped with
//     the constructor name.
package builder
