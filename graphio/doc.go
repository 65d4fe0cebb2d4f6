// Package graphio adapts the shortest-path engine to its external formats.
//
// Input (Parse):
//
//	N M          vertex and edge counts
//	H            1-based source
//	u v w        M edges, 1-based endpoints, signed 64-bit weight
//
// Output (WriteResult):
//
//   - text: one line per vertex, the cost or a marker ("I" unbounded,
//     "U" unreachable by default).
//   - yaml / json: a Report with source, negative_cycle, rounds and a
//     per-vertex list of cost and predecessor.
//
// WriteProblem emits the input format, so generated problems can be fed
// back to Parse.
package graphio
