// Package: bellman/builder
//
// impl_edge.go - implementation of Edge(from, to, w) constructor.
//
// Edge pins one explicit edge with a fixed weight, ignoring cfg's weight
// function. Composes with the topology constructors to plant a specific
// negative cycle or bridge into a random fixture.

package builder

import (
	"github.com/katalvlaran/bellman/core"
)

const methodEdge = "Edge"

// Edge returns a Constructor that adds the single edge from → to with weight w.
func Edge(from, to int, w int64) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		return addEdge(g, methodEdge, from, to, w)
	}
}
