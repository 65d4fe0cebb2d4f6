// Package: bellman/builder
//
// impl_complete.go - implementation of Complete() constructor.
//
// Contract:
//   - Emits an edge for every ordered pair (i, j), i ≠ j, over all vertices of g.
//   - Emission order: i ascending, then j ascending.
//   - No self-loops.
//
// Complexity:
//   - Time: O(n²) edges.
//   - Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/bellman/core"
)

const methodComplete = "Complete"

// Complete returns a Constructor that turns g into a complete digraph.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Order()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(g, methodComplete, i, j, cfg.weight()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
