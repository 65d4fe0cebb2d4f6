// Package: bellman/builder
//
// impl_path.go - implementation of Path(from, to) constructor.
//
// Contract:
//   - to > from (else ErrTooFewVertices).
//   - Emits edges i → i+1 for i = from..to-1 in increasing order.
//   - Each weight is drawn from cfg in emission order.
//   - Keys outside the graph fail with ErrConstructFailed.
//
// Complexity:
//   - Time: O(to-from) edges.
//   - Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/bellman/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that chains the key range [from, to] into a
// directed path from → from+1 → … → to.
func Path(from, to int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "keys", to-from+1, minPathNodes); err != nil {
			return err
		}

		for i := from; i < to; i++ {
			if err := addEdge(g, methodPath, i, i+1, cfg.weight()); err != nil {
				return err
			}
		}

		return nil
	}
}
