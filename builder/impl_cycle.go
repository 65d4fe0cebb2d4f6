// Package: bellman/builder
//
// impl_cycle.go - implementation of Cycle(keys...) constructor.
//
// Contract:
//   - len(keys) ≥ 1 (else ErrTooFewVertices). A single key yields a self-loop.
//   - Emits edges keys[i] → keys[(i+1)%n] for i = 0..n-1 in order.
//   - Each weight is drawn from cfg in emission order.
//
// Complexity:
//   - Time: O(n) edges.
//   - Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/bellman/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 1
)

// Cycle returns a Constructor that closes the given keys into a directed cycle.
func Cycle(keys ...int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := len(keys)
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}

		for i, u := range keys {
			if err := addEdge(g, methodCycle, u, keys[(i+1)%n], cfg.weight()); err != nil {
				return err
			}
		}

		return nil
	}
}
