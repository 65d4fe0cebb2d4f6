// Package: bellman/builder
//
// impl_random_sparse.go - implementation of RandomSparse(p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator over the vertices of g: include each
//     ordered pair (i, j), i ≠ j, independently with probability p.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRNG), even for p ∈ {0, 1}.
//   - Weights are drawn only for accepted edges, right after the trial.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: i asc, then j asc.
//   - Identical graphs for a fixed seed and options.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bellman/core"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that samples directed edges over g with
// independent edge probability p.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRNG)
		}

		// 2) Bernoulli trial per ordered pair.
		n := g.Order()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, methodRandomSparse, i, j, cfg.weight()); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
