// Package: bellman/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bellman/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Draw every weight from cfg, in a stable emission order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with n vertices, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if err := validateMin("BuildGraph", "n", n, 1); err != nil {
		return nil, err
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge inserts one weighted edge and wraps failures with method context.
func addEdge(g *core.Graph, method string, from, to int, w int64) error {
	if _, err := g.AddEdge(from, to, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w: %w", method, from, to, w, ErrConstructFailed, err)
	}

	return nil
}
