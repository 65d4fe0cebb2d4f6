// Package: bellman/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context using %w.
//   - Constructors never panic; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates that a size parameter (vertex count, key range,
// cycle length) is smaller than the allowed minimum for the constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRNG indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRNG = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not apply its
// mutation, e.g. a nil constructor or an edge endpoint outside the graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// --- Implementation Notes ----------------------------------------------------
//
// Priority (tie-break guidance when multiple validations fail):
//   - ErrTooFewVertices     size/domain checks first.
//   - ErrInvalidProbability then probability ranges.
//   - ErrNeedRNG            then RNG presence for stochastic builders.
//   - ErrConstructFailed    only for failures while mutating the graph.
