// Package builder provides validation helpers to enforce
// parameter contracts in constructor factories.
//
// Each function returns a sentinel-wrapped error carrying the method name
// when its precondition is violated.
package builder

import "fmt"

// validateMin ensures that the provided integer got is ≥ min.
// Returns "<method>: <what>=<got> < min=<min>: ErrTooFewVertices" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method, what string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, what, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [probMin, probMax].
// Returns "<method>: p=<p> not in [0.0,1.0]: ErrInvalidProbability" otherwise.
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}
