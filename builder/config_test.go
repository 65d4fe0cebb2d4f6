// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (deterministic behavior)
	if cfg := newBuilderConfig(); cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}

	// 2. WithSeed yields reproducible streams
	a := newBuilderConfig(WithSeed(7))
	b := newBuilderConfig(WithSeed(7))
	for i := 0; i < 5; i++ {
		if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
			t.Fatalf("WithSeed(7) draw %d: %d != %d", i, x, y)
		}
	}

	// 3. WithRand attaches the exact RNG supplied
	r := rand.New(rand.NewSource(1))
	if cfg := newBuilderConfig(WithRand(r)); cfg.rng != r {
		t.Errorf("WithRand: rng not attached")
	}

	// 4. Later options override earlier ones
	if cfg := newBuilderConfig(WithRand(r), WithSeed(3)); cfg.rng == r {
		t.Errorf("WithSeed after WithRand: expected a fresh rng")
	}
}

// TestWeightOptions verifies the default weight and last-wins override.
func TestWeightOptions(t *testing.T) {
	t.Parallel()

	if w := newBuilderConfig().weight(); w != DefaultEdgeWeight {
		t.Errorf("default weight: expected %d, got %d", DefaultEdgeWeight, w)
	}
	if w := newBuilderConfig(WithConstantWeight(4), WithConstantWeight(-9)).weight(); w != -9 {
		t.Errorf("last WithConstantWeight: expected -9, got %d", w)
	}
}

// TestOptionPanics verifies that option constructors reject nil inputs.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithRand(nil)":     func() { WithRand(nil) },
		"WithWeightFn(nil)": func() { WithWeightFn(nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
