// Package propagate provides tunable options and error definitions
// for unbounded-cost propagation over a core.Graph.
package propagate

import (
	"errors"
	"fmt"
)

// Sentinel errors for propagation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("propagate: graph is nil")

	// ErrSeedOutOfRange is returned when a seed key is outside [0, N).
	ErrSeedOutOfRange = errors.New("propagate: seed vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("propagate: invalid option supplied")
)

// Option configures propagation via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Propagate is invoked.
type Option func(*Options)

// Options holds the hooks observed during a propagation pass.
type Options struct {
	// OnMark is called when a vertex's cost is changed to unbounded.
	// Receives the vertex key and its BFS depth from the nearest seed.
	OnMark func(key, depth int)

	// OnDequeue is called when a vertex is taken from the queue,
	// before its outgoing edges are scanned.
	OnDequeue func(key, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnMark:    func(int, int) {},
		OnDequeue: func(int, int) {},
	}
}

// WithOnMark registers a callback invoked for every newly unbounded vertex.
func WithOnMark(fn func(key, depth int)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnMark hook is nil", ErrOptionViolation)
			return
		}
		o.OnMark = fn
	}
}

// WithOnDequeue registers a callback invoked as each vertex is dequeued.
func WithOnDequeue(fn func(key, depth int)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnDequeue hook is nil", ErrOptionViolation)
			return
		}
		o.OnDequeue = fn
	}
}

// Result holds the outcome of one propagation pass:
//   - Marked: keys whose cost changed to unbounded in this pass, in BFS order.
//     A seed that was already unbounded is not listed.
//   - Dequeued: number of vertices whose edges were scanned.
type Result struct {
	Marked   []int
	Dequeued int
}
