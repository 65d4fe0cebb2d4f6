// Package bellmanford defines core types and configuration options for the
// Bellman-Ford single-source shortest-path engine.
package bellmanford

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors returned by ShortestPaths. All of them are configuration
// errors: they are detected before any vertex is modified.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("bellmanford: graph is nil")

	// ErrEmptyGraph indicates a graph with zero vertices.
	ErrEmptyGraph = errors.New("bellmanford: graph has no vertices")

	// ErrSourceOutOfRange indicates a source key outside [0, N).
	ErrSourceOutOfRange = errors.New("bellmanford: source vertex out of range")

	// ErrOptionViolation indicates an invalid Option (nil logger, metrics or hook).
	ErrOptionViolation = errors.New("bellmanford: invalid option supplied")
)

// Sentinel errors returned by Result accessors.
var (
	// ErrVertexOutOfRange indicates a query for a key outside [0, N).
	ErrVertexOutOfRange = errors.New("bellmanford: vertex out of range")

	// ErrUnreachable indicates that no path exists from the source.
	ErrUnreachable = errors.New("bellmanford: vertex unreachable from source")

	// ErrUnbounded indicates that the vertex is on or downstream of a negative cycle.
	ErrUnbounded = errors.New("bellmanford: vertex cost unbounded below")
)

// IsConfigError reports whether err is one of the configuration errors that
// ShortestPaths returns before computing anything.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrGraphNil) ||
		errors.Is(err, ErrEmptyGraph) ||
		errors.Is(err, ErrSourceOutOfRange) ||
		errors.Is(err, ErrOptionViolation)
}

// Phase is a state of one engine run.
//
//	PhaseUninitialized → PhaseRelaxing → PhaseConverged | PhaseCycleDetected → PhaseFinalized
type Phase int

const (
	// PhaseUninitialized is the state before validation succeeds.
	PhaseUninitialized Phase = iota
	// PhaseRelaxing is the relaxation-round loop.
	PhaseRelaxing
	// PhaseConverged means no edge remains relaxable after the rounds.
	PhaseConverged
	// PhaseCycleDetected means the residual scan found a negative cycle seed.
	PhaseCycleDetected
	// PhaseFinalized is the terminal state; the Result is ready.
	PhaseFinalized
)

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseRelaxing:
		return "relaxing"
	case PhaseConverged:
		return "converged"
	case PhaseCycleDetected:
		return "cycle-detected"
	case PhaseFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Options configures the behavior of the engine.
//
// Logger   – receives Debug records for phases, rounds and cycle seeds, and
// one Info summary per run. Defaults to a discarding logger.
// Metrics  – optional Prometheus collectors, see NewMetrics.
// FullScan – relax every vertex's edges each round instead of only dirty ones.
// Results are identical; it exists to cross-check the dirty-flag skip.
// OnRound  – called after each relaxation round with its 1-based index and
// the number of successful relaxations in it.
type Options struct {
	Logger   *slog.Logger
	Metrics  *Metrics
	FullScan bool
	OnRound  func(round, relaxed int)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger, no metrics,
// dirty-flag skipping enabled and a no-op round hook.
func DefaultOptions() Options {
	return Options{
		Logger:  slog.New(slog.DiscardHandler),
		OnRound: func(int, int) {},
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: logger is nil", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// WithMetrics records run statistics into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		if m == nil {
			o.err = fmt.Errorf("%w: metrics is nil", ErrOptionViolation)
			return
		}
		o.Metrics = m
	}
}

// WithFullScan disables the dirty-flag optimization.
func WithFullScan() Option {
	return func(o *Options) {
		o.FullScan = true
	}
}

// WithOnRound registers a callback run after every relaxation round.
func WithOnRound(fn func(round, relaxed int)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnRound hook is nil", ErrOptionViolation)
			return
		}
		o.OnRound = fn
	}
}
