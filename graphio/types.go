// Package graphio reads shortest-path problems in the line-oriented input
// format and writes engine results as text, YAML or JSON.
//
// This file declares Problem, parser options, output markers and the
// sentinel errors.
package graphio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bellman/core"
)

// Sentinel errors for input parsing. Every parse error wraps exactly one of
// them with the token position or edge index where it occurred.
var (
	// ErrSyntax indicates a token that is not a signed 64-bit integer.
	ErrSyntax = errors.New("graphio: malformed integer")

	// ErrVertexCount indicates N <= 0 or M < 0 in the header.
	ErrVertexCount = errors.New("graphio: invalid vertex or edge count")

	// ErrSourceRange indicates a source outside [1, N].
	ErrSourceRange = errors.New("graphio: source vertex out of range")

	// ErrEdgeRange indicates an edge endpoint outside [1, N].
	ErrEdgeRange = errors.New("graphio: edge endpoint out of range")

	// ErrTruncated indicates that the input ended before M edges were read.
	ErrTruncated = errors.New("graphio: unexpected end of input")

	// ErrTrailingData indicates tokens after the last declared edge.
	ErrTrailingData = errors.New("graphio: trailing data after last edge")

	// ErrUnknownFormat indicates an output format name that is not supported.
	ErrUnknownFormat = errors.New("graphio: unknown output format")
)

// IsParseError reports whether err came from Parse rejecting its input.
func IsParseError(err error) bool {
	return errors.Is(err, ErrSyntax) ||
		errors.Is(err, ErrVertexCount) ||
		errors.Is(err, ErrSourceRange) ||
		errors.Is(err, ErrEdgeRange) ||
		errors.Is(err, ErrTruncated) ||
		errors.Is(err, ErrTrailingData)
}

// Problem is one parsed shortest-path instance. Keys are 0-based.
type Problem struct {
	Vertices int
	Source   int
	Edges    []core.Edge
}

// Graph materializes the problem as a core.Graph, preserving edge order.
//
// Complexity: O(V + E).
func (p *Problem) Graph() (*core.Graph, error) {
	g, err := core.NewGraph(p.Vertices)
	if err != nil {
		return nil, err
	}
	for i, e := range p.Edges {
		if _, err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphio: edge %d: %w", i+1, err)
		}
	}

	return g, nil
}

// DefaultMaxVertices is the largest vertex count Parse accepts unless
// WithMaxVertices raises it. A graph allocates every vertex up front, so the
// header alone must not be able to demand unbounded memory.
const DefaultMaxVertices = 1 << 22

// Options configures Parse.
type Options struct {
	// LenientTrailing ignores tokens after the last declared edge.
	LenientTrailing bool

	// MaxVertices bounds N in the header.
	MaxVertices int
}

// DefaultOptions returns strict trailing handling and DefaultMaxVertices.
func DefaultOptions() Options {
	return Options{MaxVertices: DefaultMaxVertices}
}

// Option represents a functional option for configuring Parse.
type Option func(*Options)

// WithLenientTrailing makes Parse ignore trailing tokens, matching readers
// that stop after M edges.
func WithLenientTrailing() Option {
	return func(o *Options) {
		o.LenientTrailing = true
	}
}

// WithMaxVertices sets the largest accepted vertex count.
// Panics if n < 1.
func WithMaxVertices(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("graphio: WithMaxVertices(%d): limit must be at least 1", n))
	}
	return func(o *Options) {
		o.MaxVertices = n
	}
}

// Markers are the text-format tokens printed for non-finite costs.
type Markers struct {
	Unbounded   string
	Unreachable string
}

// DefaultMarkers returns the classic markers: "I" for unbounded, "U" for
// unreachable.
func DefaultMarkers() Markers {
	return Markers{Unbounded: "I", Unreachable: "U"}
}
