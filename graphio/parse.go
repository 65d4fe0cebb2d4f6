package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/bellman/core"
)

// maxPrealloc caps the edge slice capacity taken from an untrusted header.
const maxPrealloc = 1 << 16

// Parse reads a problem in the format
//
//	N M
//	H
//	u1 v1 w1
//	...
//	uM vM wM
//
// Tokens are whitespace separated with any line layout. 0 < N <= MaxVertices, M >= 0,
// H and every endpoint lie in [1, N]; weights are signed 64-bit integers
// with an optional '+' or '-'. Keys are converted to 0-based.
//
// Errors wrap one of ErrSyntax, ErrVertexCount, ErrSourceRange, ErrEdgeRange,
// ErrTruncated or ErrTrailingData; I/O errors from r are returned wrapped.
//
// Complexity: O(size of input).
func Parse(r io.Reader, opts ...Option) (*Problem, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := newTokenizer(r)

	n, err := t.int64("vertex count")
	if err != nil {
		return nil, err
	}
	m, err := t.int64("edge count")
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: N=%d", ErrVertexCount, n)
	}
	if n > int64(cfg.MaxVertices) {
		return nil, fmt.Errorf("%w: N=%d exceeds limit %d", ErrVertexCount, n, cfg.MaxVertices)
	}
	if m < 0 {
		return nil, fmt.Errorf("%w: M=%d", ErrVertexCount, m)
	}

	h, err := t.int64("source")
	if err != nil {
		return nil, err
	}
	if h < 1 || h > n {
		return nil, fmt.Errorf("%w: H=%d not in [1,%d]", ErrSourceRange, h, n)
	}

	p := &Problem{
		Vertices: int(n),
		Source:   int(h - 1),
		Edges:    make([]core.Edge, 0, min(m, maxPrealloc)),
	}
	for i := int64(1); i <= m; i++ {
		label := fmt.Sprintf("edge %d", i)
		u, err := t.int64(label + " tail")
		if err != nil {
			return nil, err
		}
		v, err := t.int64(label + " head")
		if err != nil {
			return nil, err
		}
		w, err := t.int64(label + " weight")
		if err != nil {
			return nil, err
		}
		if u < 1 || u > n || v < 1 || v > n {
			return nil, fmt.Errorf("%w: %s is %d→%d, N=%d", ErrEdgeRange, label, u, v, n)
		}
		p.Edges = append(p.Edges, core.Edge{From: int(u - 1), To: int(v - 1), Weight: w})
	}

	if !cfg.LenientTrailing {
		if tok, ok := t.next(); ok {
			return nil, fmt.Errorf("%w: token %d %q", ErrTrailingData, t.pos, tok)
		}
	}
	if t.err != nil {
		return nil, t.err
	}

	return p, nil
}

// tokenizer yields whitespace-separated tokens and tracks their 1-based
// position for error messages.
type tokenizer struct {
	sc  *bufio.Scanner
	pos int
	err error
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenizer{sc: sc}
}

// next returns the next token, or false at end of input or on a read error
// (recorded in t.err).
func (t *tokenizer) next() (string, bool) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil && t.err == nil {
			t.err = fmt.Errorf("graphio: read input: %w", err)
		}
		return "", false
	}
	t.pos++

	return t.sc.Text(), true
}

// int64 reads the next token as a signed decimal integer.
func (t *tokenizer) int64(what string) (int64, error) {
	tok, ok := t.next()
	if !ok {
		if t.err != nil {
			return 0, t.err
		}
		return 0, fmt.Errorf("%w: missing %s after token %d", ErrTruncated, what, t.pos)
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		reason := "not an integer"
		if errors.Is(err, strconv.ErrRange) {
			reason = "out of int64 range"
		}
		return 0, fmt.Errorf("%w: %s at token %d %q: %s", ErrSyntax, what, t.pos, tok, reason)
	}

	return v, nil
}
