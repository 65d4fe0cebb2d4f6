// Package propagate marks every vertex reachable from a set of seeds as
// unbounded (cost −∞), walking forward edges breadth-first.
//
// It is the only mechanism the shortest-path engine uses to classify vertices
// downstream of a negative cycle: once one vertex is known to be unbounded,
// every vertex it reaches is unbounded too.
package propagate

import (
	"fmt"

	"github.com/katalvlaran/bellman/core"
	"github.com/katalvlaran/bellman/cost"
	"github.com/katalvlaran/bellman/queue"
)

// walker encapsulates mutable propagation state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue *queue.Queue[*core.Vertex]
	res   *Result
}

// Propagate marks each seed and every vertex reachable from a seed as
// unbounded. Vertices not reachable from any seed keep their cost and
// predecessor.
//
// The Visited/Depth scratch fields of every vertex are reset first, so
// markers left by an earlier pass never leak into this one. A vertex that is
// already unbounded is never enqueued again; this makes repeated calls with
// the same seeds a no-op and bounds each call by O(V + E).
//
// Returns ErrGraphNil, ErrSeedOutOfRange or ErrOptionViolation before any
// vertex is modified.
func Propagate(g *core.Graph, seeds []int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate every seed before touching any state.
	start := make([]*core.Vertex, 0, len(seeds))
	for _, key := range seeds {
		v, err := g.Vertex(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %d: %v", ErrSeedOutOfRange, key, err)
		}
		start = append(start, v)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: queue.New[*core.Vertex](len(seeds)),
		res:   &Result{Marked: make([]int, 0, len(seeds))},
	}
	w.reset()
	for _, v := range start {
		w.seed(v)
	}
	w.loop()

	return w.res, nil
}

// reset clears the scratch markers across the whole graph.
func (w *walker) reset() {
	for v := range w.graph.Vertices() {
		v.Visited = false
		v.Depth = 0
	}
}

// seed marks a seed unbounded at depth 0 and enqueues it.
// Duplicate seeds within one call are enqueued once.
func (w *walker) seed(v *core.Vertex) {
	if v.Visited {
		return
	}
	if !v.Cost.IsUnbounded() {
		v.Cost = cost.Unbounded()
		w.res.Marked = append(w.res.Marked, v.Key)
		w.opts.OnMark(v.Key, 0)
	}
	v.Visited = true
	v.Depth = 0
	w.queue.Push(v)
}

// loop drains the queue, infecting every forward neighbor not yet unbounded.
func (w *walker) loop() {
	for {
		u, ok := w.queue.Pop()
		if !ok {
			return
		}
		w.res.Dequeued++
		w.opts.OnDequeue(u.Key, u.Depth)

		for e := range u.Edges() {
			v, _ := w.graph.Vertex(e.To) // endpoints were validated by AddEdge
			if v.Cost.IsUnbounded() {
				continue
			}
			v.Cost = cost.Unbounded()
			v.Visited = true
			v.Depth = u.Depth + 1
			w.res.Marked = append(w.res.Marked, v.Key)
			w.opts.OnMark(v.Key, v.Depth)
			w.queue.Push(v)
		}
	}
}
