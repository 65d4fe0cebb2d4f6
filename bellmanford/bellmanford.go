// Package bellmanford implements single-source shortest paths on directed
// graphs with arbitrary integer weights, classifying every vertex as finite,
// unreachable, or unbounded below.
//
// Complexity:
//
//   - Time:  O(V·E) relaxation worst case, plus O(V+E) per propagation seed.
//   - Space: O(V) for the result snapshot and the propagation queue.
//
// Notes on implementation choices:
//
//   - Only vertices whose cost changed since their last scan are relaxed
//     (dirty flag). The flag is cleared before the scan, so a negative
//     self-loop re-dirties its own vertex.
//   - Relaxation stops at the first round that relaxes nothing.
//   - Costs are cost.Cost values. Sentinel operands absorb, and finite sums
//     are exact 128-bit integers, so a path that passes beyond the int64
//     range and comes back keeps its true cost.
//   - Residual relaxable edges after V-1 rounds seed a breadth-first
//     propagation that marks their whole downstream closure unbounded.
package bellmanford

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/bellman/core"
	"github.com/katalvlaran/bellman/cost"
	"github.com/katalvlaran/bellman/propagate"
)

// ShortestPaths computes shortest-path costs from source to every vertex of g.
//
// Returns a Result whose Costs[v] is:
//
//   - cost.Finite(d)     the shortest distance d,
//   - cost.Unreachable() no path from source,
//   - cost.Unbounded()   v is on, or reachable from, a negative cycle that is
//     reachable from source.
//
// The source always reports cost.Finite(0), even when a negative cycle runs
// back through it.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. Options must be valid (ErrOptionViolation).
//  3. g must have at least one vertex (ErrEmptyGraph).
//  4. source must be in [0, N) (ErrSourceOutOfRange).
//
// The vertex annotations of g (Cost, Predecessor, Dirty, Visited, Depth) are
// overwritten. Topology is never modified.
func ShortestPaths(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate the graph has vertices and the source exists
	if g.Order() == 0 {
		return nil, ErrEmptyGraph
	}
	src, err := g.Vertex(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrSourceOutOfRange, source, g.Order())
	}

	r := &runner{
		g:      g,
		src:    src,
		opts:   cfg,
		log:    cfg.Logger.With(slog.Int("source", source), slog.Int("vertices", g.Order()), slog.Int("edges", g.Size())),
		result: &Result{Source: source},
	}

	r.init()
	if r.relaxRounds() {
		// A path may need all V-1 rounds without any cycle; only a residual
		// edge proves one.
		if err = r.residualScan(); err != nil {
			return nil, err
		}
	}
	if len(r.result.CycleSeeds) > 0 {
		r.enter(PhaseCycleDetected)
	} else {
		r.enter(PhaseConverged)
	}
	r.finalize()

	return r.result, nil
}

// runner holds the mutable state for a single engine execution.
type runner struct {
	g      *core.Graph  // topology is read-only; vertex annotations are written
	src    *core.Vertex // source vertex
	opts   Options      // validated configuration
	log    *slog.Logger // logger carrying run attributes
	phase  Phase        // current state
	result *Result      // populated incrementally, snapshot taken in finalize
}

// enter records a phase transition.
func (r *runner) enter(p Phase) {
	r.log.Debug("phase transition", slog.String("from", r.phase.String()), slog.String("to", p.String()))
	r.phase = p
}

// init sets every vertex to unreachable, no predecessor, clean, and then
// places the source at cost 0 marked dirty.
func (r *runner) init() {
	r.g.ResetAnnotations()
	r.src.Cost = cost.Finite(0)
	r.src.Dirty = true
	r.enter(PhaseRelaxing)
}

// relaxRounds runs up to V-1 relaxation rounds and reports whether the last
// executed round still relaxed at least one edge.
func (r *runner) relaxRounds() bool {
	maxRounds := r.g.Order() - 1
	relaxed := 0
	for round := 1; round <= maxRounds; round++ {
		relaxed = r.round()
		r.result.Rounds = round
		r.result.Relaxations += relaxed
		r.log.Debug("relaxation round", slog.Int("round", round), slog.Int("relaxed", relaxed))
		r.opts.OnRound(round, relaxed)
		if relaxed == 0 {
			return false
		}
	}

	return relaxed > 0
}

// round performs one pass over the vertices in key order, relaxing the
// outgoing edges of each dirty vertex. Returns the number of improvements.
func (r *runner) round() int {
	relaxed := 0
	for u := range r.g.Vertices() {
		if !u.Dirty && !r.opts.FullScan {
			continue
		}
		// Clear before scanning: a self-loop that improves u must leave it dirty.
		u.Dirty = false
		for e := range u.Edges() {
			if r.relax(u, e) {
				relaxed++
			}
		}
	}

	return relaxed
}

// relax tries to improve e.To through u. Returns true on improvement.
func (r *runner) relax(u *core.Vertex, e *core.Edge) bool {
	v, _ := r.g.Vertex(e.To) // endpoints were validated by AddEdge
	candidate := cost.Sum(u.Cost, e.Weight)
	if !cost.Less(candidate, v.Cost) {
		return false
	}
	v.Cost = candidate
	v.Predecessor = u.Key
	v.Dirty = true

	return true
}

// residualScan checks every edge once more. Any edge that still relaxes
// proves its head is on or after a negative cycle; that head seeds a
// propagation unless an earlier propagation already reached it.
func (r *runner) residualScan() error {
	for e := range r.g.Edges() {
		u, _ := r.g.Vertex(e.From)
		v, _ := r.g.Vertex(e.To)
		if v.Cost.IsUnbounded() {
			continue
		}
		if !cost.Less(cost.Sum(u.Cost, e.Weight), v.Cost) {
			continue
		}

		res, err := propagate.Propagate(r.g, []int{v.Key})
		if err != nil {
			return fmt.Errorf("bellmanford: propagate from %d: %w", v.Key, err)
		}
		r.result.CycleSeeds = append(r.result.CycleSeeds, v.Key)
		r.log.Debug("negative cycle seed",
			slog.String("edge", e.String()),
			slog.Int("seed", v.Key),
			slog.Int("marked", len(res.Marked)),
		)
		if r.opts.Metrics != nil {
			r.opts.Metrics.propagations.Inc()
		}
	}

	return nil
}

// finalize pins the source at cost 0, snapshots the annotations into the
// Result and reports the run.
func (r *runner) finalize() {
	outcome := outcomeConverged
	if r.phase == PhaseCycleDetected {
		outcome = outcomeNegativeCycle
	}

	// Source invariant: the origin reports 0 even on a cycle through itself.
	r.src.Cost = cost.Finite(0)
	r.src.Predecessor = core.NoPredecessor

	n := r.g.Order()
	r.result.Costs = make([]cost.Cost, n)
	r.result.Predecessors = make([]int, n)
	for v := range r.g.Vertices() {
		r.result.Costs[v.Key] = v.Cost
		r.result.Predecessors[v.Key] = v.Predecessor
		if v.Cost.IsUnbounded() {
			r.result.Unbounded++
		}
	}

	r.enter(PhaseFinalized)
	r.result.Phase = r.phase

	if r.opts.Metrics != nil {
		r.opts.Metrics.observe(outcome, r.result)
	}
	r.log.Info("shortest paths computed",
		slog.String("outcome", outcome),
		slog.Int("rounds", r.result.Rounds),
		slog.Int("relaxations", r.result.Relaxations),
		slog.Int("cycle_seeds", len(r.result.CycleSeeds)),
		slog.Int("unbounded", r.result.Unbounded),
	)
}
