package astar

import (
	"container/heap"
	"fmt"
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pathgrid/grid"
)

// Search runs A* on g from start to end and mutates cell states in place.
//
// The neighbor lists of g must be fresh (grid.RecomputeNeighbors). Search
// returns an error only for precondition violations; NotFound and Cancelled
// are regular outcomes carried by Result.
//
// Complexity: O(N log N) time, O(N) memory for N cells.
func Search(g *grid.Grid, start, end *grid.Cell, opts ...Option) (Result, error) {
	r, err := newRunner(g, start, end, opts)
	if err != nil {
		return Result{}, err
	}
	for !r.step() {
	}

	return r.result, nil
}

// validate checks the search preconditions in order: grid, cells,
// ownership, distinctness, barriers.
func validate(g *grid.Grid, start, end *grid.Cell) error {
	if g == nil {
		return ErrNilGrid
	}
	if start == nil || end == nil {
		return ErrNilCell
	}
	if !g.Owns(start) {
		return fmt.Errorf("%w: start %v", ErrForeignCell, start.Pos())
	}
	if !g.Owns(end) {
		return fmt.Errorf("%w: end %v", ErrForeignCell, end.Pos())
	}
	if start == end {
		return fmt.Errorf("%w: %v", ErrSameCell, start.Pos())
	}
	if start.IsBarrier() || end.IsBarrier() {
		return fmt.Errorf("%w: start %v end %v", ErrBarrierEndpoint, start.Pos(), end.Pos())
	}
	return nil
}

// runner holds the per-run bookkeeping. Everything here is allocated
// fresh for each run and owned exclusively by it.
type runner struct {
	g          *grid.Grid
	start, end *grid.Cell
	opts       Options

	gScore   map[*grid.Cell]int
	fScore   map[*grid.Cell]int
	cameFrom map[*grid.Cell]*grid.Cell
	open     frontier
	inOpen   mapset.Set[*grid.Cell] // mirrors open
	seq      uint64

	current  *grid.Cell
	expanded int
	done     bool
	result   Result
}

func newRunner(g *grid.Grid, start, end *grid.Cell, opts []Option) (*runner, error) {
	if err := validate(g, start, end); err != nil {
		return nil, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.Rows() * g.Rows()
	r := &runner{
		g:        g,
		start:    start,
		end:      end,
		opts:     cfg,
		gScore:   make(map[*grid.Cell]int, n),
		fScore:   make(map[*grid.Cell]int, n),
		cameFrom: make(map[*grid.Cell]*grid.Cell, n),
		open:     make(frontier, 0, n),
		inOpen:   mapset.New[*grid.Cell](),
	}
	r.init()

	return r, nil
}

// init seeds the frontier with start at key (h(start,end), 0).
func (r *runner) init() {
	heap.Init(&r.open)
	r.gScore[r.start] = 0
	r.fScore[r.start] = r.opts.Heuristic(r.start.Pos(), r.end.Pos())
	r.push(r.start)
	r.inOpen.Put(r.start)

	r.opts.Logger.Debug("astar: search started",
		slog.String("start", r.start.Pos().String()),
		slog.String("end", r.end.Pos().String()),
		slog.Int("rows", r.g.Rows()),
	)
}

// push queues c with its current scores and the next insertion number.
func (r *runner) push(c *grid.Cell) {
	heap.Push(&r.open, &entry{cell: c, f: r.fScore[c], seq: r.seq})
	r.seq++
}

// step performs at most one expansion and reports whether the run is over.
func (r *runner) step() bool {
	if r.done {
		return true
	}

	if r.open.Len() == 0 {
		r.finish(NotFound)
		return true
	}
	// Cancellation is checked once per expansion, never mid-relaxation.
	if r.opts.Ctx.Err() != nil || r.opts.Observer.Cancelled() {
		r.finish(Cancelled)
		return true
	}

	cur := heap.Pop(&r.open).(*entry).cell
	r.inOpen.Remove(cur)
	r.current = cur
	r.expanded++

	if cur == r.end {
		path := reconstruct(r.g, r.cameFrom, r.start, r.end, r.opts.Observer)
		r.result = Result{Outcome: Found, Path: path, Cost: r.gScore[cur], Expanded: r.expanded}
		r.done = true
		r.log()
		return true
	}

	r.relax(cur)
	r.opts.Observer.Step(r.g, cur)
	if cur != r.start {
		cur.MarkVisited()
	}

	return false
}

// relax applies the unit-cost update to every neighbor of cur.
// Only cells missing from the frontier are queued; a queued cell whose
// score improves keeps its entry and the key it was queued with.
func (r *runner) relax(cur *grid.Cell) {
	tentative := r.gScore[cur] + 1
	for _, nb := range cur.Neighbors() {
		if old, seen := r.gScore[nb]; seen && tentative >= old {
			continue
		}
		r.cameFrom[nb] = cur
		r.gScore[nb] = tentative
		r.fScore[nb] = tentative + r.opts.Heuristic(nb.Pos(), r.end.Pos())

		if r.inOpen.Has(nb) {
			continue
		}
		r.push(nb)
		r.inOpen.Put(nb)
		if nb != r.end {
			nb.MarkFrontier()
		}
	}
}

func (r *runner) finish(o Outcome) {
	r.result = Result{Outcome: o, Expanded: r.expanded}
	r.done = true
	r.log()
}

func (r *runner) log() {
	r.opts.Logger.Debug("astar: search finished",
		slog.String("outcome", r.result.Outcome.String()),
		slog.Int("expanded", r.result.Expanded),
		slog.Int("cost", r.result.Cost),
	)
}
