package astar

import "github.com/katalvlaran/pathgrid/grid"

// Stepper runs a search one expansion per Next call. It shares the engine
// with Search, so the expansion order and the result are identical.
//
// A Stepper is meant for frame-driven callers: call Next once per frame
// and redraw from the cell states in between.
type Stepper struct {
	r *runner
}

// NewStepper validates the arguments like Search and prepares a run
// without expanding anything yet.
func NewStepper(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Stepper, error) {
	r, err := newRunner(g, start, end, opts)
	if err != nil {
		return nil, err
	}
	return &Stepper{r: r}, nil
}

// Next performs one expansion and reports whether the search is still
// running afterwards. Once it returns false, Result is final.
//
//	for s.Next() {
//	}
func (s *Stepper) Next() bool {
	return !s.r.step()
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.r.done }

// Result returns the final result. Before Done it is the zero Result.
func (s *Stepper) Result() Result { return s.r.result }

// Current returns the most recently expanded cell, or nil before the
// first expansion.
func (s *Stepper) Current() *grid.Cell { return s.r.current }

// Expanded returns the number of frontier pops so far.
func (s *Stepper) Expanded() int { return s.r.expanded }

// Cost returns the best known number of steps from start to c and whether
// c has been reached at all.
func (s *Stepper) Cost(c *grid.Cell) (int, bool) {
	g, ok := s.r.gScore[c]
	return g, ok
}

// FrontierLen returns the number of cells currently waiting in the frontier.
func (s *Stepper) FrontierLen() int { return s.r.inOpen.Size() }

// Abort ends an unfinished search with the Cancelled outcome. Cell states
// are left as they are. It has no effect once the search is done.
func (s *Stepper) Abort() {
	if !s.r.done {
		s.r.finish(Cancelled)
	}
}
