package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/grid"
)

// Sentinel errors for session operations.
var (
	// ErrNoStart is returned when a run is requested before a start cell is painted.
	ErrNoStart = errors.New("session: start cell not set")

	// ErrNoEnd is returned when a run is requested before an end cell is painted.
	ErrNoEnd = errors.New("session: end cell not set")

	// ErrBusy is returned when the layout is edited while a stepped run is active.
	ErrBusy = errors.New("session: a run is in progress")
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for run summaries; the astar engine logs
// through it as well.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records every finished run in m.
func WithMetrics(m *Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// Session is a caller-owned editing session over one grid.
// It is not safe for concurrent use.
type Session struct {
	id      uuid.UUID
	grid    *grid.Grid
	start   *grid.Cell
	end     *grid.Cell
	active  *Run
	logger  *slog.Logger
	metrics *Metrics
}

// New creates a session over a fresh rows×rows grid drawn pixelWidth wide.
func New(rows, pixelWidth int, opts ...Option) (*Session, error) {
	g, err := grid.New(rows, pixelWidth)
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:     uuid.New(),
		grid:   g,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(slog.String("session", s.id.String()))

	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Grid returns the session grid.
func (s *Session) Grid() *grid.Grid { return s.grid }

// StartCell returns the painted start cell, or nil.
func (s *Session) StartCell() *grid.Cell { return s.start }

// EndCell returns the painted end cell, or nil.
func (s *Session) EndCell() *grid.Cell { return s.end }

// Busy reports whether a stepped run is still in progress.
func (s *Session) Busy() bool { return s.active != nil && !s.active.Done() }

// PositionAt maps pixel coordinates to a grid position: the row follows y
// and the column follows x.
func (s *Session) PositionAt(x, y int) (grid.Position, error) {
	size := s.grid.CellSize()
	p := grid.Position{Row: y / size, Col: x / size}
	if x < 0 || y < 0 || !s.grid.InBounds(p) {
		return grid.Position{}, fmt.Errorf("%w: pixel (%d,%d)", grid.ErrOutOfBounds, x, y)
	}
	return p, nil
}

// Paint applies the primary-button rule at p and returns the resulting
// state of the cell.
func (s *Session) Paint(p grid.Position) (grid.CellState, error) {
	if s.Busy() {
		return grid.Unvisited, ErrBusy
	}
	c, err := s.grid.At(p)
	if err != nil {
		return grid.Unvisited, err
	}
	switch {
	case s.start == nil && c != s.end:
		s.start = c
		c.MarkStart()
	case s.end == nil && c != s.start:
		s.end = c
		c.MarkEnd()
	case c != s.start && c != s.end:
		c.MarkBarrier()
	}
	return c.State(), nil
}

// Erase resets the cell at p, forgetting it as start or end.
func (s *Session) Erase(p grid.Position) error {
	if s.Busy() {
		return ErrBusy
	}
	c, err := s.grid.At(p)
	if err != nil {
		return err
	}
	c.Reset()
	if c == s.start {
		s.start = nil
	}
	if c == s.end {
		s.end = nil
	}
	return nil
}

// Clear discards the layout and forgets start and end.
func (s *Session) Clear() error {
	if s.Busy() {
		return ErrBusy
	}
	s.grid.Clear()
	s.start, s.end = nil, nil
	s.active = nil
	return nil
}

// Ready reports whether both endpoints are painted.
func (s *Session) Ready() error {
	if s.start == nil {
		return ErrNoStart
	}
	if s.end == nil {
		return ErrNoEnd
	}
	return nil
}

// prepare validates the endpoints, wipes previous search markings and
// rebuilds the neighbor lists.
func (s *Session) prepare() error {
	if s.Busy() {
		return ErrBusy
	}
	if err := s.Ready(); err != nil {
		return err
	}
	s.grid.ResetSearch()
	s.grid.RecomputeNeighbors()
	return nil
}

// Search runs a complete search, notifying obs (which may be nil) on
// every step. Cancelling ctx ends the run with astar.Cancelled.
func (s *Session) Search(ctx context.Context, obs astar.Observer) (astar.Result, error) {
	if err := s.prepare(); err != nil {
		return astar.Result{}, err
	}
	runID := uuid.New()
	began := time.Now()
	res, err := astar.Search(s.grid, s.start, s.end,
		astar.WithContext(ctx),
		astar.WithObserver(obs),
		astar.WithLogger(s.logger.With(slog.String("run", runID.String()))),
	)
	if err != nil {
		return astar.Result{}, fmt.Errorf("session: search: %w", err)
	}
	s.record(runID, res, time.Since(began))

	return res, nil
}

// Start prepares a stepped run. The layout stays locked until the run is
// done or aborted.
func (s *Session) Start(ctx context.Context, obs astar.Observer) (*Run, error) {
	if err := s.prepare(); err != nil {
		return nil, err
	}
	runID := uuid.New()
	st, err := astar.NewStepper(s.grid, s.start, s.end,
		astar.WithContext(ctx),
		astar.WithObserver(obs),
		astar.WithLogger(s.logger.With(slog.String("run", runID.String()))),
	)
	if err != nil {
		return nil, fmt.Errorf("session: start: %w", err)
	}
	s.active = &Run{id: runID, session: s, stepper: st}

	return s.active, nil
}

func (s *Session) record(runID uuid.UUID, res astar.Result, d time.Duration) {
	s.metrics.observe(res, d)
	s.logger.Info("search finished",
		slog.String("run", runID.String()),
		slog.String("outcome", res.Outcome.String()),
		slog.Int("expanded", res.Expanded),
		slog.Int("cost", res.Cost),
		slog.Duration("duration", d),
	)
}

// Run is a stepped search started by Session.Start.
type Run struct {
	id       uuid.UUID
	session  *Session
	stepper  *astar.Stepper
	elapsed  time.Duration // spent inside Next, not between calls
	recorded bool
}

// ID returns the run identifier used in logs.
func (r *Run) ID() uuid.UUID { return r.id }

// Next performs one expansion and reports whether the run continues.
// The run is logged and counted once, when it finishes.
func (r *Run) Next() bool {
	began := time.Now()
	more := r.stepper.Next()
	r.elapsed += time.Since(began)
	if !more {
		r.finish()
	}
	return more
}

// Abort ends an unfinished run with the astar.Cancelled outcome and
// unlocks the session. Cells keep the states reached so far.
func (r *Run) Abort() {
	r.stepper.Abort()
	r.finish()
}

func (r *Run) finish() {
	if r.recorded {
		return
	}
	r.recorded = true
	r.session.record(r.id, r.stepper.Result(), r.elapsed)
}

// Done reports whether the run has finished.
func (r *Run) Done() bool { return r.stepper.Done() }

// Current returns the most recently expanded cell.
func (r *Run) Current() *grid.Cell { return r.stepper.Current() }

// Result returns the final result once Done.
func (r *Run) Result() astar.Result { return r.stepper.Result() }
