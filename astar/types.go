package astar

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/pathgrid/grid"
)

// Sentinel errors for precondition failures.
var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilCell is returned when start or end is nil.
	ErrNilCell = errors.New("astar: start and end cells are required")

	// ErrForeignCell is returned when start or end is not a cell of the grid.
	ErrForeignCell = errors.New("astar: cell does not belong to grid")

	// ErrSameCell is returned when start and end are the same cell.
	ErrSameCell = errors.New("astar: start and end must differ")

	// ErrBarrierEndpoint is returned when start or end is a barrier.
	ErrBarrierEndpoint = errors.New("astar: start and end must not be barriers")
)

// Outcome classifies how a search ended.
type Outcome int

const (
	// NotFound means the frontier was exhausted without reaching end.
	NotFound Outcome = iota
	// Found means a shortest path was reconstructed.
	Found
	// Cancelled means the caller aborted the search; nothing is asserted
	// about the existence of a path.
	Cancelled
)

// String returns "found", "not-found" or "cancelled".
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Cancelled:
		return "cancelled"
	default:
		return "not-found"
	}
}

// Result is the outcome of a search.
//   - Path: cells from start to end inclusive; nil unless Outcome == Found.
//   - Cost: number of steps of Path (len(Path)-1); 0 unless Found.
//   - Expanded: number of cells popped from the frontier, end included.
type Result struct {
	Outcome  Outcome
	Path     []*grid.Cell
	Cost     int
	Expanded int
}

// Found reports whether a path was found.
func (r Result) Found() bool { return r.Outcome == Found }

// Observer watches a running search and may cancel it.
type Observer interface {
	// Cancelled is polled once before each expansion. Returning true ends
	// the search with the Cancelled outcome.
	Cancelled() bool

	// Step is called after the neighbors of current have been relaxed, and
	// again once per cell marked OnPath during reconstruction.
	Step(g *grid.Grid, current *grid.Cell)
}

// NopObserver ignores every step and never cancels.
type NopObserver struct{}

// Cancelled always reports false.
func (NopObserver) Cancelled() bool { return false }

// Step does nothing.
func (NopObserver) Step(*grid.Grid, *grid.Cell) {}

// StepFunc adapts a function to an Observer that never cancels.
type StepFunc func(g *grid.Grid, current *grid.Cell)

// Cancelled always reports false.
func (f StepFunc) Cancelled() bool { return false }

// Step calls f(g, current).
func (f StepFunc) Step(g *grid.Grid, current *grid.Cell) { f(g, current) }

// Options holds the tunables of a search run.
type Options struct {
	// Ctx is checked together with Observer.Cancelled before each expansion.
	Ctx context.Context

	// Observer receives progress notifications.
	Observer Observer

	// Heuristic estimates remaining steps; Manhattan by default.
	Heuristic Heuristic

	// Logger receives Debug records for run start and finish.
	Logger *slog.Logger
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a background context, a NopObserver,
// the Manhattan heuristic and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Observer:  NopObserver{},
		Heuristic: Manhattan,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a context whose cancellation aborts the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithObserver registers an Observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithHeuristic replaces the Manhattan heuristic. An inadmissible heuristic
// still terminates but may return a longer path.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithLogger sets the logger used for run diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
