package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows was requested.
	ErrEmptyGrid = errors.New("grid: rows must be positive")
	// ErrBadWidth indicates the pixel width cannot give every cell a non-zero size.
	ErrBadWidth = errors.New("grid: pixel width must be at least the number of rows")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrBarrierOrigin indicates a traversal was requested from a barrier cell.
	ErrBarrierOrigin = errors.New("grid: origin is a barrier")
)

// Unreachable marks cells that Distances could not reach.
const Unreachable = -1

// CellState is the movement-state tag of a Cell.
type CellState uint8

const (
	// Unvisited is the blank state of a fresh cell.
	Unvisited CellState = iota
	// Start marks the search origin.
	Start
	// End marks the search target.
	End
	// Barrier marks an impassable cell.
	Barrier
	// Frontier marks a discovered cell waiting to be expanded (open set).
	Frontier
	// Visited marks an expanded cell (closed set).
	Visited
	// OnPath marks a cell of the reconstructed shortest path.
	OnPath
)

var stateNames = [...]string{
	Unvisited: "unvisited",
	Start:     "start",
	End:       "end",
	Barrier:   "barrier",
	Frontier:  "frontier",
	Visited:   "visited",
	OnPath:    "on-path",
}

// String returns the lower-case name of the state.
func (s CellState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// offsets lists neighbor deltas in emission order: down, up, right, left.
var offsets = [4]Position{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
