package grid

import (
	"fmt"
	"strings"
)

// Grid is a square, row-major collection of cells.
// It is not safe for concurrent mutation; a search run owns it for the
// duration of the call.
type Grid struct {
	rows       int
	pixelWidth int
	cellSize   int
	cells      []*Cell
}

// New builds a rows×rows grid of Unvisited cells whose pixel size is
// pixelWidth / rows.
// Returns ErrEmptyGrid if rows ≤ 0 and ErrBadWidth if pixelWidth < rows.
// Complexity: O(rows²) time and memory.
func New(rows, pixelWidth int) (*Grid, error) {
	if rows <= 0 {
		return nil, ErrEmptyGrid
	}
	if pixelWidth < rows {
		return nil, fmt.Errorf("%w: width=%d rows=%d", ErrBadWidth, pixelWidth, rows)
	}
	g := &Grid{
		rows:       rows,
		pixelWidth: pixelWidth,
		cellSize:   pixelWidth / rows,
	}
	g.fill()

	return g, nil
}

// fill allocates a fresh Unvisited cell for every position.
func (g *Grid) fill() {
	g.cells = make([]*Cell, g.rows*g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.rows; c++ {
			g.cells[g.index(r, c)] = newCell(r, c, g.cellSize)
		}
	}
}

// Rows returns the number of rows (equal to the number of columns).
func (g *Grid) Rows() int { return g.rows }

// PixelWidth returns the pixel width the grid was created with.
func (g *Grid) PixelWidth() int { return g.pixelWidth }

// CellSize returns the pixel size of one cell.
func (g *Grid) CellSize() int { return g.cellSize }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.rows
}

// At returns the cell at p, or ErrOutOfBounds.
func (g *Grid) At(p Position) (*Cell, error) {
	if !g.InBounds(p) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.rows, g.rows)
	}
	return g.cells[g.index(p.Row, p.Col)], nil
}

// Cell returns the cell at (row, col), or nil when out of bounds.
func (g *Grid) Cell(row, col int) *Cell {
	if !g.InBounds(Position{Row: row, Col: col}) {
		return nil
	}
	return g.cells[g.index(row, col)]
}

// Owns reports whether c is one of the grid's current cells.
// Cells discarded by Clear are no longer owned.
func (g *Grid) Owns(c *Cell) bool {
	if c == nil || !g.InBounds(c.pos) {
		return false
	}
	return g.cells[g.index(c.pos.Row, c.pos.Col)] == c
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}

// Count returns how many cells currently have state s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, c := range g.cells {
		if c.state == s {
			n++
		}
	}
	return n
}

// RecomputeNeighbors rebuilds every cell's neighbor list from the four
// axis-aligned positions that are in bounds and not Barrier, in the order
// down, up, right, left.
// Must be called after any barrier change; the search does not check.
// Complexity: O(rows²·4).
func (g *Grid) RecomputeNeighbors() {
	for _, c := range g.cells {
		nbrs := make([]*Cell, 0, len(offsets))
		for _, d := range offsets {
			p := Position{Row: c.pos.Row + d.Row, Col: c.pos.Col + d.Col}
			if !g.InBounds(p) {
				continue
			}
			n := g.cells[g.index(p.Row, p.Col)]
			if n.IsBarrier() {
				continue
			}
			nbrs = append(nbrs, n)
		}
		c.neighbors = nbrs
	}
}

// Clear replaces every cell with a fresh Unvisited cell.
// Previously obtained *Cell values no longer belong to the grid.
func (g *Grid) Clear() {
	g.fill()
}

// ResetSearch returns Frontier, Visited and OnPath cells to Unvisited,
// leaving Start, End and Barrier untouched.
func (g *Grid) ResetSearch() {
	for _, c := range g.cells {
		switch c.state {
		case Frontier, Visited, OnPath:
			c.Reset()
		}
	}
}

var glyphs = [...]byte{
	Unvisited: '.',
	Start:     'S',
	End:       'E',
	Barrier:   '#',
	Frontier:  'o',
	Visited:   'x',
	OnPath:    '*',
}

// String renders the grid as rows of state glyphs:
// '.' unvisited, 'S' start, 'E' end, '#' barrier, 'o' frontier,
// 'x' visited, '*' path.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.rows + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.rows; c++ {
			b.WriteByte(glyphs[g.cells[g.index(r, c)].state])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// index maps (row, col) to the row-major slice index.
func (g *Grid) index(row, col int) int {
	return row*g.rows + col
}
