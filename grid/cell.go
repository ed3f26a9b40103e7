package grid

// Cell is a single grid position with a mutable state tag.
// Two cells are the same place only if they are the same pointer; the
// state never takes part in equality.
type Cell struct {
	pos       Position
	size      int // pixel size, used by renderers only
	state     CellState
	neighbors []*Cell
}

func newCell(row, col, size int) *Cell {
	return &Cell{pos: Position{Row: row, Col: col}, size: size}
}

// Pos returns the cell position.
func (c *Cell) Pos() Position { return c.pos }

// Row returns the row index.
func (c *Cell) Row() int { return c.pos.Row }

// Col returns the column index.
func (c *Cell) Col() int { return c.pos.Col }

// Size returns the pixel size of the cell.
func (c *Cell) Size() int { return c.size }

// State returns the current state tag.
func (c *Cell) State() CellState { return c.state }

// IsBarrier reports whether the cell is impassable.
func (c *Cell) IsBarrier() bool { return c.state == Barrier }

// IsStart reports whether the cell is the search origin.
func (c *Cell) IsStart() bool { return c.state == Start }

// IsEnd reports whether the cell is the search target.
func (c *Cell) IsEnd() bool { return c.state == End }

// IsFrontier reports whether the cell waits in the frontier.
func (c *Cell) IsFrontier() bool { return c.state == Frontier }

// IsVisited reports whether the cell has been expanded.
func (c *Cell) IsVisited() bool { return c.state == Visited }

// IsOnPath reports whether the cell lies on the reconstructed path.
func (c *Cell) IsOnPath() bool { return c.state == OnPath }

// Reset returns the cell to Unvisited.
func (c *Cell) Reset() { c.state = Unvisited }

// MarkStart tags the cell as the search origin.
func (c *Cell) MarkStart() { c.state = Start }

// MarkEnd tags the cell as the search target.
func (c *Cell) MarkEnd() { c.state = End }

// MarkBarrier makes the cell impassable.
func (c *Cell) MarkBarrier() { c.state = Barrier }

// MarkFrontier tags the cell as queued.
func (c *Cell) MarkFrontier() { c.state = Frontier }

// MarkVisited tags the cell as expanded.
func (c *Cell) MarkVisited() { c.state = Visited }

// MarkOnPath tags the cell as part of the reconstructed path.
func (c *Cell) MarkOnPath() { c.state = OnPath }

// Neighbors returns the neighbor list computed by the last
// Grid.RecomputeNeighbors. The slice is shared; callers must not modify it.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

// String formats the cell as "(row,col):state".
func (c *Cell) String() string {
	return c.pos.String() + ":" + c.state.String()
}
