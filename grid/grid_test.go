package grid_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/pathgrid/grid"
)

//----------------------------------------------------------------------------//
// New / bounds
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty grids and unusable widths.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		rows  int
		width int
		err   error
	}{
		{"ZeroRows", 0, 800, grid.ErrEmptyGrid},
		{"NegativeRows", -3, 800, grid.ErrEmptyGrid},
		{"TooNarrow", 50, 49, grid.ErrBadWidth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows, tc.width)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.rows, tc.width, err, tc.err)
			}
		})
	}
}

// TestNew_Layout checks dimensions, cell size and that every cell starts
// Unvisited at its own position.
func TestNew_Layout(t *testing.T) {
	g, err := grid.New(50, 800)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if g.Rows() != 50 || g.CellSize() != 16 || g.PixelWidth() != 800 {
		t.Fatalf("rows=%d size=%d width=%d; want 50 16 800", g.Rows(), g.CellSize(), g.PixelWidth())
	}
	n := 0
	g.Each(func(c *grid.Cell) {
		if c.State() != grid.Unvisited {
			t.Errorf("%v: state = %v; want unvisited", c.Pos(), c.State())
		}
		if got := g.Cell(c.Row(), c.Col()); got != c {
			t.Errorf("Cell(%d,%d) returned a different cell", c.Row(), c.Col())
		}
		if c.Size() != 16 {
			t.Errorf("%v: size = %d; want 16", c.Pos(), c.Size())
		}
		n++
	})
	if n != 2500 {
		t.Errorf("Each visited %d cells; want 2500", n)
	}
}

// TestAt_OutOfBounds checks At and Cell on invalid positions.
func TestAt_OutOfBounds(t *testing.T) {
	g, _ := grid.New(3, 30)
	for _, p := range []grid.Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if _, err := g.At(p); !errors.Is(err, grid.ErrOutOfBounds) {
			t.Errorf("At(%v) error = %v; want ErrOutOfBounds", p, err)
		}
		if c := g.Cell(p.Row, p.Col); c != nil {
			t.Errorf("Cell(%v) = %v; want nil", p, c)
		}
	}
	c, err := g.At(grid.Position{Row: 2, Col: 1})
	if err != nil || c.Pos() != (grid.Position{Row: 2, Col: 1}) {
		t.Errorf("At(2,1) = %v, %v", c, err)
	}
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

func positions(cells []*grid.Cell) []grid.Position {
	out := make([]grid.Position, len(cells))
	for i, c := range cells {
		out[i] = c.Pos()
	}
	return out
}

// TestRecomputeNeighbors_Order checks the fixed down, up, right, left order
// and bounds handling at the corners.
func TestRecomputeNeighbors_Order(t *testing.T) {
	g, _ := grid.New(3, 30)
	g.RecomputeNeighbors()

	center := g.Cell(1, 1)
	want := []grid.Position{{2, 1}, {0, 1}, {1, 2}, {1, 0}}
	if got := positions(center.Neighbors()); !reflect.DeepEqual(got, want) {
		t.Errorf("center neighbors = %v; want %v", got, want)
	}

	corner := g.Cell(0, 0)
	want = []grid.Position{{1, 0}, {0, 1}}
	if got := positions(corner.Neighbors()); !reflect.DeepEqual(got, want) {
		t.Errorf("corner neighbors = %v; want %v", got, want)
	}

	far := g.Cell(2, 2)
	want = []grid.Position{{1, 2}, {2, 1}}
	if got := positions(far.Neighbors()); !reflect.DeepEqual(got, want) {
		t.Errorf("far corner neighbors = %v; want %v", got, want)
	}
}

// TestRecomputeNeighbors_ExcludesBarriers verifies that a barrier never
// appears in any neighbor list and that stale lists are not updated until
// the next bulk recompute.
func TestRecomputeNeighbors_ExcludesBarriers(t *testing.T) {
	g, _ := grid.New(3, 30)
	g.RecomputeNeighbors()
	g.Cell(0, 1).MarkBarrier()

	// Not maintained incrementally.
	if got := len(g.Cell(0, 0).Neighbors()); got != 2 {
		t.Fatalf("stale neighbor count = %d; want 2", got)
	}

	g.RecomputeNeighbors()
	g.Each(func(c *grid.Cell) {
		for _, n := range c.Neighbors() {
			if n.IsBarrier() {
				t.Errorf("%v lists barrier neighbor %v", c.Pos(), n.Pos())
			}
		}
	})
	if got := positions(g.Cell(0, 0).Neighbors()); !reflect.DeepEqual(got, []grid.Position{{1, 0}}) {
		t.Errorf("(0,0) neighbors = %v; want [(1,0)]", got)
	}
}

// TestRecomputeNeighbors_Idempotent recomputes twice without barrier
// changes and expects identical neighbor sets.
func TestRecomputeNeighbors_Idempotent(t *testing.T) {
	g, _ := grid.New(6, 60)
	g.Cell(2, 2).MarkBarrier()
	g.Cell(3, 4).MarkBarrier()
	g.RecomputeNeighbors()

	first := make(map[grid.Position][]grid.Position)
	g.Each(func(c *grid.Cell) { first[c.Pos()] = positions(c.Neighbors()) })

	g.RecomputeNeighbors()
	g.Each(func(c *grid.Cell) {
		if got := positions(c.Neighbors()); !reflect.DeepEqual(got, first[c.Pos()]) {
			t.Errorf("%v: neighbors changed from %v to %v", c.Pos(), first[c.Pos()], got)
		}
	})
}

//----------------------------------------------------------------------------//
// Clear / ResetSearch / String
//----------------------------------------------------------------------------//

// TestClear replaces every cell, so old pointers are no longer owned.
func TestClear(t *testing.T) {
	g, _ := grid.New(4, 40)
	old := g.Cell(1, 1)
	old.MarkBarrier()
	g.Cell(0, 0).MarkStart()

	g.Clear()
	if g.Owns(old) {
		t.Error("cleared grid still owns the old cell")
	}
	if got := g.Count(grid.Unvisited); got != 16 {
		t.Errorf("unvisited after Clear = %d; want 16", got)
	}
	if !g.Owns(g.Cell(1, 1)) {
		t.Error("grid does not own its new cell")
	}
}

// TestResetSearch keeps painted markers and drops search markings.
func TestResetSearch(t *testing.T) {
	g, _ := grid.New(3, 30)
	g.Cell(0, 0).MarkStart()
	g.Cell(2, 2).MarkEnd()
	g.Cell(1, 0).MarkBarrier()
	g.Cell(0, 1).MarkVisited()
	g.Cell(0, 2).MarkFrontier()
	g.Cell(1, 1).MarkOnPath()

	g.ResetSearch()

	want := "S..\n#..\n..E\n"
	if got := g.String(); got != want {
		t.Errorf("after ResetSearch:\n%s\nwant:\n%s", got, want)
	}
}

// TestString renders every glyph once.
func TestString(t *testing.T) {
	g, _ := grid.New(3, 3)
	g.Cell(0, 0).MarkStart()
	g.Cell(0, 1).MarkEnd()
	g.Cell(0, 2).MarkBarrier()
	g.Cell(1, 0).MarkFrontier()
	g.Cell(1, 1).MarkVisited()
	g.Cell(1, 2).MarkOnPath()

	want := "SE#\nox*\n...\n"
	if got := g.String(); got != want {
		t.Errorf("String() =\n%s\nwant:\n%s", got, want)
	}
}

// TestCellState_String covers known and unknown tags.
func TestCellState_String(t *testing.T) {
	if got := grid.OnPath.String(); got != "on-path" {
		t.Errorf("OnPath.String() = %q", got)
	}
	if got := grid.CellState(42).String(); got != "CellState(42)" {
		t.Errorf("CellState(42).String() = %q", got)
	}
}
