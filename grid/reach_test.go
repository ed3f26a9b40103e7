package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/grid"
)

// TestDistances_Open checks that on an open grid BFS distance equals the
// Manhattan distance from the origin.
func TestDistances_Open(t *testing.T) {
	g, err := grid.New(5, 50)
	require.NoError(t, err)
	g.RecomputeNeighbors()

	dist, err := g.Distances(grid.Position{Row: 0, Col: 0})
	require.NoError(t, err)
	require.Len(t, dist, 25)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			assert.Equal(t, r+c, dist[r*5+c], "cell (%d,%d)", r, c)
		}
	}
}

// TestDistances_Wall routes around a wall with a single gap at (2,2).
//
//	. . . . .
//	. . . . .
//	# # . # #
//	. . . . .
//	. . . . .
func TestDistances_Wall(t *testing.T) {
	g, _ := grid.New(5, 50)
	for c := 0; c < 5; c++ {
		if c != 2 {
			g.Cell(2, c).MarkBarrier()
		}
	}
	g.RecomputeNeighbors()

	d, err := g.DistanceTo(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 4, Col: 0})
	require.NoError(t, err)
	// (0,0) → (0,2) → (4,2) → (4,0)
	assert.Equal(t, 2+4+2, d)

	dist, _ := g.Distances(grid.Position{Row: 0, Col: 0})
	assert.Equal(t, grid.Unreachable, dist[2*5+0], "barrier cell must stay unreachable")
}

// TestReachable_Enclosed covers an origin fully walled in.
func TestReachable_Enclosed(t *testing.T) {
	g, _ := grid.New(3, 30)
	g.Cell(0, 1).MarkBarrier()
	g.Cell(1, 0).MarkBarrier()
	g.RecomputeNeighbors()

	assert.False(t, g.Reachable(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 2, Col: 2}))
	assert.True(t, g.Reachable(grid.Position{Row: 2, Col: 2}, grid.Position{Row: 1, Col: 1}))
}

// TestDistances_Errors covers invalid and barrier origins.
func TestDistances_Errors(t *testing.T) {
	g, _ := grid.New(3, 30)
	g.Cell(1, 1).MarkBarrier()
	g.RecomputeNeighbors()

	_, err := g.Distances(grid.Position{Row: 5, Col: 0})
	require.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = g.Distances(grid.Position{Row: 1, Col: 1})
	require.ErrorIs(t, err, grid.ErrBarrierOrigin)

	_, err = g.DistanceTo(grid.Position{Row: 0, Col: 0}, grid.Position{Row: 0, Col: 9})
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	assert.False(t, g.Reachable(grid.Position{Row: 1, Col: 1}, grid.Position{Row: 0, Col: 0}))
}
