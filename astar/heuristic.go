package astar

import "github.com/katalvlaran/pathgrid/grid"

// Heuristic estimates the remaining number of steps from a to b.
// It must never overestimate for Search to return a shortest path.
type Heuristic func(a, b grid.Position) int

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|. It is admissible and
// consistent for 4-directional unit-cost movement.
func Manhattan(a, b grid.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
