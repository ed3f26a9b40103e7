package astar

import "github.com/katalvlaran/pathgrid/grid"

// reconstruct walks cameFrom from end back to start, marking every cell in
// between OnPath and notifying obs once per marked cell, in discovery
// order (nearest to end first). start and end keep their markers.
// It returns the path in start→end order.
//
// cameFrom forms a tree rooted at start (an entry is written only on a
// strict improvement), so the walk terminates.
func reconstruct(g *grid.Grid, cameFrom map[*grid.Cell]*grid.Cell, start, end *grid.Cell, obs Observer) []*grid.Cell {
	path := []*grid.Cell{end}
	for cur, ok := cameFrom[end]; ok && cur != start; cur, ok = cameFrom[cur] {
		cur.MarkOnPath()
		obs.Step(g, cur)
		path = append(path, cur)
	}
	path = append(path, start)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
