// Package grid models a square board of cells as an implicit graph for
// shortest-path search.
//
// What:
//
//   - Grid owns a rows×rows collection of *Cell, addressed by Position{Row, Col}.
//   - Every Cell carries a CellState tag (Unvisited, Start, End, Barrier,
//     Frontier, Visited, OnPath). Renderers map the tag to a color; the
//     search never looks at colors.
//   - RecomputeNeighbors rebuilds, in one bulk pass, the 4-connected
//     neighbor list of every cell, skipping out-of-bounds and Barrier cells.
//   - Distances runs a plain BFS over the current neighbor lists and is used
//     as a brute-force oracle for A* results.
//
// Neighbor order:
//
//	Neighbors are always emitted as down (row+1), up (row-1), right (col+1),
//	left (col-1). The A* engine breaks fScore ties by insertion order, so this
//	fixed order makes expansion fully reproducible for a given layout.
//
// Lifecycle:
//
//	Cells are created once by New with a fixed position. Clear replaces them
//	with fresh Unvisited cells; ResetSearch only wipes search markings.
//	Neighbor lists are NOT maintained incrementally: call RecomputeNeighbors
//	after any barrier change and before every search run.
//
// Complexity:
//
//   - New, Clear, ResetSearch: O(N²) for an N×N grid.
//   - RecomputeNeighbors:      O(N²·4).
//   - Distances:               O(N²·4), Memory: O(N²).
//
// Errors:
//
//   - ErrEmptyGrid:     rows must be positive.
//   - ErrBadWidth:      pixel width smaller than the number of rows.
//   - ErrOutOfBounds:   position outside the grid.
//   - ErrBarrierOrigin: BFS requested from a barrier cell.
package grid
