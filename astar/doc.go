// Package astar finds a minimum-step path between two cells of a grid.Grid
// with A* search guided by the Manhattan distance.
//
// What
//
//   - Search runs one complete search and returns a Result whose Outcome is
//     Found, NotFound or Cancelled.
//   - Stepper drives the very same engine one expansion at a time, for
//     render loops that must return to their caller between frames.
//   - Cell states are updated in place while the search runs: discovered
//     cells become Frontier, expanded cells become Visited and, on success,
//     the cells between start and end become OnPath. Start and End keep
//     their markers.
//
// Frontier ordering
//
//	The frontier is a binary heap keyed by (fScore, insertion sequence),
//	both ascending. Equal fScores are expanded in the order they were
//	discovered, so a fixed grid always yields the same expansion order and
//	the same path among equal-length alternatives.
//
//	There is no decrease-key. A cell is queued only while it is missing
//	from the frontier; when a queued cell's gScore improves, its scores and
//	predecessor change but its entry keeps the key it was queued with. A
//	membership set mirrors which cells are queued. An expanded cell that is
//	later reached more cheaply is queued again like any other cell.
//
// Observer
//
//	An Observer is polled through Cancelled once before each expansion and
//	notified through Step after each expansion and once per path cell while
//	the path is reconstructed. Both calls are synchronous: the engine waits
//	for them to return. A context passed with WithContext is honored at the
//	same poll point. Cancellation is reported as the Cancelled outcome and
//	is not an error.
//
// Preconditions
//
//	start and end must be distinct, non-barrier cells owned by the grid,
//	and grid.RecomputeNeighbors must have been called after the last barrier
//	change. Violations of the first group fail fast with a sentinel error;
//	stale neighbor lists are not detected.
//
// Complexity (N = cells in the grid)
//
//   - Time:   O(N log N) in practice; the heap never holds more than one
//     entry per cell.
//   - Memory: O(N) for the score maps, predecessor map and heap.
//
// Errors
//
//   - ErrNilGrid          if the grid pointer is nil.
//   - ErrNilCell          if start or end is nil.
//   - ErrForeignCell      if start or end does not belong to the grid.
//   - ErrSameCell         if start and end are the same cell.
//   - ErrBarrierEndpoint  if start or end is a barrier.
package astar
