// Package session owns one interactive editing session over a grid: it
// applies the painting rules for start, end and barrier cells, prepares the
// grid before every search and records what each run did.
//
// Painting rules
//
//   - Paint on an empty session sets the start cell, then the end cell;
//     every later Paint turns the cell into a barrier. Start and end are
//     never overwritten by a barrier.
//   - Erase resets a cell and forgets it as start or end.
//   - Clear discards the whole layout.
//   - While a stepped Run is in progress, edits fail with ErrBusy until the
//     run is drained with Next or stopped with Abort.
//
// Runs
//
//	Search and Start both wipe the markings of the previous run, rebuild the
//	neighbor lists and hand the grid to the astar engine. Search blocks until
//	the engine returns; Start returns a Run to be advanced one expansion per
//	frame. Every finished run is logged with its run id and counted in
//	Metrics when configured.
package session
