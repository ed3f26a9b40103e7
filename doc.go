// Package pathgrid finds shortest paths on square grids with A* and lets
// you watch it happen.
//
// 🚀 What is pathgrid?
//
//	A small engine plus the tooling around it:
//		• grid/     cells, states, neighbor lists and a BFS distance oracle
//		• astar/    A* with the Manhattan heuristic, step observer, stepper
//		• session/  painting rules, run bookkeeping, metrics and logs
//		• render/   state palette and PNG output
//
// Binaries live under cmd/: pathgrid is the interactive window (build with
// -tags ebiten), pathgrid-snapshot runs a random layout headless and writes
// a PNG.
//
// Quick ASCII example, after a run on a 5×5 grid with a wall:
//
//	S****
//	####*
//	*****
//	*####
//	****E
//
// S is the start, E the end, # a barrier and * the path found.
//
//	go get github.com/katalvlaran/pathgrid
package pathgrid
