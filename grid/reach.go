package grid

import "fmt"

// Distances runs a breadth-first search from the given origin over the
// neighbor lists built by the last RecomputeNeighbors and returns the step
// count to every cell in row-major order. Cells that cannot be reached hold
// Unreachable.
//
// Returns ErrOutOfBounds for an invalid origin and ErrBarrierOrigin when the
// origin is a barrier.
//
// Time:   O(rows²·4).
// Memory: O(rows²).
func (g *Grid) Distances(from Position) ([]int, error) {
	src, err := g.At(from)
	if err != nil {
		return nil, err
	}
	if src.IsBarrier() {
		return nil, fmt.Errorf("%w: %v", ErrBarrierOrigin, from)
	}

	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = Unreachable
	}
	i0 := g.index(from.Row, from.Col)
	dist[i0] = 0

	queue := []*Cell{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		du := dist[g.index(u.pos.Row, u.pos.Col)]
		for _, v := range u.neighbors {
			vi := g.index(v.pos.Row, v.pos.Col)
			if dist[vi] != Unreachable {
				continue
			}
			dist[vi] = du + 1
			queue = append(queue, v)
		}
	}
	return dist, nil
}

// DistanceTo returns the BFS step count from a to b, or Unreachable.
// Errors are those of Distances plus ErrOutOfBounds for b.
func (g *Grid) DistanceTo(a, b Position) (int, error) {
	if !g.InBounds(b) {
		return Unreachable, fmt.Errorf("%w: %v", ErrOutOfBounds, b)
	}
	dist, err := g.Distances(a)
	if err != nil {
		return Unreachable, err
	}
	return dist[g.index(b.Row, b.Col)], nil
}

// Reachable reports whether b can be reached from a over the current
// neighbor lists. Invalid or barrier origins are never connected.
func (g *Grid) Reachable(a, b Position) bool {
	d, err := g.DistanceTo(a, b)
	return err == nil && d != Unreachable
}
