package astar

import "github.com/katalvlaran/pathgrid/grid"

// entry is one queued frontier record. f is the fScore the cell had when
// it was queued and is not updated afterwards.
type entry struct {
	cell *grid.Cell
	f    int
	seq  uint64
}

// frontier is a min-heap of *entry ordered by (f, seq) ascending.
// Use with container/heap.
type frontier []*entry

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *frontier) Push(x any) { *q = append(*q, x.(*entry)) }

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return it
}
