package astar

import (
	"github.com/pdrpinto/gridastar/grid"
	"github.com/zyedidia/generic/heap"
)

// frontierEntry is one queued node. The same coordinate may be queued more
// than once; cost is the path cost it was queued with.
type frontierEntry[C grid.Coordinate, P grid.Priority] struct {
	node grid.Node[C, P]
	cost P
	seq  uint64
}

// frontier pops the lowest priority first. Equal priorities pop in the
// order they were pushed.
type frontier[C grid.Coordinate, P grid.Priority] struct {
	entries *heap.Heap[frontierEntry[C, P]]
	seq     uint64
}

func newFrontier[C grid.Coordinate, P grid.Priority]() *frontier[C, P] {
	return &frontier[C, P]{entries: heap.New[frontierEntry[C, P]](lessEntry[C, P])}
}

func lessEntry[C grid.Coordinate, P grid.Priority](a, b frontierEntry[C, P]) bool {
	if a.node.Priority() != b.node.Priority() {
		return a.node.Priority() < b.node.Priority()
	}
	return a.seq < b.seq
}

func (f *frontier[C, P]) push(node grid.Node[C, P], cost P) {
	f.entries.Push(frontierEntry[C, P]{node: node, cost: cost, seq: f.seq})
	f.seq++
}

func (f *frontier[C, P]) pop() (frontierEntry[C, P], bool) {
	return f.entries.Pop()
}

func (f *frontier[C, P]) Len() int { return f.entries.Size() }
