package search

import "container/heap"

// Frontier is the collection of unexpanded nodes; its push/pop
// discipline is the one piece of each strategy's behavior that differs.
type Frontier interface {
	Push(n *Node)
	Pop() (*Node, bool)
	Len() int
}

// fifoFrontier backs BFS: first generated, first expanded.
type fifoFrontier struct{ items []*Node }

func newFIFOFrontier() *fifoFrontier { return &fifoFrontier{} }

func (f *fifoFrontier) Push(n *Node) { f.items = append(f.items, n) }

func (f *fifoFrontier) Pop() (*Node, bool) {
	if len(f.items) == 0 {
		return nil, false
	}
	n := f.items[0]
	f.items = f.items[1:]
	return n, true
}

func (f *fifoFrontier) Len() int { return len(f.items) }

// lifoFrontier backs DFS: last generated, first expanded.
// §4.C7 requires children to be pushed in reverse generator order so
// that the first-generated child is the first one popped — Run (in
// engine.go) handles that ordering before calling Push repeatedly.
type lifoFrontier struct{ items []*Node }

func newLIFOFrontier() *lifoFrontier { return &lifoFrontier{} }

func (f *lifoFrontier) Push(n *Node) { f.items = append(f.items, n) }

func (f *lifoFrontier) Pop() (*Node, bool) {
	if len(f.items) == 0 {
		return nil, false
	}
	n := f.items[len(f.items)-1]
	f.items = f.items[:len(f.items)-1]
	return n, true
}

func (f *lifoFrontier) Len() int { return len(f.items) }

// priorityItem wraps a node with its insertion sequence number so that
// heap.Interface can break cost ties by insertion order (stable),
// matching the PriorityQueue pattern in brettlyne/cards/go_solver's
// solver.go.
type priorityItem struct {
	node *Node
	seq  int
}

type priorityHeap []priorityItem

func (h priorityHeap) Len() int { return len(h) }
func (h priorityHeap) Less(i, j int) bool {
	if h[i].node.Cost != h[j].node.Cost {
		return h[i].node.Cost < h[j].node.Cost
	}
	return h[i].seq < h[j].seq
}
func (h priorityHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *priorityHeap) Push(x any)   { *h = append(*h, x.(priorityItem)) }
func (h *priorityHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// priorityFrontier backs BestFS and A*: a min-heap keyed on Node.Cost,
// ascending, with insertion-order tie breaking.
type priorityFrontier struct {
	h      priorityHeap
	nextSeq int
}

func newPriorityFrontier() *priorityFrontier {
	pf := &priorityFrontier{}
	heap.Init(&pf.h)
	return pf
}

func (f *priorityFrontier) Push(n *Node) {
	heap.Push(&f.h, priorityItem{node: n, seq: f.nextSeq})
	f.nextSeq++
}

func (f *priorityFrontier) Pop() (*Node, bool) {
	if f.h.Len() == 0 {
		return nil, false
	}
	item := heap.Pop(&f.h).(priorityItem)
	return item.node, true
}

func (f *priorityFrontier) Len() int { return f.h.Len() }
