package search

import "container/heap"

// openItem is one entry of the A* open list: an arena index plus the
// f/h values the heap orders on, cached so Less never has to touch
// the arena.
type openItem struct {
	nodeIdx int
	f       int
	h       int
	index   int // managed by container/heap
}

// openHeap is a min-heap ordered by f ascending, h ascending as the
// tiebreak. The engine is strictly single-threaded, so the heap
// needs no locking.
type openHeap []*openItem

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].h < h[j].h
}

func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *openHeap) Push(x any) {
	item := x.(*openItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// openList is the priority queue A* pops its frontier from.
type openList struct {
	items openHeap
}

func newOpenList() *openList {
	ol := &openList{}
	heap.Init(&ol.items)
	return ol
}

func (ol *openList) push(nodeIdx, f, h int) {
	heap.Push(&ol.items, &openItem{nodeIdx: nodeIdx, f: f, h: h})
}

func (ol *openList) pop() (int, bool) {
	if ol.items.Len() == 0 {
		return 0, false
	}
	item := heap.Pop(&ol.items).(*openItem)
	return item.nodeIdx, true
}

func (ol *openList) len() int { return ol.items.Len() }
