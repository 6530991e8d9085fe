package render

import "container/heap"

// ShapeQueue is a min-priority queue of shapes. Shapes with equal priority
// pop in insertion order. Popping is destructive; a drained queue is not
// meant to be refilled for another tile.
type ShapeQueue struct {
	items shapeHeap
	seq   uint64
}

// NewShapeQueue returns an empty queue.
func NewShapeQueue() *ShapeQueue {
	return &ShapeQueue{}
}

// Push inserts shape with the given priority.
func (q *ShapeQueue) Push(shape Shape, priority int) {
	heap.Push(&q.items, queued{shape: shape, priority: priority, seq: q.seq})
	q.seq++
}

// Pop removes and returns the lowest-priority shape, or nil when empty.
func (q *ShapeQueue) Pop() Shape {
	if len(q.items) == 0 {
		return nil
	}
	return heap.Pop(&q.items).(queued).shape
}

// Len returns the number of queued shapes.
func (q *ShapeQueue) Len() int {
	return len(q.items)
}

type queued struct {
	shape    Shape
	priority int
	seq      uint64
}

type shapeHeap []queued

func (h shapeHeap) Len() int { return len(h) }

func (h shapeHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h shapeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *shapeHeap) Push(x any) { *h = append(*h, x.(queued)) }

func (h *shapeHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = queued{}
	*h = old[:n-1]
	return it
}
