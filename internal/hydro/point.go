package hydro

import "container/heap"

// Point is a priority queue entry: a cell and the elevation it is queued at.
type Point struct {
	X, Y int
	Z    float64
}

// less orders points lowest elevation first. Equal elevations are common on
// flat ground, so ties fall back to row-major coordinate order to keep every
// flood and wavefront reproducible.
func (p Point) less(o Point) bool {
	if p.Z != o.Z {
		return p.Z < o.Z
	}
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

type pointHeap []Point

func (h pointHeap) Len() int { return len(h) }
func (h pointHeap) Less(i, j int) bool { return h[i].less(h[j]) }
func (h pointHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *pointHeap) Push(x any) { *h = append(*h, x.(Point)) }
func (h *pointHeap) Pop() any {
	old := *h
	n := len(old)
	p := old[n-1]
	*h = old[:n-1]
	return p
}

// PointQueue is a min-heap of points keyed by elevation.
type PointQueue struct {
	h pointHeap
}

// NewPointQueue returns an empty queue with room for capacity points.
func NewPointQueue(capacity int) *PointQueue {
	return &PointQueue{h: make(pointHeap, 0, capacity)}
}

// Push enqueues p.
func (q *PointQueue) Push(p Point) { heap.Push(&q.h, p) }

// Pop removes and returns the lowest point. ok is false when the queue is empty.
func (q *PointQueue) Pop() (p Point, ok bool) {
	if len(q.h) == 0 {
		return Point{}, false
	}
	return heap.Pop(&q.h).(Point), true
}

// Len returns the number of queued points.
func (q *PointQueue) Len() int { return len(q.h) }

// Reset empties the queue, keeping its storage.
func (q *PointQueue) Reset() { q.h = q.h[:0] }
