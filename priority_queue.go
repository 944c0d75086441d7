package main

import (
	"container/heap"
)

// queueItem is a heap entry. seq records insertion order for tie-breaks.
type queueItem struct {
	value    Point
	priority float64
	seq      uint64
}

// queueItems implements heap.Interface as a binary min-heap
type queueItems []queueItem

func (q queueItems) Len() int { return len(q) }

func (q queueItems) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q queueItems) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *queueItems) Push(x interface{}) {
	*q = append(*q, x.(queueItem))
}

func (q *queueItems) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[0 : n-1]
	return item
}

// PriorityQueue orders points by priority, lowest first. Equal priorities
// come out in insertion order.
type PriorityQueue struct {
	items queueItems
	seq   uint64
}

// Insert adds value with the given priority (sift-up).
func (pq *PriorityQueue) Insert(value Point, priority float64) {
	heap.Push(&pq.items, queueItem{value: value, priority: priority, seq: pq.seq})
	pq.seq++
}

// ExtractMin removes and returns the lowest-priority entry (sift-down).
// ok is false when the queue is empty.
func (pq *PriorityQueue) ExtractMin() (value Point, priority float64, ok bool) {
	if pq.items.Len() == 0 {
		return Point{}, 0, false
	}
	item := heap.Pop(&pq.items).(queueItem)
	return item.value, item.priority, true
}

func (pq *PriorityQueue) Len() int {
	return pq.items.Len()
}
