// Package pqueue provides a binary min-heap keyed by float64 priority with
// first-inserted-wins tie-breaking, used by the weighted search planners.
package pqueue

import "container/heap"

// item pairs a value with its priority and insertion sequence number.
type item[T any] struct {
	value T
	key   float64
	seq   uint64
}

// items is the heap.Interface backing store, ordered by (key, seq) ascending.
type items[T any] []item[T]

func (h items[T]) Len() int { return len(h) }

func (h items[T]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq < h[j].seq
}

func (h items[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *items[T]) Push(x any) { *h = append(*h, x.(item[T])) }

func (h *items[T]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	var zero item[T]
	old[n-1] = zero
	*h = old[:n-1]

	return it
}

// Queue is a min-priority queue. Entries with equal keys pop in insertion order.
// The zero value is ready to use. Queue is not safe for concurrent use.
type Queue[T any] struct {
	h   items[T]
	seq uint64
}

// Push inserts value with the given priority key.
// Complexity: O(log n).
func (q *Queue[T]) Push(value T, key float64) {
	heap.Push(&q.h, item[T]{value: value, key: key, seq: q.seq})
	q.seq++
}

// Pop removes and returns the minimum-key entry; ok is false when empty.
// Complexity: O(log n).
func (q *Queue[T]) Pop() (value T, key float64, ok bool) {
	if len(q.h) == 0 {
		return value, 0, false
	}
	it := heap.Pop(&q.h).(item[T])

	return it.value, it.key, true
}

// Peek returns the minimum-key entry without removing it.
func (q *Queue[T]) Peek() (value T, key float64, ok bool) {
	if len(q.h) == 0 {
		return value, 0, false
	}

	return q.h[0].value, q.h[0].key, true
}

// Len returns the number of queued entries.
func (q *Queue[T]) Len() int { return len(q.h) }
