// SPDX-License-Identifier: MIT
//
// File: queue.go
// Role: Addressable binary heap with slot-map handles.
// Concurrency:
//   - Not safe for concurrent use; a queue belongs to one running search.

package pqueue

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/namoa/criteria"
)

// binHeap implements heap.Interface and keeps the slot → position table in
// sync on every Swap, Push and Pop.
type binHeap[K any, V any] struct {
	less  LessFunc[K]
	items []item[K, V]
	pos   []int // slot → heap index; -1 when the slot is free
}

func (h *binHeap[K, V]) Len() int { return len(h.items) }

func (h *binHeap[K, V]) Less(i, j int) bool { return h.less(h.items[i].key, h.items[j].key) }

func (h *binHeap[K, V]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].slot] = i
	h.pos[h.items[j].slot] = j
}

func (h *binHeap[K, V]) Push(x any) {
	it := x.(item[K, V])
	h.pos[it.slot] = len(h.items)
	h.items = append(h.items, it)
}

func (h *binHeap[K, V]) Pop() any {
	n := len(h.items)
	it := h.items[n-1]
	var zero item[K, V]
	h.items[n-1] = zero // release references held by key/value
	h.items = h.items[:n-1]
	h.pos[it.slot] = -1

	return it
}

// Queue is an addressable min-priority queue keyed by K carrying values V.
type Queue[K any, V any] struct {
	h    binHeap[K, V]
	gens []uint32 // slot → current generation
	free []uint32 // recycled slots
}

// New returns an empty queue ordered by less.
func New[K any, V any](less LessFunc[K]) *Queue[K, V] {
	if less == nil {
		panic("pqueue: nil LessFunc")
	}

	return &Queue[K, V]{h: binHeap[K, V]{less: less}}
}

// NewVector returns a queue keyed by cost vectors in lexicographic order.
func NewVector[V any]() *Queue[criteria.Vector, V] {
	return New[criteria.Vector, V](criteria.Less)
}

// NewScalar returns a queue keyed by a single criterion value.
func NewScalar[V any]() *Queue[criteria.Weight, V] {
	return New[criteria.Weight, V](func(a, b criteria.Weight) bool { return a < b })
}

// Len returns the number of queued entries.
func (q *Queue[K, V]) Len() int { return q.h.Len() }

// Empty reports whether the queue holds no entries.
func (q *Queue[K, V]) Empty() bool { return q.h.Len() == 0 }

// Insert queues value under key and returns its handle.
// Complexity: O(log n).
func (q *Queue[K, V]) Insert(key K, value V) Handle {
	var slot uint32
	if n := len(q.free); n > 0 {
		slot = q.free[n-1]
		q.free = q.free[:n-1]
	} else {
		slot = uint32(len(q.gens))
		q.gens = append(q.gens, 1)
		q.h.pos = append(q.h.pos, -1)
	}
	heap.Push(&q.h, item[K, V]{key: key, value: value, slot: slot})

	return Handle{slot: slot, gen: q.gens[slot]}
}

// Min returns the smallest key and its value without removing it.
func (q *Queue[K, V]) Min() (K, V) {
	if q.h.Len() == 0 {
		panic(ErrEmpty)
	}
	it := q.h.items[0]

	return it.key, it.value
}

// PopMin removes the smallest entry and retires its handle.
// Complexity: O(log n).
func (q *Queue[K, V]) PopMin() (K, V) {
	if q.h.Len() == 0 {
		panic(ErrEmpty)
	}
	it := heap.Pop(&q.h).(item[K, V])
	q.retire(it.slot)

	return it.key, it.value
}

// Contains reports whether h refers to a live entry.
func (q *Queue[K, V]) Contains(h Handle) bool {
	return !h.IsZero() &&
		int(h.slot) < len(q.gens) &&
		q.gens[h.slot] == h.gen &&
		q.h.pos[h.slot] >= 0
}

// Key returns the key currently stored for h.
func (q *Queue[K, V]) Key(h Handle) K {
	return q.h.items[q.index(h)].key
}

// Value returns the value stored for h.
func (q *Queue[K, V]) Value(h Handle) V {
	return q.h.items[q.index(h)].value
}

// Decrease lowers the key of h. The new key must be strictly smaller.
// Complexity: O(log n).
func (q *Queue[K, V]) Decrease(h Handle, key K) {
	i := q.index(h)
	if !q.h.less(key, q.h.items[i].key) {
		panic(ErrNotDecreasing)
	}
	q.h.items[i].key = key
	heap.Fix(&q.h, i)
}

// Remove deletes the entry of h and retires the handle.
// Complexity: O(log n).
func (q *Queue[K, V]) Remove(h Handle) (K, V) {
	i := q.index(h)
	it := heap.Remove(&q.h, i).(item[K, V])
	q.retire(it.slot)

	return it.key, it.value
}

// Clear drops every entry. Outstanding handles become stale.
func (q *Queue[K, V]) Clear() {
	for q.h.Len() > 0 {
		it := q.h.Pop().(item[K, V])
		q.retire(it.slot)
	}
}

func (q *Queue[K, V]) index(h Handle) int {
	if !q.Contains(h) {
		panic(fmt.Errorf("%w: slot=%d gen=%d", ErrStaleHandle, h.slot, h.gen))
	}

	return q.h.pos[h.slot]
}

func (q *Queue[K, V]) retire(slot uint32) {
	q.gens[slot]++
	if q.gens[slot] == 0 { // skip the zero generation on wrap-around
		q.gens[slot] = 1
	}
	q.free = append(q.free, slot)
}
