// Package pqueue provides an addressable min-priority queue with stable
// handles, used by the vector-keyed multi-objective search and by the scalar
// reverse searches that compute heuristics.
//
// Structure:
//
//   - A binary heap (container/heap) of (key, value, slot) entries.
//   - A slot table mapping every live handle to its heap position. Every Swap
//     updates the table, so Decrease and Remove run in O(log n).
//   - Handles are {slot, generation}. Retiring a handle (PopMin, Remove, Clear)
//     bumps the slot generation, turning any copy of the old handle into a
//     tombstone. Slots are recycled through a free list.
//
// Contract:
//
//   - Insert(key, value) → Handle
//   - Min() / PopMin() → (key, value); panic on an empty queue
//   - Decrease(handle, key) requires key strictly less than the stored key
//   - Remove(handle)
//
// Misuse (stale handle, non-decreasing key, empty pop) panics with one of the
// sentinel errors below: it is a programming error, not a runtime condition,
// and callers must retire every handle exactly once.
//
// Ordering between equal keys is unspecified but deterministic for a given
// sequence of operations.
//
// Complexity:
//
//   - Insert, PopMin, Decrease, Remove: O(log n)
//   - Min, Len, Contains, Key: O(1)
package pqueue
