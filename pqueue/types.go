package pqueue

import "errors"

// Sentinel errors carried by misuse panics.
var (
	// ErrEmpty indicates Min or PopMin on an empty queue.
	ErrEmpty = errors.New("pqueue: queue is empty")

	// ErrStaleHandle indicates a handle that was never issued by this queue
	// or has already been retired.
	ErrStaleHandle = errors.New("pqueue: stale or unknown handle")

	// ErrNotDecreasing indicates Decrease with a key that is not strictly
	// smaller than the stored one.
	ErrNotDecreasing = errors.New("pqueue: new key is not smaller than current key")
)

// Handle identifies one queued entry. The zero Handle is never issued.
type Handle struct {
	slot uint32
	gen  uint32
}

// IsZero reports whether h is the zero (never issued) handle.
func (h Handle) IsZero() bool { return h.gen == 0 }

// LessFunc orders keys; it must be a strict weak order.
type LessFunc[K any] func(a, b K) bool

// item is one heap entry.
type item[K any, V any] struct {
	key   K
	value V
	slot  uint32
}
