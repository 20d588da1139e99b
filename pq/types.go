package pq

import "errors"

// Sentinel errors returned by MinPQ operations.
var (
	// ErrDuplicateItem indicates that Add was called with an item already present.
	ErrDuplicateItem = errors.New("pq: item already present")

	// ErrEmptyQueue indicates that PeekMin or RemoveMin was called on an empty queue.
	ErrEmptyQueue = errors.New("pq: queue is empty")

	// ErrNotFound indicates that ChangePriority referenced an item not in the queue.
	ErrNotFound = errors.New("pq: item not found")
)

// rootIndex is the heap slot of the minimum. Slot 0 is never used.
const rootIndex = 1

// entry is one heap slot: the stored item and its current priority.
type entry[T comparable] struct {
	item     T
	priority float64
}
