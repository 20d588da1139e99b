// Package pq provides an indexed binary min-heap: a priority queue of unique
// items whose priorities can be changed after insertion.
//
// Overview:
//
//   - Items are any comparable type. Each item is present at most once.
//   - Priorities are float64 values; the item with the smallest priority is
//     served first.
//   - A side table maps every item to its current heap slot, so membership
//     tests and priority changes do not scan the heap.
//
// When to use:
//
//   - As the frontier of best-first searches (Dijkstra, A*) that need a real
//     decrease-key instead of the "lazy duplicate" strategy.
//   - Anywhere a scheduler must re-prioritise queued work in place.
//
// Algorithm:
//
//   - Classic binary heap stored in a growable slice with 1-based indices:
//     the children of slot i are 2i and 2i+1, its parent is i/2.
//   - Sift-up swaps with the parent while the parent's priority is strictly
//     greater.
//   - Sift-down swaps with the smaller child while that child's priority is
//     strictly smaller. Between two equal children the left one is taken.
//   - Every swap updates the index table in the same step.
//
// Ties between equal priorities are broken by heap shape only; callers must
// not rely on any order among equal priorities.
//
// Complexity:
//
//   - Add, RemoveMin, ChangePriority: O(log n)
//   - Contains, PeekMin, Len:         O(1)
//   - Space:                          O(n)
//
// Error handling (sentinel errors):
//
//   - ErrDuplicateItem: Add was called with an item already in the queue.
//   - ErrEmptyQueue:    PeekMin or RemoveMin on an empty queue.
//   - ErrNotFound:      ChangePriority on an item that is not in the queue.
//
// Thread safety:
//
//   - MinPQ is not safe for concurrent use. Confine a queue to one goroutine
//     or guard it externally.
//
// Example:
//
//	q := pq.New[string](0)
//	_ = q.Add("A", 5)
//	_ = q.Add("B", 2)
//	min, _ := q.RemoveMin() // "B"
package pq
