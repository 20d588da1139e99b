package pq

import "fmt"

// MinPQ is an indexed min-priority queue of unique items.
//
// heap[0] is a placeholder so that the root lives at rootIndex and the
// parent/child arithmetic stays 1-based. index[item] is always the slot of
// item inside heap; the two are updated together on every structural change.
type MinPQ[T comparable] struct {
	heap  []entry[T]
	index map[T]int
}

// New returns an empty queue with room for capacity items before the first
// reallocation. A non-positive capacity is treated as zero.
func New[T comparable](capacity int) *MinPQ[T] {
	if capacity < 0 {
		capacity = 0
	}
	h := make([]entry[T], 1, capacity+1)

	return &MinPQ[T]{
		heap:  h,
		index: make(map[T]int, capacity),
	}
}

// Len returns the number of items currently queued.
func (q *MinPQ[T]) Len() int { return len(q.heap) - 1 }

// IsEmpty reports whether the queue holds no items.
func (q *MinPQ[T]) IsEmpty() bool { return q.Len() == 0 }

// Contains reports whether item is in the queue.
func (q *MinPQ[T]) Contains(item T) bool {
	_, ok := q.index[item]
	return ok
}

// Priority returns the current priority of item and whether it is queued.
func (q *MinPQ[T]) Priority(item T) (float64, bool) {
	i, ok := q.index[item]
	if !ok {
		return 0, false
	}

	return q.heap[i].priority, true
}

// Add inserts item with the given priority.
// Returns ErrDuplicateItem if item is already queued; the queue is unchanged.
//
// Complexity: O(log n).
func (q *MinPQ[T]) Add(item T, priority float64) error {
	if q.Contains(item) {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}
	q.heap = append(q.heap, entry[T]{item: item, priority: priority})
	last := q.Len()
	q.index[item] = last
	q.siftUp(last)

	return nil
}

// PeekMin returns the item with the smallest priority without removing it.
// Returns ErrEmptyQueue if the queue is empty.
func (q *MinPQ[T]) PeekMin() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.heap[rootIndex].item, nil
}

// RemoveMin removes and returns the item with the smallest priority.
// The last slot is moved into the root and sifted down.
// Returns ErrEmptyQueue if the queue is empty.
//
// Complexity: O(log n) amortised (the slice may shrink its length but never
// reallocates on removal).
func (q *MinPQ[T]) RemoveMin() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmptyQueue
	}

	last := q.Len()
	top := q.heap[rootIndex].item
	q.swap(rootIndex, last)

	// Clear the vacated slot so the removed item is not retained by the backing array.
	q.heap[last] = entry[T]{}
	q.heap = q.heap[:last]
	delete(q.index, top)

	if !q.IsEmpty() {
		q.siftDown(rootIndex)
	}

	return top, nil
}

// ChangePriority sets a new priority for item and restores heap order,
// sifting up when the item became smaller than its parent and down otherwise.
// Returns ErrNotFound if item is not queued.
//
// Complexity: O(log n).
func (q *MinPQ[T]) ChangePriority(item T, priority float64) error {
	i, ok := q.index[item]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, item)
	}
	q.heap[i].priority = priority

	if i > rootIndex && q.heap[i/2].priority > priority {
		q.siftUp(i)
	} else {
		q.siftDown(i)
	}

	return nil
}

// siftUp moves the entry at slot i towards the root while its parent has a
// strictly greater priority.
func (q *MinPQ[T]) siftUp(i int) {
	var parent int
	for i > rootIndex {
		parent = i / 2
		if q.heap[parent].priority <= q.heap[i].priority {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

// siftDown moves the entry at slot i towards the leaves while the smaller of
// its children has a strictly smaller priority.
func (q *MinPQ[T]) siftDown(i int) {
	n := q.Len()
	var left, right, child int
	for {
		left = 2 * i
		if left > n {
			return
		}
		child = left
		right = left + 1
		if right <= n && q.heap[right].priority < q.heap[left].priority {
			child = right
		}
		if q.heap[child].priority >= q.heap[i].priority {
			return
		}
		q.swap(i, child)
		i = child
	}
}

// swap exchanges slots a and b and records both new positions.
func (q *MinPQ[T]) swap(a, b int) {
	q.heap[a], q.heap[b] = q.heap[b], q.heap[a]
	q.index[q.heap[a].item] = a
	q.index[q.heap[b].item] = b
}
