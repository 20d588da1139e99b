package pq

import "fmt"

// CheckInvariants verifies the heap property and the consistency of the
// index table. It is exported for the external test package only.
func (q *MinPQ[T]) CheckInvariants() error {
	n := q.Len()
	if len(q.index) != n {
		return fmt.Errorf("index size %d != heap size %d", len(q.index), n)
	}
	for i := rootIndex; i <= n; i++ {
		e := q.heap[i]
		if got, ok := q.index[e.item]; !ok || got != i {
			return fmt.Errorf("index[%v] = %d (present=%v), want %d", e.item, got, ok, i)
		}
		for _, c := range [2]int{2 * i, 2*i + 1} {
			if c <= n && q.heap[c].priority < e.priority {
				return fmt.Errorf("slot %d priority %v < parent %d priority %v",
					c, q.heap[c].priority, i, e.priority)
			}
		}
	}

	return nil
}
