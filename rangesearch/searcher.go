package rangesearch

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/slices"
)

// Searcher performs range searches over a slice it owns.
type Searcher[T, U any] struct {
	items []T
	match Matcher[T, U]
}

// ForUnsorted copies items, stable-sorts the copy with cmp and returns a
// Searcher over it. cmp must order the elements so that match is monotonic
// for every target.
func ForUnsorted[T, U any](items []T, cmp func(a, b T) int, match Matcher[T, U]) (*Searcher[T, U], error) {
	if err := validate(items, match); err != nil {
		return nil, err
	}
	if cmp == nil {
		return nil, ErrNilComparator
	}

	sorted := make([]T, len(items))
	copy(sorted, items)
	slices.SortStableFunc(sorted, cmp)

	return &Searcher[T, U]{items: sorted, match: match}, nil
}

// New returns a Searcher over items, which must already be in an order that
// makes match monotonic. The slice is used as is and must not be modified
// afterwards.
func New[T, U any](items []T, match Matcher[T, U]) (*Searcher[T, U], error) {
	if err := validate(items, match); err != nil {
		return nil, err
	}

	return &Searcher[T, U]{items: items, match: match}, nil
}

func validate[T, U any](items []T, match Matcher[T, U]) error {
	if len(items) == 0 {
		return ErrEmptyInput
	}
	for i := range items {
		if isNil(items[i]) {
			return fmt.Errorf("%w: index %d", ErrNilElement, i)
		}
	}
	if match == nil {
		return ErrNilMatcher
	}

	return nil
}

// isNil reports whether v is a nil value of a nillable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// Len returns the number of elements searched.
func (s *Searcher[T, U]) Len() int { return len(s.items) }

// FindAllMatches returns the range of elements matching target, or an empty
// result when nothing matches.
//
// Complexity: O(log n) matcher calls.
func (s *Searcher[T, U]) FindAllMatches(target U) MatchResult[T] {
	lo, hi := 0, len(s.items)-1
	found := -1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		c := s.match(s.items[mid], target)
		if c == 0 {
			found = mid
			break
		}
		if c > 0 {
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}
	if found < 0 {
		return MatchResult[T]{items: s.items}
	}

	// Everything left of lo is known to be negative and everything right of
	// hi positive, so each bisection stays inside [lo, found] or [found, hi].
	return MatchResult[T]{
		items: s.items,
		start: s.firstMatch(target, lo, found),
		end:   s.lastMatch(target, found, hi) + 1,
	}
}

// firstMatch returns the smallest index in [lo, found] that matches target.
// items[found] is known to match.
func (s *Searcher[T, U]) firstMatch(target U, lo, found int) int {
	hi := found
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.match(s.items[mid], target) == 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}

// lastMatch returns the largest index in [found, hi] that matches target.
// items[found] is known to match.
func (s *Searcher[T, U]) lastMatch(target U, found, hi int) int {
	lo := found
	for lo < hi {
		mid := int(uint(lo+hi+1) >> 1)
		if s.match(s.items[mid], target) == 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo
}
