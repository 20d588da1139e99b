package rangesearch

import "errors"

// Sentinel errors for Searcher construction.
var (
	// ErrEmptyInput indicates that the element slice is nil or empty.
	ErrEmptyInput = errors.New("rangesearch: input must contain at least one element")

	// ErrNilElement indicates that an element of the slice is nil.
	ErrNilElement = errors.New("rangesearch: input contains a nil element")

	// ErrNilComparator indicates that no sort comparator was supplied.
	ErrNilComparator = errors.New("rangesearch: comparator is nil")

	// ErrNilMatcher indicates that no matcher was supplied.
	ErrNilMatcher = errors.New("rangesearch: matcher is nil")
)

// Matcher compares item against target: negative when item sorts before the
// matching run, zero when it matches, positive when it sorts after.
type Matcher[T, U any] func(item T, target U) int

// MatchResult is the half-open range [start, end) of matching elements.
type MatchResult[T any] struct {
	items      []T
	start, end int
}

// Count returns the number of matching elements.
func (m MatchResult[T]) Count() int { return m.end - m.start }

// Unsorted returns a copy of the matching elements. The copy happens to be in
// sort order, but callers should not rely on any order.
func (m MatchResult[T]) Unsorted() []T {
	out := make([]T, m.Count())
	copy(out, m.items[m.start:m.end])
	return out
}
