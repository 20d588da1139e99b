// Package rangesearch finds the contiguous run of elements in a sorted slice
// that match a target under a three-way matcher.
//
// Contract:
//
//   - A Matcher returns a negative value for elements ordered before the
//     matching run, zero for matches and a positive value after it.
//   - For every target the matcher values along the slice must read
//     "negatives, zeros, positives". ForUnsorted establishes this by sorting
//     with a comparator the caller guarantees to be compatible with the
//     matcher. When the contract is violated the match boundaries are
//     unspecified.
//
// Algorithm:
//
//   - A binary search locates any matching index.
//   - Two bounded bisections then locate the first and last match, each
//     searching only between the found index and the innermost non-matching
//     index observed on that side.
//   - Total cost is O(log n) matcher calls regardless of the number of matches.
//
// The Searcher is immutable after construction and safe for concurrent reads.
//
// Errors:
//
//	ErrEmptyInput     – no elements.
//	ErrNilElement     – a nil pointer, interface, map, slice, func or chan element.
//	ErrNilComparator  – ForUnsorted without a comparator.
//	ErrNilMatcher     – no matcher.
package rangesearch
