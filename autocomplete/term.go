// Package autocomplete suggests lexicon entries for a typed prefix, heaviest
// first. It adapts weighted terms to the rangesearch contract: terms are
// kept in lexicographic query order, in which the prefix matcher is
// monotonic.
package autocomplete

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNegativeWeight indicates a term was created with a weight below zero.
var ErrNegativeWeight = errors.New("autocomplete: term weight must be non-negative")

// ErrEmptyLexicon indicates that an Autocomplete was built from no terms.
var ErrEmptyLexicon = errors.New("autocomplete: lexicon is empty")

// Term is a lexicon entry: a query string and its importance.
type Term interface {
	Query() string
	Weight() int64
}

// DefaultTerm is the plain value implementation of Term.
type DefaultTerm struct {
	query  string
	weight int64
}

// NewTerm returns a DefaultTerm, rejecting negative weights.
func NewTerm(query string, weight int64) (DefaultTerm, error) {
	if weight < 0 {
		return DefaultTerm{}, fmt.Errorf("%w: %q has weight %d", ErrNegativeWeight, query, weight)
	}
	return DefaultTerm{query: query, weight: weight}, nil
}

// Query returns the term text.
func (t DefaultTerm) Query() string { return t.query }

// Weight returns the term importance.
func (t DefaultTerm) Weight() int64 { return t.weight }

// String renders the term as "query (weight)".
func (t DefaultTerm) String() string {
	return fmt.Sprintf("%s (%d)", t.query, t.weight)
}

// QueryOrder compares two terms lexicographically by query.
func QueryOrder(a, b Term) int { return strings.Compare(a.Query(), b.Query()) }

// ReverseWeightOrder orders heavier terms first.
func ReverseWeightOrder(a, b Term) int {
	switch wa, wb := a.Weight(), b.Weight(); {
	case wa > wb:
		return -1
	case wa < wb:
		return 1
	default:
		return 0
	}
}

// MatchesPrefix compares the first len(prefix) bytes of t's query with prefix:
// zero when the query starts with prefix, otherwise the sign of their
// lexicographic order. A query shorter than prefix is compared whole, which
// keeps the result monotonic in QueryOrder.
func MatchesPrefix(t Term, prefix string) int {
	q := t.Query()
	if len(q) > len(prefix) {
		q = q[:len(prefix)]
	}
	return strings.Compare(q, prefix)
}
