package autocomplete

import (
	"github.com/katalvlaran/huskymaps/rangesearch"
	"golang.org/x/exp/slices"
)

// Autocomplete answers prefix queries over a fixed lexicon.
type Autocomplete struct {
	searcher *rangesearch.Searcher[Term, string]
}

// New builds an Autocomplete over terms. The slice is copied.
// Returns ErrEmptyLexicon when terms is empty, or a rangesearch error for a
// nil term.
func New(terms []Term) (*Autocomplete, error) {
	if len(terms) == 0 {
		return nil, ErrEmptyLexicon
	}
	s, err := rangesearch.ForUnsorted[Term, string](terms, QueryOrder, MatchesPrefix)
	if err != nil {
		return nil, err
	}

	return &Autocomplete{searcher: s}, nil
}

// FindMatchesForPrefix returns every term whose query starts with prefix,
// heaviest first; equal weights are ordered by query.
//
// Complexity: O(log n + k log k) for k matches.
func (a *Autocomplete) FindMatchesForPrefix(prefix string) []Term {
	out := a.searcher.FindAllMatches(prefix).Unsorted()
	slices.SortStableFunc(out, func(x, y Term) int {
		if c := ReverseWeightOrder(x, y); c != 0 {
			return c
		}
		return QueryOrder(x, y)
	})

	return out
}

// Count returns how many terms start with prefix without materialising them.
func (a *Autocomplete) Count(prefix string) int {
	return a.searcher.FindAllMatches(prefix).Count()
}
