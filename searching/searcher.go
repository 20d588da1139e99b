// Package searching finds named places on a street map, either by name
// prefix (for autocompletion) or by exact name.
package searching

import (
	"errors"

	"github.com/katalvlaran/huskymaps/autocomplete"
	"github.com/katalvlaran/huskymaps/streetmap"
)

// ErrNilGraph indicates New was called without a graph.
var ErrNilGraph = errors.New("searching: graph is nil")

// Searcher indexes the named nodes of a graph. It is read-only after New.
type Searcher struct {
	byName map[string][]*streetmap.Node
	prefix *autocomplete.Autocomplete // nil when the graph has no named node
}

// New indexes every named node of g. Each distinct name becomes one
// autocomplete term weighted by the largest importance among its nodes.
func New(g *streetmap.Graph) (*Searcher, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	s := &Searcher{byName: make(map[string][]*streetmap.Node)}
	weight := make(map[string]int64)
	var order []string
	for _, n := range g.Nodes() {
		if n.Name == "" {
			continue
		}
		w, seen := weight[n.Name]
		if !seen {
			order = append(order, n.Name)
		}
		if !seen || n.Importance > w {
			weight[n.Name] = n.Importance
		}
		s.byName[n.Name] = append(s.byName[n.Name], n)
	}
	if len(order) == 0 {
		return s, nil
	}

	terms := make([]autocomplete.Term, 0, len(order))
	for _, name := range order {
		t, err := autocomplete.NewTerm(name, weight[name])
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	ac, err := autocomplete.New(terms)
	if err != nil {
		return nil, err
	}
	s.prefix = ac

	return s, nil
}

// LocationsByPrefix returns the distinct names starting with prefix, most
// important first, ties broken alphabetically. An empty prefix matches every
// name.
func (s *Searcher) LocationsByPrefix(prefix string) []string {
	if s.prefix == nil {
		return nil
	}
	terms := s.prefix.FindMatchesForPrefix(prefix)
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.Query()
	}

	return out
}

// Locations returns the nodes named exactly name, in ascending id order.
// The returned slice is a copy.
func (s *Searcher) Locations(name string) []*streetmap.Node {
	nodes := s.byName[name]
	if len(nodes) == 0 {
		return nil
	}

	return append([]*streetmap.Node(nil), nodes...)
}
