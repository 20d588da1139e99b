package rangesearch_test

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/katalvlaran/huskymaps/rangesearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prefixMatch is a three-way prefix matcher compatible with strings.Compare.
func prefixMatch(item, prefix string) int {
	if len(item) > len(prefix) {
		item = item[:len(prefix)]
	}
	return strings.Compare(item, prefix)
}

func mustSearcher(t *testing.T, items []string) *rangesearch.Searcher[string, string] {
	t.Helper()
	s, err := rangesearch.ForUnsorted(items, strings.Compare, prefixMatch)
	require.NoError(t, err)
	return s
}

// TestForUnsorted_Validation covers every construction fault.
func TestForUnsorted_Validation(t *testing.T) {
	_, err := rangesearch.ForUnsorted[string, string](nil, strings.Compare, prefixMatch)
	assert.ErrorIs(t, err, rangesearch.ErrEmptyInput)

	_, err = rangesearch.ForUnsorted([]string{}, strings.Compare, prefixMatch)
	assert.ErrorIs(t, err, rangesearch.ErrEmptyInput)

	_, err = rangesearch.ForUnsorted([]string{"a"}, nil, prefixMatch)
	assert.ErrorIs(t, err, rangesearch.ErrNilComparator)

	_, err = rangesearch.ForUnsorted[string, string]([]string{"a"}, strings.Compare, nil)
	assert.ErrorIs(t, err, rangesearch.ErrNilMatcher)

	a, b := "a", "b"
	ptrs := []*string{&a, nil, &b}
	_, err = rangesearch.ForUnsorted(ptrs,
		func(x, y *string) int { return strings.Compare(*x, *y) },
		func(x *string, p string) int { return prefixMatch(*x, p) })
	assert.ErrorIs(t, err, rangesearch.ErrNilElement)

	_, err = rangesearch.New[*string, string](ptrs, func(x *string, p string) int { return 0 })
	assert.ErrorIs(t, err, rangesearch.ErrNilElement)
}

// TestFindAllMatches_Scenario checks the documented four-term example.
func TestFindAllMatches_Scenario(t *testing.T) {
	s := mustSearcher(t, []string{"ba", "abc", "b", "ab"})

	m := s.FindAllMatches("ab")
	assert.Equal(t, 2, m.Count())
	assert.ElementsMatch(t, []string{"ab", "abc"}, m.Unsorted())

	m = s.FindAllMatches("z")
	assert.Zero(t, m.Count())
	assert.Empty(t, m.Unsorted())

	m = s.FindAllMatches("b")
	assert.ElementsMatch(t, []string{"b", "ba"}, m.Unsorted())

	m = s.FindAllMatches("")
	assert.Equal(t, 4, m.Count(), "empty prefix matches everything")
}

// TestForUnsorted_CopiesInput leaves the caller's slice untouched.
func TestForUnsorted_CopiesInput(t *testing.T) {
	in := []string{"c", "a", "b"}
	s := mustSearcher(t, in)
	assert.Equal(t, []string{"c", "a", "b"}, in)
	assert.Equal(t, 3, s.Len())
}

// TestFindAllMatches_Edges puts the run at the very start and end of the slice.
func TestFindAllMatches_Edges(t *testing.T) {
	s := mustSearcher(t, []string{"aa", "ab", "ac", "m", "za", "zb"})

	assert.ElementsMatch(t, []string{"aa", "ab", "ac"}, s.FindAllMatches("a").Unsorted())
	assert.ElementsMatch(t, []string{"za", "zb"}, s.FindAllMatches("z").Unsorted())
	assert.ElementsMatch(t, []string{"m"}, s.FindAllMatches("m").Unsorted())
	assert.Zero(t, s.FindAllMatches("0").Count(), "before every element")
	assert.Zero(t, s.FindAllMatches("zz").Count(), "after every element")
	assert.Zero(t, s.FindAllMatches("b").Count(), "between elements")

	single := mustSearcher(t, []string{"only"})
	assert.Equal(t, 1, single.FindAllMatches("on").Count())
	assert.Zero(t, single.FindAllMatches("x").Count())
}

// TestFindAllMatches_RandomAgainstLinearScan compares against a reference
// filter for random lexicons and prefixes.
func TestFindAllMatches_RandomAgainstLinearScan(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	const alphabet = "abc"
	word := func(maxLen int) string {
		n := r.Intn(maxLen + 1)
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteByte(alphabet[r.Intn(len(alphabet))])
		}
		return sb.String()
	}

	for round := 0; round < 50; round++ {
		items := make([]string, 1+r.Intn(300))
		for i := range items {
			items[i] = word(6)
		}
		s := mustSearcher(t, items)

		for q := 0; q < 40; q++ {
			prefix := word(4)
			var want []string
			for _, it := range items {
				if strings.HasPrefix(it, prefix) {
					want = append(want, it)
				}
			}

			got := s.FindAllMatches(prefix)
			require.Equal(t, len(want), got.Count(), "round %d prefix %q", round, prefix)
			gotItems := got.Unsorted()
			sort.Strings(want)
			sort.Strings(gotItems)
			if len(want) == 0 {
				require.Empty(t, gotItems)
				continue
			}
			require.Equal(t, want, gotItems, "round %d prefix %q", round, prefix)
		}
	}
}

// TestFindAllMatches_LogarithmicCalls counts matcher invocations on a huge run.
func TestFindAllMatches_LogarithmicCalls(t *testing.T) {
	const n = 1 << 16
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}

	calls := 0
	// [1000, 60000) matches target 0.
	s, err := rangesearch.New(items, func(item, _ int) int {
		calls++
		switch {
		case item < 1000:
			return -1
		case item >= 60000:
			return 1
		default:
			return 0
		}
	})
	require.NoError(t, err)

	m := s.FindAllMatches(0)
	assert.Equal(t, 59000, m.Count())
	assert.LessOrEqual(t, calls, 3*17, "expected O(log n) matcher calls, got %d", calls)
}

// TestFindAllMatches_StructElements searches a slice of records by key prefix.
func TestFindAllMatches_StructElements(t *testing.T) {
	type rec struct {
		key string
		n   int
	}
	var items []rec
	for i := 0; i < 20; i++ {
		items = append(items, rec{key: fmt.Sprintf("k%02d", 19-i), n: i})
	}
	s, err := rangesearch.ForUnsorted(items,
		func(a, b rec) int { return strings.Compare(a.key, b.key) },
		func(it rec, p string) int { return prefixMatch(it.key, p) })
	require.NoError(t, err)

	m := s.FindAllMatches("k1")
	assert.Equal(t, 10, m.Count())
	for _, it := range m.Unsorted() {
		assert.True(t, strings.HasPrefix(it.key, "k1"))
	}
}
