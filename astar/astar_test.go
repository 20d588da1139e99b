package astar_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/huskymaps/astar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testGraph is a small adjacency-list graph with a pluggable heuristic.
type testGraph struct {
	adj map[string][]astar.WeightedEdge[string]
	h   func(v, goal string) float64
}

func newTestGraph() *testGraph {
	return &testGraph{adj: make(map[string][]astar.WeightedEdge[string])}
}

// addEdge adds a directed edge u→v.
func (g *testGraph) addEdge(u, v string, w float64) {
	g.adj[u] = append(g.adj[u], astar.WeightedEdge[string]{From: u, To: v, Weight: w})
}

// addBoth adds u→v and v→u.
func (g *testGraph) addBoth(u, v string, w float64) {
	g.addEdge(u, v, w)
	g.addEdge(v, u, w)
}

func (g *testGraph) Neighbors(v string) []astar.WeightedEdge[string] { return g.adj[v] }

func (g *testGraph) EstimatedDistanceToGoal(v, goal string) float64 {
	if g.h == nil {
		return 0
	}
	return g.h(v, goal)
}

// gridGraph is a w×h 4-connected unit grid with a Manhattan heuristic.
type gridGraph struct {
	w, h    int
	blocked map[[2]int]bool
}

func (g gridGraph) Neighbors(v [2]int) []astar.WeightedEdge[[2]int] {
	var out []astar.WeightedEdge[[2]int]
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		n := [2]int{v[0] + d[0], v[1] + d[1]}
		if n[0] < 0 || n[1] < 0 || n[0] >= g.w || n[1] >= g.h || g.blocked[n] {
			continue
		}
		out = append(out, astar.WeightedEdge[[2]int]{From: v, To: n, Weight: 1})
	}
	return out
}

func (g gridGraph) EstimatedDistanceToGoal(v, goal [2]int) float64 {
	return math.Abs(float64(v[0]-goal[0])) + math.Abs(float64(v[1]-goal[1]))
}

// pathCost sums the cheapest edge weights along path, failing if a hop is missing.
func pathCost(t *testing.T, g *testGraph, path []string) float64 {
	t.Helper()
	total := 0.0
	for i := 1; i < len(path); i++ {
		best := math.Inf(1)
		for _, e := range g.adj[path[i-1]] {
			if e.To == path[i] && e.Weight < best {
				best = e.Weight
			}
		}
		require.False(t, math.IsInf(best, 1), "no edge %s→%s", path[i-1], path[i])
		total += best
	}
	return total
}

// TestFindShortestPath_Validation checks the fault cases.
func TestFindShortestPath_Validation(t *testing.T) {
	_, err := astar.FindShortestPath[string](nil, "A", "B", time.Second)
	assert.ErrorIs(t, err, astar.ErrNilGraph)

	g := newTestGraph()
	_, err = astar.FindShortestPath[string](g, "A", "B", -time.Second)
	assert.ErrorIs(t, err, astar.ErrNegativeTimeout)

	g.addEdge("A", "B", -1)
	_, err = astar.FindShortestPath[string](g, "A", "B", time.Minute)
	assert.ErrorIs(t, err, astar.ErrNegativeWeight)
}

// TestFindShortestPath_Triangle prefers the two-hop route over the direct edge.
func TestFindShortestPath_Triangle(t *testing.T) {
	g := newTestGraph()
	g.addBoth("A", "B", 1)
	g.addBoth("B", "C", 2)
	g.addBoth("A", "C", 5)

	res, err := astar.FindShortestPath[string](g, "A", "C", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, astar.Solved, res.Outcome)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, []string{"A", "B", "C"}, res.Solution())
	assert.InDelta(t, 3.0, res.Distance, 1e-12)
	assert.Positive(t, res.VerticesSettled)
}

// TestFindShortestPath_StartIsGoal returns the trivial path even with no time.
func TestFindShortestPath_StartIsGoal(t *testing.T) {
	g := newTestGraph()
	g.addBoth("A", "B", 1)

	res, err := astar.FindShortestPath[string](g, "A", "A", 0)
	require.NoError(t, err)
	assert.Equal(t, astar.Solved, res.Outcome)
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Zero(t, res.Distance)
	assert.Equal(t, 1, res.VerticesSettled)
}

// TestFindShortestPath_DecreaseKey covers a frontier vertex whose distance is
// lowered after it was first discovered.
func TestFindShortestPath_DecreaseKey(t *testing.T) {
	g := newTestGraph()
	g.addEdge("S", "X", 10) // discovered first, expensive
	g.addEdge("S", "Y", 1)
	g.addEdge("Y", "X", 1) // cheaper path found later
	g.addEdge("X", "T", 1)

	res, err := astar.FindShortestPath[string](g, "S", "T", time.Minute)
	require.NoError(t, err)
	require.Equal(t, astar.Solved, res.Outcome)
	assert.Equal(t, []string{"S", "Y", "X", "T"}, res.Path)
	assert.InDelta(t, 3.0, res.Distance, 1e-12)
}

// TestFindShortestPath_Unsolvable reports exhausted frontiers as Unsolvable.
func TestFindShortestPath_Unsolvable(t *testing.T) {
	g := newTestGraph()
	g.addBoth("A", "B", 1)
	g.addBoth("C", "D", 1)

	res, err := astar.FindShortestPath[string](g, "A", "D", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, astar.Unsolvable, res.Outcome)
	assert.Nil(t, res.Solution())
	assert.Equal(t, 2, res.VerticesSettled, "A and B are settled before giving up")

	// Directed edges are not walked backwards.
	g2 := newTestGraph()
	g2.addEdge("B", "A", 1)
	res, err = astar.FindShortestPath[string](g2, "A", "B", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, astar.Unsolvable, res.Outcome)
}

// TestFindShortestPath_SettledExcludesFrontier counts only removed vertices:
// S and G are settled while A and B stay discovered on the frontier.
func TestFindShortestPath_SettledExcludesFrontier(t *testing.T) {
	g := newTestGraph()
	g.addEdge("S", "A", 5)
	g.addEdge("S", "G", 1)
	g.addEdge("S", "B", 5)

	res, err := astar.FindShortestPath[string](g, "S", "G", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, astar.Solved, res.Outcome)
	assert.Equal(t, []string{"S", "G"}, res.Path)
	assert.Equal(t, 2, res.VerticesSettled)
}

// TestFindShortestPath_ZeroTimeout reports Timeout on a large grid.
func TestFindShortestPath_ZeroTimeout(t *testing.T) {
	g := gridGraph{w: 300, h: 300}

	res, err := astar.FindShortestPath[[2]int](g, [2]int{0, 0}, [2]int{299, 299}, 0)
	require.NoError(t, err)
	assert.Equal(t, astar.Timeout, res.Outcome)
	assert.Nil(t, res.Solution())
	assert.Equal(t, 1, res.VerticesSettled, "deadline is seen on the first relaxation")
}

// TestFindShortestPath_InjectedClock times out after a fixed number of ticks.
func TestFindShortestPath_InjectedClock(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := 0
	clock := func() time.Time {
		ticks++
		return base.Add(time.Duration(ticks) * time.Millisecond)
	}

	g := gridGraph{w: 100, h: 100}
	res, err := astar.FindShortestPath[[2]int](g, [2]int{0, 0}, [2]int{99, 99}, 20*time.Millisecond,
		astar.WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, astar.Timeout, res.Outcome)
	assert.GreaterOrEqual(t, res.Elapsed, 20*time.Millisecond)
}

// TestFindShortestPath_GridWithWall checks an exact detour length around a wall.
func TestFindShortestPath_GridWithWall(t *testing.T) {
	// Wall on column x=5 for y=0..8, leaving a gap at y=9.
	blocked := map[[2]int]bool{}
	for y := 0; y < 9; y++ {
		blocked[[2]int{5, y}] = true
	}
	g := gridGraph{w: 10, h: 10, blocked: blocked}

	res, err := astar.FindShortestPath[[2]int](g, [2]int{0, 0}, [2]int{9, 0}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, astar.Solved, res.Outcome)
	// 9 steps right + 9 down + 9 up.
	assert.InDelta(t, 27.0, res.Distance, 1e-12)
	assert.Len(t, res.Path, 28)
	for _, c := range res.Path {
		assert.False(t, blocked[c], "path crosses the wall at %v", c)
	}
}

// TestFindShortestPath_InconsistentHeuristic terminates with a valid path even
// when the heuristic would require reopening a settled vertex.
func TestFindShortestPath_InconsistentHeuristic(t *testing.T) {
	g := newTestGraph()
	g.addEdge("S", "A", 1)
	g.addEdge("S", "B", 2)
	g.addEdge("A", "C", 2)
	g.addEdge("B", "C", 0.5)
	g.addEdge("C", "G", 10)
	h := map[string]float64{"S": 0, "A": 0, "B": 2, "C": 0, "G": 0}
	g.h = func(v, _ string) float64 { return h[v] }

	res, err := astar.FindShortestPath[string](g, "S", "G", time.Minute)
	require.NoError(t, err)
	require.Equal(t, astar.Solved, res.Outcome)
	assert.Equal(t, "S", res.Path[0])
	assert.Equal(t, "G", res.Path[len(res.Path)-1])
	// C is settled via A (cost 3) before B offers 2.5; no reopening.
	assert.InDelta(t, 13.0, res.Distance, 1e-12)
	assert.InDelta(t, res.Distance, pathCost(t, g, res.Path), 1e-12)
}

// TestFindShortestPath_RandomAgainstBellmanFord compares distances on random
// graphs with a zero (trivially admissible) heuristic.
func TestFindShortestPath_RandomAgainstBellmanFord(t *testing.T) {
	r := rand.New(rand.NewSource(99))

	for round := 0; round < 30; round++ {
		n := 5 + r.Intn(40)
		g := newTestGraph()
		type edge struct {
			u, v string
			w    float64
		}
		var edges []edge
		for i := 0; i < n*3; i++ {
			u := fmt.Sprintf("v%d", r.Intn(n))
			v := fmt.Sprintf("v%d", r.Intn(n))
			w := float64(r.Intn(20))
			g.addEdge(u, v, w)
			edges = append(edges, edge{u, v, w})
		}

		// Reference distances from v0.
		ref := map[string]float64{"v0": 0}
		for i := 0; i < n; i++ {
			for _, e := range edges {
				du, ok := ref[e.u]
				if !ok {
					continue
				}
				if dv, ok := ref[e.v]; !ok || du+e.w < dv {
					ref[e.v] = du + e.w
				}
			}
		}

		goal := fmt.Sprintf("v%d", r.Intn(n))
		res, err := astar.FindShortestPath[string](g, "v0", goal, time.Minute)
		require.NoError(t, err)

		want, reachable := ref[goal]
		if !reachable {
			assert.Equal(t, astar.Unsolvable, res.Outcome, "round %d goal %s", round, goal)
			continue
		}
		require.Equal(t, astar.Solved, res.Outcome, "round %d goal %s", round, goal)
		assert.InDelta(t, want, res.Distance, 1e-9, "round %d goal %s", round, goal)
		assert.InDelta(t, res.Distance, pathCost(t, g, res.Path), 1e-9)
	}
}

// TestOutcome_String covers the outcome names.
func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "solved", astar.Solved.String())
	assert.Equal(t, "unsolvable", astar.Unsolvable.String())
	assert.Equal(t, "timeout", astar.Timeout.String())
	assert.Equal(t, "unknown", astar.Outcome(42).String())
}
