package streetmap

import (
	"fmt"

	"github.com/katalvlaran/huskymaps/astar"
	"github.com/paulmach/orb/geo"
	"golang.org/x/exp/slices"
)

// Graph is an undirected street network stored as directed adjacency lists.
type Graph struct {
	nodes map[NodeID]*Node
	adj   map[NodeID][]astar.WeightedEdge[NodeID]
	edges int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[NodeID]*Node),
		adj:   make(map[NodeID][]astar.WeightedEdge[NodeID]),
	}
}

// AddNode stores a copy of n.
func (g *Graph) AddNode(n Node) error {
	if n.Lat < -90 || n.Lat > 90 || n.Lon < -180 || n.Lon > 180 {
		return fmt.Errorf("%w: node %d at (%g, %g)", ErrBadCoordinate, n.ID, n.Lat, n.Lon)
	}
	if _, ok := g.nodes[n.ID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, n.ID)
	}
	g.nodes[n.ID] = &n

	return nil
}

// AddEdge connects a and b in both directions with their great-circle
// distance as weight. Self-loops are ignored.
func (g *Graph) AddEdge(a, b NodeID) error {
	na, ok := g.nodes[a]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, a)
	}
	nb, ok := g.nodes[b]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, b)
	}
	if a == b {
		return nil
	}

	w := geo.Distance(na.Point(), nb.Point())
	g.adj[a] = append(g.adj[a], astar.WeightedEdge[NodeID]{From: a, To: b, Weight: w})
	g.adj[b] = append(g.adj[b], astar.WeightedEdge[NodeID]{From: b, To: a, Weight: w})
	g.edges++

	return nil
}

// AddWay connects consecutive nodes of ids. Every id must already exist;
// on error no edge of the way is added.
func (g *Graph) AddWay(ids []NodeID) error {
	for _, id := range ids {
		if _, ok := g.nodes[id]; !ok {
			return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
		}
	}
	for i := 1; i < len(ids); i++ {
		if err := g.AddEdge(ids[i-1], ids[i]); err != nil {
			return err
		}
	}

	return nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes ordered by id.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	slices.SortFunc(out, func(a, b *Node) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of undirected road segments.
func (g *Graph) EdgeCount() int { return g.edges }

// Neighbors returns the outgoing segments of v. The slice is shared with the
// graph and must not be modified.
func (g *Graph) Neighbors(v NodeID) []astar.WeightedEdge[NodeID] { return g.adj[v] }

// EstimatedDistanceToGoal is the great-circle distance in metres, or 0 when
// either node is unknown.
func (g *Graph) EstimatedDistanceToGoal(v, goal NodeID) float64 {
	a, ok := g.nodes[v]
	if !ok {
		return 0
	}
	b, ok := g.nodes[goal]
	if !ok {
		return 0
	}
	return geo.Distance(a.Point(), b.Point())
}
