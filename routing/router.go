package routing

import (
	"fmt"

	"github.com/katalvlaran/huskymaps/astar"
	"github.com/katalvlaran/huskymaps/kdtree"
	"github.com/katalvlaran/huskymaps/streetmap"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
	"golang.org/x/exp/slog"
)

// nodePoint is a projected node position carrying its node id.
type nodePoint struct {
	orb.Point
	id streetmap.NodeID
}

// Router answers route queries on one street graph. It is read-only after
// New and may serve concurrent queries.
type Router struct {
	graph  *streetmap.Graph
	points *kdtree.Tree[nodePoint]
	opts   Options
}

// New indexes every node of g that has at least one neighbour.
func New(g *streetmap.Graph, opts ...Option) (*Router, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var pts []nodePoint
	for _, n := range g.Nodes() {
		if len(g.Neighbors(n.ID)) == 0 {
			continue
		}
		pts = append(pts, nodePoint{Point: project.WGS84.ToMercator(n.Point()), id: n.ID})
	}
	if len(pts) == 0 {
		return nil, ErrNoRoutableNodes
	}

	tree, err := kdtree.New(pts, kdtree.WithSeed(cfg.Seed))
	if err != nil {
		return nil, err
	}
	cfg.Logger.Debug("router ready", slog.Int("routable_nodes", tree.Len()))

	return &Router{graph: g, points: tree, opts: cfg}, nil
}

// Closest returns the routable node nearest to c (lon, lat). Distances are
// compared in Web Mercator, which is close enough at city scale.
func (r *Router) Closest(c orb.Point) streetmap.NodeID {
	return r.points.Nearest(project.WGS84.ToMercator(c)).id
}

// Route snaps start and end then searches between them. The astar.Result is
// returned as is; use ShortestPath when only a solved path is of interest.
func (r *Router) Route(start, end orb.Point) (astar.Result[streetmap.NodeID], error) {
	src, dst := r.Closest(start), r.Closest(end)
	r.opts.Logger.Debug("endpoints snapped",
		slog.Int64("from", int64(src)),
		slog.Int64("to", int64(dst)))

	return astar.FindShortestPath[streetmap.NodeID](r.graph, src, dst, r.opts.Timeout,
		astar.WithLogger(r.opts.Logger))
}

// ShortestPath returns the node ids of the route from start to end.
// It returns ErrNoRoute or ErrTimeout, wrapped with search statistics, when
// the search did not solve.
func (r *Router) ShortestPath(start, end orb.Point) ([]streetmap.NodeID, error) {
	res, err := r.Route(start, end)
	if err != nil {
		return nil, err
	}
	if err := OutcomeError(res); err != nil {
		return nil, err
	}
	return res.Path, nil
}

// OutcomeError maps an unsolved search result to ErrTimeout or ErrNoRoute,
// wrapped with search statistics. It returns nil for a solved result.
func OutcomeError(res astar.Result[streetmap.NodeID]) error {
	switch res.Outcome {
	case astar.Solved:
		return nil
	case astar.Timeout:
		return fmt.Errorf("%w after %s (%d nodes settled)", ErrTimeout, res.Elapsed, res.VerticesSettled)
	default:
		return fmt.Errorf("%w (%d nodes settled)", ErrNoRoute, res.VerticesSettled)
	}
}

// Nodes resolves ids to nodes, skipping unknown ids.
func (r *Router) Nodes(ids []streetmap.NodeID) []*streetmap.Node {
	out := make([]*streetmap.Node, 0, len(ids))
	for _, id := range ids {
		if n, ok := r.graph.Node(id); ok {
			out = append(out, n)
		}
	}
	return out
}
