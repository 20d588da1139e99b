package streetmap

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/huskymaps/logging"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
	"golang.org/x/exp/slog"
)

// LoadOptions configures LoadOSM.
//
// Logger          – receives a summary record; discarded by default.
// HighwayOnly     – keep only ways tagged highway=* (default true).
// KeepNamedPlaces – keep named nodes not on any kept way so they can still be
// searched for (default true).
type LoadOptions struct {
	Logger          *slog.Logger
	HighwayOnly     bool
	KeepNamedPlaces bool
}

// LoadOption is a functional option for LoadOSM.
type LoadOption func(*LoadOptions)

// WithLogger sets the logger used by LoadOSM.
func WithLogger(l *slog.Logger) LoadOption {
	return func(o *LoadOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithAllWays keeps every way, not only highways.
func WithAllWays() LoadOption {
	return func(o *LoadOptions) { o.HighwayOnly = false }
}

// WithoutIsolatedPlaces drops named nodes that are not on a kept way.
func WithoutIsolatedPlaces() LoadOption {
	return func(o *LoadOptions) { o.KeepNamedPlaces = false }
}

// DefaultLoadOptions keeps highways and named places and logs nothing.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Logger:          logging.Discard(),
		HighwayOnly:     true,
		KeepNamedPlaces: true,
	}
}

// LoadOSM streams an OSM XML document through an osmxml.Scanner and builds a
// Graph from its nodes and ways. Bounds, relations and other elements are
// skipped.
//
// Node names come from the "name" tag, importance from a numeric
// "population" tag. Way references to nodes missing from the document are
// dropped (the way is split at the gap) since clipped extracts routinely
// contain them.
func LoadOSM(r io.Reader, opts ...LoadOption) (*Graph, error) {
	cfg := DefaultLoadOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Ways may only be split once every node of the extract is known, so
	// both are collected before the graph is assembled.
	var (
		nodes   []*osm.Node
		rawWays []*osm.Way
		byID    = make(map[osm.NodeID]*osm.Node)
		scanner = osmxml.New(context.Background(), r)
	)
	defer scanner.Close()

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			nodes = append(nodes, o)
			byID[o.ID] = o
		case *osm.Way:
			if cfg.HighwayOnly && o.Tags.Find("highway") == "" {
				continue
			}
			rawWays = append(rawWays, o)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	var ways [][]osm.NodeID
	used := make(map[osm.NodeID]bool)
	dangling := 0
	for _, w := range rawWays {
		var run []osm.NodeID
		for _, wn := range w.Nodes {
			if _, ok := byID[wn.ID]; !ok {
				dangling++
				if len(run) > 1 {
					ways = append(ways, run)
				}
				run = nil
				continue
			}
			run = append(run, wn.ID)
			used[wn.ID] = true
		}
		if len(run) > 1 {
			ways = append(ways, run)
		}
	}

	g := NewGraph()
	for _, n := range nodes {
		name := strings.TrimSpace(n.Tags.Find("name"))
		if !used[n.ID] && !(cfg.KeepNamedPlaces && name != "") {
			continue
		}
		err := g.AddNode(Node{
			ID:         NodeID(n.ID),
			Lat:        n.Lat,
			Lon:        n.Lon,
			Name:       name,
			Importance: importance(n.Tags),
		})
		if err != nil {
			return nil, err
		}
	}

	for _, run := range ways {
		ids := make([]NodeID, len(run))
		for i, id := range run {
			ids[i] = NodeID(id)
		}
		if err := g.AddWay(ids); err != nil {
			return nil, err
		}
	}

	cfg.Logger.Debug("osm extract loaded",
		slog.Int("nodes", g.Len()),
		slog.Int("segments", g.EdgeCount()),
		slog.Int("dangling_refs", dangling))

	return g, nil
}

// importance reads a non-negative population tag; anything else counts as 0.
func importance(tags osm.Tags) int64 {
	v := strings.ReplaceAll(tags.Find("population"), ",", "")
	p, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || p < 0 {
		return 0
	}
	return p
}
