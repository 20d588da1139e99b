// Package streetmap holds the street network that routing runs on: named
// nodes with WGS84 coordinates joined by two-way road segments weighted by
// great-circle length in metres.
//
// Graph implements astar.Graph[NodeID]. Its heuristic is the great-circle
// distance to the goal, which never exceeds the length of any road path, so
// A* results on a Graph are optimal.
//
// A Graph is built once (by hand or with LoadOSM) and then only read.
package streetmap

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for graph construction and loading.
var (
	// ErrDuplicateNode indicates AddNode was called twice with the same ID.
	ErrDuplicateNode = errors.New("streetmap: duplicate node")

	// ErrNodeNotFound indicates an edge or way references an unknown node.
	ErrNodeNotFound = errors.New("streetmap: node not found")

	// ErrBadCoordinate indicates a latitude or longitude out of range.
	ErrBadCoordinate = errors.New("streetmap: coordinate out of range")

	// ErrDecode indicates that an OSM document could not be parsed.
	ErrDecode = errors.New("streetmap: cannot decode OSM data")
)

// NodeID identifies a node; for OSM data it is the OSM node id.
type NodeID int64

// Node is a point of the street map.
//
// Name is empty for unnamed nodes. Importance ranks named places for search
// suggestions (larger is more important).
type Node struct {
	ID         NodeID
	Lat, Lon   float64
	Name       string
	Importance int64
}

// Point returns the node location as an orb point (lon, lat).
func (n *Node) Point() orb.Point { return orb.Point{n.Lon, n.Lat} }
