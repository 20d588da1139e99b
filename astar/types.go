package astar

import (
	"errors"
	"time"

	"github.com/katalvlaran/huskymaps/logging"
	"golang.org/x/exp/slog"
)

// Sentinel errors returned by FindShortestPath.
var (
	// ErrNilGraph indicates that a nil Graph was passed to FindShortestPath.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNegativeTimeout indicates that the timeout argument was negative.
	ErrNegativeTimeout = errors.New("astar: timeout must be non-negative")

	// ErrNegativeWeight indicates that an edge with a negative weight was relaxed.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")
)

// WeightedEdge is a directed edge From → To with a non-negative Weight.
type WeightedEdge[V comparable] struct {
	From   V
	To     V
	Weight float64
}

// Graph is the capability A* consumes.
//
// Neighbors returns the outgoing edges of v; edges are relaxed in the order
// returned. EstimatedDistanceToGoal must be non-negative and should never
// overestimate the true remaining cost from v to goal.
type Graph[V comparable] interface {
	Neighbors(v V) []WeightedEdge[V]
	EstimatedDistanceToGoal(v, goal V) float64
}

// Outcome classifies how a search ended.
type Outcome int

const (
	// Solved means a path to the goal was found.
	Solved Outcome = iota
	// Unsolvable means every reachable vertex was exhausted without meeting the goal.
	Unsolvable
	// Timeout means the deadline passed before the search finished.
	Timeout
)

// String returns the lower-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Unsolvable:
		return "unsolvable"
	case Timeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Result is the outcome of one FindShortestPath call.
//
// Path and Distance are only meaningful when Outcome == Solved; Path then runs
// from start to goal inclusive. VerticesSettled counts vertices removed from
// the frontier, not every vertex discovered, so it is lower than a
// discovered-vertex count whenever the frontier is non-empty at the end.
// Elapsed is the wall time spent in the search.
type Result[V comparable] struct {
	Outcome         Outcome
	Path            []V
	Distance        float64
	VerticesSettled int
	Elapsed         time.Duration
}

// Solution returns the path when the search was solved and nil otherwise.
func (r Result[V]) Solution() []V {
	if r.Outcome != Solved {
		return nil
	}

	return r.Path
}

// Options configures FindShortestPath.
//
// Logger – receives a debug record per search and per ignored reopening.
// Now    – clock used for the deadline and Elapsed; defaults to time.Now.
type Options struct {
	Logger *slog.Logger
	Now    func() time.Time
}

// Option is a functional option for FindShortestPath.
type Option func(*Options)

// WithLogger routes debug output to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithClock replaces the wall clock, mainly for deterministic timeout tests.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}

// DefaultOptions returns Options with a discarding logger and time.Now.
func DefaultOptions() Options {
	return Options{
		Logger: logging.Discard(),
		Now:    time.Now,
	}
}
