// Package routing turns a pair of coordinates into a street route: both ends
// are snapped to the closest routable node with a k-d tree over
// Mercator-projected node positions, then A* runs between the two nodes.
package routing

import (
	"errors"
	"time"

	"github.com/katalvlaran/huskymaps/logging"
	"golang.org/x/exp/slog"
)

// Sentinel errors returned by Router.
var (
	// ErrNilGraph indicates New was called without a graph.
	ErrNilGraph = errors.New("routing: graph is nil")

	// ErrNoRoutableNodes indicates the graph has no node with a neighbour.
	ErrNoRoutableNodes = errors.New("routing: graph has no routable nodes")

	// ErrNoRoute indicates the snapped endpoints are not connected.
	ErrNoRoute = errors.New("routing: no route between endpoints")

	// ErrTimeout indicates the search ran out of time before finding a route.
	ErrTimeout = errors.New("routing: search timed out")
)

// DefaultTimeout bounds a single route search.
const DefaultTimeout = 10 * time.Second

// Options configures a Router.
//
// Timeout – per-search time budget.
// Seed    – k-d tree shuffle seed (0 selects the default).
// Logger  – receives debug records for snapping and searches.
type Options struct {
	Timeout time.Duration
	Seed    int64
	Logger  *slog.Logger
}

// Option is a functional option for New.
type Option func(*Options)

// WithTimeout sets the per-search time budget. Negative values are ignored;
// zero makes every search that has to leave its start node time out.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d >= 0 {
			o.Timeout = d
		}
	}
}

// WithSeed sets the k-d tree shuffle seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns a ten-second timeout, default seed and no logging.
func DefaultOptions() Options {
	return Options{
		Timeout: DefaultTimeout,
		Logger:  logging.Discard(),
	}
}
