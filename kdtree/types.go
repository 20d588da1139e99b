package kdtree

import "errors"

// ErrEmptyInput indicates that a point set was built from no points.
var ErrEmptyInput = errors.New("kdtree: point set requires at least one point")

// Point is a location in the plane.
type Point interface {
	X() float64
	Y() float64
}

// DistanceSquared returns the squared Euclidean distance between a and b.
func DistanceSquared(a, b Point) float64 {
	dx := a.X() - b.X()
	dy := a.Y() - b.Y()
	return dx*dx + dy*dy
}

// PointSet is a static collection of points supporting nearest-neighbour lookup.
type PointSet[P Point] interface {
	// Nearest returns the stored point closest to target.
	Nearest(target Point) P
	// AllPoints returns every stored point.
	AllPoints() []P
}

// defaultSeed is used when no seed (or seed 0) is configured.
const defaultSeed int64 = 1

// Options configures New.
//
// Seed    – seed of the shuffle RNG; 0 selects a fixed default.
// Shuffle – when false, points are inserted in the given order.
type Options struct {
	Seed    int64
	Shuffle bool
}

// Option is a functional option for New.
type Option func(*Options)

// WithSeed selects the shuffle seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithoutShuffle keeps the caller's insertion order, so the tree shape is
// fully determined by the input order.
func WithoutShuffle() Option {
	return func(o *Options) { o.Shuffle = false }
}

// DefaultOptions shuffles with the default seed.
func DefaultOptions() Options {
	return Options{Seed: defaultSeed, Shuffle: true}
}
