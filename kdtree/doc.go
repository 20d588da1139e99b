// Package kdtree answers nearest-neighbour queries over a fixed set of 2-D
// points.
//
// Tree is a 2-d tree: the root splits on x, its children on y, and so on.
// Points are inserted one by one after a deterministic shuffle, which keeps
// the expected depth logarithmic even when the input arrives sorted. The
// tree is never rebalanced; once built it is read-only and can be queried
// from many goroutines at once.
//
// Nearest descends into the half-plane containing the target first and only
// visits the other half-plane when the splitting line is closer than the best
// point found so far. A candidate replaces the best only when it is strictly
// closer.
//
// NaiveSet implements the same PointSet contract with a linear scan. It is
// useful as a reference and for very small inputs.
//
// Any type with X() and Y() methods is a Point; orb.Point from
// github.com/paulmach/orb qualifies directly.
package kdtree
