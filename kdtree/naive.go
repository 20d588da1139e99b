package kdtree

// NaiveSet answers Nearest with a linear scan over every point.
type NaiveSet[P Point] struct {
	points []P
}

// NewNaive copies points into a NaiveSet. Returns ErrEmptyInput when empty.
func NewNaive[P Point](points []P) (*NaiveSet[P], error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	cp := make([]P, len(points))
	copy(cp, points)

	return &NaiveSet[P]{points: cp}, nil
}

// Nearest returns the first point (in input order) at minimal distance from target.
//
// Complexity: O(n).
func (s *NaiveSet[P]) Nearest(target Point) P {
	best := s.points[0]
	bestDist := DistanceSquared(best, target)
	for _, p := range s.points[1:] {
		if d := DistanceSquared(p, target); d < bestDist {
			best, bestDist = p, d
		}
	}

	return best
}

// AllPoints returns the stored points in input order.
func (s *NaiveSet[P]) AllPoints() []P { return s.points }
