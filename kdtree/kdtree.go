package kdtree

import "math/rand"

// Tree is a 2-d tree over points of type P.
type Tree[P Point] struct {
	root   *node[P]
	points []P
}

// node owns its subtrees exclusively. Nodes at even depth split on x.
type node[P Point] struct {
	point       P
	left, right *node[P]
}

// New copies points, shuffles the copy (unless WithoutShuffle is given) and
// inserts every point into a fresh tree. The input slice is not modified.
// Returns ErrEmptyInput when points is empty.
//
// Complexity: O(n log n) expected, O(n²) worst case.
func New[P Point](points []P, opts ...Option) (*Tree[P], error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	order := make([]P, len(points))
	copy(order, points)
	if cfg.Shuffle {
		shuffle(order, cfg.Seed)
	}

	t := &Tree[P]{points: order}
	for _, p := range order {
		t.insert(p)
	}

	return t, nil
}

// shuffle performs an in-place Fisher–Yates shuffle with a seeded source.
func shuffle[P any](a []P, seed int64) {
	if seed == 0 {
		seed = defaultSeed
	}
	r := rand.New(rand.NewSource(seed))
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// insert walks from the root, going left when p is strictly less than the
// node on the node's split axis and right otherwise, and hangs p off the
// first empty slot.
func (t *Tree[P]) insert(p P) {
	leaf := &node[P]{point: p}
	if t.root == nil {
		t.root = leaf
		return
	}

	cur := t.root
	for depth := 0; ; depth++ {
		if coord(p, depth) < coord(cur.point, depth) {
			if cur.left == nil {
				cur.left = leaf
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = leaf
				return
			}
			cur = cur.right
		}
	}
}

// coord returns the coordinate of p on the split axis used at depth.
func coord(p Point, depth int) float64 {
	if depth%2 == 0 {
		return p.X()
	}
	return p.Y()
}

// Nearest returns the stored point closest to target. Among points at exactly
// the same distance the one visited first wins.
//
// Complexity: O(log n) expected, O(n) worst case.
func (t *Tree[P]) Nearest(target Point) P {
	s := search[P]{target: target, best: t.root, bestDist: DistanceSquared(t.root.point, target)}
	s.visit(t.root, 0)

	return s.best.point
}

// search carries the running best during one Nearest call.
type search[P Point] struct {
	target   Point
	best     *node[P]
	bestDist float64 // squared
}

func (s *search[P]) visit(n *node[P], depth int) {
	if n == nil {
		return
	}
	if d := DistanceSquared(n.point, s.target); d < s.bestDist {
		s.best, s.bestDist = n, d
	}

	near, far := n.right, n.left
	diff := coord(s.target, depth) - coord(n.point, depth)
	if diff < 0 {
		near, far = n.left, n.right
	}

	s.visit(near, depth+1)
	// The far half-plane can only hold a closer point if the splitting line
	// itself is closer than the current best.
	if diff*diff < s.bestDist {
		s.visit(far, depth+1)
	}
}

// AllPoints returns the stored points in insertion order. The slice is
// shared with the tree and must not be modified.
func (t *Tree[P]) AllPoints() []P { return t.points }

// Len returns the number of stored points.
func (t *Tree[P]) Len() int { return len(t.points) }

// Depth returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[P]) Depth() int {
	var walk func(n *node[P]) int
	walk = func(n *node[P]) int {
		if n == nil {
			return 0
		}
		return 1 + max(walk(n.left), walk(n.right))
	}
	return walk(t.root)
}
