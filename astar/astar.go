package astar

import (
	"fmt"
	"time"

	"github.com/katalvlaran/huskymaps/pq"
	"golang.org/x/exp/slog"
)

// FindShortestPath searches g for a cheapest path from start to goal, giving
// up once timeout has elapsed.
//
// Returns:
//
//   - Result with Outcome Solved, Path (start … goal) and Distance when the goal
//     is removed from the frontier.
//   - Result with Outcome Unsolvable when the frontier empties first.
//   - Result with Outcome Timeout when the deadline is observed before an
//     edge relaxation.
//   - error only for faults: ErrNilGraph, ErrNegativeTimeout, ErrNegativeWeight.
//
// start == goal is solved immediately with the single-vertex path and
// distance 0, regardless of timeout.
func FindShortestPath[V comparable](g Graph[V], start, goal V, timeout time.Duration, opts ...Option) (Result[V], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result[V]{}, ErrNilGraph
	}
	if timeout < 0 {
		return Result[V]{}, fmt.Errorf("%w: %s", ErrNegativeTimeout, timeout)
	}

	began := cfg.Now()
	r := &runner[V]{
		g:        g,
		goal:     goal,
		now:      cfg.Now,
		log:      cfg.Logger,
		began:    began,
		deadline: began.Add(timeout),
		dist:     make(map[V]float64),
		prev:     make(map[V]V),
		settled:  make(map[V]struct{}),
		frontier: pq.New[V](0),
	}

	res, err := r.run(start)
	if err != nil {
		return Result[V]{}, err
	}

	r.log.Debug("astar search finished",
		slog.String("outcome", res.Outcome.String()),
		slog.Int("settled", res.VerticesSettled),
		slog.Duration("elapsed", res.Elapsed))

	return res, nil
}

// runner holds the mutable state of a single search.
type runner[V comparable] struct {
	g        Graph[V]
	goal     V
	now      func() time.Time
	log      *slog.Logger
	began    time.Time
	deadline time.Time

	dist     map[V]float64 // best known cost from start; only ever lowered
	prev     map[V]V       // predecessor on the best known path
	settled  map[V]struct{}
	frontier *pq.MinPQ[V] // keyed by dist + heuristic
}

// run executes the main loop starting from start.
func (r *runner[V]) run(start V) (Result[V], error) {
	r.dist[start] = 0
	if err := r.frontier.Add(start, 0); err != nil {
		return Result[V]{}, err
	}

	for !r.frontier.IsEmpty() {
		v, err := r.frontier.RemoveMin()
		if err != nil {
			return Result[V]{}, err
		}
		r.settled[v] = struct{}{}

		if v == r.goal {
			return Result[V]{
				Outcome:         Solved,
				Path:            r.path(v),
				Distance:        r.dist[v],
				VerticesSettled: len(r.settled),
				Elapsed:         r.elapsed(),
			}, nil
		}

		timedOut, err := r.relax(v)
		if err != nil {
			return Result[V]{}, err
		}
		if timedOut {
			return Result[V]{
				Outcome:         Timeout,
				VerticesSettled: len(r.settled),
				Elapsed:         r.elapsed(),
			}, nil
		}
	}

	return Result[V]{
		Outcome:         Unsolvable,
		VerticesSettled: len(r.settled),
		Elapsed:         r.elapsed(),
	}, nil
}

// relax examines every outgoing edge of the freshly settled vertex v.
// It reports true as soon as the deadline is observed.
func (r *runner[V]) relax(v V) (bool, error) {
	base := r.dist[v]

	for _, e := range r.g.Neighbors(v) {
		if !r.now().Before(r.deadline) {
			return true, nil
		}
		if e.Weight < 0 {
			return false, fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, v, e.To, e.Weight)
		}

		w := e.To
		tentative := base + e.Weight
		known, seen := r.dist[w]

		switch {
		case !seen:
			r.dist[w] = tentative
			r.prev[w] = v
			if err := r.frontier.Add(w, tentative+r.g.EstimatedDistanceToGoal(w, r.goal)); err != nil {
				return false, err
			}

		case tentative >= known:
			// no improvement

		case r.isSettled(w):
			// Settled vertices are not reopened; only an inconsistent
			// heuristic can get here.
			r.log.Debug("astar: cheaper path to settled vertex ignored",
				slog.Any("vertex", w),
				slog.Float64("settled_distance", known),
				slog.Float64("offered_distance", tentative))

		default:
			r.dist[w] = tentative
			r.prev[w] = v
			if err := r.frontier.ChangePriority(w, tentative+r.g.EstimatedDistanceToGoal(w, r.goal)); err != nil {
				return false, err
			}
		}
	}

	return false, nil
}

func (r *runner[V]) isSettled(v V) bool {
	_, ok := r.settled[v]
	return ok
}

func (r *runner[V]) elapsed() time.Duration { return r.now().Sub(r.began) }

// path follows predecessor links from end back to the start vertex and
// returns them in start → end order.
func (r *runner[V]) path(end V) []V {
	out := []V{end}
	cur := end
	for {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		out = append(out, p)
		cur = p
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
