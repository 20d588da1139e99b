// Package astar implements A* best-first search over any weighted directed
// graph that can list a vertex's outgoing edges and estimate the remaining
// cost to a goal.
//
// Overview:
//
//   - The caller supplies a Graph[V]: Neighbors(v) returns the outgoing
//     WeightedEdge values of v, EstimatedDistanceToGoal(v, goal) returns a
//     non-negative guess of the remaining cost.
//   - FindShortestPath explores vertices in order of distance-so-far plus
//     estimate, using an indexed priority queue (package pq) for the frontier
//     so that a cheaper path found later updates the existing entry in place.
//   - Every run ends in one of three outcomes: Solved, Unsolvable or Timeout.
//     Unsolvable means the frontier was exhausted; Timeout means the deadline
//     passed before an answer was known. Neither is an error.
//
// Vertex states:
//
//	Unseen → Frontier → Settled
//
// A frontier vertex may have its distance lowered any number of times. Once a
// vertex is removed as the minimum it is settled and is never reopened.
//
// Heuristic requirements:
//
//   - Admissible (never overestimates): the returned distance is optimal.
//   - Consistent (h(u) ≤ w(u,v) + h(v)): additionally, no settled vertex can
//     later be reached more cheaply.
//   - With an inconsistent heuristic a cheaper path to a settled vertex is
//     ignored. Such events are logged at debug level; the result is a valid
//     path but may not be the shortest.
//
// Cancellation:
//
//   - The deadline (start time + timeout) is sampled before every edge
//     relaxation. A zero timeout therefore reports Timeout on the first edge.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for V settled vertices and E relaxed edges.
//   - Space: O(V) for the distance, predecessor and frontier tables.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        the graph argument is nil.
//   - ErrNegativeTimeout: a negative timeout was passed.
//   - ErrNegativeWeight:  an edge with a negative weight was relaxed.
//
// Thread safety:
//
//   - A single call keeps all state local; concurrent calls on a graph that is
//     not mutated are safe as long as the Graph implementation is.
package astar
