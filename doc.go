// Package huskymaps is a small street-map navigation toolkit: shortest
// routes between coordinates and place-name autocompletion over an
// OpenStreetMap extract.
//
// The work is split into focused subpackages:
//
//	pq/           — indexed min-priority queue with decrease-key
//	astar/        — generic A* search with time budget and outcome reporting
//	kdtree/       — 2-d nearest-neighbour index (plus a brute-force reference)
//	rangesearch/  — binary search for the contiguous block of matches in sorted data
//	autocomplete/ — weighted prefix suggestions built on rangesearch
//	streetmap/    — road graph with great-circle weights, OSM XML loader
//	routing/      — coordinate snapping (kdtree) + route search (astar)
//	searching/    — place lookup by prefix or exact name
//	config/       — YAML configuration
//	logging/      — compact slog text handler
//
// The huskymaps command in cmd/huskymaps wires them together:
//
//	huskymaps -osm seattle.osm route 47.6062,-122.3321 47.6205,-122.3493
//	huskymaps -osm seattle.osm search Pike
//
// Quick ASCII example of what routing does:
//
//	x (query)         1───2
//	  ╲               │   │
//	   1───2   ⇒      3───4 ← x (query)
//	   │   │
//	   3───4          route 1 → 3 → 4 (or 1 → 2 → 4)
//
// Both query points snap to their closest routable intersection, then A*
// with a great-circle heuristic finds the cheapest road path between them.
package huskymaps
