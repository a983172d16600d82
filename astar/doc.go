// Package astar implements single-target A* search on core.Graph.
//
// A* expands vertices in order of f(v) = g(v) + h(v), where g is the best known
// cost from the source and h is a caller-supplied heuristic estimate of the
// remaining cost to the target. With an admissible h (never overestimating) the
// returned path is optimal. A vertex whose cost improves after it was closed is
// reopened, so inconsistent-but-admissible heuristics are still exact.
//
// Zero is the trivial admissible heuristic; with it A* settles vertices in the
// same order Dijkstra does. geo.HaversineHeuristic builds a great-circle
// heuristic for graphs whose vertices carry "lat"/"lon" metadata.
//
// This package only searches towards one target. For distances to every vertex
// use package dijkstra.
package astar
