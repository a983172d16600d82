// Package bfs implements breadth-first search and connected components over a
// core.Graph.
//
// BFS visits vertices in non-decreasing hop distance from a start vertex using a
// FIFO queue. Each vertex is enqueued at most once; its Depth is the number of
// edges on the discovered path and Parent links form the BFS tree.
//
// Edge weights are ignored. A BFS over a weighted graph still counts hops, which
// is not a shortest-path distance; use package dijkstra for that.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbours sorted by label, so the visit order
//	is reproducible for a given graph.
//
// Mixed graphs follow directed edges only From→To and undirected edges both ways.
//
// Options
//
//   - WithContext(ctx):       cancellation, checked once per dequeue and per neighbour.
//   - WithMaxDepth(d):        do not enqueue beyond depth d (d == 0 means no limit).
//   - WithFilterNeighbor(fn): skip curr→neighbor when fn returns false.
//   - WithOnEnqueue, WithOnDequeue, WithOnVisit: hooks; OnVisit may abort with an error.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
