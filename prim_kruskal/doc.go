// Package prim_kruskal computes minimum spanning trees.
//
// Two algorithms are provided:
//
//   - Kruskal: sort edges by weight (stable, so input order breaks ties) and
//     accept an edge iff its endpoints lie in different dsu components. Runs on a
//     plain index edge list (KruskalEdges) or on an undirected core.Graph (Kruskal).
//   - Prim: grow a tree from a root, always taking the lightest frontier edge.
//     Frontier ties are broken by edge insertion order.
//
// Both return exactly |V|−1 edges or ErrDisconnected (kind algoerr.Disconnected).
// Self-loops never enter a spanning tree and are skipped.
//
// Complexity:
//
//   - Kruskal: O(E log E + E·α(V)) time, O(V + E) space.
//   - Prim:    O(E log E) time, O(V + E) space.
//
// Compute dispatches on Options.Method for callers that pick the algorithm at run time.
package prim_kruskal
