// Package core defines the labelled Graph shared by the graph algorithms of algokit.
//
// A Graph stores string-labelled vertices and weighted edges. Construction-time
// options decide the policy of the instance:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	_, _ = g.AddEdge("A", "B", 2.5)
//
//   - WithDirected(bool): default direction of new edges.
//   - WithWeighted():     allow weights other than zero.
//   - WithMultiEdges():   allow parallel edges between the same endpoints.
//   - WithLoops():        allow self-loops.
//   - WithMixedEdges():   allow per-edge direction overrides (WithEdgeDirected).
//
// Undirected edges are stored once in the edge catalog and mirrored in adjacency,
// so both endpoints see the edge with the same weight.
//
// Determinism:
//
//   - Vertices() is sorted by label.
//   - Edges() is in insertion order (Edge.ID "e1", "e2", ...).
//   - Neighbors(v) is ordered by neighbour label, then insertion order.
//
// Concurrency:
//
// Two RW mutexes guard the catalog: muVert for vertices, muEdgeAdj for edges and
// adjacency. Readers may run concurrently; algorithms only ever read.
package core
