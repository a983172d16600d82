// Package dijkstra implements Dijkstra's single-source shortest-path algorithm on
// core.Graph instances with non-negative edge weights.
//
// Overview:
//
//   - Vertices are settled in order of increasing distance using a binary min-heap.
//   - Decrease-key is lazy: improved distances push a fresh heap entry, and popped
//     entries whose key exceeds the recorded distance are discarded.
//   - Relaxation is strict (dist[u]+w < dist[v]), so the first path found wins ties.
//
// Options:
//
//   - Source(id):              start vertex (required).
//   - WithTarget(id):          stop as soon as id is settled.
//   - WithReturnPath():        populate Result.Prev for path reconstruction.
//   - WithMaxDistance(d):      do not settle vertices farther than d.
//   - WithInfEdgeThreshold(t): treat edges with weight ≥ t as impassable.
//
// Errors:
//
//   - ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound,
//     ErrOptionViolation: kind algoerr.InvalidInput.
//   - ErrNegativeWeight: kind algoerr.NegativeEdge, found by an O(E) pre-scan.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap may hold one entry per relaxation.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	path, _ := res.PathTo("D")
package dijkstra
