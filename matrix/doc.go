// Package matrix provides a dense row-major float64 matrix and the Floyd–Warshall
// all-pairs shortest-path routine built on it.
//
// Conventions for distance matrices:
//
//   - +Inf (math.Inf(1)) is the "no edge" sentinel off the diagonal.
//   - The diagonal is 0; a negative diagonal entry after closure proves a negative cycle.
//
// FromGraph and NewDistanceMatrix build such matrices from a core.Graph or from
// raw rows. Vertex index i corresponds to position i of core.Graph.Vertices().
package matrix
