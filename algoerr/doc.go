// Package algoerr provides the error taxonomy shared by every algorithm package.
//
// Each algorithm package declares its own sentinel errors on top of a Kind, so a
// caller can match either the precise sentinel or the broad category:
//
//	_, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
//	if errors.Is(err, dijkstra.ErrNegativeWeight) {
//	    // precise match
//	}
//	if algoerr.Is(err, algoerr.NegativeEdge) {
//	    // category match, works for astar and bellmanford as well
//	}
//
// # Kinds
//
//   - InvalidInput:   malformed arguments (empty vertex id, wrong shape, bad digit).
//   - NegativeEdge:   the algorithm requires non-negative weights.
//   - NegativeCycle:  a cycle of negative total weight is reachable.
//   - Disconnected:   a spanning structure does not exist.
//   - Cyclic:         an acyclic ordering does not exist.
//   - Unsolvable:     a search space was exhausted without a solution.
//   - BudgetExceeded: a caller-supplied node budget ran out first.
package algoerr
