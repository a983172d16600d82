// Package bellmanford implements the Bellman–Ford single-source shortest-path
// algorithm, which tolerates negative edge weights and detects negative cycles
// reachable from the source.
//
// The algorithm performs up to |V|−1 passes relaxing every edge (stopping early
// when a pass changes nothing) and one extra pass; any relaxation on the extra
// pass proves a reachable negative cycle. The error then carries a witness cycle:
//
//	res, err := bellmanford.BellmanFord(g, "S")
//	var nc *bellmanford.NegativeCycleError
//	if errors.As(err, &nc) {
//	    fmt.Println(nc.Cycle) // e.g. [B C D B]
//	}
//
// An undirected edge is relaxed in both directions, so a single undirected edge of
// negative weight is itself a negative 2-cycle.
//
// Complexity: O(V·E) time, O(V) space.
package bellmanford
