// Package algokit is a library of classic algorithms with uniform error
// handling and deterministic, testable contracts.
//
// Packages are grouped by family:
//
//	core/          labelled graph: vertices, weighted edges, mixed direction
//	algoerr/       error kinds shared by every package
//	dijkstra/      single-source shortest paths, non-negative weights
//	astar/         heuristic point-to-point search
//	bellmanford/   shortest paths with negative weights, cycle witness
//	matrix/        dense weight matrices and Floyd–Warshall
//	geo/           great-circle heuristic and nearest-vertex index
//	prim_kruskal/  minimum spanning trees
//	bfs/, dfs/     traversals, components, cycle detection, topological order
//	dsu/           disjoint-set union
//	trie/, radix/  prefix trees, autocomplete, spell-check
//	ahocorasick/   multi-pattern matching
//	nqueens/, sudoku/, hamiltonian/  backtracking search with node budgets
//	dp/, palindrome/, huffman/, bintree/, linkedlist/  smaller classics
//	builder/       deterministic graph fixtures
//
// Every package reports failures as sentinel errors carrying an algoerr.Kind,
// so callers can match precisely with errors.Is or broadly with algoerr.Is:
//
//	_, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
//	if algoerr.Is(err, algoerr.NegativeEdge) {
//	    res, err = bellmanford.BellmanFord(g, "A")
//	}
//
// The algokit command in cmd/algokit runs the algorithms on YAML graphs,
// word lists and puzzle files.
package algokit
