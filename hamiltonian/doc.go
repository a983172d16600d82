// Package hamiltonian searches for Hamiltonian cycles and paths by backtracking.
//
// Vertices are tried in label order and neighbours in core.Graph.NeighborIDs
// order, so results are deterministic. The search runs on an explicit stack with
// a visited bitset. Cheap degree checks reject graphs that obviously have no
// cycle before any search starts. WithNodeBudget bounds the number of extensions.
//
// The problem is NP-complete; expect exponential time on adversarial inputs.
package hamiltonian
