// Package dfs implements depth-first search, cycle detection and topological
// sorting on core.Graph.
//
// DFS(g, start, opts...) walks with an explicit stack, so deep graphs never grow
// the goroutine stack. It records:
//
//   - PreOrder and PostOrder vertex sequences;
//   - Discovery and Finish timestamps from a single clock starting at 1;
//   - Parent and Depth of the DFS tree(s);
//   - HasCycle and one CycleWitness.
//
// A cycle is a directed edge into a vertex still on the stack (Gray), or an
// undirected edge to a Gray vertex other than the edge used to enter the current
// vertex. Parallel undirected edges and self-loops are therefore cycles.
//
// Neighbours are explored in core.Graph.Neighbors order (label, then insertion).
//
// TopologicalSort uses Kahn's algorithm with a min-heap of ready vertices. The
// default priority is lexicographic label order; WithPriority swaps it. A cycle
// yields *CycleError listing the vertices whose in-degree never reached zero.
//
// Complexity:
//
//   - DFS, HasCycle:   O(V + E log d) time, O(V) memory.
//   - TopologicalSort: O((V + E) log V) time, O(V) memory.
package dfs
