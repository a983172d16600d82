package bfs

import (
	"sort"

	"github.com/katalvlaran/algokit/core"
)

// ConnectedComponents returns the reachability classes of g with every edge
// treated as undirected (weak components for directed graphs).
//
// Classes are ordered by their smallest vertex label; within a class vertices
// appear in BFS order from that label.
//
// Complexity: O(V + E log E).
func ConnectedComponents(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	adj := make(map[string][]string, g.VertexCount())
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}
	for _, nb := range adj {
		sort.Strings(nb)
	}

	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, root := range g.Vertices() {
		if seen[root] {
			continue
		}
		seen[root] = true
		comp := []string{root}
		for head := 0; head < len(comp); head++ {
			for _, v := range adj[comp[head]] {
				if !seen[v] {
					seen[v] = true
					comp = append(comp, v)
				}
			}
		}
		out = append(out, comp)
	}

	return out, nil
}
