package prim_kruskal

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dsu"
)

// KruskalEdges computes an MST over vertices [0, n) from an undirected edge list.
//
// Steps:
//  1. Validate n and every endpoint.
//  2. Stable-sort a copy of the edges by weight.
//  3. Accept an edge iff dsu.Union merges two components; stop at n−1 edges.
//  4. Fewer than n−1 accepted edges means ErrDisconnected.
func KruskalEdges(n int, edges []WeightedEdge) (*EdgeListMST, error) {
	// 1) Validate
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidInput, n)
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edge %d (%d,%d) with n=%d", ErrVertexOutOfRange, i, e.U, e.V, n)
		}
		if math.IsNaN(e.W) {
			return nil, fmt.Errorf("%w: edge %d has NaN weight", ErrInvalidInput, i)
		}
	}

	// 2) Sort
	sorted := make([]WeightedEdge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].W < sorted[j].W })

	// 3) Greedy acceptance
	d := dsu.New(n)
	out := &EdgeListMST{Edges: make([]WeightedEdge, 0, n-1)}
	for _, e := range sorted {
		if len(out.Edges) == n-1 {
			break
		}
		if d.Union(e.U, e.V) {
			out.Edges = append(out.Edges, e)
			out.Total += e.W
		}
	}

	// 4) Connectivity
	if len(out.Edges) < n-1 {
		return nil, fmt.Errorf("%w: %d components", ErrDisconnected, d.Count())
	}

	return out, nil
}

// Kruskal computes an MST of an undirected weighted graph. Equal weights keep
// edge insertion order.
//
// Complexity: O(E log E + E·α(V)).
func Kruskal(g *core.Graph) (*MST, error) {
	if err := validateGraph(g); err != nil {
		return nil, err
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, ErrDisconnected
	}

	sets := dsu.NewLabeled(vertices...)
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	out := &MST{Edges: make([]core.Edge, 0, len(vertices)-1)}
	for _, e := range edges {
		if len(out.Edges) == len(vertices)-1 {
			break
		}
		if e.From == e.To {
			continue
		}
		if sets.Union(e.From, e.To) {
			out.Edges = append(out.Edges, *e)
			out.Total += e.Weight
		}
	}
	if len(out.Edges) < len(vertices)-1 {
		return nil, fmt.Errorf("%w: %d components", ErrDisconnected, sets.Count())
	}

	return out, nil
}
