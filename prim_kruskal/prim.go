package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

// Prim computes an MST of an undirected weighted graph by growing from root.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root as included and push its edges onto the frontier heap.
//  3. Pop the lightest edge; skip it if its far endpoint is already included;
//     otherwise include the endpoint and push its edges to excluded vertices.
//  4. Fewer than |V|−1 edges means ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, root string) (*MST, error) {
	// 1) Validate
	if err := validateGraph(g); err != nil {
		return nil, err
	}
	if root == "" {
		return nil, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, root)
	}
	n := g.VertexCount()

	// 2) Seed frontier
	inTree := make(map[string]bool, n)
	out := &MST{Edges: make([]core.Edge, 0, n-1)}
	pq := &frontierPQ{}
	add := func(u string) error {
		inTree[u] = true
		nb, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for _, e := range nb {
			if v := e.Other(u); !inTree[v] {
				heap.Push(pq, frontierEdge{edge: e, from: u, to: v})
			}
		}

		return nil
	}
	if err := add(root); err != nil {
		return nil, err
	}

	// 3) Grow
	for pq.Len() > 0 && len(out.Edges) < n-1 {
		fe := heap.Pop(pq).(frontierEdge)
		if inTree[fe.to] {
			continue
		}
		e := *fe.edge
		e.From, e.To = fe.from, fe.to
		out.Edges = append(out.Edges, e)
		out.Total += e.Weight
		if err := add(fe.to); err != nil {
			return nil, err
		}
	}

	// 4) Connectivity
	if len(out.Edges) < n-1 {
		return nil, fmt.Errorf("%w: reached %d of %d vertices from %q", ErrDisconnected, len(inTree), n, root)
	}

	return out, nil
}

// frontierEdge is an edge leaving the tree: from is inside, to is outside.
type frontierEdge struct {
	edge     *core.Edge
	from, to string
}

// frontierPQ is a min-heap ordered by weight, then edge insertion order.
type frontierPQ []frontierEdge

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].edge.Seq() < pq[j].edge.Seq()
}

func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontierPQ) Push(x any) { *pq = append(*pq, x.(frontierEdge)) }

func (pq *frontierPQ) Pop() any {
	old := *pq
	n := len(old)
	fe := old[n-1]
	*pq = old[:n-1]

	return fe
}
