package core

import "sort"

// Neighbors returns the edges leaving id: directed edges with From == id and
// undirected edges touching id. Order is by neighbour label, then insertion order.
//
// Complexity: O(d log d) where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, set := range g.adjacencyList[id] {
		for eid := range set {
			e := g.edges[eid]
			if e == nil || (e.Directed && e.From != id) {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Other(id), out[j].Other(id)
		if a != b {
			return a < b
		}

		return out[i].seq < out[j].seq
	})

	return out, nil
}

// NeighborIDs returns the unique vertex IDs reachable from id by one edge, sorted.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		n := e.Other(id)
		if len(out) == 0 || out[len(out)-1] != n {
			out = append(out, n)
		}
	}

	return out, nil
}

// Degree returns the number of edges leaving id in the Neighbors sense.
// A self-loop counts once.
func (g *Graph) Degree(id string) (int, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}

	return len(edges), nil
}

// InDegrees returns, for every vertex, the number of directed edges entering it.
// Undirected edges are ignored.
func (g *Graph) InDegrees() map[string]int {
	out := make(map[string]int, g.VertexCount())
	for _, v := range g.Vertices() {
		out[v] = 0
	}
	for _, e := range g.Edges() {
		if e.Directed {
			out[e.To]++
		}
	}

	return out
}

// linkAdjacency records eid in adjacencyList[from][to]. Caller holds muEdgeAdj.
func linkAdjacency(g *Graph, from, to, eid string) {
	inner, ok := g.adjacencyList[from]
	if !ok {
		inner = make(map[string]map[string]struct{})
		g.adjacencyList[from] = inner
	}
	set, ok := inner[to]
	if !ok {
		set = make(map[string]struct{})
		inner[to] = set
	}
	set[eid] = struct{}{}
}

// removeAdjacency unlinks e from both directions and drops empty buckets.
// Caller holds muEdgeAdj.
func removeAdjacency(g *Graph, e *Edge) {
	unlink := func(a, b string) {
		if set, ok := g.adjacencyList[a][b]; ok {
			delete(set, e.ID)
			if len(set) == 0 {
				delete(g.adjacencyList[a], b)
			}
		}
	}
	unlink(e.From, e.To)
	if !e.Directed {
		unlink(e.To, e.From)
	}
}
