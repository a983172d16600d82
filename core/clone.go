package core

// CloneEmpty returns a new Graph with the same policy flags and vertices but no edges.
// Vertex metadata maps are shared.
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := &Graph{
		directed:      g.directed,
		weighted:      g.weighted,
		allowMulti:    g.allowMulti,
		allowLoops:    g.allowLoops,
		allowMixed:    g.allowMixed,
		vertices:      make(map[string]*Vertex, len(g.vertices)),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}, len(g.vertices)),
	}
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: id, Metadata: v.Metadata}
		out.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return out
}

// Clone returns a copy of g. Edge IDs and insertion order are preserved.
func (g *Graph) Clone() *Graph {
	out := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out.nextEdgeID = g.nextEdgeID
	for id, e := range g.edges {
		cp := *e
		out.edges[id] = &cp
		linkAdjacency(out, cp.From, cp.To, id)
		if !cp.Directed && cp.From != cp.To {
			linkAdjacency(out, cp.To, cp.From, id)
		}
	}

	return out
}
