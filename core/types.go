package core

import (
	"sync"

	"github.com/katalvlaran/algokit/algoerr"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = algoerr.New(algoerr.InvalidInput, "core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = algoerr.New(algoerr.InvalidInput, "core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = algoerr.New(algoerr.InvalidInput, "core: edge not found")

	// ErrBadWeight indicates a non-zero (or NaN) weight for an unweighted graph.
	ErrBadWeight = algoerr.New(algoerr.InvalidInput, "core: bad weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = algoerr.New(algoerr.InvalidInput, "core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = algoerr.New(algoerr.InvalidInput, "core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override without mixed mode.
	ErrMixedEdgesNotAllowed = algoerr.New(algoerr.InvalidInput, "core: per-edge direction requires mixed mode")
)

// Vertex represents a node in the graph.
//
// Metadata stores arbitrary key-value data (for example "lat"/"lon" for geographic
// heuristics). It is shared, not deep-copied, by Clone.
type Vertex struct {
	ID       string
	Metadata map[string]any
}

// Edge represents a connection between two vertices.
//
// Directed overrides the graph default when the graph was built with mixed edges.
type Edge struct {
	ID       string
	From     string
	To       string
	Weight   float64
	Directed bool

	seq uint64 // insertion sequence, the numeric part of ID
}

// Other returns the endpoint of e opposite to id. For a self-loop it returns id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Seq returns the insertion sequence number of the edge (1 for "e1").
func (e *Edge) Seq() uint64 { return e.seq }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges.
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge direction overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is the in-memory labelled graph.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacencyList.
// Lock order is always muVert before muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed   bool
	weighted   bool
	allowMulti bool
	allowLoops bool
	allowMixed bool

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// adjacencyList[from][to][edgeID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. By default it is undirected, unweighted,
// and rejects loops and multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewMixedGraph creates a Graph with mixed edges enabled before opts are applied.
func NewMixedGraph(opts ...GraphOption) *Graph {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges())
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}

// Directed reports the default directedness applied to new edges.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge direction overrides are permitted.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}
