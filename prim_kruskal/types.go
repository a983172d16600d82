package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/algokit/algoerr"
	"github.com/katalvlaran/algokit/core"
)

// Sentinel errors.
var (
	// ErrInvalidGraph indicates the graph is nil, directed or unweighted.
	ErrInvalidGraph = algoerr.New(algoerr.InvalidInput, "prim_kruskal: MST requires undirected, weighted graph")

	// ErrEmptyRoot indicates that no start vertex was specified for Prim.
	ErrEmptyRoot = algoerr.New(algoerr.InvalidInput, "prim_kruskal: empty root vertex")

	// ErrVertexNotFound indicates the Prim root is not in the graph.
	ErrVertexNotFound = algoerr.New(algoerr.InvalidInput, "prim_kruskal: root vertex not found")

	// ErrInvalidInput indicates an empty vertex range or a NaN weight in an edge list.
	ErrInvalidInput = algoerr.New(algoerr.InvalidInput, "prim_kruskal: invalid edge list")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = algoerr.New(algoerr.InvalidInput, "prim_kruskal: edge endpoint out of range")

	// ErrDisconnected indicates no spanning tree covers every vertex.
	ErrDisconnected = algoerr.New(algoerr.Disconnected, "prim_kruskal: graph is disconnected")

	// ErrUnknownMethod indicates Compute was given an unrecognised method.
	ErrUnknownMethod = algoerr.New(algoerr.InvalidInput, "prim_kruskal: unknown method")
)

// WeightedEdge is an undirected edge between vertex indices U and V.
type WeightedEdge struct {
	U, V int
	W    float64
}

// EdgeListMST is a spanning tree over an index edge list.
type EdgeListMST struct {
	Edges []WeightedEdge // in acceptance order
	Total float64
}

// MST is a spanning tree of a core.Graph.
//
// Kruskal keeps edges as stored; Prim orients each edge From the tree side To the
// newly added vertex. IDs always match the graph's edge IDs.
type MST struct {
	Edges []core.Edge
	Total float64
}

// Method names accepted by Compute.
const (
	MethodPrim    = "prim"
	MethodKruskal = "kruskal"
)

// Options configures Compute.
type Options struct {
	Method string // MethodPrim or MethodKruskal
	Root   string // Prim start vertex, ignored by Kruskal
}

// Option modifies Options.
type Option func(*Options)

// WithMethod sets the algorithm.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets the Prim start vertex.
func WithRoot(root string) Option {
	return func(o *Options) { o.Root = root }
}

// DefaultOptions selects Kruskal.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Compute runs the configured algorithm. Prim without a root starts from the
// smallest vertex label.
func Compute(g *core.Graph, opts ...Option) (*MST, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		root := cfg.Root
		if root == "" && g != nil {
			if vs := g.Vertices(); len(vs) > 0 {
				root = vs[0]
			}
		}

		return Prim(g, root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}

func validateGraph(g *core.Graph) error {
	if g == nil || !g.Weighted() || g.Directed() || g.HasDirectedEdges() {
		return ErrInvalidGraph
	}

	return nil
}
