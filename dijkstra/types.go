package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algokit/algoerr"
	"github.com/katalvlaran/algokit/core"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that no source vertex was configured.
	ErrEmptySource = algoerr.New(algoerr.InvalidInput, "dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = algoerr.New(algoerr.InvalidInput, "dijkstra: graph is nil")

	// ErrUnweightedGraph indicates the graph was not built with core.WithWeighted.
	ErrUnweightedGraph = algoerr.New(algoerr.InvalidInput, "dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source or target vertex does not exist.
	ErrVertexNotFound = algoerr.New(algoerr.InvalidInput, "dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = algoerr.New(algoerr.NegativeEdge, "dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates an invalid option value (negative MaxDistance,
	// non-positive InfEdgeThreshold).
	ErrOptionViolation = algoerr.New(algoerr.InvalidInput, "dijkstra: invalid option")

	// ErrNoPath indicates PathTo was asked for a vertex that was not reached.
	ErrNoPath = algoerr.New(algoerr.Unsolvable, "dijkstra: no path to vertex")
)

// Options configures a Dijkstra run.
type Options struct {
	Source           string  // start vertex
	Target           string  // optional early-exit vertex
	ReturnPath       bool    // populate Result.Prev
	MaxDistance      float64 // settle only vertices with dist ≤ MaxDistance
	InfEdgeThreshold float64 // edges with weight ≥ threshold are impassable

	err error // first option violation, surfaced by Dijkstra
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// DefaultOptions returns the defaults for the given source: no target, no path,
// no distance cap and no impassable threshold.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Source sets the start vertex.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithTarget stops the search once id is extracted from the heap. Distances of
// vertices not yet settled are upper bounds at that point.
func WithTarget(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration; max must be non-negative.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.fail(fmt.Errorf("%w: MaxDistance must be non-negative, got %g", ErrOptionViolation, max))
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks edges with weight ≥ threshold as impassable;
// threshold must be positive.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.fail(fmt.Errorf("%w: InfEdgeThreshold must be positive, got %g", ErrOptionViolation, threshold))
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Result holds the outcome of a Dijkstra run.
//
// Dist[v] is +Inf for vertices not reached. Prev is nil unless WithReturnPath was
// given; Prev[v] == "" for the source and for unreached vertices.
type Result struct {
	Source  string
	Dist    map[string]float64
	Prev    map[string]string
	Settled int // number of vertices extracted from the heap
}

// PathTo returns the vertex sequence from the source to target.
// It requires WithReturnPath.
func (r *Result) PathTo(target string) ([]string, error) {
	if _, ok := r.Dist[target]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}
	if r.Prev == nil {
		return nil, fmt.Errorf("%w: predecessors not recorded (use WithReturnPath)", ErrOptionViolation)
	}
	path, ok := core.TracePath(r.Prev, r.Source, target)
	if !ok || math.IsInf(r.Dist[target], 1) {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, target)
	}

	return path, nil
}
