package dfs

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/algokit/algoerr"
)

// Vertex colours of a depth-first search.
const (
	White = iota // not yet discovered
	Gray         // on the stack
	Black        // finished
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = algoerr.New(algoerr.InvalidInput, "dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex does not exist.
	ErrStartVertexNotFound = algoerr.New(algoerr.InvalidInput, "dfs: start vertex not found")

	// ErrNotDirected is returned by TopologicalSort on a graph with undirected edges.
	ErrNotDirected = algoerr.New(algoerr.InvalidInput, "dfs: topological sort requires a directed graph")

	// ErrOptionViolation is returned when an Option was given an invalid value.
	ErrOptionViolation = algoerr.New(algoerr.InvalidInput, "dfs: invalid option supplied")

	// ErrCycleDetected indicates TopologicalSort met a cycle.
	ErrCycleDetected = algoerr.New(algoerr.Cyclic, "dfs: cycle detected")
)

// CycleError reports the vertices left with positive in-degree after Kahn's
// algorithm ran out of ready vertices. Every directed cycle lies within Remaining.
type CycleError struct {
	Remaining []string // sorted
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: %d vertices unresolved [%s]", ErrCycleDetected, len(e.Remaining), strings.Join(e.Remaining, " "))
}

// Unwrap lets errors.Is match ErrCycleDetected.
func (e *CycleError) Unwrap() error { return ErrCycleDetected }

// Option configures DFS.
type Option func(*Options)

// Options holds hooks, limits and traversal mode for DFS.
type Options struct {
	Ctx context.Context

	// OnVisit runs on discovery (pre-order); an error aborts the walk.
	OnVisit func(id string) error

	// OnExit runs when a vertex finishes (post-order); an error aborts the walk.
	OnExit func(id string) error

	// MaxDepth >= 0 stops descent below that depth; -1 disables the limit.
	MaxDepth int

	// FilterNeighbor returns false to skip the step curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// FullTraversal restarts from every undiscovered vertex in label order.
	FullTraversal bool

	err error
}

// DefaultOptions returns a background context, no hooks, no depth limit and a
// single-source walk.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs the post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits descent; 0 visits only the roots. Below -1 is an ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < -1 {
			o.err = fmt.Errorf("%w: MaxDepth %d", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor installs the neighbour filter.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal walks the whole forest instead of one tree.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result is the outcome of a DFS run.
type Result struct {
	PreOrder  []string
	PostOrder []string

	Discovery map[string]int
	Finish    map[string]int
	Parent    map[string]string
	Depth     map[string]int

	// HasCycle reports whether any traversed edge closed a cycle.
	HasCycle bool

	// CycleWitness is the first cycle found, closed: first vertex repeated last.
	CycleWitness []string

	// SkippedNeighbors counts steps rejected by FilterNeighbor.
	SkippedNeighbors int
}

// Visited reports whether id was discovered.
func (r *Result) Visited(id string) bool {
	_, ok := r.Discovery[id]

	return ok
}
