package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algokit/algoerr"
	"github.com/katalvlaran/algokit/core"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = algoerr.New(algoerr.InvalidInput, "bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = algoerr.New(algoerr.InvalidInput, "bfs: start vertex not found")

	// ErrOptionViolation is returned when an Option was given an invalid value.
	ErrOptionViolation = algoerr.New(algoerr.InvalidInput, "bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for an unreached vertex.
	ErrNoPath = algoerr.New(algoerr.Unsolvable, "bfs: vertex not reached")
)

// Option configures BFS.
type Option func(*Options)

// Options holds hooks and limits for a single BFS run.
type Options struct {
	Ctx context.Context

	// OnEnqueue runs when a vertex is first discovered.
	OnEnqueue func(id string, depth int)

	// OnDequeue runs immediately before a vertex is visited.
	OnDequeue func(id string, depth int)

	// OnVisit runs on visit; a non-nil error aborts the search.
	OnVisit func(id string, depth int) error

	// MaxDepth > 0 bounds the discovered depth; 0 disables the bound.
	MaxDepth int

	// FilterNeighbor returns false to skip the step curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns a background context, no-op hooks, no depth limit and no filter.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers the enqueue hook.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers the dequeue hook.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers the visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the search depth. Negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor registers the neighbour filter.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is the outcome of a BFS run.
type Result struct {
	Start  string
	Order  []string          // visit order
	Depth  map[string]int    // hop distance from Start
	Parent map[string]string // BFS tree; Start has no entry
}

// PathTo returns the fewest-hop path Start→dest found by the search.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}
	path, ok := core.TracePath(r.Parent, r.Start, dest)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}

	return path, nil
}
