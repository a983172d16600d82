package dfs

import (
	"container/heap"
	"context"
	"sort"

	"github.com/katalvlaran/algokit/core"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx  context.Context
	less func(a, b string) bool
}

func defaultTopoOptions() topoOptions {
	return topoOptions{
		ctx:  context.Background(),
		less: func(a, b string) bool { return a < b },
	}
}

// WithCancelContext sets the cancellation context. A nil ctx is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithPriority orders ready vertices: the one for which less reports true is
// emitted first. less must be a strict weak order. A nil less is ignored.
func WithPriority(less func(a, b string) bool) TopoOption {
	return func(o *topoOptions) {
		if less != nil {
			o.less = less
		}
	}
}

// TopologicalSort orders the vertices of a directed graph so that every edge
// u→v has u before v.
//
// Steps:
//  1. Reject nil or non-directed graphs.
//  2. Compute in-degrees; seed the ready heap with zero in-degree vertices.
//  3. Pop the highest-priority ready vertex, emit it and decrement its successors.
//  4. Anything left unemitted lies on or behind a cycle: return *CycleError.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	// 1) Validate
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() && !g.MixedEdges() {
		return nil, ErrNotDirected
	}
	for _, e := range g.Edges() {
		if !e.Directed {
			return nil, ErrNotDirected
		}
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// 2) In-degrees
	indeg := g.InDegrees()
	ready := &readyHeap{less: opts.less}
	for _, v := range g.Vertices() {
		if indeg[v] == 0 {
			ready.items = append(ready.items, v)
		}
	}
	heap.Init(ready)

	// 3) Drain
	order := make([]string, 0, g.VertexCount())
	for ready.Len() > 0 {
		if err := opts.ctx.Err(); err != nil {
			return nil, err
		}
		u := heap.Pop(ready).(string)
		order = append(order, u)
		out, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range out {
			indeg[e.To]--
			if indeg[e.To] == 0 {
				heap.Push(ready, e.To)
			}
		}
	}

	// 4) Leftovers mean a cycle
	if len(order) < g.VertexCount() {
		var remaining []string
		for v, d := range indeg {
			if d > 0 {
				remaining = append(remaining, v)
			}
		}
		sort.Strings(remaining)

		return nil, &CycleError{Remaining: remaining}
	}

	return order, nil
}

// readyHeap is a heap of vertex labels under a caller-supplied order.
type readyHeap struct {
	items []string
	less  func(a, b string) bool
}

func (h *readyHeap) Len() int           { return len(h.items) }
func (h *readyHeap) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *readyHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *readyHeap) Push(x any)         { h.items = append(h.items, x.(string)) }
func (h *readyHeap) Pop() any {
	n := len(h.items)
	v := h.items[n-1]
	h.items = h.items[:n-1]

	return v
}
