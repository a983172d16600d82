package dfs

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/algokit/core"
)

// frame is one vertex on the explicit DFS stack.
type frame struct {
	id    string
	via   string // edge ID used to enter id, "" for roots
	depth int
	edges []*core.Edge
	next  int
}

// walker holds the mutable state of one DFS run.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result

	index map[string]int // vertex → bit position
	gray  bits.Bits
	black bits.Bits
	clock int

	stack []frame
}

// DFS runs depth-first search from start, or over the whole forest when
// WithFullTraversal is set (start is then ignored).
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound, ctx.Err() on
// cancellation, or a wrapped hook error. On abort the partial Result is returned
// alongside the error.
func DFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	// 1) Validate
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	// 2) Index vertices for the colour sets
	verts := g.Vertices()
	w := &walker{
		graph: g,
		opts:  o,
		index: make(map[string]int, len(verts)),
		gray:  bits.New(len(verts)),
		black: bits.New(len(verts)),
		res: &Result{
			PreOrder:  make([]string, 0, len(verts)),
			PostOrder: make([]string, 0, len(verts)),
			Discovery: make(map[string]int, len(verts)),
			Finish:    make(map[string]int, len(verts)),
			Parent:    make(map[string]string, len(verts)),
			Depth:     make(map[string]int, len(verts)),
		},
	}
	for i, v := range verts {
		w.index[v] = i
	}

	// 3) Walk one tree or the forest
	roots := []string{start}
	if o.FullTraversal {
		roots = verts
	}
	for _, r := range roots {
		if w.colour(r) != White {
			continue
		}
		if err := w.walk(r); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

func (w *walker) colour(id string) int {
	i := w.index[id]
	switch {
	case w.black.Bit(i) == 1:
		return Black
	case w.gray.Bit(i) == 1:
		return Gray
	default:
		return White
	}
}

// enter discovers id and pushes its frame.
func (w *walker) enter(id, via string, depth int) error {
	w.gray.SetBit(w.index[id], 1)
	w.clock++
	w.res.Discovery[id] = w.clock
	w.res.Depth[id] = depth
	w.res.PreOrder = append(w.res.PreOrder, id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}
	edges, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	w.stack = append(w.stack, frame{id: id, via: via, depth: depth, edges: edges})

	return nil
}

// leave finishes the top frame.
func (w *walker) leave() error {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(top.id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", top.id, err)
		}
	}
	i := w.index[top.id]
	w.gray.SetBit(i, 0)
	w.black.SetBit(i, 1)
	w.clock++
	w.res.Finish[top.id] = w.clock
	w.res.PostOrder = append(w.res.PostOrder, top.id)

	return nil
}

func (w *walker) walk(root string) error {
	if err := w.enter(root, "", 0); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.edges) {
			if err := w.leave(); err != nil {
				return err
			}
			continue
		}
		e := top.edges[top.next]
		top.next++
		if e.ID == top.via && !e.Directed {
			continue
		}
		u, v := top.id, e.Other(top.id)
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(u, v) {
			w.res.SkippedNeighbors++
			continue
		}

		switch w.colour(v) {
		case White:
			if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
				continue
			}
			w.res.Parent[v] = u
			// top is invalidated by the append inside enter.
			if err := w.enter(v, e.ID, top.depth+1); err != nil {
				return err
			}
		case Gray:
			w.recordCycle(v)
		}
	}

	return nil
}

// recordCycle notes a back edge to the Gray vertex v; the witness is the stack
// segment from v to the top, closed with v.
func (w *walker) recordCycle(v string) {
	w.res.HasCycle = true
	if w.res.CycleWitness != nil {
		return
	}
	for i := len(w.stack) - 1; i >= 0; i-- {
		if w.stack[i].id != v {
			continue
		}
		cycle := make([]string, 0, len(w.stack)-i+1)
		for _, f := range w.stack[i:] {
			cycle = append(cycle, f.id)
		}
		w.res.CycleWitness = append(cycle, v)

		return
	}
}

// HasCycle reports whether g contains a cycle, with one witness.
func HasCycle(g *core.Graph) (bool, []string, error) {
	res, err := DFS(g, "", WithFullTraversal())
	if err != nil {
		return false, nil, err
	}

	return res.HasCycle, res.CycleWitness, nil
}
