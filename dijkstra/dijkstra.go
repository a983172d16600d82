package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/algokit/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Preconditions, checked in order:
//  1. options are valid (ErrOptionViolation).
//  2. Source is non-empty (ErrEmptySource).
//  3. g is non-nil (ErrNilGraph) and weighted (ErrUnweightedGraph).
//  4. Source, and Target when set, exist (ErrVertexNotFound).
//  5. No edge has negative weight (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
	}

	// 3) Fail fast on negative weights
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Run
	r := newRunner(g, cfg)
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	res := &Result{Source: cfg.Source, Dist: r.dist, Settled: r.settled}
	if cfg.ReturnPath {
		res.Prev = r.prev
	}

	return res, nil
}

// runner holds the mutable state of a single execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
	pushes  int
	settled int
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.VertexCount()

	return &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      make(nodePQ, 0, n),
	}
}

// init sets every distance to +Inf, the source to 0, and seeds the heap.
func (r *runner) init() {
	inf := math.Inf(1)
	for _, v := range r.g.Vertices() {
		r.dist[v] = inf
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

func (r *runner) push(id string, d float64) {
	r.pushes++
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.pushes})
}

// process extracts vertices in distance order until the heap drains, the next
// key exceeds MaxDistance, or the target is settled.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the closest entry
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// 2) Lazy deletion of stale entries
		if r.visited[u] || d > r.dist[u] {
			continue
		}

		// 3) Distance cap
		if d > r.options.MaxDistance {
			break
		}

		// 4) Settle u
		r.visited[u] = true
		r.settled++
		if u == r.options.Target {
			break
		}

		// 5) Relax outgoing edges
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbour of the settled vertex u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}
	for _, e := range neighbors {
		w := e.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		v := e.Other(u)
		nd := r.dist[u] + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.push(v, nd)
	}

	return nil
}

// nodeItem is a heap entry: a vertex and the tentative distance it was pushed with.
type nodeItem struct {
	id   string
	dist float64
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then push order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
