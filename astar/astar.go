package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/algokit/algoerr"
	"github.com/katalvlaran/algokit/core"
)

// Sentinel errors.
var (
	ErrNilGraph        = algoerr.New(algoerr.InvalidInput, "astar: graph is nil")
	ErrNilHeuristic    = algoerr.New(algoerr.InvalidInput, "astar: heuristic is nil")
	ErrVertexNotFound  = algoerr.New(algoerr.InvalidInput, "astar: vertex not found")
	ErrNegativeWeight  = algoerr.New(algoerr.NegativeEdge, "astar: negative edge weight encountered")
	ErrBadHeuristic    = algoerr.New(algoerr.InvalidInput, "astar: heuristic returned NaN or a negative value")
	ErrNoPath          = algoerr.New(algoerr.Unsolvable, "astar: target unreachable")
	ErrBudgetExceeded  = algoerr.New(algoerr.BudgetExceeded, "astar: expansion budget exceeded")
	ErrOptionViolation = algoerr.New(algoerr.InvalidInput, "astar: invalid option")
)

// Heuristic estimates the remaining cost from v to the target.
type Heuristic func(v string) float64

// Zero is the admissible heuristic h(v) = 0.
func Zero(string) float64 { return 0 }

// Path is a shortest source→target path.
type Path struct {
	Vertices []string
	Cost     float64
	Expanded int // vertices popped and expanded
}

// Options configures Search.
type Options struct {
	MaxExpansions int // 0 means unlimited

	err error
}

// Option is a functional option for Search.
type Option func(*Options)

// WithMaxExpansions bounds the number of expansions; n must be positive.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxExpansions must be positive, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Search finds a cheapest source→target path in g guided by h.
//
// Steps:
//  1. Validate graph, endpoints, heuristic and weights.
//  2. Seed the open heap with the source at f = h(source).
//  3. Pop the lowest f; stop on the target; otherwise relax its neighbours,
//     reopening closed vertices whose cost improves.
//
// Complexity: O((V + E) log V) with a consistent heuristic.
func Search(g *core.Graph, source, target string, h Heuristic, opts ...Option) (*Path, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 1) Validation
	if g == nil {
		return nil, ErrNilGraph
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	for _, id := range []string{source, target} {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	s := &search{g: g, h: h, target: target, cfg: cfg,
		cost: map[string]float64{source: 0},
		prev: map[string]string{},
		open: map[string]bool{},
	}

	// 2) Seed
	if err := s.push(source, 0); err != nil {
		return nil, err
	}

	// 3) Main loop
	return s.run(source)
}

type search struct {
	g      *core.Graph
	h      Heuristic
	target string
	cfg    Options

	cost map[string]float64
	prev map[string]string
	open map[string]bool
	pq   openPQ
	seq  int

	expanded int
}

func (s *search) push(v string, gv float64) error {
	hv := s.h(v)
	if math.IsNaN(hv) || hv < 0 {
		return fmt.Errorf("%w: h(%q)=%g", ErrBadHeuristic, v, hv)
	}
	s.seq++
	heap.Push(&s.pq, &openItem{id: v, g: gv, f: gv + hv, seq: s.seq})
	s.open[v] = true

	return nil
}

func (s *search) run(source string) (*Path, error) {
	for s.pq.Len() > 0 {
		it := heap.Pop(&s.pq).(*openItem)
		// stale entry: a cheaper push for this vertex exists
		if it.g > s.cost[it.id] || !s.open[it.id] {
			continue
		}
		s.open[it.id] = false
		u := it.id
		if u == s.target {
			return s.path(source), nil
		}
		s.expanded++
		if s.cfg.MaxExpansions > 0 && s.expanded > s.cfg.MaxExpansions {
			return nil, fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, s.cfg.MaxExpansions)
		}

		nb, err := s.g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("astar: neighbors of %q: %w", u, err)
		}
		for _, e := range nb {
			v := e.Other(u)
			ng := s.cost[u] + e.Weight
			if old, seen := s.cost[v]; seen && ng >= old {
				continue
			}
			s.cost[v] = ng
			s.prev[v] = u
			if err := s.push(v, ng); err != nil {
				return nil, err
			}
		}
	}

	return nil, fmt.Errorf("%w: %q from %q", ErrNoPath, s.target, source)
}

func (s *search) path(source string) *Path {
	rev := []string{s.target}
	for v := s.target; v != source; {
		v = s.prev[v]
		rev = append(rev, v)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return &Path{Vertices: rev, Cost: s.cost[s.target], Expanded: s.expanded}
}

type openItem struct {
	id   string
	g, f float64
	seq  int
}

// openPQ orders by f, then by larger g (deeper first), then push order.
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g > b.g
	}

	return a.seq < b.seq
}

func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openPQ) Push(x any) { *pq = append(*pq, x.(*openItem)) }

func (pq *openPQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
