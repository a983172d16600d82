package hamiltonian

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/algokit/algoerr"
	"github.com/katalvlaran/algokit/core"
)

var (
	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = algoerr.New(algoerr.InvalidInput, "hamiltonian: graph is nil")

	// ErrEmptyGraph is returned for a graph without vertices.
	ErrEmptyGraph = algoerr.New(algoerr.InvalidInput, "hamiltonian: graph has no vertices")

	// ErrVertexNotFound is returned when WithStart names a missing vertex.
	ErrVertexNotFound = algoerr.New(algoerr.InvalidInput, "hamiltonian: start vertex not found")

	// ErrOptionViolation is returned for a negative budget.
	ErrOptionViolation = algoerr.New(algoerr.InvalidInput, "hamiltonian: invalid option supplied")

	// ErrNoCycle is returned when no Hamiltonian cycle exists.
	ErrNoCycle = algoerr.New(algoerr.Unsolvable, "hamiltonian: no Hamiltonian cycle")

	// ErrNoPath is returned when no Hamiltonian path exists.
	ErrNoPath = algoerr.New(algoerr.Unsolvable, "hamiltonian: no Hamiltonian path")

	// ErrBudgetExceeded is returned when the node budget runs out.
	ErrBudgetExceeded = algoerr.New(algoerr.BudgetExceeded, "hamiltonian: node budget exceeded")
)

// Options configures a search.
type Options struct {
	Start      string // fixed first vertex; "" lets the search choose
	NodeBudget int    // maximum path extensions; 0 means unbounded
	err        error
}

// Option configures a search.
type Option func(*Options)

// WithStart fixes the first vertex.
func WithStart(v string) Option {
	return func(o *Options) { o.Start = v }
}

// WithNodeBudget fails the search with ErrBudgetExceeded after b extensions.
func WithNodeBudget(b int) Option {
	return func(o *Options) {
		if b < 0 {
			o.err = fmt.Errorf("%w: node budget %d", ErrOptionViolation, b)
			return
		}
		o.NodeBudget = b
	}
}

// searcher is an index view of the graph plus search state.
type searcher struct {
	labels []string
	adj    [][]int // out-neighbours without self-loops, ascending
	in     []int   // distinct in-neighbours per vertex
	opts   Options
	nodes  int
}

func prepare(g *core.Graph, opts []Option) (*searcher, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	labels := g.Vertices()
	if len(labels) == 0 {
		return nil, ErrEmptyGraph
	}
	if o.Start != "" && !g.HasVertex(o.Start) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, o.Start)
	}

	index := make(map[string]int, len(labels))
	for i, v := range labels {
		index[v] = i
	}
	s := &searcher{labels: labels, adj: make([][]int, len(labels)), in: make([]int, len(labels)), opts: o}
	for i, v := range labels {
		ids, err := g.NeighborIDs(v)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			if j := index[id]; j != i {
				s.adj[i] = append(s.adj[i], j)
				s.in[j]++
			}
		}
	}

	return s, nil
}

// starts returns the candidate first vertices.
func (s *searcher) starts() []int {
	if s.opts.Start != "" {
		for i, v := range s.labels {
			if v == s.opts.Start {
				return []int{i}
			}
		}
	}
	out := make([]int, len(s.labels))
	for i := range out {
		out[i] = i
	}

	return out
}

func (s *searcher) hasArc(u, v int) bool {
	for _, w := range s.adj[u] {
		if w == v {
			return true
		}
	}

	return false
}

// run extends a path from start until accept approves a full-length path.
func (s *searcher) run(start int, accept func(path []int) bool) ([]int, error) {
	type frame struct{ v, next int }
	n := len(s.labels)
	visited := bits.New(n)
	visited.SetBit(start, 1)
	path := []int{start}
	stack := []frame{{v: start}}
	for len(stack) > 0 {
		if len(path) == n {
			if accept(path) {
				return path, nil
			}
			visited.SetBit(path[len(path)-1], 0)
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]
			continue
		}
		top := &stack[len(stack)-1]
		advanced := false
		for top.next < len(s.adj[top.v]) {
			u := s.adj[top.v][top.next]
			top.next++
			if visited.Bit(u) == 1 {
				continue
			}
			s.nodes++
			if s.opts.NodeBudget > 0 && s.nodes > s.opts.NodeBudget {
				return nil, fmt.Errorf("%w: %d extensions", ErrBudgetExceeded, s.opts.NodeBudget)
			}
			visited.SetBit(u, 1)
			path = append(path, u)
			stack = append(stack, frame{v: u})
			advanced = true

			break
		}
		if !advanced {
			visited.SetBit(top.v, 0)
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]
		}
	}

	return nil, nil
}

func (s *searcher) names(path []int) []string {
	out := make([]string, len(path))
	for i, v := range path {
		out[i] = s.labels[v]
	}

	return out
}

// Cycle returns a Hamiltonian cycle, closed: the first vertex is repeated at the end.
//
// Every vertex needs an out- and in-neighbour; on undirected graphs at least two
// distinct neighbours. A single vertex or two vertices joined by one undirected
// edge have no cycle.
func Cycle(g *core.Graph, opts ...Option) ([]string, error) {
	s, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	n := len(s.labels)
	if n == 1 {
		return nil, ErrNoCycle
	}
	undirected := !g.HasDirectedEdges()
	for i := range s.labels {
		if len(s.adj[i]) == 0 || s.in[i] == 0 || (undirected && len(s.adj[i]) < 2) {
			return nil, fmt.Errorf("%w: %q has too few neighbours", ErrNoCycle, s.labels[i])
		}
	}

	// A cycle visits every vertex, so one start suffices.
	start := s.starts()[0]
	path, err := s.run(start, func(p []int) bool { return s.hasArc(p[len(p)-1], start) })
	if err != nil {
		return nil, err
	}
	if path == nil {
		return nil, ErrNoCycle
	}

	return append(s.names(path), s.labels[start]), nil
}

// Path returns a Hamiltonian path. Without WithStart every vertex is tried as
// the first one in label order.
func Path(g *core.Graph, opts ...Option) ([]string, error) {
	s, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	for _, start := range s.starts() {
		path, err := s.run(start, func([]int) bool { return true })
		if err != nil {
			return nil, err
		}
		if path != nil {
			return s.names(path), nil
		}
	}

	return nil, ErrNoPath
}
