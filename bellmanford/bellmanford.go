package bellmanford

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/algokit/algoerr"
	"github.com/katalvlaran/algokit/core"
)

// Sentinel errors.
var (
	ErrNilGraph       = algoerr.New(algoerr.InvalidInput, "bellmanford: graph is nil")
	ErrVertexNotFound = algoerr.New(algoerr.InvalidInput, "bellmanford: vertex not found")
	ErrNegativeCycle  = algoerr.New(algoerr.NegativeCycle, "bellmanford: negative cycle reachable from source")
	ErrNoPath         = algoerr.New(algoerr.Unsolvable, "bellmanford: no path to vertex")
)

// NegativeCycleError reports a reachable negative cycle. Cycle lists the vertices
// of one such cycle, first vertex repeated at the end. It matches ErrNegativeCycle
// under errors.Is.
type NegativeCycleError struct {
	Cycle []string
}

func (e *NegativeCycleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNegativeCycle.Error(), strings.Join(e.Cycle, " → "))
}

// Unwrap exposes the sentinel.
func (e *NegativeCycleError) Unwrap() error { return ErrNegativeCycle }

// Result holds distances and predecessors from Source.
type Result struct {
	Source string
	Dist   map[string]float64 // +Inf when unreachable
	Prev   map[string]string  // "" for the source and unreachable vertices
	Passes int                // relaxation passes performed
}

// PathTo returns the vertex sequence from the source to target.
func (r *Result) PathTo(target string) ([]string, error) {
	d, ok := r.Dist[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}
	path, ok := core.TracePath(r.Prev, r.Source, target)
	if !ok || math.IsInf(d, 1) {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, target)
	}

	return path, nil
}

// arc is one traversable direction of an edge.
type arc struct {
	from, to string
	w        float64
}

// BellmanFord computes shortest paths from source in g.
//
// Steps:
//  1. Validate and expand edges into arcs (undirected edges give two).
//  2. Relax all arcs up to |V|−1 times, stopping when a pass changes nothing.
//  3. One more pass: any improvement means a reachable negative cycle.
func BellmanFord(g *core.Graph, source string) (*Result, error) {
	// 1) Validation
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}
	vertices := g.Vertices()
	edges := g.Edges()
	arcs := make([]arc, 0, 2*len(edges))
	for _, e := range edges {
		arcs = append(arcs, arc{e.From, e.To, e.Weight})
		if !e.Directed && e.From != e.To {
			arcs = append(arcs, arc{e.To, e.From, e.Weight})
		}
	}

	inf := math.Inf(1)
	res := &Result{
		Source: source,
		Dist:   make(map[string]float64, len(vertices)),
		Prev:   make(map[string]string, len(vertices)),
	}
	for _, v := range vertices {
		res.Dist[v] = inf
		res.Prev[v] = ""
	}
	res.Dist[source] = 0

	// 2) |V|−1 passes with early stop
	for pass := 1; pass < len(vertices); pass++ {
		res.Passes = pass
		if !relaxAll(arcs, res) {
			return res, nil
		}
	}

	// 3) Detection pass
	for _, a := range arcs {
		du := res.Dist[a.from]
		if math.IsInf(du, 1) || du+a.w >= res.Dist[a.to] {
			continue
		}
		res.Prev[a.to] = a.from

		return nil, &NegativeCycleError{Cycle: witness(res.Prev, a.to, len(vertices))}
	}

	return res, nil
}

func relaxAll(arcs []arc, res *Result) bool {
	changed := false
	for _, a := range arcs {
		du := res.Dist[a.from]
		if math.IsInf(du, 1) {
			continue
		}
		if nd := du + a.w; nd < res.Dist[a.to] {
			res.Dist[a.to] = nd
			res.Prev[a.to] = a.from
			changed = true
		}
	}

	return changed
}

// witness walks back n steps from v, which lands inside the cycle, then collects
// the cycle in forward order.
func witness(prev map[string]string, v string, n int) []string {
	for i := 0; i < n; i++ {
		v = prev[v]
	}
	rev := []string{v}
	for u := prev[v]; u != v; u = prev[u] {
		rev = append(rev, u)
	}
	rev = append(rev, v)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
