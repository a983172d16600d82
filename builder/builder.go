package builder

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/algokit/algoerr"
	"github.com/katalvlaran/algokit/core"
)

var (
	// ErrTooFewVertices is returned when a size parameter is below the topology's minimum.
	ErrTooFewVertices = algoerr.New(algoerr.InvalidInput, "builder: too few vertices")

	// ErrInvalidProbability is returned for an edge probability outside [0, 1].
	ErrInvalidProbability = algoerr.New(algoerr.InvalidInput, "builder: probability must be in [0, 1]")

	// ErrNilConstructor is returned when BuildGraph is given a nil constructor.
	ErrNilConstructor = algoerr.New(algoerr.InvalidInput, "builder: nil constructor")
)

// WeightFn draws one edge weight.
type WeightFn func(rng *rand.Rand) float64

type config struct {
	idFn     func(int) string
	weightFn WeightFn
	rng      *rand.Rand
}

// Option configures BuildGraph.
type Option func(*config)

// WithIDScheme maps vertex indices to ids. A nil fn is ignored.
func WithIDScheme(fn func(int) string) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithSeed seeds the generator used by weights and random topologies.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the weight generator. A nil fn is ignored.
func WithWeightFn(fn WeightFn) Option {
	return func(c *config) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithConstantWeight gives every edge weight w.
func WithConstantWeight(w float64) Option {
	return WithWeightFn(func(*rand.Rand) float64 { return w })
}

// WithUniformWeight draws integer weights uniformly from [min, max].
// Bounds are swapped when min > max.
func WithUniformWeight(min, max int) Option {
	if min > max {
		min, max = max, min
	}
	return WithWeightFn(func(r *rand.Rand) float64 { return float64(min + r.Intn(max-min+1)) })
}

func newConfig(opts ...Option) *config {
	c := &config{
		idFn:     strconv.Itoa,
		weightFn: func(*rand.Rand) float64 { return 1 },
		rng:      rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Constructor adds one topology to g.
type Constructor func(g *core.Graph, cfg *config) error

// BuildGraph creates a graph with gopts and applies cons in order.
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilConstructor, i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// edge adds u–v, drawing a weight only for weighted graphs.
func (c *config) edge(g *core.Graph, u, v string) error {
	w := 0.0
	if g.Weighted() {
		w = c.weightFn(c.rng)
	}
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("AddEdge(%s→%s): %w", u, v, err)
	}

	return nil
}

// vertices adds n vertices and returns their ids.
func (c *config) vertices(g *core.Graph, n int) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = c.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, err
		}
	}

	return ids, nil
}
