package matrix

import (
	"math"

	"github.com/katalvlaran/algokit/core"
)

// NewDistanceMatrix builds an n×n matrix filled with +Inf off the diagonal and 0 on it.
func NewDistanceMatrix(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	inf := math.Inf(1)
	for i := range d.data {
		if i/n != i%n {
			d.data[i] = inf
		}
	}

	return d, nil
}

// FromGraph builds a distance matrix from g. Index i is g.Vertices()[i].
// Parallel edges keep the minimum weight; undirected edges fill both cells.
// A negative self-loop is kept on the diagonal so FloydWarshall reports it.
func FromGraph(g *core.Graph) (*Dense, []string, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	d, err := NewDistanceMatrix(len(ids))
	if err != nil {
		return nil, nil, err
	}
	n := len(ids)
	put := func(i, j int, w float64) {
		if w < d.data[i*n+j] {
			d.data[i*n+j] = w
		}
	}
	for _, e := range g.Edges() {
		i, j := index[e.From], index[e.To]
		put(i, j, e.Weight)
		if !e.Directed {
			put(j, i, e.Weight)
		}
	}

	return d, ids, nil
}
