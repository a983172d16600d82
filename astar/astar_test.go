package astar_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/algoerr"
	"github.com/katalvlaran/algokit/astar"
	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dijkstra"
)

func cell(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }

// grid builds an undirected rows×cols 4-neighbour grid with random weights ≥ 1.
func grid(t *testing.T, rows, cols int, rng *rand.Rand) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				_, err := g.AddEdge(cell(r, c), cell(r, c+1), float64(1+rng.Intn(5)))
				require.NoError(t, err)
			}
			if r+1 < rows {
				_, err := g.AddEdge(cell(r, c), cell(r+1, c), float64(1+rng.Intn(5)))
				require.NoError(t, err)
			}
		}
	}

	return g
}

func manhattan(tr, tc int) astar.Heuristic {
	return func(v string) float64 {
		var r, c int
		_, _ = fmt.Sscanf(v, "%d,%d", &r, &c)

		return math.Abs(float64(tr-r)) + math.Abs(float64(tc-c))
	}
}

func TestSearch_MatchesDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 10; round++ {
		g := grid(t, 6, 7, rng)
		target := cell(5, 6)
		want, err := dijkstra.Dijkstra(g, dijkstra.Source(cell(0, 0)))
		require.NoError(t, err)

		for _, h := range []astar.Heuristic{astar.Zero, manhattan(5, 6)} {
			p, err := astar.Search(g, cell(0, 0), target, h)
			require.NoError(t, err)
			assert.Equal(t, want.Dist[target], p.Cost)
			assert.Equal(t, cell(0, 0), p.Vertices[0])
			assert.Equal(t, target, p.Vertices[len(p.Vertices)-1])
		}
	}
}

func TestSearch_HeuristicReducesExpansions(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			if c+1 < 10 {
				_, _ = g.AddEdge(cell(r, c), cell(r, c+1), 1)
			}
			if r+1 < 10 {
				_, _ = g.AddEdge(cell(r, c), cell(r+1, c), 1)
			}
		}
	}
	blind, err := astar.Search(g, cell(0, 0), cell(9, 9), astar.Zero)
	require.NoError(t, err)
	guided, err := astar.Search(g, cell(0, 0), cell(9, 9), manhattan(9, 9))
	require.NoError(t, err)
	assert.Equal(t, 18.0, guided.Cost)
	assert.Equal(t, blind.Cost, guided.Cost)
	assert.Less(t, guided.Expanded, blind.Expanded)
}

// An admissible but inconsistent heuristic forces a closed vertex to reopen.
func TestSearch_ReopensOnInconsistentHeuristic(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("S", "A", 1)
	_, _ = g.AddEdge("S", "B", 4)
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "T", 5)
	h := map[string]float64{"S": 0, "A": 5, "B": 0, "T": 0}

	p, err := astar.Search(g, "S", "T", func(v string) float64 { return h[v] })
	require.NoError(t, err)
	assert.Equal(t, 7.0, p.Cost)
	assert.Equal(t, []string{"S", "A", "B", "T"}, p.Vertices)
}

func TestSearch_Errors(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	require.NoError(t, g.AddVertex("C"))

	_, err := astar.Search(nil, "A", "B", astar.Zero)
	assert.ErrorIs(t, err, astar.ErrNilGraph)
	_, err = astar.Search(g, "A", "B", nil)
	assert.ErrorIs(t, err, astar.ErrNilHeuristic)
	_, err = astar.Search(g, "A", "Q", astar.Zero)
	assert.ErrorIs(t, err, astar.ErrVertexNotFound)

	_, err = astar.Search(g, "A", "C", astar.Zero)
	assert.ErrorIs(t, err, astar.ErrNoPath)
	assert.True(t, algoerr.Is(err, algoerr.Unsolvable))

	_, err = astar.Search(g, "A", "B", func(string) float64 { return math.NaN() })
	assert.ErrorIs(t, err, astar.ErrBadHeuristic)

	_, err = astar.Search(g, "A", "B", astar.Zero, astar.WithMaxExpansions(0))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)

	neg := core.NewGraph(core.WithWeighted())
	_, _ = neg.AddEdge("A", "B", -1)
	_, err = astar.Search(neg, "A", "B", astar.Zero)
	assert.True(t, algoerr.Is(err, algoerr.NegativeEdge))
}

func TestSearch_Budget(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("C", "D", 1)

	_, err := astar.Search(g, "A", "D", astar.Zero, astar.WithMaxExpansions(2))
	assert.ErrorIs(t, err, astar.ErrBudgetExceeded)

	p, err := astar.Search(g, "A", "D", astar.Zero, astar.WithMaxExpansions(3))
	require.NoError(t, err)
	assert.Equal(t, 3, p.Expanded)
}

func TestSearch_SourceIsTarget(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("A"))
	p, err := astar.Search(g, "A", "A", astar.Zero)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, p.Vertices)
	assert.Zero(t, p.Cost)
}
