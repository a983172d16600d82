package dijkstra_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/algoerr"
	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dijkstra"
	"github.com/katalvlaran/algokit/matrix"
)

// scenarioGraph is A→B:1, A→C:4, B→C:2, B→D:5, C→D:1.
func scenarioGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range []struct {
		from, to string
		w        float64
	}{{"A", "B", 1}, {"A", "C", 4}, {"B", "C", 2}, {"B", "D", 5}, {"C", "D", 1}} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestDijkstra_Validation(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource, "empty source has priority over nil graph")

	_, err = dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)

	g := scenarioGraph(t)
	_, err = dijkstra.Dijkstra(g, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithTarget("X"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)
	_, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)
	assert.True(t, algoerr.Is(err, algoerr.InvalidInput))
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", -5)
	_, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.True(t, algoerr.Is(err, algoerr.NegativeEdge))
}

func TestDijkstra_Scenario(t *testing.T) {
	res, err := dijkstra.Dijkstra(scenarioGraph(t), dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 3, "D": 4}, res.Dist)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)
}

func TestDijkstra_NoPredecessorsWithoutReturnPath(t *testing.T) {
	res, err := dijkstra.Dijkstra(scenarioGraph(t), dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Nil(t, res.Prev)
	_, err = res.PathTo("D")
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := scenarioGraph(t)
	require.NoError(t, g.AddVertex("Z"))
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("B"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Dist["A"], 1))
	assert.True(t, math.IsInf(res.Dist["Z"], 1))
	assert.Equal(t, "", res.Prev["Z"])
	_, err = res.PathTo("Z")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestDijkstra_UndirectedUsesBothEndpoints(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("B", "A", 2)
	_, _ = g.AddEdge("C", "B", 3)
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.Dist["C"])
}

func TestDijkstra_TargetEarlyExit(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("S", "T", 1)
	_, _ = g.AddEdge("S", "X", 5)
	_, _ = g.AddEdge("X", "Y", 1)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("S"), dijkstra.WithTarget("T"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Dist["T"])
	assert.Equal(t, 2, res.Settled)
	assert.True(t, math.IsInf(res.Dist["Y"], 1), "Y is never relaxed once T settles")
}

func TestDijkstra_MaxDistanceAndThreshold(t *testing.T) {
	res, err := dijkstra.Dijkstra(scenarioGraph(t), dijkstra.Source("A"), dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Dist["C"])
	assert.True(t, math.IsInf(res.Dist["D"], 1))

	res, err = dijkstra.Dijkstra(scenarioGraph(t), dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Dist["B"])
	assert.True(t, math.IsInf(res.Dist["C"], 1), "A→C:4 and B→C:2 are walls")
}

// Distances agree with Floyd–Warshall and every predecessor chain sums to its distance.
func TestDijkstra_MatchesAllPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 25; round++ {
		n := 2 + rng.Intn(10)
		g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddVertex("v"+strconv.Itoa(i)))
		}
		for k := 0; k < n*3; k++ {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			_, err := g.AddEdge("v"+strconv.Itoa(u), "v"+strconv.Itoa(v), float64(rng.Intn(10)))
			require.NoError(t, err)
		}

		m, ids, err := matrix.FromGraph(g)
		require.NoError(t, err)
		apsp, err := matrix.FloydWarshall(m)
		require.NoError(t, err)

		res, err := dijkstra.Dijkstra(g, dijkstra.Source(ids[0]), dijkstra.WithReturnPath())
		require.NoError(t, err)
		for j, id := range ids {
			want, _ := apsp.Dist.At(0, j)
			require.Equal(t, want, res.Dist[id], "round %d vertex %s", round, id)
			if math.IsInf(want, 1) {
				continue
			}
			path, err := res.PathTo(id)
			require.NoError(t, err)
			sum := 0.0
			for k := 1; k < len(path); k++ {
				best := math.Inf(1)
				nb, _ := g.Neighbors(path[k-1])
				for _, e := range nb {
					if e.To == path[k] && e.Weight < best {
						best = e.Weight
					}
				}
				sum += best
			}
			require.Equal(t, want, sum)
		}
	}
}
