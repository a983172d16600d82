package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/algoerr"
	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/matrix"
)

var inf = math.Inf(1)

func TestFloydWarshall_Basic(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{
		{0, 3, inf, 7},
		{8, 0, 2, inf},
		{5, inf, 0, 1},
		{2, inf, inf, 0},
	})
	require.NoError(t, err)

	res, err := matrix.FloydWarshall(m)
	require.NoError(t, err)
	assert.False(t, res.NegativeCycle)
	assert.Equal(t, [][]float64{
		{0, 3, 5, 6},
		{5, 0, 2, 3},
		{3, 6, 0, 1},
		{2, 5, 7, 0},
	}, res.Dist.ToRows())

	path, err := res.Path(1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 0}, path)

	// input untouched
	v, _ := m.At(0, 2)
	assert.True(t, math.IsInf(v, 1))
}

func TestFloydWarshall_Unreachable(t *testing.T) {
	m, _ := matrix.NewFromRows([][]float64{{0, 1}, {inf, 0}})
	res, err := matrix.FloydWarshall(m)
	require.NoError(t, err)
	path, err := res.Path(1, 0)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, matrix.NoHop, res.Next[1][0])
}

func TestFloydWarshall_NegativeCycle(t *testing.T) {
	m, _ := matrix.NewDistanceMatrix(4)
	_ = m.Set(0, 1, 1)
	_ = m.Set(1, 2, -1)
	_ = m.Set(2, 0, -1)
	_ = m.Set(3, 0, 2)

	res, err := matrix.FloydWarshall(m)
	require.NoError(t, err)
	assert.True(t, res.NegativeCycle)

	_, err = res.Path(3, 2)
	assert.ErrorIs(t, err, matrix.ErrNegativeCycle)
	assert.True(t, algoerr.Is(err, algoerr.NegativeCycle))

	// 0 cannot reach 3, so that pair is simply unreachable
	path, err := res.Path(0, 3)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestFloydWarshall_NegativeSelfLoop(t *testing.T) {
	m, _ := matrix.NewFromRows([][]float64{{-1}})
	res, err := matrix.FloydWarshall(m)
	require.NoError(t, err)
	assert.True(t, res.NegativeCycle)
}

func TestFloydWarshall_Validation(t *testing.T) {
	_, err := matrix.FloydWarshall(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.FloydWarshall(typedNil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, _ := matrix.NewDense(2, 3)
	_, err = matrix.FloydWarshall(rect)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	assert.True(t, algoerr.Is(err, algoerr.InvalidInput))

	nan, _ := matrix.NewFromRows([][]float64{{0, math.NaN()}, {1, 0}})
	_, err = matrix.FloydWarshall(nan)
	assert.ErrorIs(t, err, matrix.ErrNaN)

	_, err = matrix.NewFromRows([][]float64{{0, 1}, {1}})
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

// Undirected inputs produce symmetric distances and paths whose weight equals the distance.
func TestFloydWarshall_SymmetryAndPathWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 10; round++ {
		n := 3 + rng.Intn(8)
		m, _ := matrix.NewDistanceMatrix(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Intn(3) == 0 {
					w := float64(1 + rng.Intn(20))
					_ = m.Set(i, j, w)
					_ = m.Set(j, i, w)
				}
			}
		}
		res, err := matrix.FloydWarshall(m)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				dij, _ := res.Dist.At(i, j)
				dji, _ := res.Dist.At(j, i)
				require.Equal(t, dij, dji)

				path, err := res.Path(i, j)
				require.NoError(t, err)
				if math.IsInf(dij, 1) {
					require.Empty(t, path)
					continue
				}
				sum := 0.0
				for k := 1; k < len(path); k++ {
					w, _ := m.At(path[k-1], path[k])
					sum += w
				}
				require.Equal(t, dij, sum)
			}
		}
	}
}

func TestFromGraph(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true), core.WithMultiEdges())
	_, _ = g.AddEdge("B", "A", 4)
	_, _ = g.AddEdge("B", "A", 2)
	_, _ = g.AddEdge("A", "C", 1)

	m, ids, err := matrix.FromGraph(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ids)
	assert.Equal(t, [][]float64{
		{0, inf, 1},
		{2, 0, inf},
		{inf, inf, 0},
	}, m.ToRows())

	_, _, err = matrix.FromGraph(nil)
	assert.ErrorIs(t, err, matrix.ErrGraphNil)
}

func TestFloydWarshallInPlace(t *testing.T) {
	m, _ := matrix.NewFromRows([][]float64{{0, 1, inf}, {inf, 0, 1}, {inf, inf, 0}})
	neg, err := matrix.FloydWarshallInPlace(m)
	require.NoError(t, err)
	assert.False(t, neg)
	v, _ := m.At(0, 2)
	assert.Equal(t, 2.0, v)
}

func TestDenseBounds(t *testing.T) {
	d, _ := matrix.NewDense(1, 1)
	_, err := d.At(1, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.Equal(t, "[0]\n", d.String())
}
