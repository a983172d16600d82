package builder_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/builder"
	"github.com/katalvlaran/algokit/core"
)

func TestTopologies(t *testing.T) {
	cases := []struct {
		name     string
		cons     builder.Constructor
		vertices int
		edges    int
	}{
		{"complete", builder.Complete(6), 6, 15},
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(5), 5, 5},
		{"star", builder.Star(5), 5, 4},
		{"wheel", builder.Wheel(6), 6, 10},
		{"grid", builder.Grid(3, 4), 12, 17},
		{"single", builder.Path(1), 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestComplete_Directed(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount())
}

func TestWeightsAndIDs(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.Option{
			builder.WithConstantWeight(2.5),
			builder.WithIDScheme(func(i int) string { return "v" + strconv.Itoa(i) }),
		},
		builder.Cycle(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2"}, g.Vertices())
	for _, e := range g.Edges() {
		assert.Equal(t, 2.5, e.Weight)
	}

	g, err = builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Zero(t, e.Weight, "unweighted graphs never draw weights")
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) []string {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithWeighted()},
			[]builder.Option{builder.WithSeed(seed), builder.WithUniformWeight(1, 9)},
			builder.RandomSparse(30, 0.2),
		)
		require.NoError(t, err)
		var out []string
		for _, e := range g.Edges() {
			assert.GreaterOrEqual(t, e.Weight, 1.0)
			assert.LessOrEqual(t, e.Weight, 9.0)
			out = append(out, e.From+"-"+e.To+":"+strconv.FormatFloat(e.Weight, 'g', -1, 64))
		}
		return out
	}
	assert.Equal(t, build(3), build(3))
	assert.NotEqual(t, build(3), build(4))

	g, err := builder.BuildGraph(nil, nil, builder.RandomSparse(10, 1))
	require.NoError(t, err)
	assert.Equal(t, 45, g.EdgeCount())
	g, err = builder.BuildGraph(nil, nil, builder.RandomSparse(10, 0))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())
}

func TestErrors(t *testing.T) {
	for _, c := range []builder.Constructor{
		builder.Complete(0), builder.Path(0), builder.Cycle(2), builder.Star(1),
		builder.Wheel(3), builder.Grid(0, 3), builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildGraph(nil, nil, c)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	}
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(3, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrNilConstructor)
}
