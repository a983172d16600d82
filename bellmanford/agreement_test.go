package bellmanford_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/bellmanford"
	"github.com/katalvlaran/algokit/builder"
	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dijkstra"
)

// On non-negative weights Bellman–Ford and Dijkstra agree on every distance.
func TestAgreesWithDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		directed := seed%2 == 0
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithWeighted(), core.WithDirected(directed)},
			[]builder.Option{builder.WithSeed(seed), builder.WithUniformWeight(0, 20)},
			builder.RandomSparse(25, 0.15),
		)
		require.NoError(t, err)

		bf, err := bellmanford.BellmanFord(g, "0")
		require.NoError(t, err)
		dj, err := dijkstra.Dijkstra(g, dijkstra.Source("0"))
		require.NoError(t, err)
		assert.Equal(t, dj.Dist, bf.Dist, "seed %d", seed)
	}
}
