package dfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dfs"
)

func build(t *testing.T, g *core.Graph, pairs ...[2]string) *core.Graph {
	t.Helper()
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}

	return g
}

func directed() *core.Graph { return core.NewGraph(core.WithDirected(true)) }

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(core.NewGraph(), "A")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	g := build(t, core.NewGraph(), [2]string{"A", "B"})
	_, err = dfs.DFS(g, "A", dfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestDFS_OrdersAndTimestamps(t *testing.T) {
	g := build(t, directed(), [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "C"})
	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, res.PreOrder)
	assert.Equal(t, []string{"C", "B", "A"}, res.PostOrder)
	assert.Equal(t, map[string]int{"A": 1, "B": 2, "C": 3}, res.Discovery)
	assert.Equal(t, map[string]int{"C": 4, "B": 5, "A": 6}, res.Finish)
	assert.Equal(t, map[string]string{"B": "A", "C": "B"}, res.Parent)
	assert.Equal(t, 2, res.Depth["C"])
	assert.False(t, res.HasCycle)
	assert.Nil(t, res.CycleWitness)
}

// Discovery/Finish intervals of a parent enclose those of its child.
func TestDFS_ParenthesisProperty(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 30; i++ {
		_, err := g.AddEdge(strconv.Itoa(i), strconv.Itoa((i*7+3)%30), 0)
		if errors.Is(err, core.ErrMultiEdgeNotAllowed) || errors.Is(err, core.ErrLoopNotAllowed) {
			continue
		}
		require.NoError(t, err)
	}
	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	for child, parent := range res.Parent {
		assert.Less(t, res.Discovery[parent], res.Discovery[child])
		assert.Less(t, res.Finish[child], res.Finish[parent])
	}
	assert.Len(t, res.PreOrder, g.VertexCount())
}

func TestDFS_DirectedCycleWitness(t *testing.T) {
	g := build(t, directed(), [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})
	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.True(t, res.HasCycle)
	assert.Equal(t, []string{"A", "B", "C", "A"}, res.CycleWitness)
}

func TestDFS_DirectedDiamondIsAcyclic(t *testing.T) {
	g := build(t, directed(), [2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"}, [2]string{"C", "D"})
	ok, witness, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, witness)
}

func TestDFS_UndirectedCycles(t *testing.T) {
	tree := build(t, core.NewGraph(), [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"B", "D"})
	ok, _, err := dfs.HasCycle(tree)
	require.NoError(t, err)
	assert.False(t, ok, "the edge back to the parent is not a cycle")

	tri := build(t, core.NewGraph(), [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})
	ok, witness, err := dfs.HasCycle(tri)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C", "A"}, witness)

	multi := build(t, core.NewGraph(core.WithMultiEdges()), [2]string{"A", "B"}, [2]string{"A", "B"})
	ok, witness, err = dfs.HasCycle(multi)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"A", "B", "A"}, witness)

	loop := build(t, core.NewGraph(core.WithLoops()), [2]string{"A", "A"})
	ok, witness, err = dfs.HasCycle(loop)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"A", "A"}, witness)
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	g := build(t, core.NewGraph(), [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "D"})
	res, err := dfs.DFS(g, "A", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, res.PreOrder)

	res, err = dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "B" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D"}, res.PreOrder)
	assert.Equal(t, 1, res.SkippedNeighbors)
	assert.False(t, res.Visited("B"))
}

func TestDFS_FullTraversal(t *testing.T) {
	g := build(t, core.NewGraph(), [2]string{"A", "B"}, [2]string{"C", "D"})
	require.NoError(t, g.AddVertex("E"))
	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.PreOrder)
	_, hasParent := res.Parent["C"]
	assert.False(t, hasParent, "C roots its own tree")
}

func TestDFS_HookErrorsAndCancel(t *testing.T) {
	g := build(t, core.NewGraph(), [2]string{"A", "B"}, [2]string{"B", "C"})
	boom := errors.New("boom")

	res, err := dfs.DFS(g, "A", dfs.WithOnVisit(func(id string) error {
		if id == "B" {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"A", "B"}, res.PreOrder)

	var exits []string
	_, err = dfs.DFS(g, "A", dfs.WithOnExit(func(id string) error {
		exits = append(exits, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, exits)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_DeepChain(t *testing.T) {
	const n = 50000
	g := directed()
	for i := 0; i < n-1; i++ {
		_, err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1), 0)
		require.NoError(t, err)
	}
	res, err := dfs.DFS(g, "0")
	require.NoError(t, err)
	assert.Len(t, res.PostOrder, n)
	assert.Equal(t, strconv.Itoa(n-1), res.PostOrder[0])
	assert.Equal(t, n-1, res.Depth[strconv.Itoa(n-1)])
}

func TestHasCycle_Nil(t *testing.T) {
	_, _, err := dfs.HasCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}
