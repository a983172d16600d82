package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/bfs"
	"github.com/katalvlaran/algokit/core"
)

// ExampleBFS shows layering on a 3×3 grid.
func ExampleBFS() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 0)
			}
			if i+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 0)
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

func ExampleConnectedComponents() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "D", 0)
	_ = g.AddVertex("E")

	comps, _ := bfs.ConnectedComponents(g)
	fmt.Println(comps)
	// Output:
	// [[A B] [C D] [E]]
}
