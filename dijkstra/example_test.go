package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dijkstra"
)

func ExampleDijkstra() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "C", 4)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("B", "D", 5)
	_, _ = g.AddEdge("C", "D", 1)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("D")
	fmt.Println(res.Dist["D"], path)
	// Output: 4 [A B C D]
}

func ExampleWithTarget() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("home", "shop", 2)
	_, _ = g.AddEdge("shop", "park", 3)
	_, _ = g.AddEdge("home", "park", 10)

	res, _ := dijkstra.Dijkstra(g, dijkstra.Source("home"), dijkstra.WithTarget("park"))
	fmt.Println(res.Dist["park"])
	// Output: 5
}
