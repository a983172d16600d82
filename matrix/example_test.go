package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algokit/matrix"
)

func ExampleFloydWarshall() {
	inf := math.Inf(1)
	m, _ := matrix.NewFromRows([][]float64{
		{0, 4, 1},
		{inf, 0, inf},
		{inf, 2, 0},
	})
	res, _ := matrix.FloydWarshall(m)
	d, _ := res.Distance(0, 1)
	path, _ := res.Path(0, 1)
	fmt.Println(d, path, res.NegativeCycle)
	// Output: 3 [0 2 1] false
}
