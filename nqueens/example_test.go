package nqueens_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/nqueens"
)

func ExampleSolve() {
	sols, _ := nqueens.Solve(4, nqueens.WithLimit(1))
	fmt.Print(nqueens.Render(sols[0]))
	// Output:
	// .Q..
	// ...Q
	// Q...
	// ..Q.
}
