package dsu_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/dsu"
)

func ExampleDSU_Union() {
	d := dsu.New(5)
	fmt.Println(d.Union(0, 1), d.Union(3, 4), d.Union(1, 0))
	fmt.Println(d.Count(), d.Sets())
	// Output:
	// true true false
	// 3 [[0 1] [2] [3 4]]
}
