// Package builder generates deterministic core.Graph fixtures: complete graphs,
// paths, cycles, stars, wheels, grids and seeded random graphs.
//
// Constructors are composed by BuildGraph in call order:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithWeighted()},
//	    []builder.Option{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
//	    builder.RandomSparse(50, 0.1),
//	)
//
// Vertex ids come from the id scheme (decimal indices by default; Grid uses
// "row_col"). Weights are drawn only when the graph is weighted. The same
// options, seed and constructor order always give the same graph.
package builder
