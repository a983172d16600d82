// Package sudoku solves 9×9 Sudoku puzzles by constraint propagation and
// backtracking.
//
// Each cell carries a candidate bitmask. Assigning a value removes it from the
// cell's 20 peers; with propagation enabled (the default) any peer reduced to a
// single candidate is assigned in turn, which is arc consistency for the
// all-different constraints. Branching picks the undecided cell with the fewest
// candidates (MRV) and tries candidates in ascending order.
//
// The search keeps its own stack of states, so recursion depth is constant.
// WithNodeBudget caps the number of branch assignments.
package sudoku
