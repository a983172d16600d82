// Package nqueens enumerates placements of n non-attacking queens on an n×n board.
//
// A solution is a slice b of length n where b[r] is the column of the queen in
// row r. Solutions are produced in lexicographic order of b. Column and both
// diagonal occupancies are kept in bitsets, so each placement test is O(1).
package nqueens
