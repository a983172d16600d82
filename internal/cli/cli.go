// Package cli implements the algokit command-line interface.
//
// Each command reads its input (a YAML graph, a word list, a puzzle file or a
// literal string), runs one algorithm through the batch runner and prints the
// result as text or JSON.
//
// # Commands
//
//   - shortest, apsp: single-source and all-pairs shortest paths
//   - mst, topo, components: spanning trees, topological order, weak components
//   - match, complete, spell: Aho–Corasick matching, autocomplete, spell-check
//   - queens, sudoku: backtracking solvers; sudoku files may hold many puzzles
//   - huffman, palindrome: canonical Huffman codes, longest palindrome
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
//
// # Exit codes
//
// ExitCode maps errors to process exit codes: 2 for invalid input, 3 when no
// solution exists (negative edges or cycles, disconnected or cyclic inputs,
// unsolvable searches), 4 when a node budget ran out and 1 otherwise.
package cli

import (
	"context"
	"errors"

	"github.com/katalvlaran/algokit/algoerr"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInvalid     = 2
	ExitNoSolution  = 3
	ExitBudget      = 4
	ExitInterrupted = 130
)

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}
	switch algoerr.KindOf(err) {
	case algoerr.InvalidInput:
		return ExitInvalid
	case algoerr.NegativeEdge, algoerr.NegativeCycle, algoerr.Disconnected, algoerr.Cyclic, algoerr.Unsolvable:
		return ExitNoSolution
	case algoerr.BudgetExceeded:
		return ExitBudget
	default:
		return ExitFailure
	}
}
