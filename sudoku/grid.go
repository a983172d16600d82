package sudoku

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/algokit/algoerr"
)

// Size is the side of the board.
const Size = 9

var (
	// ErrInvalidGrid is returned for out-of-range digits, malformed input or
	// givens that repeat within a row, column or box.
	ErrInvalidGrid = algoerr.New(algoerr.InvalidInput, "sudoku: invalid grid")

	// ErrUnsolvable is returned when no completion exists.
	ErrUnsolvable = algoerr.New(algoerr.Unsolvable, "sudoku: no solution")

	// ErrBudgetExceeded is returned when the node budget runs out.
	ErrBudgetExceeded = algoerr.New(algoerr.BudgetExceeded, "sudoku: node budget exceeded")

	// ErrOptionViolation is returned for negative budgets or limits.
	ErrOptionViolation = algoerr.New(algoerr.InvalidInput, "sudoku: invalid option supplied")
)

// Grid is a board; 0 marks an empty cell.
type Grid [Size][Size]int

// Parse reads 81 cells in row-major order. Digits 1–9 are givens; '0' and '.'
// are blanks; whitespace is ignored.
func Parse(s string) (Grid, error) {
	var g Grid
	i := 0
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '.' || r == '0':
		case r >= '1' && r <= '9':
			if i < Size*Size {
				g[i/Size][i%Size] = int(r - '0')
			}
		default:
			return Grid{}, fmt.Errorf("%w: unexpected %q at cell %d", ErrInvalidGrid, r, i)
		}
		i++
	}
	if i != Size*Size {
		return Grid{}, fmt.Errorf("%w: %d cells, want %d", ErrInvalidGrid, i, Size*Size)
	}

	return g, nil
}

// String renders the grid as 9 lines of digits with '.' for blanks.
func (g Grid) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if v := g[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + v))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Validate checks digit ranges and that no given repeats in a unit.
func (g Grid) Validate() error {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := g[r][c]
			if v < 0 || v > Size {
				return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidGrid, r, c, v)
			}
			if v == 0 {
				continue
			}
			for _, p := range peers[r*Size+c] {
				if g[p/Size][p%Size] == v {
					return fmt.Errorf("%w: %d repeated at (%d,%d) and (%d,%d)", ErrInvalidGrid, v, r, c, p/Size, p%Size)
				}
			}
		}
	}

	return nil
}

// Complete reports whether g is a fully filled valid solution.
func (g Grid) Complete() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}

	return g.Validate() == nil
}

// peers[i] lists the 20 cells sharing a row, column or box with cell i.
var peers = func() (p [Size * Size][]int) {
	for i := range p {
		r, c := i/Size, i%Size
		br, bc := r/3*3, c/3*3
		seen := map[int]bool{i: true}
		add := func(j int) {
			if !seen[j] {
				seen[j] = true
				p[i] = append(p[i], j)
			}
		}
		for k := 0; k < Size; k++ {
			add(r*Size + k)
			add(k*Size + c)
			add((br+k/3)*Size + bc + k%3)
		}
	}

	return p
}()
