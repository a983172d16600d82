package nqueens

import (
	"fmt"
	"iter"
	"strings"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/algokit/algoerr"
)

var (
	// ErrInvalidInput is returned for n < 1.
	ErrInvalidInput = algoerr.New(algoerr.InvalidInput, "nqueens: board size must be positive")

	// ErrOptionViolation is returned for a negative limit or budget.
	ErrOptionViolation = algoerr.New(algoerr.InvalidInput, "nqueens: invalid option supplied")

	// ErrBudgetExceeded is returned when the search places more queens than allowed.
	ErrBudgetExceeded = algoerr.New(algoerr.BudgetExceeded, "nqueens: node budget exceeded")
)

// Options bounds a search.
type Options struct {
	Limit      int // stop after this many solutions; 0 means all
	NodeBudget int // maximum queen placements; 0 means unbounded
	err        error
}

// Option configures a search.
type Option func(*Options)

// WithLimit stops after k solutions.
func WithLimit(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: limit %d", ErrOptionViolation, k)
			return
		}
		o.Limit = k
	}
}

// WithNodeBudget fails the search with ErrBudgetExceeded after b placements.
func WithNodeBudget(b int) Option {
	return func(o *Options) {
		if b < 0 {
			o.err = fmt.Errorf("%w: node budget %d", ErrOptionViolation, b)
			return
		}
		o.NodeBudget = b
	}
}

// solver holds the board and occupancy sets of one search.
type solver struct {
	n     int
	cols  bits.Bits
	diag  bits.Bits // r−c+n−1
	anti  bits.Bits // r+c
	board []int
	nodes int
	opts  Options
}

func newSolver(n int, opts Options) *solver {
	return &solver{
		n:     n,
		cols:  bits.New(n),
		diag:  bits.New(2*n - 1),
		anti:  bits.New(2*n - 1),
		board: make([]int, n),
		opts:  opts,
	}
}

func (s *solver) set(r, c, x int) {
	s.cols.SetBit(c, x)
	s.diag.SetBit(r-c+s.n-1, x)
	s.anti.SetBit(r+c, x)
}

func (s *solver) free(r, c int) bool {
	return s.cols.Bit(c) == 0 && s.diag.Bit(r-c+s.n-1) == 0 && s.anti.Bit(r+c) == 0
}

// place fills rows r.. and calls emit per solution. It returns false when emit
// asked to stop, and an error when the budget runs out.
func (s *solver) place(r int, emit func([]int) bool) (bool, error) {
	if r == s.n {
		return emit(s.board), nil
	}
	for c := 0; c < s.n; c++ {
		if !s.free(r, c) {
			continue
		}
		s.nodes++
		if s.opts.NodeBudget > 0 && s.nodes > s.opts.NodeBudget {
			return false, fmt.Errorf("%w: %d placements", ErrBudgetExceeded, s.opts.NodeBudget)
		}
		s.board[r] = c
		s.set(r, c, 1)
		more, err := s.place(r+1, emit)
		s.set(r, c, 0)
		if err != nil || !more {
			return false, err
		}
	}

	return true, nil
}

func run(n int, opts []Option, emit func([]int) bool) error {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if n < 1 {
		return fmt.Errorf("%w: n=%d", ErrInvalidInput, n)
	}
	found := 0
	_, err := newSolver(n, o).place(0, func(b []int) bool {
		found++
		if !emit(b) {
			return false
		}

		return o.Limit == 0 || found < o.Limit
	})

	return err
}

// Solve returns solutions in lexicographic order.
func Solve(n int, opts ...Option) ([][]int, error) {
	var out [][]int
	err := run(n, opts, func(b []int) bool {
		out = append(out, append([]int(nil), b...))
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Count returns the number of solutions, honouring WithLimit.
func Count(n int, opts ...Option) (int, error) {
	count := 0
	err := run(n, opts, func([]int) bool {
		count++
		return true
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// All returns an iterator over every solution in lexicographic order. Each
// yielded slice is a fresh copy. It fails with ErrInvalidInput for n < 1.
func All(n int) (iter.Seq[[]int], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidInput, n)
	}

	return func(yield func([]int) bool) {
		// n is valid and no options are set, so the search cannot fail.
		_ = run(n, nil, func(b []int) bool {
			return yield(append([]int(nil), b...))
		})
	}, nil
}

// Valid reports whether board is a complete non-attacking placement.
func Valid(board []int) bool {
	n := len(board)
	if n == 0 {
		return false
	}
	for r, c := range board {
		if c < 0 || c >= n {
			return false
		}
		for r2 := 0; r2 < r; r2++ {
			c2 := board[r2]
			if c2 == c || r-r2 == c-c2 || r-r2 == c2-c {
				return false
			}
		}
	}

	return true
}

// Render draws board with 'Q' for queens and '.' elsewhere, one row per line.
func Render(board []int) string {
	var sb strings.Builder
	for _, c := range board {
		for col := range board {
			if col == c {
				sb.WriteByte('Q')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
