package sudoku

import (
	"fmt"
	"math/bits"
)

const allDigits uint16 = 0x3FE // bits 1..9

// Stats describes the work done by a search.
type Stats struct {
	Nodes      int // branch assignments tried
	Backtracks int // candidate sets exhausted
}

// Options configures Solve and CountSolutions.
type Options struct {
	Propagation bool
	NodeBudget  int // 0 means unbounded
	err         error
}

// Option configures a search.
type Option func(*Options)

// WithPropagation toggles singleton propagation. Without it only the assigned
// cell's peers are pruned (forward checking).
func WithPropagation(on bool) Option {
	return func(o *Options) { o.Propagation = on }
}

// WithNodeBudget fails the search with ErrBudgetExceeded after b branch assignments.
func WithNodeBudget(b int) Option {
	return func(o *Options) {
		if b < 0 {
			o.err = fmt.Errorf("%w: node budget %d", ErrOptionViolation, b)
			return
		}
		o.NodeBudget = b
	}
}

// state is one node of the search.
type state struct {
	dom   [Size * Size]uint16
	fixed [Size * Size]bool
}

// assign fixes cell i to v and prunes peers. It reports false on contradiction.
func (s *state) assign(i, v int, propagate bool) bool {
	type pending struct{ cell, val int }
	work := []pending{{i, v}}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		bit := uint16(1) << p.val
		if s.dom[p.cell]&bit == 0 {
			return false
		}
		if s.fixed[p.cell] {
			continue
		}
		s.dom[p.cell] = bit
		s.fixed[p.cell] = true
		for _, q := range peers[p.cell] {
			if s.dom[q]&bit == 0 {
				continue
			}
			if s.fixed[q] {
				return false
			}
			s.dom[q] &^= bit
			switch bits.OnesCount16(s.dom[q]) {
			case 0:
				return false
			case 1:
				if propagate {
					work = append(work, pending{q, bits.TrailingZeros16(s.dom[q])})
				}
			}
		}
	}

	return true
}

// pick returns the undecided cell with the fewest candidates, or -1 when all are fixed.
func (s *state) pick() int {
	best, bestN := -1, Size+1
	for i := range s.dom {
		if s.fixed[i] {
			continue
		}
		if n := bits.OnesCount16(s.dom[i]); n < bestN {
			best, bestN = i, n
		}
	}

	return best
}

func (s *state) grid() Grid {
	var g Grid
	for i, d := range s.dom {
		g[i/Size][i%Size] = bits.TrailingZeros16(d)
	}

	return g
}

// frame is a stack entry: a state and the untried candidates of its branch cell.
type frame struct {
	st    state
	cell  int
	cands uint16
}

// search enumerates solutions until emit returns false.
func search(g Grid, opts []Option, emit func(Grid) bool) (*Stats, error) {
	o := Options{Propagation: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	stats := &Stats{}
	var root state
	for i := range root.dom {
		root.dom[i] = allDigits
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if v := g[r][c]; v != 0 && !root.assign(r*Size+c, v, o.Propagation) {
				return stats, nil
			}
		}
	}
	cell := root.pick()
	if cell < 0 {
		emit(root.grid())
		return stats, nil
	}

	stack := []frame{{st: root, cell: cell, cands: root.dom[cell]}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.cands == 0 {
			stack = stack[:len(stack)-1]
			stats.Backtracks++
			continue
		}
		v := bits.TrailingZeros16(top.cands)
		top.cands &^= 1 << v

		stats.Nodes++
		if o.NodeBudget > 0 && stats.Nodes > o.NodeBudget {
			return stats, fmt.Errorf("%w: %d nodes", ErrBudgetExceeded, o.NodeBudget)
		}
		next := top.st
		if !next.assign(top.cell, v, o.Propagation) {
			continue
		}
		c := next.pick()
		if c < 0 {
			if !emit(next.grid()) {
				return stats, nil
			}
			continue
		}
		stack = append(stack, frame{st: next, cell: c, cands: next.dom[c]})
	}

	return stats, nil
}

// Solve returns the first solution in candidate order.
//
// Errors: ErrInvalidGrid, ErrOptionViolation, ErrUnsolvable, ErrBudgetExceeded.
func Solve(g Grid, opts ...Option) (Grid, *Stats, error) {
	var sol Grid
	found := false
	stats, err := search(g, opts, func(s Grid) bool {
		sol, found = s, true
		return false
	})
	if err != nil {
		return Grid{}, stats, err
	}
	if !found {
		return Grid{}, stats, ErrUnsolvable
	}

	return sol, stats, nil
}

// CountSolutions counts completions of g, stopping at limit (limit must be positive).
// CountSolutions(g, 2) == 1 checks that a puzzle is uniquely solvable.
func CountSolutions(g Grid, limit int, opts ...Option) (int, error) {
	if limit <= 0 {
		return 0, fmt.Errorf("%w: limit %d", ErrOptionViolation, limit)
	}
	n := 0
	_, err := search(g, opts, func(Grid) bool {
		n++
		return n < limit
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}
