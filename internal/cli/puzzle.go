package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algokit/internal/problem"
	"github.com/katalvlaran/algokit/internal/runner"
	"github.com/katalvlaran/algokit/nqueens"
	"github.com/katalvlaran/algokit/sudoku"
)

// budget returns the node budget from the flag, falling back to the config.
func (a *app) budget(cmd *cobra.Command, flag int) int {
	if cmd.Flags().Changed("budget") {
		return flag
	}
	return a.cfg.NodeBudget
}

type queensOutput struct {
	N         int     `json:"n"`
	Count     int     `json:"count"`
	Solutions [][]int `json:"solutions,omitempty"`
}

func (a *app) newQueensCmd() *cobra.Command {
	var n, limit, budget int
	var count bool
	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Place N non-attacking queens",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			var opts []nqueens.Option
			if !count || cmd.Flags().Changed("limit") {
				opts = append(opts, nqueens.WithLimit(limit))
			}
			if b := a.budget(cmd, budget); b > 0 {
				opts = append(opts, nqueens.WithNodeBudget(b))
			}
			prog := newProgress(loggerFromContext(ctx))
			v, err := a.solve(ctx, "nqueens", func(context.Context) (any, error) {
				if count {
					c, err := nqueens.Count(n, opts...)
					return &queensOutput{N: n, Count: c}, err
				}
				sols, err := nqueens.Solve(n, opts...)
				return &queensOutput{N: n, Count: len(sols), Solutions: sols}, err
			})
			if err != nil {
				return err
			}
			out := v.(*queensOutput)
			prog.done(fmt.Sprintf("Found %d solutions for n=%d", out.Count, n))
			return a.emit(out, func(w io.Writer) error {
				if count {
					_, err := fmt.Fprintln(w, out.Count)
					return err
				}
				for i, s := range out.Solutions {
					if _, err := fmt.Fprintf(w, "solution %d %v\n%s\n", i+1, s, nqueens.Render(s)); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.IntVar(&n, "n", 8, "board size")
	f.BoolVar(&count, "count", false, "print only the number of solutions")
	f.IntVar(&limit, "limit", 1, "stop after this many solutions (0 = all; ignored by --count unless set)")
	f.IntVar(&budget, "budget", 0, "node budget (overrides config; 0 = unlimited)")

	return cmd
}

type sudokuOutput struct {
	Puzzle     int    `json:"puzzle"`
	Solution   string `json:"solution,omitempty"`
	Nodes      int    `json:"nodes"`
	Backtracks int    `json:"backtracks"`
	Error      string `json:"error,omitempty"`
}

func (a *app) newSudokuCmd() *cobra.Command {
	var puzzlePath string
	var budget int
	var noPropagation bool
	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Solve one or many sudoku puzzles",
		Long: `Solve sudoku puzzles read from a file.

Puzzles are 81 cells ('.' or '0' for blanks) either on one line each or as nine
lines separated from the next puzzle by a blank line. Several puzzles are solved
in parallel.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			text, err := readText(puzzlePath)
			if err != nil {
				return err
			}
			puzzles := problem.SplitPuzzles(text)
			if len(puzzles) == 0 {
				return fmt.Errorf("%w: %s holds no puzzles", problem.ErrInvalidProblem, puzzlePath)
			}

			opts := []sudoku.Option{sudoku.WithPropagation(!noPropagation)}
			if b := a.budget(cmd, budget); b > 0 {
				opts = append(opts, sudoku.WithNodeBudget(b))
			}
			jobs := make([]runner.Job, len(puzzles))
			for i, src := range puzzles {
				jobs[i] = runner.Job{
					Name: strconv.Itoa(i + 1),
					Algo: "sudoku",
					Run: func(context.Context) (any, error) {
						g, err := sudoku.Parse(src)
						if err != nil {
							return nil, err
						}
						sol, stats, err := sudoku.Solve(g, opts...)
						if err != nil {
							return stats, err
						}
						return &sudokuOutput{Solution: sol.String(), Nodes: stats.Nodes, Backtracks: stats.Backtracks}, nil
					},
				}
			}

			prog := newProgress(loggerFromContext(ctx))
			results, err := a.runner.Run(ctx, jobs...)
			if err != nil {
				return err
			}
			outs, failed, firstErr := collectSudoku(results)
			prog.done(fmt.Sprintf("Solved %d of %d puzzles", len(puzzles)-failed, len(puzzles)))

			if err := a.emit(outs, func(w io.Writer) error {
				for _, o := range outs {
					if o.Error != "" {
						if _, err := fmt.Fprintf(w, "puzzle %d: %s\n", o.Puzzle, o.Error); err != nil {
							return err
						}
						continue
					}
					if _, err := fmt.Fprintf(w, "puzzle %d (%d nodes)\n%s\n", o.Puzzle, o.Nodes, o.Solution); err != nil {
						return err
					}
				}
				return nil
			}); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d puzzles failed: %w", failed, len(puzzles), firstErr)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&puzzlePath, "puzzle", "", "puzzle file")
	f.IntVar(&budget, "budget", 0, "node budget per puzzle (overrides config; 0 = unlimited)")
	f.BoolVar(&noPropagation, "no-propagation", false, "use forward checking only")
	_ = cmd.MarkFlagRequired("puzzle")

	return cmd
}

func collectSudoku(results []runner.Result) ([]*sudokuOutput, int, error) {
	outs := make([]*sudokuOutput, len(results))
	failed := 0
	var firstErr error
	for i, res := range results {
		if res.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = res.Err
			}
			outs[i] = &sudokuOutput{Puzzle: i + 1, Error: res.Err.Error()}
			if stats, ok := res.Value.(*sudoku.Stats); ok && stats != nil {
				outs[i].Nodes, outs[i].Backtracks = stats.Nodes, stats.Backtracks
			}
			continue
		}
		out := res.Value.(*sudokuOutput)
		out.Puzzle = i + 1
		outs[i] = out
	}

	return outs, failed, firstErr
}
