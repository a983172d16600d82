package builder

import (
	"fmt"

	"github.com/katalvlaran/algokit/core"
)

func tooFew(method string, n, min int) error {
	return fmt.Errorf("%s: n=%d < %d: %w", method, n, min, ErrTooFewVertices)
}

// Complete builds K_n (n ≥ 1). Directed graphs get both arcs of every pair.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg *config) error {
		if n < 1 {
			return tooFew("Complete", n, 1)
		}
		ids, err := cfg.vertices(g, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := cfg.edge(g, ids[i], ids[j]); err != nil {
					return err
				}
				if g.Directed() {
					if err := cfg.edge(g, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Path builds 0–1–…–(n−1) (n ≥ 1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg *config) error {
		if n < 1 {
			return tooFew("Path", n, 1)
		}
		ids, err := cfg.vertices(g, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := cfg.edge(g, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg *config) error {
		if n < 3 {
			return tooFew("Cycle", n, 3)
		}
		if err := Path(n)(g, cfg); err != nil {
			return err
		}

		return cfg.edge(g, cfg.idFn(n-1), cfg.idFn(0))
	}
}

// Star builds a hub 0 joined to 1..n−1 (n ≥ 2).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg *config) error {
		if n < 2 {
			return tooFew("Star", n, 2)
		}
		ids, err := cfg.vertices(g, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := cfg.edge(g, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds a hub 0 joined to every vertex of the rim cycle 1..n−1 (n ≥ 4).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg *config) error {
		if n < 4 {
			return tooFew("Wheel", n, 4)
		}
		if err := Star(n)(g, cfg); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			next := i + 1
			if next == n {
				next = 1
			}
			if err := cfg.edge(g, cfg.idFn(i), cfg.idFn(next)); err != nil {
				return err
			}
		}

		return nil
	}
}

// GridID is the id of the grid vertex at row r, column c.
func GridID(r, c int) string { return fmt.Sprintf("%d_%d", r, c) }

// Grid builds a rows×cols 4-neighbour lattice with GridID ids. Each vertex is
// joined to its right and lower neighbour in row-major order.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg *config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: %d×%d: %w", rows, cols, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(GridID(r, c)); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := cfg.edge(g, GridID(r, c), GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.edge(g, GridID(r, c), GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse builds a G(n, p) random graph (n ≥ 1). Directed graphs draw
// every ordered pair independently.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg *config) error {
		if n < 1 {
			return tooFew("RandomSparse", n, 1)
		}
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
		}
		ids, err := cfg.vertices(g, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!g.Directed() && j < i) {
					continue
				}
				if cfg.rng.Float64() < p {
					if err := cfg.edge(g, ids[i], ids[j]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
