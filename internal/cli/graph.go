package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algokit/astar"
	"github.com/katalvlaran/algokit/bellmanford"
	"github.com/katalvlaran/algokit/bfs"
	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dfs"
	"github.com/katalvlaran/algokit/dijkstra"
	"github.com/katalvlaran/algokit/geo"
	"github.com/katalvlaran/algokit/internal/problem"
	"github.com/katalvlaran/algokit/matrix"
	"github.com/katalvlaran/algokit/prim_kruskal"
)

// Shortest-path algorithms accepted by --algo.
const (
	algoDijkstra    = "dijkstra"
	algoBellmanFord = "bellman-ford"
	algoAStar       = "astar"
)

// loadGraph reads and builds the graph named by --graph.
func loadGraph(ctx context.Context, path string) (*core.Graph, error) {
	p, err := problem.LoadGraph(path)
	if err != nil {
		return nil, err
	}
	g, err := p.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	loggerFromContext(ctx).Debug("graph loaded", "path", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return g, nil
}

// finite returns &x, or nil for an infinite distance (JSON has no Inf).
func finite(x float64) *float64 {
	if math.IsInf(x, 0) {
		return nil
	}
	return &x
}

func formatDist(d *float64) string {
	if d == nil {
		return "inf"
	}
	return strconv.FormatFloat(*d, 'g', -1, 64)
}

type pathOutput struct {
	Algo string   `json:"algo"`
	From string   `json:"from"`
	To   string   `json:"to"`
	Path []string `json:"path"`
	Cost float64  `json:"cost"`
}

type distanceRow struct {
	Vertex string   `json:"vertex"`
	Dist   *float64 `json:"dist"`
}

type distancesOutput struct {
	Algo      string        `json:"algo"`
	From      string        `json:"from"`
	Distances []distanceRow `json:"distances"`
}

type shortestOpts struct {
	graph, from, to, algo, near string
	scale                       float64
}

func (a *app) newShortestCmd() *cobra.Command {
	opts := shortestOpts{algo: algoDijkstra, scale: 1}

	cmd := &cobra.Command{
		Use:   "shortest",
		Short: "Single-source shortest paths",
		Long: `Compute shortest paths from one vertex.

Without --to every vertex's distance is printed. With --to the path is printed.
--near picks the source as the vertex closest to a "lat,lon" point; astar uses
the great-circle heuristic when every vertex has coordinates.

Examples:
  algokit shortest --graph roads.yaml --from A --to D
  algokit shortest --graph roads.yaml --from A --algo bellman-ford
  algokit shortest --graph cities.yaml --near 52.5,13.4 --to Leipzig --algo astar --scale 1000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runShortest(cmd.Context(), opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.graph, "graph", "", "YAML graph file")
	f.StringVar(&opts.from, "from", "", "source vertex")
	f.StringVar(&opts.to, "to", "", "target vertex (optional except for astar)")
	f.StringVar(&opts.algo, "algo", opts.algo, "dijkstra, bellman-ford or astar")
	f.StringVar(&opts.near, "near", "", `choose the source nearest to "lat,lon"`)
	f.Float64Var(&opts.scale, "scale", opts.scale, "meters per weight unit for the astar heuristic")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func (a *app) runShortest(ctx context.Context, opts shortestOpts) error {
	g, err := loadGraph(ctx, opts.graph)
	if err != nil {
		return err
	}
	if opts.near != "" {
		if opts.from, err = nearestVertex(g, opts.near); err != nil {
			return err
		}
		loggerFromContext(ctx).Info("source chosen by location", "near", opts.near, "from", opts.from)
	}

	prog := newProgress(loggerFromContext(ctx))
	v, err := a.solve(ctx, opts.algo, func(context.Context) (any, error) {
		switch opts.algo {
		case algoDijkstra:
			return shortestDijkstra(g, opts)
		case algoBellmanFord:
			return shortestBellmanFord(g, opts)
		case algoAStar:
			return shortestAStar(g, opts)
		default:
			return nil, fmt.Errorf("%w: unknown algorithm %q", problem.ErrInvalidProblem, opts.algo)
		}
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Computed %s from %s", opts.algo, opts.from))

	switch out := v.(type) {
	case *pathOutput:
		return a.emit(out, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "%s (cost %g)\n", strings.Join(out.Path, " -> "), out.Cost)
			return err
		})
	case *distancesOutput:
		return a.emit(out, func(w io.Writer) error {
			for _, row := range out.Distances {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", row.Vertex, formatDist(row.Dist)); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return nil
}

func distanceRows(g *core.Graph, dist map[string]float64) []distanceRow {
	rows := make([]distanceRow, 0, len(dist))
	for _, id := range g.Vertices() {
		rows = append(rows, distanceRow{Vertex: id, Dist: finite(dist[id])})
	}
	return rows
}

func shortestDijkstra(g *core.Graph, opts shortestOpts) (any, error) {
	dopts := []dijkstra.Option{dijkstra.Source(opts.from), dijkstra.WithReturnPath()}
	if opts.to != "" {
		dopts = append(dopts, dijkstra.WithTarget(opts.to))
	}
	res, err := dijkstra.Dijkstra(g, dopts...)
	if err != nil {
		return nil, err
	}
	if opts.to == "" {
		return &distancesOutput{Algo: algoDijkstra, From: opts.from, Distances: distanceRows(g, res.Dist)}, nil
	}
	path, err := res.PathTo(opts.to)
	if err != nil {
		return nil, err
	}

	return &pathOutput{Algo: algoDijkstra, From: opts.from, To: opts.to, Path: path, Cost: res.Dist[opts.to]}, nil
}

func shortestBellmanFord(g *core.Graph, opts shortestOpts) (any, error) {
	res, err := bellmanford.BellmanFord(g, opts.from)
	if err != nil {
		return nil, err
	}
	if opts.to == "" {
		return &distancesOutput{Algo: algoBellmanFord, From: opts.from, Distances: distanceRows(g, res.Dist)}, nil
	}
	path, err := res.PathTo(opts.to)
	if err != nil {
		return nil, err
	}

	return &pathOutput{Algo: algoBellmanFord, From: opts.from, To: opts.to, Path: path, Cost: res.Dist[opts.to]}, nil
}

func shortestAStar(g *core.Graph, opts shortestOpts) (any, error) {
	if opts.to == "" {
		return nil, fmt.Errorf("%w: astar needs --to", problem.ErrInvalidProblem)
	}
	h := astar.Heuristic(astar.Zero)
	if coords, err := geo.Coordinates(g); err == nil {
		if h, err = geo.HaversineHeuristic(coords, opts.to, opts.scale); err != nil {
			return nil, err
		}
	}
	p, err := astar.Search(g, opts.from, opts.to, h)
	if err != nil {
		return nil, err
	}

	return &pathOutput{Algo: algoAStar, From: opts.from, To: opts.to, Path: p.Vertices, Cost: p.Cost}, nil
}

// nearestVertex resolves a "lat,lon" string to the closest vertex with coordinates.
func nearestVertex(g *core.Graph, near string) (string, error) {
	lat, lon, ok := strings.Cut(near, ",")
	if !ok {
		return "", fmt.Errorf("%w: --near wants \"lat,lon\", got %q", problem.ErrInvalidProblem, near)
	}
	var p geo.Point
	var err error
	if p.Lat, err = strconv.ParseFloat(strings.TrimSpace(lat), 64); err != nil {
		return "", fmt.Errorf("%w: --near latitude: %v", problem.ErrInvalidProblem, err)
	}
	if p.Lon, err = strconv.ParseFloat(strings.TrimSpace(lon), 64); err != nil {
		return "", fmt.Errorf("%w: --near longitude: %v", problem.ErrInvalidProblem, err)
	}
	coords, err := geo.Coordinates(g)
	if err != nil {
		return "", err
	}
	id, found := geo.NewIndex(coords).Nearest(p)
	if !found {
		return "", fmt.Errorf("%w: graph has no vertices", problem.ErrInvalidProblem)
	}

	return id, nil
}

type apspOutput struct {
	Vertices      []string     `json:"vertices"`
	Dist          [][]*float64 `json:"dist"`
	NegativeCycle bool         `json:"negative_cycle"`
}

func (a *app) newAPSPCmd() *cobra.Command {
	var graph string
	cmd := &cobra.Command{
		Use:   "apsp",
		Short: "All-pairs shortest paths (Floyd–Warshall)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			g, err := loadGraph(ctx, graph)
			if err != nil {
				return err
			}
			v, err := a.solve(ctx, "floyd-warshall", func(context.Context) (any, error) {
				m, ids, err := matrix.FromGraph(g)
				if err != nil {
					return nil, err
				}
				res, err := matrix.FloydWarshall(m)
				if err != nil {
					return nil, err
				}
				out := &apspOutput{Vertices: ids, NegativeCycle: res.NegativeCycle}
				for _, row := range res.Dist.ToRows() {
					r := make([]*float64, len(row))
					for j, d := range row {
						r[j] = finite(d)
					}
					out.Dist = append(out.Dist, r)
				}
				return out, nil
			})
			if err != nil {
				return err
			}
			out := v.(*apspOutput)
			if out.NegativeCycle {
				loggerFromContext(ctx).Warn("graph contains a negative cycle; affected distances are not shortest")
			}
			return a.emit(out, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "\t%s\n", strings.Join(out.Vertices, "\t")); err != nil {
					return err
				}
				for i, row := range out.Dist {
					cells := make([]string, len(row))
					for j, d := range row {
						cells[j] = formatDist(d)
					}
					if _, err := fmt.Fprintf(w, "%s\t%s\n", out.Vertices[i], strings.Join(cells, "\t")); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&graph, "graph", "", "YAML graph file")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

type mstEdge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

type mstOutput struct {
	Algo  string    `json:"algo"`
	Edges []mstEdge `json:"edges"`
	Total float64   `json:"total"`
}

func (a *app) newMSTCmd() *cobra.Command {
	var graph, method, root string
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning tree (Kruskal or Prim)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			g, err := loadGraph(ctx, graph)
			if err != nil {
				return err
			}
			v, err := a.solve(ctx, method, func(context.Context) (any, error) {
				mst, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(method), prim_kruskal.WithRoot(root))
				if err != nil {
					return nil, err
				}
				out := &mstOutput{Algo: method, Total: mst.Total}
				for _, e := range mst.Edges {
					out.Edges = append(out.Edges, mstEdge{From: e.From, To: e.To, Weight: e.Weight})
				}
				return out, nil
			})
			if err != nil {
				return err
			}
			out := v.(*mstOutput)
			return a.emit(out, func(w io.Writer) error {
				for _, e := range out.Edges {
					if _, err := fmt.Fprintf(w, "%s - %s\t%g\n", e.From, e.To, e.Weight); err != nil {
						return err
					}
				}
				_, err := fmt.Fprintf(w, "total\t%g\n", out.Total)
				return err
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&graph, "graph", "", "YAML graph file")
	f.StringVar(&method, "algo", prim_kruskal.MethodKruskal, "kruskal or prim")
	f.StringVar(&root, "root", "", "Prim start vertex (default: smallest label)")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func (a *app) newTopoCmd() *cobra.Command {
	var graph string
	cmd := &cobra.Command{
		Use:   "topo",
		Short: "Topological order of a directed graph",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			g, err := loadGraph(ctx, graph)
			if err != nil {
				return err
			}
			v, err := a.solve(ctx, "topo", func(ctx context.Context) (any, error) {
				return dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
			})
			if err != nil {
				return err
			}
			order := v.([]string)
			return a.emit(order, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, strings.Join(order, " "))
				return err
			})
		},
	}
	cmd.Flags().StringVar(&graph, "graph", "", "YAML graph file")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func (a *app) newComponentsCmd() *cobra.Command {
	var graph string
	cmd := &cobra.Command{
		Use:   "components",
		Short: "Weakly connected components",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			g, err := loadGraph(ctx, graph)
			if err != nil {
				return err
			}
			v, err := a.solve(ctx, "components", func(context.Context) (any, error) {
				return bfs.ConnectedComponents(g)
			})
			if err != nil {
				return err
			}
			comps := v.([][]string)
			return a.emit(comps, func(w io.Writer) error {
				for _, c := range comps {
					if _, err := fmt.Fprintln(w, strings.Join(c, " ")); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&graph, "graph", "", "YAML graph file")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
