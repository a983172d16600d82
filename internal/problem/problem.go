// Package problem reads algokit input files.
//
// Graph problems are YAML:
//
//	directed: true
//	vertices:
//	  - {id: A, lat: 52.52, lon: 13.40}
//	edges:
//	  - {from: A, to: B, weight: 4}
//	  - {from: B, to: C, weight: 1, directed: false}
//
// A missing weight is 1. Vertices need only be listed to attach coordinates or
// to add isolated vertices. A per-edge directed flag makes the graph mixed.
package problem

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algokit/algoerr"
	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/geo"
)

// ErrInvalidProblem is returned for unreadable or malformed problem files.
var ErrInvalidProblem = algoerr.New(algoerr.InvalidInput, "problem: invalid problem file")

// Vertex is an optional vertex declaration.
type Vertex struct {
	ID  string   `yaml:"id"`
	Lat *float64 `yaml:"lat,omitempty"`
	Lon *float64 `yaml:"lon,omitempty"`
}

// Edge is one edge declaration.
type Edge struct {
	From     string   `yaml:"from"`
	To       string   `yaml:"to"`
	Weight   *float64 `yaml:"weight,omitempty"`
	Directed *bool    `yaml:"directed,omitempty"`
}

// Graph is the decoded form of a graph problem file.
type Graph struct {
	Directed bool     `yaml:"directed"`
	Vertices []Vertex `yaml:"vertices"`
	Edges    []Edge   `yaml:"edges"`
}

// ParseGraph decodes a YAML graph problem. Unknown fields are rejected.
func ParseGraph(data []byte) (*Graph, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Graph
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProblem, err)
	}
	for i, v := range p.Vertices {
		if v.ID == "" {
			return nil, fmt.Errorf("%w: vertex %d has no id", ErrInvalidProblem, i)
		}
		if (v.Lat == nil) != (v.Lon == nil) {
			return nil, fmt.Errorf("%w: vertex %q needs both lat and lon", ErrInvalidProblem, v.ID)
		}
	}
	for i, e := range p.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge %d needs from and to", ErrInvalidProblem, i)
		}
	}

	return &p, nil
}

// LoadGraph reads and decodes a graph problem file.
func LoadGraph(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProblem, err)
	}

	return ParseGraph(data)
}

// Build converts the problem into a weighted core.Graph that allows loops and
// parallel edges.
func (p *Graph) Build() (*core.Graph, error) {
	opts := []core.GraphOption{
		core.WithDirected(p.Directed),
		core.WithWeighted(),
		core.WithMultiEdges(),
		core.WithLoops(),
	}
	mixed := false
	for _, e := range p.Edges {
		if e.Directed != nil && *e.Directed != p.Directed {
			mixed = true
			break
		}
	}
	if mixed {
		opts = append(opts, core.WithMixedEdges())
	}
	g := core.NewGraph(opts...)

	for _, v := range p.Vertices {
		if err := g.AddVertex(v.ID); err != nil {
			return nil, err
		}
		if v.Lat != nil {
			if err := g.SetVertexMetadata(v.ID, geo.KeyLat, *v.Lat); err != nil {
				return nil, err
			}
			if err := g.SetVertexMetadata(v.ID, geo.KeyLon, *v.Lon); err != nil {
				return nil, err
			}
		}
	}
	for i, e := range p.Edges {
		w := 1.0
		if e.Weight != nil {
			w = *e.Weight
		}
		var eopts []core.EdgeOption
		if mixed && e.Directed != nil {
			eopts = append(eopts, core.WithEdgeDirected(*e.Directed))
		}
		if _, err := g.AddEdge(e.From, e.To, w, eopts...); err != nil {
			return nil, fmt.Errorf("edge %d (%s→%s): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// ReadLines returns the non-blank lines of path with surrounding whitespace trimmed.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProblem, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProblem, err)
	}

	return out, nil
}

// SplitPuzzles splits text into sudoku puzzles. Puzzles are separated by blank
// lines; a line holding exactly 81 cells is a puzzle on its own.
func SplitPuzzles(text string) []string {
	var (
		out []string
		cur strings.Builder
	)
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			out = append(out, s)
		}
		cur.Reset()
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flush()
		case len(line) == 81 && cur.Len() == 0:
			out = append(out, line)
		default:
			cur.WriteString(line)
			cur.WriteByte('\n')
		}
	}
	flush()

	return out
}
