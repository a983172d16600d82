package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/algoerr"
	"github.com/katalvlaran/algokit/sudoku"
)

// invoke runs the CLI and returns stdout and the error.
func invoke(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func file(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const roads = `
directed: true
vertices:
  - {id: E}
edges:
  - {from: A, to: B, weight: 4}
  - {from: A, to: C, weight: 2}
  - {from: C, to: B, weight: 1}
  - {from: B, to: D, weight: 5}
`

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitInvalid, ExitCode(sudoku.ErrInvalidGrid))
	assert.Equal(t, ExitNoSolution, ExitCode(fmt.Errorf("x: %w", sudoku.ErrUnsolvable)))
	assert.Equal(t, ExitNoSolution, ExitCode(algoerr.New(algoerr.NegativeCycle, "x")))
	assert.Equal(t, ExitBudget, ExitCode(sudoku.ErrBudgetExceeded))
	assert.Equal(t, ExitInterrupted, ExitCode(context.Canceled))
}

func TestShortest(t *testing.T) {
	g := file(t, "roads.yaml", roads)
	for _, algo := range []string{"dijkstra", "bellman-ford", "astar"} {
		out, err := invoke(t, "shortest", "--graph", g, "--from", "A", "--to", "D", "--algo", algo)
		require.NoError(t, err, algo)
		assert.Equal(t, "A -> C -> B -> D (cost 8)\n", out, algo)
	}

	out, err := invoke(t, "shortest", "--graph", g, "--from", "A", "-o", "json")
	require.NoError(t, err)
	var res distancesOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Distances, 5)
	assert.Equal(t, "B", res.Distances[1].Vertex)
	assert.Equal(t, 3.0, *res.Distances[1].Dist)
	assert.Equal(t, "E", res.Distances[4].Vertex)
	assert.Nil(t, res.Distances[4].Dist, "unreachable")

	_, err = invoke(t, "shortest", "--graph", g, "--from", "A", "--algo", "astar")
	assert.Equal(t, ExitInvalid, ExitCode(err))
	_, err = invoke(t, "shortest", "--graph", g, "--from", "A", "--algo", "bogus")
	assert.Equal(t, ExitInvalid, ExitCode(err))
}

func TestShortest_Near(t *testing.T) {
	g := file(t, "cities.yaml", `
directed: false
vertices:
  - {id: Berlin, lat: 52.520, lon: 13.405}
  - {id: Potsdam, lat: 52.391, lon: 13.064}
  - {id: Leipzig, lat: 51.340, lon: 12.375}
edges:
  - {from: Berlin, to: Potsdam, weight: 35}
  - {from: Potsdam, to: Leipzig, weight: 150}
  - {from: Berlin, to: Leipzig, weight: 190}
`)
	out, err := invoke(t, "shortest", "--graph", g, "--near", "52.4,13.1", "--to", "Leipzig", "--algo", "astar", "--scale", "1000")
	require.NoError(t, err)
	assert.Equal(t, "Potsdam -> Leipzig (cost 150)\n", out)
}

func TestShortest_NegativeCycle(t *testing.T) {
	g := file(t, "neg.yaml", `
directed: true
edges:
  - {from: A, to: B, weight: 1}
  - {from: B, to: C, weight: -3}
  - {from: C, to: A, weight: 1}
`)
	_, err := invoke(t, "shortest", "--graph", g, "--from", "A", "--algo", "bellman-ford")
	assert.Equal(t, ExitNoSolution, ExitCode(err))
	_, err = invoke(t, "shortest", "--graph", g, "--from", "A")
	assert.Equal(t, ExitNoSolution, ExitCode(err), "dijkstra rejects negative weights")

	out, err := invoke(t, "apsp", "--graph", g, "-o", "json")
	require.NoError(t, err)
	var res apspOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.NegativeCycle)
}

func TestAPSP(t *testing.T) {
	out, err := invoke(t, "apsp", "--graph", file(t, "g.yaml", `
directed: true
edges:
  - {from: A, to: B, weight: 2}
`))
	require.NoError(t, err)
	assert.Equal(t, "\tA\tB\nA\t0\t2\nB\tinf\t0\n", out)
}

func TestMSTTopoComponents(t *testing.T) {
	undirected := file(t, "u.yaml", `
directed: false
vertices:
  - {id: E}
edges:
  - {from: A, to: B, weight: 1}
  - {from: B, to: C, weight: 2}
  - {from: A, to: C, weight: 3}
  - {from: C, to: D, weight: 1}
`)
	// E is isolated, so no spanning tree exists.
	for _, algo := range []string{"kruskal", "prim"} {
		out, err := invoke(t, "mst", "--graph", undirected, "--algo", algo)
		assert.Equal(t, ExitNoSolution, ExitCode(err), algo)
		assert.Empty(t, out, algo)
	}

	connected := file(t, "c.yaml", `
directed: false
edges:
  - {from: A, to: B, weight: 1}
  - {from: B, to: C, weight: 2}
  - {from: A, to: C, weight: 3}
  - {from: C, to: D, weight: 1}
`)
	out, err := invoke(t, "mst", "--graph", connected, "-o", "json")
	require.NoError(t, err)
	var mst mstOutput
	require.NoError(t, json.Unmarshal([]byte(out), &mst))
	assert.Equal(t, 4.0, mst.Total)
	assert.Len(t, mst.Edges, 3)

	out, err = invoke(t, "components", "--graph", undirected)
	require.NoError(t, err)
	assert.Equal(t, "A B C D\nE\n", out)

	dag := file(t, "dag.yaml", `
directed: true
edges:
  - {from: shirt, to: tie}
  - {from: tie, to: jacket}
  - {from: pants, to: shoes}
  - {from: pants, to: jacket}
`)
	out, err = invoke(t, "topo", "--graph", dag)
	require.NoError(t, err)
	assert.Equal(t, "pants shirt shoes tie jacket\n", out)

	_, err = invoke(t, "topo", "--graph", file(t, "cyc.yaml", "directed: true\nedges:\n  - {from: A, to: B}\n  - {from: B, to: A}\n"))
	assert.Equal(t, ExitNoSolution, ExitCode(err))
}

func TestStringCommands(t *testing.T) {
	patterns := file(t, "p.txt", "he\nshe\nhis\nhers\n")
	text := file(t, "t.txt", "ahishers")
	out, err := invoke(t, "match", "--patterns", patterns, "--text", text)
	require.NoError(t, err)
	assert.Equal(t, "1\t4\this\n4\t6\the\n3\t6\tshe\n4\t8\thers\n", out)

	words := file(t, "w.txt", "car\ncart\ncat\ndog\n")
	out, err = invoke(t, "complete", "--words", words, "--prefix", "ca")
	require.NoError(t, err)
	assert.Equal(t, "car\ncart\ncat\n", out)
	out, err = invoke(t, "complete", "--words", words, "--prefix", "ca", "--k", "1")
	require.NoError(t, err)
	assert.Equal(t, "car\n", out)

	out, err = invoke(t, "spell", "--words", words, "--word", "cst", "--budget", "1")
	require.NoError(t, err)
	assert.Equal(t, "cat\t1\n", out)

	out, err = invoke(t, "huffman", "--text", file(t, "h.txt", "abracadabra"), "-o", "json")
	require.NoError(t, err)
	var h huffmanOutput
	require.NoError(t, json.Unmarshal([]byte(out), &h))
	assert.Equal(t, 23, h.EncodedBits)
	assert.Equal(t, 88, h.OriginalBits)
	require.Len(t, h.Codes, 5)
	assert.Equal(t, huffmanCode{Symbol: "a", Count: 5, Code: "0"}, h.Codes[0])

	out, err = invoke(t, "palindrome", "babad", "-o", "json")
	require.NoError(t, err)
	var p palindromeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, palindromeOutput{Start: 0, Length: 3, Palindrome: "bab", Count: 7}, p)
}

func TestPuzzles(t *testing.T) {
	out, err := invoke(t, "queens", "--n", "6", "--count")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	_, err = invoke(t, "queens", "--n", "10", "--limit", "0", "--budget", "5")
	assert.Equal(t, ExitBudget, ExitCode(err))

	const classic = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	const clash = "55..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	puzzles := file(t, "s.txt", classic+"\n"+clash+"\n")
	out, err = invoke(t, "sudoku", "--puzzle", puzzles, "--parallelism", "2", "-o", "json")
	require.Error(t, err)
	assert.Equal(t, ExitInvalid, ExitCode(err))

	var res []sudokuOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res, 2)
	assert.Equal(t, 1, res[0].Puzzle)
	g, perr := sudoku.Parse(res[0].Solution)
	require.NoError(t, perr)
	assert.True(t, g.Complete())
	assert.Equal(t, 2, res[1].Puzzle)
	assert.NotEmpty(t, res[1].Error)
}

func TestConfigAndMetrics(t *testing.T) {
	cfg := file(t, "algokit.toml", "output = \"json\"\nlog_level = \"warn\"\n")
	metrics := filepath.Join(t.TempDir(), "algokit.prom")
	out, err := invoke(t, "--config", cfg, "--metrics-file", metrics, "palindrome", "--text", "abba")
	require.NoError(t, err)
	assert.Contains(t, out, `"palindrome": "abba"`)

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `algokit_runs_total{algo="manacher",outcome="ok"} 1`)

	_, err = invoke(t, "--config", file(t, "bad.toml", "parallelism = 0\n"), "palindrome", "x")
	assert.Equal(t, ExitInvalid, ExitCode(err))
}

func TestTrace(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"--trace", "palindrome", "noon"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "algokit.manacher")
}
