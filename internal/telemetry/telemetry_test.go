package telemetry_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/internal/telemetry"
)

func TestTracing(t *testing.T) {
	var buf bytes.Buffer
	tel, err := telemetry.New(telemetry.Config{Trace: true, TraceWriter: &buf})
	require.NoError(t, err)

	_, span := tel.Tracer.Start(context.Background(), "algokit.dijkstra")
	span.End()
	require.NoError(t, tel.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), "algokit.dijkstra")
}

func TestTracingOff(t *testing.T) {
	tel, err := telemetry.New(telemetry.Config{})
	require.NoError(t, err)
	_, span := tel.Tracer.Start(context.Background(), "ignored")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
	assert.NoError(t, tel.Shutdown(context.Background()))

	_, err = telemetry.New(telemetry.Config{Trace: true})
	assert.ErrorIs(t, err, telemetry.ErrNoTraceWriter)
}

func TestWriteMetrics(t *testing.T) {
	tel, err := telemetry.New(telemetry.Config{})
	require.NoError(t, err)
	tel.Observe("sudoku", "ok", 3*time.Millisecond)
	tel.Observe("sudoku", "ok", time.Millisecond)
	tel.Observe("sudoku", "unsolvable", time.Millisecond)

	path := filepath.Join(t.TempDir(), "algokit.prom")
	require.NoError(t, tel.WriteMetrics(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `algokit_runs_total{algo="sudoku",outcome="ok"} 2`)
	assert.Contains(t, text, `algokit_runs_total{algo="sudoku",outcome="unsolvable"} 1`)
	assert.Contains(t, text, `algokit_run_seconds_count{algo="sudoku"} 3`)
}
