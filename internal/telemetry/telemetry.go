// Package telemetry provides the tracer and metrics registry used by the
// algokit CLI. Tracing is off unless enabled; spans are then exported to a
// writer with the OpenTelemetry stdout exporter. Metrics live in a private
// Prometheus registry and can be written to a textfile.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ScopeName is the instrumentation scope of every algokit span.
const ScopeName = "github.com/katalvlaran/algokit"

// Config controls telemetry behaviour.
type Config struct {
	Trace       bool      // export spans
	TraceWriter io.Writer // destination for exported spans; required when Trace is set
	Pretty      bool      // indent exported spans
}

// ErrNoTraceWriter is returned when tracing is enabled without a writer.
var ErrNoTraceWriter = errors.New("telemetry: trace writer is nil")

// Telemetry bundles a tracer with the run metrics.
type Telemetry struct {
	Tracer   trace.Tracer
	Registry *prometheus.Registry

	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	provider *sdktrace.TracerProvider // nil when tracing is off
}

// New builds the telemetry stack for cfg.
func New(cfg Config) (*Telemetry, error) {
	t := &Telemetry{Registry: prometheus.NewRegistry()}

	t.runs = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "algokit",
		Name:      "runs_total",
		Help:      "Algorithm runs by algorithm and outcome.",
	}, []string{"algo", "outcome"})
	t.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "algokit",
		Name:      "run_seconds",
		Help:      "Wall time of algorithm runs.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"algo"})
	t.Registry.MustRegister(t.runs, t.duration)

	if !cfg.Trace {
		t.Tracer = noop.NewTracerProvider().Tracer(ScopeName)
		return t, nil
	}
	if cfg.TraceWriter == nil {
		return nil, ErrNoTraceWriter
	}
	exopts := []stdouttrace.Option{stdouttrace.WithWriter(cfg.TraceWriter)}
	if cfg.Pretty {
		exopts = append(exopts, stdouttrace.WithPrettyPrint())
	}
	exporter, err := stdouttrace.New(exopts...)
	if err != nil {
		return nil, fmt.Errorf("create exporter: %w", err)
	}
	// Syncer exports each span as it ends, so short CLI runs lose nothing.
	t.provider = sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	t.Tracer = t.provider.Tracer(ScopeName)

	return t, nil
}

// Observe records one finished run.
func (t *Telemetry) Observe(algo, outcome string, elapsed time.Duration) {
	t.runs.WithLabelValues(algo, outcome).Inc()
	t.duration.WithLabelValues(algo).Observe(elapsed.Seconds())
}

// WriteMetrics writes the registry to path in the Prometheus text format.
func (t *Telemetry) WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, t.Registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}

	return nil
}

// Shutdown flushes and stops the tracer provider.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}

	return t.provider.Shutdown(ctx)
}
