// Package runner executes independent algorithm jobs with bounded parallelism.
//
// Every job gets a run id, a span and a metrics observation. A failing job does
// not stop the others: its error is kept on its Result. Only cancellation of the
// parent context aborts the batch.
package runner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algokit/algoerr"
	"github.com/katalvlaran/algokit/internal/telemetry"
)

// OutcomeOK labels successful runs; failures are labelled by lower-cased error kind.
const OutcomeOK = "ok"

// Job is one unit of work. Run must not share mutable input with other jobs.
type Job struct {
	Name string // human label, e.g. a puzzle index
	Algo string // metric and span label
	Run  func(ctx context.Context) (any, error)
}

// Result is the outcome of one Job, in the same position as the job.
type Result struct {
	RunID   uuid.UUID
	Name    string
	Algo    string
	Value   any
	Err     error
	Elapsed time.Duration
}

// Runner runs batches of jobs.
type Runner struct {
	limit int
	tel   *telemetry.Telemetry
}

// New returns a Runner that runs at most limit jobs at once (limit < 1 means 1).
func New(limit int, tel *telemetry.Telemetry) *Runner {
	if limit < 1 {
		limit = 1
	}

	return &Runner{limit: limit, tel: tel}
}

// Run executes jobs and returns their results in job order. The error is
// non-nil only when ctx is cancelled; results of jobs never started carry ctx.Err().
func (r *Runner) Run(ctx context.Context, jobs ...Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)

	for i, job := range jobs {
		results[i] = Result{RunID: uuid.New(), Name: job.Name, Algo: job.Algo}
		if err := gctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			r.runOne(gctx, job, &results[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("runner: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("runner: %w", err)
	}

	return results, nil
}

func (r *Runner) runOne(ctx context.Context, job Job, res *Result) {
	ctx, span := r.tel.Tracer.Start(ctx, "algokit."+job.Algo, trace.WithAttributes(
		attribute.String("algokit.run_id", res.RunID.String()),
		attribute.String("algokit.job", job.Name),
	))
	defer span.End()

	start := time.Now()
	res.Value, res.Err = job.Run(ctx)
	res.Elapsed = time.Since(start)

	outcome := Outcome(res.Err)
	span.SetAttributes(attribute.String("algokit.outcome", outcome))
	if res.Err != nil {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Err.Error())
	}
	r.tel.Observe(job.Algo, outcome, res.Elapsed)
}

// Outcome returns the metric label for err.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	if kind := algoerr.KindOf(err); kind != "" {
		return strings.ToLower(string(kind))
	}

	return "error"
}
