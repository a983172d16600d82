package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algokit/internal/config"
	"github.com/katalvlaran/algokit/internal/runner"
	"github.com/katalvlaran/algokit/internal/telemetry"
)

var version = "dev"

// SetVersion sets the version string shown by --version.
func SetVersion(v string) { version = v }

// app is the state shared by all commands of one invocation.
type app struct {
	stdout, stderr io.Writer

	// persistent flags
	configPath  string
	verbose     bool
	trace       bool
	metricsFile string
	output      string
	parallelism int

	cfg    config.Config
	tel    *telemetry.Telemetry
	runner *runner.Runner
}

// Execute runs the algokit CLI with the process arguments.
func Execute(ctx context.Context) error {
	return run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if cerr := a.close(); cerr != nil {
		err = errors.Join(err, cerr)
	}

	return err
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "algokit",
		Short:         "algokit runs classic algorithms on files and strings",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "TOML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	pf.BoolVar(&a.trace, "trace", false, "write OpenTelemetry spans to stderr")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
	pf.StringVarP(&a.output, "output", "o", "", "output format: text or json (overrides config)")
	pf.IntVar(&a.parallelism, "parallelism", 0, "concurrent jobs in batch mode (overrides config)")

	root.AddCommand(
		a.newShortestCmd(),
		a.newAPSPCmd(),
		a.newMSTCmd(),
		a.newTopoCmd(),
		a.newComponentsCmd(),
		a.newMatchCmd(),
		a.newCompleteCmd(),
		a.newSpellCmd(),
		a.newQueensCmd(),
		a.newSudokuCmd(),
		a.newHuffmanCmd(),
		a.newPalindromeCmd(),
	)

	return root
}

// setup loads the config, applies flag overrides and builds the logger,
// telemetry and runner.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.output != "" {
		cfg.Output = a.output
	}
	if a.parallelism != 0 {
		cfg.Parallelism = a.parallelism
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := charmlog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	logger := newLogger(a.stderr, level)

	tel, err := telemetry.New(telemetry.Config{Trace: a.trace, TraceWriter: a.stderr, Pretty: true})
	if err != nil {
		return err
	}
	a.tel = tel
	a.runner = runner.New(cfg.Parallelism, tel)

	logger.Debug("configured", "config", a.configPath, "output", cfg.Output, "parallelism", cfg.Parallelism)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	return nil
}

// close writes metrics and flushes spans. It is a no-op when setup never ran.
func (a *app) close() error {
	if a.tel == nil {
		return nil
	}
	var errs []error
	if a.metricsFile != "" {
		errs = append(errs, a.tel.WriteMetrics(a.metricsFile))
	}
	errs = append(errs, a.tel.Shutdown(context.Background()))

	return errors.Join(errs...)
}

// solve runs fn as a single job and returns its value.
func (a *app) solve(ctx context.Context, algo string, fn func(ctx context.Context) (any, error)) (any, error) {
	results, err := a.runner.Run(ctx, runner.Job{Name: algo, Algo: algo, Run: fn})
	if err != nil {
		return nil, err
	}
	res := results[0]
	loggerFromContext(ctx).Debug("run finished", "algo", algo, "run_id", res.RunID, "elapsed", res.Elapsed, "outcome", runner.Outcome(res.Err))

	return res.Value, res.Err
}

// emit prints v as indented JSON or through text.
func (a *app) emit(v any, text func(w io.Writer) error) error {
	if a.cfg.Output == config.OutputJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	return text(a.stdout)
}
