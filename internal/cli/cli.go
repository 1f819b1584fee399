package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"expense_report/internal/config"
	"expense_report/internal/input"
	"expense_report/internal/solver"

	"go.uber.org/zap"
)

const commandName = "day01"

type Runner struct {
	options Options
	logger  *zap.Logger
	solver  *solver.Solver
	stdout  io.Writer
	stderr  io.Writer
}

func NewRunner(cfg config.Config, logger *zap.Logger, s *solver.Solver) *Runner {
	opts := Options{
		InputPath:    cfg.InputPath,
		Target:       cfg.Target,
		SessionToken: cfg.SessionToken,
		Timeout:      cfg.Timeout,
	}

	return &Runner{
		options: opts,
		logger:  logger.Named("cli"),
		solver:  s,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// Execute runs the command with args, excluding the program name.
func (r *Runner) Execute(args []string) error {
	return r.run(context.Background(), args)
}

func (r *Runner) run(ctx context.Context, args []string) error {
	opts := r.options
	defaults := opts

	showHelp, err := parseFlags(args, &opts, r.stderr)
	if err != nil {
		return err
	}
	if showHelp {
		return nil
	}

	r.logger.Debug("parameters",
		zap.String("input", opts.InputPath),
		zap.Int64("target", opts.Target),
		zap.Duration("timeout", opts.Timeout),
	)

	s := r.solver
	if opts.SessionToken != defaults.SessionToken || opts.Timeout != defaults.Timeout {
		s = newSolverFromOptions(&opts, r.logger)
	}

	return s.Run(ctx, r.stdout, opts.InputPath, opts.Target)
}

// parseFlags binds args over opts. It reports true when usage was requested.
func parseFlags(args []string, opts *Options, output io.Writer) (bool, error) {
	var timeoutSeconds int

	fs := flag.NewFlagSet(commandName, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s [flags]\n\nFinds two entries that sum to a target and prints their product.\n\n", fs.Name())
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.InputPath, "input", opts.InputPath, "path or URL to read day 1 input from (INPUT_PATH)")
	fs.Int64Var(&opts.Target, "target", opts.Target, "target to reach from inputs (TARGET)")
	fs.StringVar(&opts.SessionToken, "session", opts.SessionToken, "session cookie for remote input (SESSION_TOKEN)")
	fs.IntVar(&timeoutSeconds, "timeout", int(opts.Timeout.Seconds()), "timeout in seconds for remote input")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, err
	}

	if timeoutSeconds > 0 {
		opts.Timeout = time.Duration(timeoutSeconds) * time.Second
	}

	if fs.NArg() > 0 {
		return false, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return false, nil
}

func newSolverFromOptions(opts *Options, logger *zap.Logger) *solver.Solver {
	cfg := config.Config{
		SessionToken: opts.SessionToken,
		Timeout:      opts.Timeout,
	}
	return solver.New(input.NewOpener(cfg, logger), logger)
}
