package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/bikeshare/internal/adapters/console"
	"github.com/okian/bikeshare/internal/adapters/repository"
	"github.com/okian/bikeshare/internal/app"
	"github.com/okian/bikeshare/internal/config"
	"github.com/okian/bikeshare/internal/domain/registry"
	"github.com/okian/bikeshare/internal/paginator"
	"github.com/okian/bikeshare/internal/report"
	"github.com/okian/bikeshare/pkg/logger"
	"github.com/okian/bikeshare/pkg/metrics"
)

// Exit codes.
const (
	exitOK          = 0
	exitLoadFailure = 1
	exitConfig      = 2
	exitInterrupted = 3
)

// interruptGrace is how long a signal waits for the session to reach a
// prompt boundary before the process exits anyway.
const interruptGrace = 2 * time.Second

// exitError carries the process exit code for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case <-done:
			return
		case <-ctx.Done():
		}
		// A blocked read on stdin does not observe ctx.
		select {
		case <-done:
		case <-time.After(interruptGrace):
			os.Stderr.WriteString("\ninterrupted\n")
			os.Exit(exitInterrupted)
		}
	}()

	code := run(ctx, os.Stdin, os.Stdout, os.Stderr)
	close(done)
	stop()
	os.Exit(code)
}

// run executes the explorer and returns the process exit code. Errors are
// reported on stderr.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) int {
	// Initialize logging; stdout is reserved for the session.
	if err := logger.InitWithWriter(stderr); err != nil {
		fmt.Fprintln(stderr, "failed to initialize logging: "+err.Error())
		return exitConfig
	}
	defer func() {
		_ = logger.Sync()
	}()

	err := explore(ctx, stdin, stdout)
	code := exitCode(err)
	if code != exitOK {
		fmt.Fprintln(stderr, "bikeshare: "+err.Error())
	}
	return code
}

// explore loads configuration, wires the session and runs it.
func explore(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	loggerInstance := logger.Get()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return &exitError{code: exitConfig, err: err}
	}

	// Apply configured log level (fallback to warn on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to warn", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("warn")
	}

	if cfg.MetricsFile != "" {
		defer func() {
			if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
				loggerInstance.Error(ctx, "failed to write metrics", logger.String("path", cfg.MetricsFile), logger.Error(err))
			}
		}()
	}

	reg := registry.New(
		registry.WithDataDir(cfg.DataDir),
		registry.WithCities(cfg.Cities),
	)
	store := repository.NewCSVStore(reg, repository.WithLogger(logger.Named("repository")))

	prompter := console.NewPrompter(
		console.WithInput(stdin),
		console.WithOutput(stdout),
		console.WithLogger(logger.Named("console")),
		console.WithInvalidHook(metrics.RecordInvalidInput),
	)

	reporter := report.New(
		report.WithOutput(stdout),
		report.WithLogger(logger.Named("report")),
		report.WithObserver(func(name string, elapsed time.Duration) {
			metrics.RecordReportDuration(name, elapsed.Seconds())
		}),
	)

	pager := paginator.New(prompter,
		paginator.WithOutput(stdout),
		paginator.WithPageSize(cfg.PageSize),
		paginator.WithLogger(logger.Named("paginator")),
		paginator.WithObserver(metrics.RecordRowsDisplayed),
	)

	session := app.NewSession(
		console.NewCollector(prompter, reg, cfg.Months),
		app.NewLoader(store, app.WithLoaderLogger(logger.Named("loader"))),
		reporter,
		pager,
		prompter,
		app.WithOutput(stdout),
		app.WithLogger(loggerInstance),
	)

	loggerInstance.Info(ctx, "starting bikeshare explorer",
		logger.String("data_dir", cfg.DataDir),
		logger.Int("cities", len(cfg.Cities)),
		logger.Int("page_size", cfg.PageSize),
	)
	return session.Run(ctx)
}

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	var ee *exitError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ee):
		return ee.code
	case errors.Is(err, console.ErrInputClosed),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return exitInterrupted
	default:
		return exitLoadFailure
	}
}
