// Package main provides the testrunner CLI entry point.
//
// testrunner runs a single child command under supervision: it enforces
// an optional timeout, classifies how the child terminated, optionally
// brackets the run with lifecycle markers, and mirrors the child's
// result in its own exit code.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/procwatch/testrunner/internal/config"
	"github.com/procwatch/testrunner/internal/lifecycle"
	"github.com/procwatch/testrunner/internal/logging"
	"github.com/procwatch/testrunner/internal/metrics"
	"github.com/procwatch/testrunner/internal/outcome"
	"github.com/procwatch/testrunner/internal/supervisor"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/testrunner
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Handle version flag early (before flag parsing)
	if len(os.Args) > 1 {
		arg := os.Args[1]
		if arg == "-version" || arg == "--version" || arg == "version" {
			fmt.Printf("testrunner %s\n", version)
			return 0
		}
	}

	cfg, err := config.ParseArgs(os.Args[1:], os.Stdout)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return outcome.ExitUsage
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", lifecycle.Prefix, err)
		return outcome.ExitUsage
	}

	logger := logging.NewLogger(cfg.LogFormat, cfg.Debug)
	logging.SetDefault(logger)

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", lifecycle.Prefix, err)
		return outcome.ExitUsage
	}

	// The child inherits the supervisor's working directory.
	if cfg.Chdir != "" {
		if err := os.Chdir(cfg.Chdir); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", lifecycle.Prefix, err)
			return outcome.ExitUsage
		}
	}

	var report *metrics.Report
	if cfg.MetricsFile != "" {
		report = metrics.NewReport()
	}

	sup := supervisor.New(supervisor.Config{
		Command: cfg.Command,
		Label:   cfg.Label,
		Verbose: cfg.Verbose,
		Timeout: cfg.Timeout,
		Logger:  logger,
	})

	// Ctrl+C and SIGTERM stop the supervisor; the child is terminated
	// and reaped through the same kill path the deadline uses.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	o, err := sup.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		// Spawn failure: the OS's own error text has already been
		// printed by the supervisor.
		return outcome.SpawnExitCode(err)
	}

	if report != nil {
		// report is best-effort: a failed write never changes the
		// run's exit code.
		report.Record(sup.Label(), o, sup.Elapsed())
		if werr := report.WriteFile(cfg.MetricsFile); werr != nil {
			fmt.Fprintf(os.Stderr, "%s: writing metrics file: %v\n", lifecycle.Prefix, werr)
		}
	}

	return o.ExitCode()
}
