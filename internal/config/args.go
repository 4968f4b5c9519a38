package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"
)

// ErrHelp is returned by ParseArgs when --help appears before the
// command boundary. Usage has already been written to stdout.
var ErrHelp = errors.New("help requested")

// ErrNotEnoughArguments is returned when no child command remains
// after the supervisor options.
var ErrNotEnoughArguments = errors.New("not enough arguments")

// ParseArgs splits the raw argument list into supervisor options and
// the child command. Scanning stops permanently at the first bare "--"
// or at the first token that is not a supervisor option; everything
// from there on is the command, byte-for-byte. A "--help" after the
// boundary is forwarded to the child, never interpreted.
func ParseArgs(args []string, stdout io.Writer) (*Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("testrunner", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // usage is rendered by WriteUsage

	var timeoutSecs float64
	var help bool

	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log begin/end lifecycle markers")
	fs.StringVar(&cfg.Label, "label", cfg.Label, "display label for the markers (default: child executable name)")
	fs.Float64Var(&timeoutSecs, "timeout", 0, "maximum child runtime in seconds (0 = no limit)")
	fs.StringVar(&cfg.Chdir, "chdir", cfg.Chdir, "change working directory before launching the child")
	fs.StringVar(&cfg.Chdir, "C", cfg.Chdir, "alias for -chdir")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write a Prometheus textfile run report here after the child exits")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable structured diagnostics on stderr")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, `diagnostics format: "json" or "text"`)
	fs.BoolVar(&help, "help", false, "print usage and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			WriteUsage(stdout)
			return nil, ErrHelp
		}
		return nil, err
	}

	if help {
		WriteUsage(stdout)
		return nil, ErrHelp
	}

	if timeoutSecs < 0 {
		return nil, fmt.Errorf("timeout must not be negative (got %v)", timeoutSecs)
	}
	cfg.Timeout = time.Duration(timeoutSecs * float64(time.Second))

	cfg.Command = fs.Args()
	if len(cfg.Command) == 0 {
		return nil, ErrNotEnoughArguments
	}

	return cfg, nil
}
