// Package config parses and validates testrunner's own options and
// separates them from the child command line.
package config

import "time"

// Config holds one invocation's supervisor options plus the child
// command. It is built once per run and not modified afterwards.
type Config struct {
	// Verbose enables the begin/end lifecycle markers.
	Verbose bool `json:"verbose"`

	// Label is the display name for the markers. Empty means derive
	// from the child's executable name.
	Label string `json:"label"`

	// Timeout is the maximum child runtime. Zero means wait forever.
	Timeout time.Duration `json:"timeout"`

	// Chdir is the working directory to switch to before launch.
	// Empty means stay where the supervisor started.
	Chdir string `json:"chdir"`

	// MetricsFile, when set, is where the Prometheus textfile run
	// report is written after the child exits.
	MetricsFile string `json:"metrics_file"`

	// Debug enables slog diagnostics on stderr.
	Debug bool `json:"debug"`

	// LogFormat is the diagnostics format: "json" or "text".
	LogFormat string `json:"log_format"`

	// Command is the child's argv, forwarded byte-for-byte.
	Command []string `json:"command"`
}

// DefaultConfig returns a Config with defaults applied.
func DefaultConfig() *Config {
	return &Config{
		LogFormat: "text",
	}
}
