package config

import (
	"fmt"
	"io"
)

// WriteUsage renders the usage text. It goes to stdout on --help;
// everything else the supervisor prints goes to stderr.
func WriteUsage(w io.Writer) {
	fmt.Fprint(w, `testrunner - run a test command under a supervisor

Usage:
  testrunner [options] [--] <command> [args...]

The command and its arguments are forwarded to the child exactly as
given. Nothing after "--" is interpreted as a testrunner option.

Options:
  --verbose              Log begin/end lifecycle markers to stderr
  --label <text>         Display label for the markers
                         (default: the child executable's basename)
  --timeout <seconds>    Kill the child if it runs longer than this
  --chdir <path>         Change working directory before launch
  -C <path>              Alias for --chdir
  --metrics-file <path>  Write a Prometheus textfile run report
  --debug                Structured diagnostics on stderr
  --log-format <fmt>     Diagnostics format: "json" or "text"
  --help                 Print this message and exit

Exit codes:
  the child's own code on normal exit; 128+N when the child died from
  signal N; 124 on timeout; 2 on argument or configuration errors.
`)
}
