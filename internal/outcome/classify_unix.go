//go:build !windows

package outcome

import (
	"errors"
	"os/exec"
	"syscall"
)

// Classify translates a POSIX wait status into an outcome.
func Classify(ws syscall.WaitStatus) Outcome {
	if ws.Signaled() {
		return Signaled(int(ws.Signal()), ws.CoreDump())
	}
	return NormalExit(ws.ExitStatus())
}

// FromWaitError maps the error returned by exec.Cmd.Wait into an
// outcome. A nil error is a clean exit. Errors that carry no exit
// status (for example an I/O error during Wait) are treated as exit
// code 1.
func FromWaitError(err error) Outcome {
	if err == nil {
		return NormalExit(0)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			return Classify(ws)
		}
		if code := exitErr.ExitCode(); code >= 0 {
			return NormalExit(code)
		}
	}

	return NormalExit(1)
}
