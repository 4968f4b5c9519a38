//go:build windows

package outcome

import (
	"errors"
	"os/exec"
	"syscall"
)

// FromWaitError maps the error returned by exec.Cmd.Wait into an
// outcome. Windows has no signal deaths; hard faults surface as
// NTSTATUS exit codes and are classified against the known fault table.
func FromWaitError(err error) Outcome {
	if err == nil {
		return NormalExit(0)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			return ClassifyExitCode(uint32(ws.ExitStatus()))
		}
		if code := exitErr.ExitCode(); code >= 0 {
			return ClassifyExitCode(uint32(code))
		}
	}

	return NormalExit(1)
}
