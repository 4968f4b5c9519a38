package outcome

import (
	"errors"
	"io/fs"
	"os/exec"
)

// SpawnExitCode maps a child start failure to the supervisor's exit
// code, following shell convention: 127 when the executable does not
// exist, 126 when it exists but cannot be executed.
func SpawnExitCode(err error) int {
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	case errors.Is(err, fs.ErrPermission):
		return ExitNoPermission
	default:
		return 1
	}
}
