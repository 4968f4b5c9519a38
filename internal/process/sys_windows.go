//go:build windows

package process

import "os/exec"

// setSysProcAttr is a no-op on Windows; there are no POSIX process
// groups to configure.
func setSysProcAttr(cmd *exec.Cmd) {}

// Terminate kills the process. Windows has no SIGTERM equivalent, so a
// timed-out child is killed outright and its wait status reports a
// normal exit with no signal information.
func (c *Child) Terminate() error {
	if c.cmd.Process == nil {
		return nil
	}
	return c.cmd.Process.Kill()
}

// Kill kills the process. Identical to Terminate on Windows; it exists
// so the escalation path compiles on both platforms.
func (c *Child) Kill() error {
	return c.Terminate()
}
