//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// setSysProcAttr puts the child in its own process group so Terminate
// and Kill reach the child and anything it spawned.
func setSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}

// Terminate sends SIGTERM to the child's process group, falling back to
// the process itself if the group cannot be resolved.
func (c *Child) Terminate() error {
	if c.cmd.Process == nil {
		return nil
	}
	if pgid, err := syscall.Getpgid(c.cmd.Process.Pid); err == nil {
		return syscall.Kill(-pgid, syscall.SIGTERM)
	}
	return c.cmd.Process.Signal(syscall.SIGTERM)
}

// Kill sends SIGKILL to the child's process group.
func (c *Child) Kill() error {
	if c.cmd.Process == nil {
		return nil
	}
	if pgid, err := syscall.Getpgid(c.cmd.Process.Pid); err == nil {
		return syscall.Kill(-pgid, syscall.SIGKILL)
	}
	return c.cmd.Process.Kill()
}
