// Package process constructs and controls the supervised child command.
package process

import (
	"os"
	"os/exec"
	"strings"
)

// Child is the handle to the single supervised process. It is owned by
// the supervisor core for its full lifetime; the timeout path requests
// termination through the core, never through a second handle.
type Child struct {
	cmd *exec.Cmd
}

// New builds a child from the exact command tokens. The tokens are
// passed to the OS argument vector byte-for-byte; no quoting, escaping
// or globbing is applied. Standard streams are inherited so the child's
// output is attributable to the child, not the supervisor.
func New(argv []string) *Child {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	setSysProcAttr(cmd)
	return &Child{cmd: cmd}
}

// Start spawns the process.
func (c *Child) Start() error {
	return c.cmd.Start()
}

// Wait blocks until the process exits and returns the raw wait error.
// It must be called exactly once so the process is reaped and no
// zombie remains.
func (c *Child) Wait() error {
	return c.cmd.Wait()
}

// Pid returns the process ID of a started child.
func (c *Child) Pid() int {
	if c.cmd.Process == nil {
		return 0
	}
	return c.cmd.Process.Pid
}

// String renders the command line for display.
func (c *Child) String() string {
	return strings.Join(c.cmd.Args, " ")
}
