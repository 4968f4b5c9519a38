//go:build !windows

package process

import (
	"errors"
	"os/exec"
	"syscall"
	"testing"
	"time"
)

func TestChild_StartWait(t *testing.T) {
	c := New([]string{"true"})
	if err := c.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if c.Pid() == 0 {
		t.Error("Pid should be set after Start")
	}
	if err := c.Wait(); err != nil {
		t.Errorf("Wait returned error for clean exit: %v", err)
	}
}

func TestChild_TerminateStopsSleeper(t *testing.T) {
	c := New([]string{"sleep", "30"})
	if err := c.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	// Let the process come up, then terminate the group.
	time.Sleep(50 * time.Millisecond)
	if err := c.Terminate(); err != nil {
		t.Fatalf("Terminate returned error: %v", err)
	}

	err := c.Wait()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Wait error = %v, want ExitError", err)
	}
	ws, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() || ws.Signal() != syscall.SIGTERM {
		t.Errorf("wait status = %+v, want SIGTERM death", exitErr.Sys())
	}
}

func TestChild_String(t *testing.T) {
	c := New([]string{"echo", "a b", "c"})
	if got := c.String(); got != "echo a b c" {
		t.Errorf("String() = %q", got)
	}
}

func TestChild_PidBeforeStart(t *testing.T) {
	c := New([]string{"true"})
	if c.Pid() != 0 {
		t.Error("Pid should be 0 before Start")
	}
}
