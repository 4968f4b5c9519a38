//go:build !windows

package outcome

import (
	"errors"
	"os/exec"
	"testing"
)

func TestFromWaitError_RealProcesses(t *testing.T) {
	t.Run("clean exit", func(t *testing.T) {
		err := exec.Command("true").Run()
		o := FromWaitError(err)
		if o.Kind != KindNormalExit || o.Code != 0 {
			t.Errorf("got %+v, want NormalExit(0)", o)
		}
	})

	t.Run("nonzero exit", func(t *testing.T) {
		err := exec.Command("sh", "-c", "exit 3").Run()
		o := FromWaitError(err)
		if o.Kind != KindNormalExit || o.Code != 3 {
			t.Errorf("got %+v, want NormalExit(3)", o)
		}
	})

	t.Run("signal death", func(t *testing.T) {
		err := exec.Command("sh", "-c", "kill -9 $$").Run()
		o := FromWaitError(err)
		if o.Kind != KindSignaled || o.Signal != 9 {
			t.Errorf("got %+v, want Signaled(9)", o)
		}
		// Whether the kernel dumped core for SIGKILL is environment
		// dependent; do not assert Cored either way.
	})
}

func TestFromWaitError_NonExitError(t *testing.T) {
	o := FromWaitError(errors.New("wait: something else"))
	if o.Kind != KindNormalExit || o.Code != 1 {
		t.Errorf("got %+v, want NormalExit(1)", o)
	}
}

func TestFromWaitError_Nil(t *testing.T) {
	o := FromWaitError(nil)
	if o.Kind != KindNormalExit || o.Code != 0 {
		t.Errorf("got %+v, want NormalExit(0)", o)
	}
}
