// Package outcome normalizes raw OS termination data into a single
// platform-independent classification consumed by reporting and
// exit-code mapping.
package outcome

import "fmt"

// Kind identifies how the child process terminated.
type Kind int

const (
	// KindNormalExit is a plain exit with a code, zero or not.
	KindNormalExit Kind = iota

	// KindSignaled is a POSIX signal death.
	KindSignaled

	// KindPlatformFault is a Windows hard-fault exit code (NTSTATUS).
	KindPlatformFault

	// KindTimedOut is a child killed by the deadline.
	KindTimedOut
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNormalExit:
		return "exit"
	case KindSignaled:
		return "signal"
	case KindPlatformFault:
		return "fault"
	case KindTimedOut:
		return "timeout"
	default:
		return "unknown"
	}
}

// Supervisor exit codes for conditions that are not the child's own code.
const (
	// ExitUsage is returned for argument and configuration errors,
	// and for --help.
	ExitUsage = 2

	// ExitTimeout is returned when the child is killed by the deadline,
	// following the GNU timeout convention.
	ExitTimeout = 124

	// ExitNoPermission is returned when the child could not be executed.
	ExitNoPermission = 126

	// ExitNotFound is returned when the child executable does not exist.
	ExitNotFound = 127

	// signalExitBase keeps signal deaths distinguishable from normal
	// low exit codes: a child killed by signal N exits 128+N.
	signalExitBase = 128
)

// Outcome is the normalized result of a finished child process.
// It is produced exactly once, after the child is confirmed terminated.
type Outcome struct {
	Kind Kind

	// Code is the exit code for KindNormalExit, or the raw platform
	// code for KindPlatformFault.
	Code int

	// Signal is the terminating signal number for KindSignaled.
	Signal int

	// Cored reports whether the signal death produced a core dump.
	// Core-dump occurrence is environment-dependent; callers must not
	// assert it either way.
	Cored bool

	// FaultName is the symbolic NTSTATUS name for KindPlatformFault.
	FaultName string
}

// NormalExit returns the outcome for a plain exit with the given code.
func NormalExit(code int) Outcome {
	return Outcome{Kind: KindNormalExit, Code: code}
}

// Signaled returns the outcome for a POSIX signal death.
func Signaled(sig int, cored bool) Outcome {
	return Outcome{Kind: KindSignaled, Signal: sig, Cored: cored}
}

// PlatformFault returns the outcome for a known Windows fault code.
func PlatformFault(raw uint32, name string) Outcome {
	return Outcome{Kind: KindPlatformFault, Code: int(int32(raw)), FaultName: name}
}

// TimedOut returns the outcome for a child killed by the deadline.
func TimedOut() Outcome {
	return Outcome{Kind: KindTimedOut}
}

// Message returns the one-line classification message for stderr, or ""
// when nothing should be printed (normal exits are silent; the timeout
// framing is emitted by the supervisor, not here).
func (o Outcome) Message() string {
	switch o.Kind {
	case KindSignaled:
		msg := fmt.Sprintf("Process exited due to signal %d", o.Signal)
		if o.Cored {
			msg += "; dumped core"
		}
		return msg
	case KindPlatformFault:
		return fmt.Sprintf("Process exited with fault 0x%08X (%s)", uint32(int32(o.Code)), o.FaultName)
	default:
		return ""
	}
}

// EndSuffix returns the suffix for the verbose end marker.
func (o Outcome) EndSuffix() string {
	switch o.Kind {
	case KindSignaled:
		return fmt.Sprintf("signal %d", o.Signal)
	case KindTimedOut:
		return "timed out"
	case KindPlatformFault:
		return fmt.Sprintf("fault 0x%08X", uint32(int32(o.Code)))
	default:
		return fmt.Sprintf("exit code %d", o.Code)
	}
}

// ExitCode maps the outcome to the supervisor's own exit code.
func (o Outcome) ExitCode() int {
	switch o.Kind {
	case KindSignaled:
		return signalExitBase + o.Signal
	case KindTimedOut:
		return ExitTimeout
	case KindPlatformFault:
		// Raw NTSTATUS values do not fit a POSIX exit byte; collapse
		// to a generic failure so downstream tooling sees non-zero.
		return 1
	default:
		return o.Code
	}
}
