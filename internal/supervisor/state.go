// Package supervisor runs a single child command under an optional
// deadline and classifies how it terminated.
package supervisor

// State represents the current phase of a supervised run.
type State int

const (
	// StateCreated is the initial state before launch.
	StateCreated State = iota

	// StateStarting indicates the child process is being spawned.
	StateStarting

	// StateRunning indicates the child is alive and being waited on.
	StateRunning

	// StateKilling indicates the deadline fired and termination has
	// been requested.
	StateKilling

	// StateExited indicates the child has been reaped.
	StateExited

	// StateReported indicates the outcome has been classified and
	// emitted; the run is over.
	StateReported
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateKilling:
		return "killing"
	case StateExited:
		return "exited"
	case StateReported:
		return "reported"
	default:
		return "unknown"
	}
}

// IsTerminal returns true once the run has been fully reported.
func (s State) IsTerminal() bool {
	return s == StateReported
}
