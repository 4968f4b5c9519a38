package supervisor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/procwatch/testrunner/internal/lifecycle"
	"github.com/procwatch/testrunner/internal/outcome"
	"github.com/procwatch/testrunner/internal/process"
)

// DefaultKillGrace is how long a terminated child gets to exit before
// the kill is escalated.
const DefaultKillGrace = 5 * time.Second

// Callbacks contains optional callback functions for run events.
type Callbacks struct {
	// OnStateChange is called when the run state changes.
	OnStateChange func(oldState, newState State)

	// OnStart is called when the child process starts.
	OnStart func(pid int)

	// OnExit is called after classification, with the outcome and the
	// child's wall-clock runtime.
	OnExit func(o outcome.Outcome, elapsed time.Duration)
}

// Config holds configuration for creating a new Supervisor.
type Config struct {
	// Command is the child's argv, forwarded untouched.
	Command []string

	// Label is the marker display label. Empty derives it from the
	// child executable's basename.
	Label string

	// Verbose enables the begin/end markers.
	Verbose bool

	// Timeout is the maximum child runtime. Zero waits forever.
	Timeout time.Duration

	// KillGrace bounds the SIGTERM-to-SIGKILL escalation. Zero uses
	// DefaultKillGrace.
	KillGrace time.Duration

	// Stderr receives the contractual messages. Defaults to os.Stderr.
	Stderr io.Writer

	// Logger receives structured diagnostics. Defaults to the slog
	// default logger.
	Logger *slog.Logger

	Callbacks Callbacks
}

// Supervisor owns the single child process for its full lifetime. The
// deadline timer never touches the handle; it only requests termination
// through the supervisor, so the child is signaled at most once and
// reaped exactly once.
type Supervisor struct {
	cfg       Config
	deadline  Deadline
	marker    *lifecycle.Marker
	stderr    io.Writer
	logger    *slog.Logger
	callbacks Callbacks

	state   State
	stateMu sync.RWMutex

	child   *process.Child
	elapsed time.Duration
}

// New creates a Supervisor for one invocation.
func New(cfg Config) *Supervisor {
	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.KillGrace <= 0 {
		cfg.KillGrace = DefaultKillGrace
	}

	label := cfg.Label
	if label == "" {
		label = lifecycle.DefaultLabel(cfg.Command)
	}

	return &Supervisor{
		cfg:       cfg,
		deadline:  NewDeadline(cfg.Timeout),
		marker:    lifecycle.New(stderr, label, cfg.Verbose),
		stderr:    stderr,
		logger:    logger,
		callbacks: cfg.Callbacks,
		state:     StateCreated,
	}
}

// Label returns the sanitized label used in the markers.
func (s *Supervisor) Label() string {
	return s.marker.Label()
}

// Run launches the child and blocks until it has been reaped and
// classified. The returned error is non-nil only when the child could
// not be spawned or the context was cancelled; a child that fails,
// crashes or times out is a classified outcome, not an error.
func (s *Supervisor) Run(ctx context.Context) (outcome.Outcome, error) {
	s.setState(StateStarting)
	s.marker.Begin(s.cfg.Command)

	child := process.New(s.cfg.Command)
	s.child = child

	start := time.Now()
	if err := child.Start(); err != nil {
		s.setState(StateReported)
		fmt.Fprintf(s.stderr, "%s: %v\n", lifecycle.Prefix, err)
		return outcome.Outcome{}, err
	}

	s.setState(StateRunning)
	s.logger.Debug("child_started",
		"pid", child.Pid(),
		"label", s.marker.Label(),
		"timeout", s.cfg.Timeout.String(),
	)
	if s.callbacks.OnStart != nil {
		s.callbacks.OnStart(child.Pid())
	}

	// The wait goroutine is the only caller of Wait; every path below
	// receives the status through this channel, so the child is reaped
	// exactly once.
	waitCh := make(chan error, 1)
	go func() {
		waitCh <- child.Wait()
	}()

	var deadlineCh <-chan time.Time
	if s.deadline.Enabled() {
		timer := time.NewTimer(s.deadline.Timeout())
		defer timer.Stop()
		deadlineCh = timer.C
	}

	var waitErr error
	timedOut := false
	cancelled := false

	select {
	case waitErr = <-waitCh:
	case <-deadlineCh:
		timedOut = true
		waitErr = s.killAndReap(waitCh)
	case <-ctx.Done():
		cancelled = true
		waitErr = s.killAndReap(waitCh)
	}

	elapsed := time.Since(start)
	s.elapsed = elapsed
	s.setState(StateExited)

	o := outcome.FromWaitError(waitErr)
	s.logger.Debug("child_reaped",
		"pid", child.Pid(),
		"kind", o.Kind.String(),
		"elapsed", elapsed.String(),
		"timed_out", timedOut,
	)

	o = s.report(o, elapsed, timedOut)
	s.setState(StateReported)

	if s.callbacks.OnExit != nil {
		s.callbacks.OnExit(o, elapsed)
	}

	if cancelled {
		return o, ctx.Err()
	}
	return o, nil
}

// report emits the contractual stderr lines and the end marker, and
// folds the timeout framing into the final outcome.
func (s *Supervisor) report(o outcome.Outcome, elapsed time.Duration, timedOut bool) outcome.Outcome {
	if timedOut {
		// The timeout line always precedes any signal detail from the
		// kill itself.
		fmt.Fprintf(s.stderr, "Timed out after %s seconds\n", s.deadline.Seconds())
		if msg := o.Message(); msg != "" {
			fmt.Fprintln(s.stderr, msg)
		}
		o = outcome.TimedOut()
	} else {
		if s.deadline.CloseCall(elapsed) {
			fmt.Fprintf(s.stderr, "WARNING: test ran for %ds, dangerously close to the %ss timeout\n",
				int(elapsed.Seconds()), s.deadline.Seconds())
			fmt.Fprintln(s.stderr, "Consider reducing what the test does or raising its timeout.")
		}
		if msg := o.Message(); msg != "" {
			fmt.Fprintln(s.stderr, msg)
		}
	}

	s.marker.End(o.EndSuffix())
	return o
}

// killAndReap requests termination once, escalates after the grace
// period, and blocks until the wait goroutine hands back the status.
func (s *Supervisor) killAndReap(waitCh <-chan error) error {
	s.setState(StateKilling)

	if err := s.child.Terminate(); err != nil {
		s.logger.Debug("terminate_failed", "pid", s.child.Pid(), "error", err)
	}

	select {
	case err := <-waitCh:
		return err
	case <-time.After(s.cfg.KillGrace):
		s.logger.Debug("force_killing_child", "pid", s.child.Pid())
		if err := s.child.Kill(); err != nil {
			s.logger.Debug("kill_failed", "pid", s.child.Pid(), "error", err)
		}
		return <-waitCh
	}
}

// Elapsed returns the child's wall-clock runtime once it has exited,
// or 0 while it is still running.
func (s *Supervisor) Elapsed() time.Duration {
	return s.elapsed
}

// State returns the current state of the run.
func (s *Supervisor) State() State {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

// setState updates the state and calls the callback if registered.
func (s *Supervisor) setState(newState State) {
	s.stateMu.Lock()
	oldState := s.state
	s.state = newState
	s.stateMu.Unlock()

	if s.callbacks.OnStateChange != nil && oldState != newState {
		s.callbacks.OnStateChange(oldState, newState)
	}
}
