package supervisor

import (
	"strconv"
	"time"
)

// WarnFraction is the portion of the timeout treated as "dangerously
// close": a child finishing with this fraction or less of its budget
// remaining triggers the close-call warning.
const WarnFraction = 0.20

// Deadline is derived from the timeout option at launch time. A zero
// timeout means no deadline.
type Deadline struct {
	timeout time.Duration
}

// NewDeadline builds a deadline from the configured timeout.
func NewDeadline(timeout time.Duration) Deadline {
	return Deadline{timeout: timeout}
}

// Enabled reports whether a timeout was configured.
func (d Deadline) Enabled() bool {
	return d.timeout > 0
}

// Timeout returns the configured maximum runtime.
func (d Deadline) Timeout() time.Duration {
	return d.timeout
}

// CloseCall reports whether an elapsed runtime is within the warning
// margin of the deadline, inclusive.
func (d Deadline) CloseCall(elapsed time.Duration) bool {
	if !d.Enabled() {
		return false
	}
	margin := time.Duration(float64(d.timeout) * WarnFraction)
	return elapsed >= d.timeout-margin
}

// Seconds renders the configured timeout in seconds for messages,
// without trailing zeros.
func (d Deadline) Seconds() string {
	return strconv.FormatFloat(d.timeout.Seconds(), 'f', -1, 64)
}
