// Package lifecycle emits the begin/end marker lines that bracket a
// supervised run in verbose mode.
//
// Line grammar (newline-terminated, written to stderr):
//
//	testrunner: begin <label> @<timestamp>: [exe] <command>
//	testrunner: end <label>: <outcome-suffix>
//
// The child's streams are inherited directly, never buffered, so the
// markers cannot interleave with child output mid-line.
package lifecycle

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// Prefix starts every marker line.
const Prefix = "testrunner"

// KindTag is the fixed category tag identifying the child's command
// kind in the begin marker.
const KindTag = "[exe]"

// SanitizeLabel replaces every ":" in a label with "__". Colons are
// reserved as field separators in the marker line grammar.
func SanitizeLabel(label string) string {
	return strings.ReplaceAll(label, ":", "__")
}

// DefaultLabel derives the display label from the child command: the
// basename of its executable.
func DefaultLabel(command []string) string {
	if len(command) == 0 {
		return ""
	}
	return filepath.Base(command[0])
}

// Marker writes begin/end lines for one run. A disabled Marker is
// valid and writes nothing.
type Marker struct {
	w       io.Writer
	label   string
	enabled bool

	// now is replaceable for tests.
	now func() time.Time
}

// New creates a marker emitter. The label is sanitized once here so
// both lines agree.
func New(w io.Writer, label string, enabled bool) *Marker {
	return &Marker{
		w:       w,
		label:   SanitizeLabel(label),
		enabled: enabled,
		now:     time.Now,
	}
}

// Label returns the sanitized label both lines carry.
func (m *Marker) Label() string {
	return m.label
}

// Begin writes the begin marker with a timestamp and the command line.
func (m *Marker) Begin(command []string) {
	if !m.enabled {
		return
	}
	fmt.Fprintf(m.w, "%s: begin %s @%s: %s %s\n",
		Prefix, m.label, m.now().Format(time.RFC3339), KindTag, strings.Join(command, " "))
}

// End writes the end marker with the classified outcome suffix.
func (m *Marker) End(suffix string) {
	if !m.enabled {
		return
	}
	fmt.Fprintf(m.w, "%s: end %s: %s\n", Prefix, m.label, suffix)
}
