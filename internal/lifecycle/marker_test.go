package lifecycle

import (
	"bytes"
	"testing"
	"time"
)

func TestSanitizeLabel(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"a:b", "a__b"},
		{"a:b:c", "a__b__c"},
		{":", "__"},
		{"", ""},
	}

	for _, tc := range testCases {
		if got := SanitizeLabel(tc.input); got != tc.want {
			t.Errorf("SanitizeLabel(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestDefaultLabel(t *testing.T) {
	testCases := []struct {
		command []string
		want    string
	}{
		{[]string{"/usr/bin/check-all", "-v"}, "check-all"},
		{[]string{"./run"}, "run"},
		{[]string{"bare"}, "bare"},
		{nil, ""},
	}

	for _, tc := range testCases {
		if got := DefaultLabel(tc.command); got != tc.want {
			t.Errorf("DefaultLabel(%q) = %q, want %q", tc.command, got, tc.want)
		}
	}
}

func TestMarker_BeginLine(t *testing.T) {
	var buf bytes.Buffer
	m := New(&buf, "suite:fast", true)
	m.now = func() time.Time {
		return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	}

	m.Begin([]string{"/bin/check", "-v", "case one"})

	want := "testrunner: begin suite__fast @2026-08-28T12:00:00Z: [exe] /bin/check -v case one\n"
	if got := buf.String(); got != want {
		t.Errorf("begin line = %q, want %q", got, want)
	}
}

func TestMarker_EndLine(t *testing.T) {
	var buf bytes.Buffer
	m := New(&buf, "suite:fast", true)

	m.End("exit code 0")

	want := "testrunner: end suite__fast: exit code 0\n"
	if got := buf.String(); got != want {
		t.Errorf("end line = %q, want %q", got, want)
	}
}

func TestMarker_Disabled(t *testing.T) {
	var buf bytes.Buffer
	m := New(&buf, "x", false)

	m.Begin([]string{"true"})
	m.End("exit code 0")

	if buf.Len() != 0 {
		t.Errorf("disabled marker wrote %q", buf.String())
	}
}

func TestMarker_Label(t *testing.T) {
	m := New(&bytes.Buffer{}, "a:b", true)
	if m.Label() != "a__b" {
		t.Errorf("Label() = %q, want a__b", m.Label())
	}
}
