package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/procwatch/testrunner/internal/outcome"
)

func TestReport_Record(t *testing.T) {
	r := NewReport()
	r.Record("suite__fast", outcome.NormalExit(3), 1500*time.Millisecond)

	families := gather(t, r)

	if got := gaugeValue(t, families, "testrunner_run_duration_seconds"); got != 1.5 {
		t.Errorf("run_duration = %v, want 1.5", got)
	}
	if got := gaugeValue(t, families, "testrunner_child_exit_code"); got != 3 {
		t.Errorf("exit_code = %v, want 3", got)
	}
	if got := gaugeValue(t, families, "testrunner_timed_out"); got != 0 {
		t.Errorf("timed_out = %v, want 0", got)
	}

	info, ok := families["testrunner_run_info"]
	if !ok {
		t.Fatal("run_info family missing")
	}
	labels := map[string]string{}
	for _, lp := range info.GetMetric()[0].GetLabel() {
		labels[lp.GetName()] = lp.GetValue()
	}
	if labels["label"] != "suite__fast" || labels["outcome"] != "exit" {
		t.Errorf("run_info labels = %v", labels)
	}
}

func TestReport_TimedOut(t *testing.T) {
	r := NewReport()
	r.Record("t", outcome.TimedOut(), 5*time.Second)

	families := gather(t, r)
	if got := gaugeValue(t, families, "testrunner_timed_out"); got != 1 {
		t.Errorf("timed_out = %v, want 1", got)
	}
	if got := gaugeValue(t, families, "testrunner_child_exit_code"); got != float64(outcome.ExitTimeout) {
		t.Errorf("exit_code = %v, want %d", got, outcome.ExitTimeout)
	}
}

func TestReport_WriteFile(t *testing.T) {
	r := NewReport()
	r.Record("w", outcome.Signaled(11, false), 250*time.Millisecond)

	path := filepath.Join(t.TempDir(), "testrunner.prom")
	if err := r.WriteFile(path); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// The file must round-trip through the text exposition parser.
	var parser expfmt.TextParser
	families, err := parser.TextToMetricFamilies(f)
	if err != nil {
		t.Fatalf("textfile output did not parse: %v", err)
	}
	if _, ok := families["testrunner_run_duration_seconds"]; !ok {
		t.Error("run_duration family missing from textfile output")
	}
	if _, ok := families["testrunner_run_info"]; !ok {
		t.Error("run_info family missing from textfile output")
	}
}

func gather(t *testing.T, r *Report) map[string]*dto.MetricFamily {
	t.Helper()
	gathered, err := r.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather returned error: %v", err)
	}
	families := make(map[string]*dto.MetricFamily, len(gathered))
	for _, mf := range gathered {
		families[mf.GetName()] = mf
	}
	return families
}

func gaugeValue(t *testing.T, families map[string]*dto.MetricFamily, name string) float64 {
	t.Helper()
	mf, ok := families[name]
	if !ok {
		t.Fatalf("metric family %q missing", name)
	}
	return mf.GetMetric()[0].GetGauge().GetValue()
}
