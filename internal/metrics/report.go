// Package metrics renders a Prometheus run report for a finished child.
//
// The supervisor is a one-shot process, so there is no scrape endpoint;
// the report is written in text exposition format to a file suitable
// for the node_exporter textfile collector, letting a surrounding
// harness aggregate run durations and outcomes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/procwatch/testrunner/internal/outcome"
)

// Report collects the metrics describing one supervised run.
type Report struct {
	registry *prometheus.Registry

	runDuration prometheus.Gauge
	exitCode    prometheus.Gauge
	timedOut    prometheus.Gauge
	runInfo     *prometheus.GaugeVec
}

// NewReport creates a report with its own registry, so nothing leaks
// into the process-global default registry.
func NewReport() *Report {
	r := &Report{
		registry: prometheus.NewRegistry(),

		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "testrunner_run_duration_seconds",
			Help: "Wall-clock runtime of the supervised child",
		}),

		exitCode: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "testrunner_child_exit_code",
			Help: "Exit code the supervisor propagated for the child",
		}),

		timedOut: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "testrunner_timed_out",
			Help: "1 if the child was killed by the deadline, else 0",
		}),

		runInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "testrunner_run_info",
			Help: "Information about the run (value always 1)",
		}, []string{"label", "outcome"}),
	}

	r.registry.MustRegister(r.runDuration, r.exitCode, r.timedOut, r.runInfo)
	return r
}

// Record captures a classified run. Called exactly once, after the
// child has been reaped.
func (r *Report) Record(label string, o outcome.Outcome, elapsed time.Duration) {
	r.runDuration.Set(elapsed.Seconds())
	r.exitCode.Set(float64(o.ExitCode()))
	if o.Kind == outcome.KindTimedOut {
		r.timedOut.Set(1)
	} else {
		r.timedOut.Set(0)
	}
	r.runInfo.WithLabelValues(label, o.Kind.String()).Set(1)
}

// WriteFile writes the report in text exposition format, atomically
// replacing any previous file at the path.
func (r *Report) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

// Registry exposes the underlying registry for tests.
func (r *Report) Registry() *prometheus.Registry {
	return r.registry
}
