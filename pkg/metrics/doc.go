// Package metrics provides Prometheus instrumentation for familystream components.
//
// # Overview
//
// The showcase runner records, per demo stage:
//   - how many times the stage ran
//   - how many of those runs failed
//   - how many result lines it wrote to the sink
//   - how long each run took
//
// # Quick Start
//
//	registry := prometheus.NewRegistry()
//	m := metrics.NewRegistry(registry)
//
//	runner := showcase.NewWithConfig(showcase.Config{Metrics: m})
//
// The command has no HTTP surface; with metrics enabled it gathers the
// registry at exit and writes it to stderr in the text exposition format.
//
// # Available Metrics
//
//   - familystream_stage_runs_total: Total number of demo stage runs
//   - familystream_stage_errors_total: Total number of failed stage runs
//   - familystream_stage_lines_emitted_total: Total result lines written
//   - familystream_stage_duration_seconds: Time spent running a stage
//
// Every metric carries a "stage" label holding the demo name ("filter",
// "reduce", ...). Config.Labels are added as constant labels.
//
// # Configuration
//
//	config := metrics.Config{
//		Enabled:   true,
//		Registry:  prometheus.NewRegistry(),
//		Namespace: "myapp",
//		Labels:    prometheus.Labels{"dataset": "demo"},
//	}
//	m := metrics.New(config)
package metrics
