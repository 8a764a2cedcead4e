package metrics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	fsutil "github.com/saketk/familystream/internal/testutil"
)

func TestNewRegistryRegistersAll(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRegistry(reg)

	m.ObserveStage("collect", 9, time.Millisecond, nil)

	families, err := reg.Gather()
	fsutil.AssertNoError(t, err)

	names := make([]string, 0, len(families))
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	// stage_errors_total has no series until a failure is recorded.
	fsutil.AssertSliceEqual(t, names, []string{
		"familystream_stage_duration_seconds",
		"familystream_stage_lines_emitted_total",
		"familystream_stage_runs_total",
	})
}

func TestObserveStage(t *testing.T) {
	m := NewRegistry(prometheus.NewRegistry())

	m.ObserveStage("reduce", 1, 5*time.Millisecond, nil)
	m.ObserveStage("flatmap", 0, time.Millisecond, errors.New("colors unset"))

	fsutil.AssertEqual(t, testutil.ToFloat64(m.StageRuns.WithLabelValues("reduce")), 1.0)
	fsutil.AssertEqual(t, testutil.ToFloat64(m.LinesEmitted.WithLabelValues("reduce")), 1.0)
	fsutil.AssertEqual(t, testutil.ToFloat64(m.StageErrors.WithLabelValues("flatmap")), 1.0)
	fsutil.AssertEqual(t, testutil.CollectAndCount(m.StageDuration), 2)
}

func TestObserveStageNilRegistry(t *testing.T) {
	var m *Registry
	m.ObserveStage("iterate", 7, time.Millisecond, nil)
}

func TestNewWithNamespaceAndLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(Config{
		Enabled:   true,
		Registry:  reg,
		Namespace: "demo",
		Labels:    prometheus.Labels{"dataset": "core"},
	})
	m.StageRuns.WithLabelValues("set").Inc()

	expected := `
# HELP demo_stage_runs_total Total number of demo stage runs
# TYPE demo_stage_runs_total counter
demo_stage_runs_total{dataset="core",stage="set"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "demo_stage_runs_total")
	fsutil.AssertNoError(t, err)
}

func TestNewDefaultsNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(Config{Enabled: true, Registry: reg})
	m.StageRuns.WithLabelValues("map").Inc()

	count, err := testutil.GatherAndCount(reg, "familystream_stage_runs_total")
	fsutil.AssertNoError(t, err)
	fsutil.AssertEqual(t, count, 1)
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = NewRegistry(reg)

	defer func() {
		fsutil.AssertEqual(t, recover() != nil, true)
	}()
	_ = NewRegistry(reg)
}

func TestNewDisabled(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(Config{Enabled: false, Registry: reg})
	fsutil.AssertEqual(t, m == nil, true)

	m.ObserveStage("filter", 2, time.Millisecond, nil)

	families, err := reg.Gather()
	fsutil.AssertNoError(t, err)
	fsutil.AssertEqual(t, len(families), 0)
}
