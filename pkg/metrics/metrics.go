// Package metrics provides Prometheus instrumentation for familystream components.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for the demo runner.
type Registry struct {
	StageRuns     *prometheus.CounterVec
	StageErrors   *prometheus.CounterVec
	LinesEmitted  *prometheus.CounterVec
	StageDuration *prometheus.HistogramVec
}

// NewRegistry creates a new metrics registry with the given Prometheus
// registerer and the default namespace.
func NewRegistry(reg prometheus.Registerer) *Registry {
	config := DefaultConfig()
	config.Registry = reg
	return New(config)
}

// New creates a metrics registry from config. It returns nil, which records
// nothing, when config.Enabled is false. A nil config.Registry falls back to
// prometheus.DefaultRegisterer; an empty namespace to the default.
func New(config Config) *Registry {
	if !config.Enabled {
		return nil
	}
	reg := config.Registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	namespace := config.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}
	factory := promauto.With(reg)

	return &Registry{
		StageRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "stage",
				Name:        "runs_total",
				Help:        "Total number of demo stage runs",
				ConstLabels: config.Labels,
			},
			[]string{"stage"},
		),

		StageErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "stage",
				Name:        "errors_total",
				Help:        "Total number of demo stage runs that failed",
				ConstLabels: config.Labels,
			},
			[]string{"stage"},
		),

		LinesEmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "stage",
				Name:        "lines_emitted_total",
				Help:        "Total number of result lines written to the sink",
				ConstLabels: config.Labels,
			},
			[]string{"stage"},
		),

		StageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   namespace,
				Subsystem:   "stage",
				Name:        "duration_seconds",
				Help:        "Time spent running a demo stage",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: config.Labels,
			},
			[]string{"stage"},
		),
	}
}

// ObserveStage records one finished stage run. It is a no-op on a nil Registry.
func (r *Registry) ObserveStage(stage string, lines int, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.StageRuns.WithLabelValues(stage).Inc()
	r.LinesEmitted.WithLabelValues(stage).Add(float64(lines))
	r.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
	if err != nil {
		r.StageErrors.WithLabelValues(stage).Inc()
	}
}
