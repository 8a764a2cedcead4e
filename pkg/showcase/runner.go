package showcase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	fserrors "github.com/saketk/familystream/pkg/common/errors"
	"github.com/saketk/familystream/pkg/family"
	"github.com/saketk/familystream/pkg/metrics"
	"github.com/saketk/familystream/pkg/streaming/writer"
)

// Result represents the outcome of one Run.
type Result struct {
	// Dataset is the name of the dataset every stage received
	Dataset string

	// Lines is the total number of lines emitted
	Lines int

	// Error is the first stage error, or the only one when StopOnError is set
	Error error

	// Duration is the total execution time
	Duration time.Duration

	// StageResults contains results from each stage that ran
	StageResults []StageResult

	// StartTime is when the run started
	StartTime time.Time

	// EndTime is when the run finished
	EndTime time.Time
}

// StageResult represents the result of a single stage execution.
type StageResult struct {
	// StageName is the name of the stage
	StageName string

	// Lines is the number of lines the stage emitted
	Lines int

	// Error is any error from this stage
	Error error

	// Duration is how long this stage took
	Duration time.Duration

	// StartTime is when the stage started
	StartTime time.Time

	// EndTime is when the stage finished
	EndTime time.Time
}

// Stats holds cumulative runner statistics.
type Stats struct {
	TotalRuns       int64
	SuccessfulRuns  int64
	FailedRuns      int64
	TotalDuration   time.Duration
	AverageDuration time.Duration
	StageStats      map[string]StageStats
	LastRunAt       time.Time
}

// StageStats holds statistics for individual stages.
type StageStats struct {
	Name            string
	ExecutionCount  int64
	SuccessCount    int64
	ErrorCount      int64
	LinesEmitted    int64
	TotalDuration   time.Duration
	AverageDuration time.Duration
}

// Config holds runner configuration options.
type Config struct {
	// Dataset names the family dataset built for each stage.
	// Default: "demo"
	Dataset string

	// Timeout bounds a whole Run. Zero means no timeout.
	Timeout time.Duration

	// Logger receives stage progress at debug level and failures at error
	// level. The zero value logs nothing.
	Logger zerolog.Logger

	// Metrics records stage runs when non-nil.
	Metrics *metrics.Registry

	// OnStageStart is called when a stage starts execution.
	OnStageStart func(stageName string)

	// OnStageComplete is called when a stage completes.
	OnStageComplete func(result StageResult)

	// OnError is called when a stage fails.
	OnError func(stageName string, err error)

	// StopOnError determines if the run should stop on the first error.
	// If false, the remaining stages still run.
	StopOnError bool
}

// Runner runs demo stages one after another, each over a fresh dataset,
// writing their lines to a sink.
type Runner struct {
	stages []Stage
	config Config
	stats  Stats
	mu     sync.RWMutex
}

// New creates a runner with default configuration.
func New() *Runner {
	return NewWithConfig(Config{
		StopOnError: true,
	})
}

// NewWithConfig creates a new runner with the specified configuration.
func NewWithConfig(config Config) *Runner {
	if config.Dataset == "" {
		config.Dataset = family.DatasetDemo
	}
	return &Runner{
		stages: make([]Stage, 0),
		config: config,
		stats: Stats{
			StageStats: make(map[string]StageStats),
		},
	}
}

// AddStage adds a stage to the runner.
func (r *Runner) AddStage(stage Stage) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stages = append(r.stages, stage)
	if _, exists := r.stats.StageStats[stage.Name()]; !exists {
		r.stats.StageStats[stage.Name()] = StageStats{Name: stage.Name()}
	}
	return r
}

// AddStageFunc adds a stage function to the runner.
func (r *Runner) AddStageFunc(name string, fn func(ctx context.Context, members []*family.Member, emit Emit) error) *Runner {
	return r.AddStage(NewStageFunc(name, fn))
}

// AddDemos resolves names with Demos and adds the stages in order.
func (r *Runner) AddDemos(names []string, opts Options) error {
	stages, err := Demos(names, opts)
	if err != nil {
		return err
	}
	for _, st := range stages {
		r.AddStage(st)
	}
	return nil
}

// Stages returns all stages in the runner.
func (r *Runner) Stages() []Stage {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stages := make([]Stage, len(r.stages))
	copy(stages, r.stages)
	return stages
}

// Run executes every stage in order and writes their lines to sink.
// The returned error equals Result.Error.
func (r *Runner) Run(ctx context.Context, sink writer.LineWriter) (*Result, error) {
	startTime := time.Now()
	result := &Result{
		Dataset:   r.config.Dataset,
		StartTime: startTime,
	}

	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	result.Error = r.runStages(ctx, sink, result)
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)

	r.updateStats(result)

	log := r.config.Logger
	event := log.Info()
	if result.Error != nil {
		event = log.Error().Err(result.Error)
	}
	event.Str("dataset", result.Dataset).
		Int("stages", len(result.StageResults)).
		Int("lines", result.Lines).
		Dur("duration", result.Duration).
		Msg("run finished")

	return result, result.Error
}

func (r *Runner) runStages(ctx context.Context, sink writer.LineWriter, result *Result) error {
	// Reject an unknown dataset before any stage runs.
	if _, err := family.Dataset(r.config.Dataset); err != nil {
		return err
	}

	var firstErr error
	for _, stage := range r.Stages() {
		if err := ctx.Err(); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return firstErr
		}

		stageResult := r.runStage(ctx, stage, sink)
		result.StageResults = append(result.StageResults, stageResult)
		result.Lines += stageResult.Lines

		if stageResult.Error != nil {
			if r.config.OnError != nil {
				r.config.OnError(stage.Name(), stageResult.Error)
			}
			if firstErr == nil {
				firstErr = stageResult.Error
			}
			if r.config.StopOnError {
				return firstErr
			}
		}
	}
	return firstErr
}

func (r *Runner) runStage(ctx context.Context, stage Stage, sink writer.LineWriter) StageResult {
	name := stage.Name()
	log := r.config.Logger.With().Str("stage", name).Logger()
	startTime := time.Now()

	if r.config.OnStageStart != nil {
		r.config.OnStageStart(name)
	}
	log.Debug().Msg("stage started")

	lines := 0
	emit := func(line string) error {
		if err := sink.WriteLine(line); err != nil {
			return fmt.Errorf("write line: %w", err)
		}
		lines++
		return nil
	}

	// The dataset name was validated by runStages.
	members, _ := family.Dataset(r.config.Dataset)
	err := stage.Run(ctx, members, emit)
	if err != nil {
		err = fserrors.NewOperationError("showcase", name, err).
			WithContext("dataset " + r.config.Dataset)
	}

	endTime := time.Now()
	stageResult := StageResult{
		StageName: name,
		Lines:     lines,
		Error:     err,
		Duration:  endTime.Sub(startTime),
		StartTime: startTime,
		EndTime:   endTime,
	}

	r.updateStageStats(name, stageResult)
	r.config.Metrics.ObserveStage(name, lines, stageResult.Duration, err)

	if err != nil {
		log.Error().Err(err).
			Bool("precondition", fserrors.IsPreconditionViolation(err)).
			Msg("stage failed")
	} else {
		log.Debug().Int("lines", lines).Dur("duration", stageResult.Duration).Msg("stage finished")
	}

	if r.config.OnStageComplete != nil {
		r.config.OnStageComplete(stageResult)
	}
	return stageResult
}

// Stats returns runner execution statistics.
func (r *Runner) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	statsCopy := r.stats
	statsCopy.StageStats = make(map[string]StageStats, len(r.stats.StageStats))
	for k, v := range r.stats.StageStats {
		statsCopy.StageStats[k] = v
	}

	if statsCopy.TotalRuns > 0 {
		statsCopy.AverageDuration = time.Duration(int64(statsCopy.TotalDuration) / statsCopy.TotalRuns)
	}
	return statsCopy
}

func (r *Runner) updateStats(result *Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.TotalRuns++
	r.stats.TotalDuration += result.Duration
	r.stats.LastRunAt = result.EndTime

	if result.Error == nil {
		r.stats.SuccessfulRuns++
	} else {
		r.stats.FailedRuns++
	}
}

func (r *Runner) updateStageStats(stageName string, result StageResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, exists := r.stats.StageStats[stageName]
	if !exists {
		stats = StageStats{Name: stageName}
	}

	stats.ExecutionCount++
	stats.TotalDuration += result.Duration
	stats.LinesEmitted += int64(result.Lines)

	if result.Error == nil {
		stats.SuccessCount++
	} else {
		stats.ErrorCount++
	}

	if stats.ExecutionCount > 0 {
		stats.AverageDuration = time.Duration(int64(stats.TotalDuration) / stats.ExecutionCount)
	}

	r.stats.StageStats[stageName] = stats
}
