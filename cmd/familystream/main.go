// Command familystream runs the family stream demos and prints their results.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/pflag"

	"github.com/saketk/familystream/pkg/config"
	"github.com/saketk/familystream/pkg/logging"
	"github.com/saketk/familystream/pkg/metrics"
	"github.com/saketk/familystream/pkg/showcase"
	"github.com/saketk/familystream/pkg/streaming/writer"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process globals. It returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("familystream", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(stderr, "familystream: %v\n", err)
		return 2
	}

	logOut := stderr
	if cfg.Log.Output == logging.OutputStdout {
		logOut = stdout
	}
	logger := logging.NewWithWriter(cfg.Log, logOut)

	registry := prometheus.NewRegistry()
	m := metrics.New(metrics.Config{
		Enabled:   cfg.Metrics.Enabled,
		Registry:  registry,
		Namespace: cfg.Metrics.Namespace,
		Labels:    prometheus.Labels{"dataset": cfg.Dataset},
	})

	var sink writer.LineWriter
	if cfg.Output == config.OutputLog {
		sink = writer.NewLogWriter(logging.WithComponent(logger, "results"))
	} else {
		sink = writer.NewWithConfig(stdout, writer.Config{
			MaxRetries: writer.DefaultConfig().MaxRetries,
			RetryDelay: writer.DefaultConfig().RetryDelay,
			OnError: func(err error) {
				logger.Warn().Err(err).Msg("result line dropped")
			},
		})
	}
	defer func() { _ = sink.Close() }()

	runner := showcase.NewWithConfig(showcase.Config{
		Dataset:     cfg.Dataset,
		Timeout:     cfg.Timeout,
		Logger:      logging.WithComponent(logger, "showcase"),
		Metrics:     m,
		StopOnError: true,
	})
	if err := runner.AddDemos(cfg.Demos, showcase.Options{Substring: cfg.Substring}); err != nil {
		logger.Error().Err(err).Msg("invalid demo selection")
		return 2
	}

	logger.Debug().
		Strs("demos", cfg.Demos).
		Str("dataset", cfg.Dataset).
		Str("output", cfg.Output).
		Dur("timeout", cfg.Timeout).
		Msg("starting")

	_, runErr := runner.Run(ctx, sink)

	if err := sink.Flush(); err != nil && runErr == nil {
		runErr = err
	}
	if m != nil {
		if err := dumpMetrics(registry, stderr); err != nil {
			logger.Error().Err(err).Msg("failed to write metrics")
		}
	}

	if runErr != nil {
		return 1
	}
	return 0
}

// dumpMetrics writes every gathered family in the text exposition format.
// Families without samples are skipped.
func dumpMetrics(g prometheus.Gatherer, w io.Writer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if !hasSamples(mf) {
			continue
		}
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func hasSamples(mf *dto.MetricFamily) bool {
	return len(mf.GetMetric()) > 0
}
