package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/saketk/familystream/internal/testutil"
	fserrors "github.com/saketk/familystream/pkg/common/errors"
)

func parseFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("familystream", pflag.ContinueOnError)
	RegisterFlags(fs)
	testutil.AssertNoError(t, fs.Parse(args))
	return fs
}

func TestDefaults(t *testing.T) {
	cfg, err := Load(parseFlags(t))
	testutil.AssertNoError(t, err)

	testutil.AssertSliceEqual(t, cfg.Demos, []string{"collect"})
	testutil.AssertEqual(t, cfg.Dataset, "demo")
	testutil.AssertEqual(t, cfg.Substring, "a")
	testutil.AssertEqual(t, cfg.Output, OutputStdout)
	testutil.AssertEqual(t, cfg.Timeout, time.Duration(0))
	testutil.AssertEqual(t, cfg.Log.Level, "info")
	testutil.AssertEqual(t, cfg.Log.Format, "console")
	testutil.AssertEqual(t, cfg.Log.Output, "stderr")
	testutil.AssertEqual(t, cfg.Log.Timestamp, true)
	testutil.AssertEqual(t, cfg.Metrics.Enabled, false)
	testutil.AssertEqual(t, cfg.Metrics.Namespace, "familystream")
}

func TestDefaultMatchesLoad(t *testing.T) {
	loaded, err := Load(nil)
	testutil.AssertNoError(t, err)

	def := Default()
	testutil.AssertSliceEqual(t, def.Demos, loaded.Demos)
	testutil.AssertEqual(t, def.Dataset, loaded.Dataset)
	testutil.AssertEqual(t, def.Log, loaded.Log)
	testutil.AssertEqual(t, def.Metrics, loaded.Metrics)
}

func TestFlags(t *testing.T) {
	fs := parseFlags(t,
		"--demos", "filter,reduce",
		"--dataset", "core",
		"-s", "e",
		"--output", "log",
		"--timeout", "2s",
		"--log-level", "debug",
		"--log-format", "json",
		"--metrics",
		"--metrics-namespace", "family",
	)

	cfg, err := Load(fs)
	testutil.AssertNoError(t, err)

	testutil.AssertSliceEqual(t, cfg.Demos, []string{"filter", "reduce"})
	testutil.AssertEqual(t, cfg.Dataset, "core")
	testutil.AssertEqual(t, cfg.Substring, "e")
	testutil.AssertEqual(t, cfg.Output, OutputLog)
	testutil.AssertEqual(t, cfg.Timeout, 2*time.Second)
	testutil.AssertEqual(t, cfg.Log.Level, "debug")
	testutil.AssertEqual(t, cfg.Log.Format, "json")
	testutil.AssertEqual(t, cfg.Metrics.Enabled, true)
	testutil.AssertEqual(t, cfg.Metrics.Namespace, "family")
}

func TestRepeatedDemoFlag(t *testing.T) {
	cfg, err := Load(parseFlags(t, "-d", "map", "-d", "set"))
	testutil.AssertNoError(t, err)
	testutil.AssertSliceEqual(t, cfg.Demos, []string{"map", "set"})
}

func TestEnvironment(t *testing.T) {
	t.Setenv("FAMILYSTREAM_DATASET", "shared")
	t.Setenv("FAMILYSTREAM_LOG_LEVEL", "warn")
	t.Setenv("FAMILYSTREAM_DEMOS", "iterate,match")
	t.Setenv("FAMILYSTREAM_TIMEOUT", "150ms")

	cfg, err := Load(parseFlags(t))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, cfg.Dataset, "shared")
	testutil.AssertEqual(t, cfg.Log.Level, "warn")
	testutil.AssertSliceEqual(t, cfg.Demos, []string{"iterate", "match"})
	testutil.AssertEqual(t, cfg.Timeout, 150*time.Millisecond)
}

func TestFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("FAMILYSTREAM_DATASET", "shared")

	cfg, err := Load(parseFlags(t, "--dataset", "core"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cfg.Dataset, "core")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "familystream.yaml")
	content := `
demos: [flatmap, set]
dataset: core
log:
  level: error
  format: json
metrics:
  enabled: true
`
	testutil.AssertNoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(parseFlags(t, "--config", path, "--dataset", "demo"))
	testutil.AssertNoError(t, err)

	testutil.AssertSliceEqual(t, cfg.Demos, []string{"flatmap", "set"})
	testutil.AssertEqual(t, cfg.Dataset, "demo")
	testutil.AssertEqual(t, cfg.Log.Level, "error")
	testutil.AssertEqual(t, cfg.Log.Format, "json")
	testutil.AssertEqual(t, cfg.Log.Output, "stderr")
	testutil.AssertEqual(t, cfg.Metrics.Enabled, true)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := Load(parseFlags(t, "--config", filepath.Join(t.TempDir(), "absent.yaml")))
	testutil.AssertError(t, err)
}

func TestNormalize(t *testing.T) {
	cfg, err := Load(parseFlags(t, "--demos", " Filter ,,REDUCE", "--dataset", "Core"))
	testutil.AssertNoError(t, err)
	testutil.AssertSliceEqual(t, cfg.Demos, []string{"filter", "reduce"})
	testutil.AssertEqual(t, cfg.Dataset, "core")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown demo", func(c *Config) { c.Demos = []string{"filter", "shuffle"} }},
		{"no demos", func(c *Config) { c.Demos = nil }},
		{"unknown dataset", func(c *Config) { c.Dataset = "neighbours" }},
		{"unknown output", func(c *Config) { c.Output = "file" }},
		{"empty substring", func(c *Config) { c.Substring = "" }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
		{"empty namespace", func(c *Config) { c.Metrics.Namespace = "" }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			testutil.AssertNoError(t, cfg.Validate())

			tt.mutate(cfg)
			err := cfg.Validate()
			testutil.AssertErrorIs(t, err, fserrors.ErrInvalidConfiguration)
			testutil.AssertEqual(t, fserrors.IsValidationError(err), true)
		})
	}
}

func TestValidateAcceptsAll(t *testing.T) {
	cfg := Default()
	cfg.Demos = []string{"all"}
	testutil.AssertNoError(t, cfg.Validate())
}

func TestLoadRejectsUnknownDemo(t *testing.T) {
	_, err := Load(parseFlags(t, "--demos", "sort"))
	testutil.AssertEqual(t, fserrors.IsValidationError(err), true)
}

func TestLoadRejectsEmptySubstring(t *testing.T) {
	_, err := Load(parseFlags(t, "--substring", ""))
	testutil.AssertErrorIs(t, err, fserrors.ErrInvalidConfiguration)
	testutil.AssertEqual(t, fserrors.IsValidationError(err), true)
}
