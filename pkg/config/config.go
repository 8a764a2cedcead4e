// Package config loads familystream settings from flags, environment
// variables and an optional YAML file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	fserrors "github.com/saketk/familystream/pkg/common/errors"
	"github.com/saketk/familystream/pkg/common/validation"
	"github.com/saketk/familystream/pkg/family"
	"github.com/saketk/familystream/pkg/logging"
	"github.com/saketk/familystream/pkg/metrics"
	"github.com/saketk/familystream/pkg/showcase"
)

// EnvPrefix prefixes every environment variable, e.g. FAMILYSTREAM_LOG_LEVEL.
const EnvPrefix = "FAMILYSTREAM"

// Output sinks.
const (
	OutputStdout = "stdout"
	OutputLog    = "log"
)

// Config is the complete command configuration.
type Config struct {
	Demos     []string       `mapstructure:"demos"`
	Dataset   string         `mapstructure:"dataset"`
	Substring string         `mapstructure:"substring"`
	Output    string         `mapstructure:"output"`
	Timeout   time.Duration  `mapstructure:"timeout"` // 0 means no deadline
	Log       logging.Config `mapstructure:"log"`
	Metrics   MetricsConfig  `mapstructure:"metrics"`
}

// MetricsConfig switches the end-of-run metrics dump.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"demos":             "demos",
	"dataset":           "dataset",
	"substring":         "substring",
	"output":            "output",
	"timeout":           "timeout",
	"log-level":         "log.level",
	"log-format":        "log.format",
	"log-output":        "log.output",
	"metrics":           "metrics.enabled",
	"metrics-namespace": "metrics.namespace",
}

// RegisterFlags defines the command-line flags Load understands.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "path to a YAML config file")
	fs.StringSliceP("demos", "d", []string{showcase.DemoCollect},
		"demos to run: "+strings.Join(showcase.DemoNames(), ", ")+" or "+showcase.DemoAll)
	fs.String("dataset", family.DatasetDemo, "dataset: "+strings.Join(family.DatasetNames(), ", "))
	fs.StringP("substring", "s", showcase.DefaultSubstring, "substring for the match demo")
	fs.StringP("output", "o", OutputStdout, "result sink: stdout or log")
	fs.Duration("timeout", 0, "deadline for the whole run, 0 for none")
	fs.String("log-level", "info", "log level")
	fs.String("log-format", logging.FormatConsole, "log format: console or json")
	fs.String("log-output", logging.OutputStderr, "log destination: stdout or stderr")
	fs.Bool("metrics", false, "dump stage metrics to stderr at exit")
	fs.String("metrics-namespace", metrics.DefaultNamespace, "metrics namespace")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("demos", []string{showcase.DemoCollect})
	v.SetDefault("dataset", family.DatasetDemo)
	v.SetDefault("substring", showcase.DefaultSubstring)
	v.SetDefault("output", OutputStdout)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatConsole)
	v.SetDefault("log.output", logging.OutputStderr)
	v.SetDefault("log.no_color", false)
	v.SetDefault("log.timestamp", true)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", metrics.DefaultNamespace)
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Load resolves configuration with precedence flags > environment > file >
// defaults. fs may be nil. Only flags the user actually set override lower
// layers. The result is validated.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}

		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", f.Value.String(), err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalize trims and lower-cases names and drops empty demo entries.
func (c *Config) normalize() {
	demos := make([]string, 0, len(c.Demos))
	for _, d := range c.Demos {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			demos = append(demos, d)
		}
	}
	c.Demos = demos
	c.Dataset = strings.ToLower(strings.TrimSpace(c.Dataset))
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
}

// Validate rejects unknown demos, datasets and outputs, an empty substring
// and a negative timeout with a *errors.ValidationError.
func (c *Config) Validate() error {
	if len(c.Demos) == 0 {
		return validation.ValidateNotEmpty("config", "demos", "")
	}
	allowed := append(showcase.DemoNames(), showcase.DemoAll)
	for _, d := range c.Demos {
		if err := validation.ValidateOneOf("config", "demos", d, allowed); err != nil {
			return err
		}
	}
	if err := validation.ValidateOneOf("config", "dataset", c.Dataset, family.DatasetNames()); err != nil {
		return err
	}
	if err := validation.ValidateNotEmpty("config", "substring", c.Substring); err != nil {
		return err
	}
	if err := validation.ValidateOneOf("config", "output", c.Output, []string{OutputStdout, OutputLog}); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fserrors.NewValidationError("config", "timeout", c.Timeout, "cannot be negative").
			WithHint("use 0 to disable the deadline")
	}
	if err := validation.ValidateNotEmpty("config", "metrics.namespace", c.Metrics.Namespace); err != nil {
		return err
	}
	return c.Log.Validate()
}
