// Package logging builds the zerolog logger used by familystream.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/saketk/familystream/pkg/common/validation"
)

// Supported formats and outputs.
const (
	FormatConsole = "console"
	FormatJSON    = "json"

	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// Levels lists the accepted Config.Level values.
var Levels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

// Config contains logging configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`

	// NoColor disables ANSI colors in console format.
	NoColor bool `mapstructure:"no_color"`

	// Timestamp adds a time field to every event.
	Timestamp bool `mapstructure:"timestamp"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    FormatConsole,
		Output:    OutputStderr,
		Timestamp: true,
	}
}

// ApplyDefaults fills empty fields from DefaultConfig.
func (c *Config) ApplyDefaults() {
	def := DefaultConfig()
	if c.Level == "" {
		c.Level = def.Level
	}
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.Output == "" {
		c.Output = def.Output
	}
}

// Validate validates logging configuration.
func (c Config) Validate() error {
	if err := validation.ValidateOneOf("logging", "level", strings.ToLower(c.Level), Levels); err != nil {
		return err
	}
	if err := validation.ValidateOneOf("logging", "format", strings.ToLower(c.Format),
		[]string{FormatConsole, FormatJSON}); err != nil {
		return err
	}
	return validation.ValidateOneOf("logging", "output", strings.ToLower(c.Output),
		[]string{OutputStdout, OutputStderr})
}

// New creates a logger writing to the stream named by cfg.Output.
func New(cfg Config) (zerolog.Logger, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return zerolog.Nop(), err
	}
	return NewWithWriter(cfg, outputWriter(cfg.Output)), nil
}

// NewWithWriter creates a logger writing to w, ignoring cfg.Output.
// An unparsable level falls back to info.
func NewWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	cfg.ApplyDefaults()

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	if strings.ToLower(cfg.Format) == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor, TimeFormat: "15:04:05"}
	}

	zl := zerolog.New(w).Level(level)
	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}
	return zl
}

// WithComponent returns a child logger tagged with a component name.
func WithComponent(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

func outputWriter(output string) io.Writer {
	if strings.ToLower(output) == OutputStdout {
		return os.Stdout
	}
	return os.Stderr
}
