package logging

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/saketk/familystream/internal/testutil"
	fserrors "github.com/saketk/familystream/pkg/common/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	testutil.AssertEqual(t, cfg.Level, "info")
	testutil.AssertEqual(t, cfg.Format, FormatConsole)
	testutil.AssertEqual(t, cfg.Output, OutputStderr)
	testutil.AssertNoError(t, cfg.Validate())
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{Level: "debug"}
	cfg.ApplyDefaults()
	testutil.AssertEqual(t, cfg.Level, "debug")
	testutil.AssertEqual(t, cfg.Format, FormatConsole)
	testutil.AssertEqual(t, cfg.Output, OutputStderr)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		field   string
		wantErr bool
	}{
		{"valid json", Config{Level: "warn", Format: "json", Output: "stdout"}, "", false},
		{"upper case level", Config{Level: "DEBUG", Format: "console", Output: "stderr"}, "", false},
		{"bad level", Config{Level: "loud", Format: "json", Output: "stdout"}, "level", true},
		{"bad format", Config{Level: "info", Format: "xml", Output: "stdout"}, "format", true},
		{"bad output", Config{Level: "info", Format: "json", Output: "file"}, "output", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !tt.wantErr {
				testutil.AssertNoError(t, err)
				return
			}
			testutil.AssertErrorIs(t, err, fserrors.ErrInvalidConfiguration)
			var verr *fserrors.ValidationError
			testutil.AssertEqual(t, errors.As(err, &verr), true)
			testutil.AssertEqual(t, verr.Field, tt.field)
		})
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	_, err := New(Config{Level: "chatty"})
	testutil.AssertErrorIs(t, err, fserrors.ErrInvalidConfiguration)
}

func TestNew(t *testing.T) {
	_, err := New(Config{Level: "error", Format: "json", Output: "stderr"})
	testutil.AssertNoError(t, err)
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: "info", Format: FormatJSON}, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("stage", "filter").Msg("stage finished")

	out := buf.String()
	testutil.AssertEqual(t, strings.Contains(out, "hidden"), false)
	testutil.AssertEqual(t, strings.Contains(out, `"stage":"filter"`), true)
	testutil.AssertEqual(t, strings.Contains(out, `"message":"stage finished"`), true)
	testutil.AssertEqual(t, strings.Contains(out, `"time"`), false)
}

func TestNewWithWriterConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: "debug", Format: FormatConsole, NoColor: true}, &buf)

	logger.Debug().Str("stage", "map").Msg("stage started")

	out := buf.String()
	testutil.AssertEqual(t, strings.Contains(out, "DBG"), true)
	testutil.AssertEqual(t, strings.Contains(out, "stage started"), true)
	testutil.AssertEqual(t, strings.Contains(out, "stage=map"), true)
}

func TestNewWithWriterTimestamp(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Format: FormatJSON, Timestamp: true}, &buf)

	logger.Info().Msg("tick")
	testutil.AssertEqual(t, strings.Contains(buf.String(), `"time"`), true)
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := WithComponent(NewWithWriter(Config{Format: FormatJSON}, &buf), "showcase")

	logger.Info().Msg("ready")
	testutil.AssertEqual(t, strings.Contains(buf.String(), `"component":"showcase"`), true)
}

func TestOutputWriter(t *testing.T) {
	testutil.AssertEqual(t, outputWriter("stdout") == os.Stdout, true)
	testutil.AssertEqual(t, outputWriter("STDOUT") == os.Stdout, true)
	testutil.AssertEqual(t, outputWriter("stderr") == os.Stderr, true)
}
