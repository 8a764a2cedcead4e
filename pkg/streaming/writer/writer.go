package writer

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	fserrors "github.com/saketk/familystream/pkg/common/errors"
)

// ErrWriterClosed is returned when attempting to write to a closed writer.
// It wraps errors.ErrClosed.
var ErrWriterClosed = fmt.Errorf("writer: %w", fserrors.ErrClosed)

// LineWriter is the sink for pipeline results: one call, one line of text.
type LineWriter interface {
	// WriteLine writes line followed by a newline.
	WriteLine(line string) error

	// Flush pushes buffered output to its destination, if the destination
	// buffers at all.
	Flush() error

	// Close flushes and rejects further writes. The destination itself is
	// left open.
	Close() error

	// Stats returns statistics about the writer.
	Stats() Stats

	// IsClosed returns true if the writer is closed.
	IsClosed() bool
}

// Stats holds statistics about a LineWriter.
type Stats struct {
	// LinesWritten is the number of lines fully written.
	LinesWritten int64

	// BytesWritten is the total number of bytes written, newlines included.
	BytesWritten int64

	// RetryCount is the number of extra write attempts after short or failed writes.
	RetryCount int64

	// ErrorCount is the number of lines that could not be written.
	ErrorCount int64

	// LastWriteTime is the timestamp of the last successful write.
	LastWriteTime time.Time
}

// Config holds configuration options for a LineWriter.
type Config struct {
	// Prefix is prepended to every line.
	Prefix string

	// MaxRetries is the number of times to retry a failed or short write.
	// Default: 3
	MaxRetries int

	// RetryDelay is the delay between retries. Zero retries immediately.
	// Default: 10ms
	RetryDelay time.Duration

	// OnError is called when a line could not be written.
	OnError func(error)
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		RetryDelay: 10 * time.Millisecond,
	}
}

// base carries the state shared by every LineWriter implementation.
type base struct {
	mu     sync.Mutex
	closed bool
	stats  Stats
}

func (b *base) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stats
}

func (b *base) IsClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// lineWriter writes lines to an io.Writer.
type lineWriter struct {
	base
	underlying io.Writer
	config     Config
}

// New creates a LineWriter over w with default configuration.
func New(w io.Writer) LineWriter {
	return NewWithConfig(w, DefaultConfig())
}

// NewWithConfig creates a LineWriter over w with the specified configuration.
func NewWithConfig(w io.Writer, config Config) LineWriter {
	if config.MaxRetries < 0 {
		config.MaxRetries = DefaultConfig().MaxRetries
	}
	if config.RetryDelay < 0 {
		config.RetryDelay = DefaultConfig().RetryDelay
	}
	return &lineWriter{underlying: w, config: config}
}

// WriteLine implements LineWriter.WriteLine.
func (lw *lineWriter) WriteLine(line string) error {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if lw.closed {
		return ErrWriterClosed
	}

	data := []byte(lw.config.Prefix + line + "\n")
	written, retries, err := lw.writeWithRetries(data)

	lw.stats.BytesWritten += int64(written)
	lw.stats.RetryCount += int64(retries)
	if err != nil {
		lw.stats.ErrorCount++
		if lw.config.OnError != nil {
			lw.config.OnError(err)
		}
		return err
	}

	lw.stats.LinesWritten++
	lw.stats.LastWriteTime = time.Now()
	return nil
}

// writeWithRetries writes data, resuming after short writes, until it is
// all written or the retries are used up.
func (lw *lineWriter) writeWithRetries(data []byte) (int, int, error) {
	var totalWritten, retries int
	var lastErr error

	for attempt := 0; attempt <= lw.config.MaxRetries; attempt++ {
		if attempt > 0 {
			retries++
			if lw.config.RetryDelay > 0 {
				time.Sleep(lw.config.RetryDelay)
			}
		}

		written, err := lw.underlying.Write(data[totalWritten:])
		totalWritten += written

		if totalWritten >= len(data) {
			return totalWritten, retries, nil
		}
		if err != nil {
			lastErr = err
		} else {
			lastErr = io.ErrShortWrite
		}
	}

	return totalWritten, retries, lastErr
}

// Flush implements LineWriter.Flush.
func (lw *lineWriter) Flush() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if lw.closed {
		return ErrWriterClosed
	}
	return lw.flush()
}

func (lw *lineWriter) flush() error {
	if f, ok := lw.underlying.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close implements LineWriter.Close.
func (lw *lineWriter) Close() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if lw.closed {
		return nil
	}
	lw.closed = true
	return lw.flush()
}

// logWriter emits each line as an info event.
type logWriter struct {
	base
	logger zerolog.Logger
}

// NewLogWriter creates a LineWriter that logs each line as the message of an
// info-level event on logger.
func NewLogWriter(logger zerolog.Logger) LineWriter {
	return &logWriter{logger: logger}
}

// WriteLine implements LineWriter.WriteLine.
func (l *logWriter) WriteLine(line string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrWriterClosed
	}

	l.logger.Info().Msg(line)
	l.stats.LinesWritten++
	l.stats.BytesWritten += int64(len(line))
	l.stats.LastWriteTime = time.Now()
	return nil
}

// Flush implements LineWriter.Flush.
func (l *logWriter) Flush() error {
	if l.IsClosed() {
		return ErrWriterClosed
	}
	return nil
}

// Close implements LineWriter.Close.
func (l *logWriter) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	return nil
}
