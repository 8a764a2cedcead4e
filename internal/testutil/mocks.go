package testutil

import (
	"bytes"
	"errors"
	"strings"
	"sync"
)

// MockWriter is a test writer that can simulate failed and short writes and
// counts Write calls.
type MockWriter struct {
	buf         *bytes.Buffer
	mu          sync.Mutex
	errorOnNth  int
	shortOnNth  int
	writeCount  int
	shouldError bool
	err         error
}

// NewMockWriter creates a new MockWriter.
func NewMockWriter() *MockWriter {
	return &MockWriter{
		buf: &bytes.Buffer{},
	}
}

// Write implements io.Writer interface with configurable behavior.
func (mw *MockWriter) Write(p []byte) (int, error) {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	mw.writeCount++

	if mw.shouldError {
		return 0, mw.err
	}

	if mw.errorOnNth > 0 && mw.writeCount == mw.errorOnNth {
		return 0, errors.New("simulated error")
	}

	if mw.shortOnNth > 0 && mw.writeCount == mw.shortOnNth && len(p) > 1 {
		return mw.buf.Write(p[:len(p)/2])
	}

	return mw.buf.Write(p)
}

// String returns the current buffer contents.
func (mw *MockWriter) String() string {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	return mw.buf.String()
}

// Lines returns the buffer split on newlines, without the trailing empty entry.
func (mw *MockWriter) Lines() []string {
	s := strings.TrimSuffix(mw.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// WriteCount returns the number of Write calls.
func (mw *MockWriter) WriteCount() int {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	return mw.writeCount
}

// SetErrorOnNth configures the writer to error on the nth write.
func (mw *MockWriter) SetErrorOnNth(n int) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.errorOnNth = n
}

// SetShortWriteOnNth configures the writer to accept only half the bytes on
// the nth write.
func (mw *MockWriter) SetShortWriteOnNth(n int) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.shortOnNth = n
}

// SetAlwaysError configures the writer to always return the given error.
func (mw *MockWriter) SetAlwaysError(err error) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.shouldError = true
	mw.err = err
}

// Reset clears the buffer and resets counters.
func (mw *MockWriter) Reset() {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.buf.Reset()
	mw.writeCount = 0
	mw.shouldError = false
	mw.errorOnNth = 0
	mw.shortOnNth = 0
	mw.err = nil
}

// CallbackTracker records how often a hook fired and the last value passed.
type CallbackTracker struct {
	mu    sync.Mutex
	count int
	value interface{}
}

// NewCallbackTracker creates an empty tracker.
func NewCallbackTracker() *CallbackTracker {
	return &CallbackTracker{}
}

// Mark records a call, optionally storing the first argument as the value.
func (c *CallbackTracker) Mark(v ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	if len(v) > 0 {
		c.value = v[0]
	}
}

// Called reports whether Mark was called at least once.
func (c *CallbackTracker) Called() bool {
	return c.CallCount() > 0
}

// CallCount returns the number of Mark calls.
func (c *CallbackTracker) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Value returns the last recorded value.
func (c *CallbackTracker) Value() interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Reset clears the tracker.
func (c *CallbackTracker) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = 0
	c.value = nil
}
