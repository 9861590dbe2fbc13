// Package testutil provides test helpers shared across internal packages.
package testutil

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// LogBuffer collects log output so tests can assert on it.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// String returns everything logged so far.
func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Contains reports whether any log line contains sub.
func (b *LogBuffer) Contains(sub string) bool {
	return strings.Contains(b.String(), sub)
}

// NewTestLogger returns a debug-level logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	logger, _ := NewCaptureLogger(t)
	return logger
}

// NewCaptureLogger is NewTestLogger that also records output in a LogBuffer.
func NewCaptureLogger(t testing.TB) (*slog.Logger, *LogBuffer) {
	t.Helper()
	captured := &LogBuffer{}
	logger := slog.New(slog.NewTextHandler(testWriter{t: t, capture: captured}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return logger, captured
}

type testWriter struct {
	t       testing.TB
	capture *LogBuffer
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.capture.mu.Lock()
	w.capture.buf.Write(p)
	w.capture.mu.Unlock()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
