// Package testutil provides logging helpers for tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
)

// NewTestLogger returns a debug-level logger that writes through t.Log, so
// output only shows for failing tests or under -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// LogCapture collects JSON log records for assertions.
type LogCapture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewCaptureLogger returns a debug-level logger whose records can be read
// back from the returned LogCapture.
func NewCaptureLogger() (*slog.Logger, *LogCapture) {
	c := &LogCapture{}
	return slog.New(slog.NewJSONHandler(c, &slog.HandlerOptions{Level: slog.LevelDebug})), c
}

func (c *LogCapture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

// Records decodes every captured record.
func (c *LogCapture) Records(t testing.TB) []map[string]any {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []map[string]any
	dec := json.NewDecoder(bytes.NewReader(c.buf.Bytes()))
	for dec.More() {
		var rec map[string]any
		if err := dec.Decode(&rec); err != nil {
			t.Fatalf("decode log record: %v", err)
		}
		out = append(out, rec)
	}
	return out
}

// Messages returns the msg field of every captured record, in order.
func (c *LogCapture) Messages(t testing.TB) []string {
	t.Helper()
	var msgs []string
	for _, rec := range c.Records(t) {
		if m, ok := rec["msg"].(string); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

// Find returns the first record with the given msg, or nil.
func (c *LogCapture) Find(t testing.TB, msg string) map[string]any {
	t.Helper()
	for _, rec := range c.Records(t) {
		if rec["msg"] == msg {
			return rec
		}
	}
	return nil
}
