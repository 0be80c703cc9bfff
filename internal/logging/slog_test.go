package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	return NewSlogLogger(slog.New(slog.NewJSONHandler(buf, nil))), buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestSlogLogger_InfoWritesMessageAndArgs(t *testing.T) {
	l, buf := newBufLogger(t)

	l.Info(context.Background(), "hello", "key", "value")

	rec := lastRecord(t, buf)
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "value", rec["key"])
	assert.Equal(t, "INFO", rec["level"])
}

func TestSlogLogger_WithAddsPersistentFields(t *testing.T) {
	l, buf := newBufLogger(t)

	child := l.With("module", "test")
	child.Error(context.Background(), "boom")

	rec := lastRecord(t, buf)
	assert.Equal(t, "boom", rec["msg"])
	assert.Equal(t, "test", rec["module"])
	assert.Equal(t, "ERROR", rec["level"])
}
