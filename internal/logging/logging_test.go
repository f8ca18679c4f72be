package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "info", Format: "json", Output: &buf})

	l.Debug("hidden")
	l.Info("http.starting", "addr", ":8080")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "http.starting", rec["msg"])
	assert.Equal(t, ":8080", rec["addr"])
	assert.True(t, strings.HasSuffix(rec["time"].(string), "Z"), "time must be UTC: %v", rec["time"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "DEBUG", Format: "text", Output: &buf})

	l.Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("Warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestContextLogger(t *testing.T) {
	assert.Same(t, slog.Default(), From(context.Background()))

	var buf bytes.Buffer
	l := New(Options{Output: &buf})
	ctx := WithLogger(context.Background(), l)
	assert.Same(t, l, From(ctx))
}

func TestWithAddsAttrs(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(Options{Format: "text", Output: &buf}))
	ctx = With(ctx, "request_id", "abc")

	From(ctx).Info("http.request")
	assert.Contains(t, buf.String(), "request_id=abc")
}
