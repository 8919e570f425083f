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

func newTestLogger(t *testing.T, level slog.Level) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t, slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "request done", "status", 200)
	log.Info(ctx, "signed in", "user", "mina")
	log.Warn(ctx, "remote analysis failed", "fallback", "local")
	log.Error(ctx, "save session", "attempt", 2)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=\"request done\"", "status=200",
		"level=INFO", "msg=\"signed in\"", "user=mina",
		"level=WARN", "fallback=local",
		"level=ERROR", "attempt=2",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_LevelFiltersDebug(t *testing.T) {
	log, buf := newTestLogger(t, slog.LevelInfo)

	log.Debug(context.Background(), "hidden")
	assert.Empty(t, buf.String())
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	log.With("component", "entries", "view", "calendar").Info(context.Background(), "refreshed", "count", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "refreshed", line["msg"])
	assert.Equal(t, "entries", line["component"])
	assert.Equal(t, "calendar", line["view"])
	assert.EqualValues(t, 3, line["count"])
}

func TestSlogLogger_TODOContext(t *testing.T) {
	log, _ := newTestLogger(t, slog.LevelDebug)

	assert.NotPanics(t, func() {
		ctx := context.TODO()
		log.Info(ctx, "ctx-ok")
		log.Debug(ctx, "ctx-ok")
		log.Warn(ctx, "ctx-ok")
		log.Error(ctx, "ctx-ok")
	})
}
