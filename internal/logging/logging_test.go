package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_RespectsLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn, true)

	l.Info("hidden")
	l.Warn("shown", "walls", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "walls=3")
}

func TestNew_EnvOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	l := New(&bytes.Buffer{}, slog.LevelError, true)
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))
}
