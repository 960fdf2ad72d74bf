package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/plan/tool"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadEditor_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadEditor(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultEditor(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEditor_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
tools:
  wall_thickness: 0.3
  angle_snap: 15
history:
  max_size: 20
render:
  width: 640
  background: "#101010"
log:
  level: debug
`)
	cfg, err := LoadEditor(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.3, cfg.Tools.WallThickness, 1e-12)
	assert.InDelta(t, 15, cfg.Tools.AngleSnap, 1e-12)
	assert.Equal(t, 20, cfg.History.MaxSize)
	assert.Equal(t, 640, cfg.Render.Width)
	assert.Equal(t, DefaultEditor().Render.Height, cfg.Render.Height, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)

	s := cfg.Tools.Settings()
	assert.InDelta(t, 0.3, s.WallThickness, 1e-12)
	assert.Equal(t, tool.DefaultSettings().HitPixels, s.HitPixels)

	st := cfg.Render.Style()
	assert.Equal(t, "#101010ff", st.Background.Hex())
}

func TestLoadEditor_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"thin wall", "tools:\n  wall_thickness: 0.001\n"},
		{"thick wall", "tools:\n  wall_thickness: 11\n"},
		{"history", "history:\n  max_size: 0\n"},
		{"background", "render:\n  background: purple\n"},
		{"level", "log:\n  level: loud\n"},
		{"yaml", "tools: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadEditor(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"DEBUG": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestRenderConfigViewport(t *testing.T) {
	cfg := DefaultEditor().Render
	vp := cfg.Viewport()
	w, h := vp.Size()
	assert.Equal(t, cfg.Width, w)
	assert.Equal(t, cfg.Height, h)
	assert.InDelta(t, cfg.PixelsPerMeter, vp.Scale(), 1e-12)
}
