// Package config loads editor settings from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/plan"
	"github.com/gogpu/plan/history"
	"github.com/gogpu/plan/render"
	"github.com/gogpu/plan/tool"
)

// Editor holds all configuration of a drawing session.
type Editor struct {
	Tools   ToolsConfig   `yaml:"tools"`
	History HistoryConfig `yaml:"history"`
	Render  RenderConfig  `yaml:"render"`
	Log     LogConfig     `yaml:"log"`
}

// ToolsConfig holds the drawing tool tunables. Distances are meters at
// zoom 1.
type ToolsConfig struct {
	WallThickness    float64 `yaml:"wall_thickness"`
	DividerThickness float64 `yaml:"divider_thickness"`
	SnapThreshold    float64 `yaml:"snap_threshold"`
	CloseThreshold   float64 `yaml:"close_threshold"`
	StartThreshold   float64 `yaml:"start_threshold"`
	AngleSnap        float64 `yaml:"angle_snap"` // degrees, 0 = off
	HitPixels        float64 `yaml:"hit_pixels"`
}

// HistoryConfig holds undo settings.
type HistoryConfig struct {
	MaxSize int `yaml:"max_size"`
}

// RenderConfig holds output and camera settings.
type RenderConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	PixelsPerMeter float64 `yaml:"pixels_per_meter"`
	Margin         float64 `yaml:"margin"` // pixels kept free around the drawing
	GridStep       float64 `yaml:"grid_step"`
	LabelSize      float64 `yaml:"label_size"`
	Background     string  `yaml:"background"`
	ShowNodes      bool    `yaml:"show_nodes"`
	ShowLengths    bool    `yaml:"show_lengths"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level   string `yaml:"level"` // debug, info, warn, error
	NoColor bool   `yaml:"no_color"`
}

// DefaultEditor returns the configuration used when no file is present.
func DefaultEditor() Editor {
	s := tool.DefaultSettings()
	st := render.DefaultStyle()
	return Editor{
		Tools: ToolsConfig{
			WallThickness:    s.WallThickness,
			DividerThickness: s.DividerThickness,
			SnapThreshold:    s.SnapThreshold,
			CloseThreshold:   s.CloseThreshold,
			StartThreshold:   s.StartThreshold,
			AngleSnap:        s.AngleSnap,
			HitPixels:        s.HitPixels,
		},
		History: HistoryConfig{
			MaxSize: history.DefaultMaxSize,
		},
		Render: RenderConfig{
			Width:          1024,
			Height:         768,
			PixelsPerMeter: render.DefaultPixelsPerMeter,
			Margin:         40,
			GridStep:       st.GridStep,
			LabelSize:      st.LabelSize,
			Background:     st.Background.Hex(),
			ShowNodes:      st.ShowNodes,
			ShowLengths:    st.ShowLengths,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadEditor loads the configuration from a YAML file on top of the
// defaults. If the file doesn't exist, returns defaults.
func LoadEditor(path string) (Editor, error) {
	cfg := DefaultEditor()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (e Editor) Validate() error {
	var errs []error
	t := e.Tools
	if t.WallThickness < tool.MinWallThickness || t.WallThickness > tool.MaxWallThickness {
		errs = append(errs, fmt.Errorf("tools.wall_thickness %v not in [%v, %v]", t.WallThickness, tool.MinWallThickness, tool.MaxWallThickness))
	}
	if t.DividerThickness <= 0 {
		errs = append(errs, fmt.Errorf("tools.divider_thickness must be positive, got %v", t.DividerThickness))
	}
	if t.SnapThreshold < 0 || t.CloseThreshold < 0 || t.StartThreshold < 0 {
		errs = append(errs, errors.New("tools thresholds must not be negative"))
	}
	if t.AngleSnap < 0 || t.AngleSnap >= 360 {
		errs = append(errs, fmt.Errorf("tools.angle_snap %v not in [0, 360)", t.AngleSnap))
	}
	if t.HitPixels <= 0 {
		errs = append(errs, fmt.Errorf("tools.hit_pixels must be positive, got %v", t.HitPixels))
	}
	if e.History.MaxSize < 1 {
		errs = append(errs, fmt.Errorf("history.max_size must be at least 1, got %d", e.History.MaxSize))
	}
	r := e.Render
	if r.Width <= 0 || r.Height <= 0 {
		errs = append(errs, fmt.Errorf("render size %dx%d must be positive", r.Width, r.Height))
	}
	if r.PixelsPerMeter <= 0 {
		errs = append(errs, fmt.Errorf("render.pixels_per_meter must be positive, got %v", r.PixelsPerMeter))
	}
	if _, err := plan.ParseHex(r.Background); err != nil {
		errs = append(errs, fmt.Errorf("render.background: %w", err))
	}
	if _, err := ParseLevel(e.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Settings converts the tool section to tool.Settings.
func (t ToolsConfig) Settings() tool.Settings {
	return tool.Settings{
		WallThickness:    t.WallThickness,
		DividerThickness: t.DividerThickness,
		SnapThreshold:    t.SnapThreshold,
		CloseThreshold:   t.CloseThreshold,
		StartThreshold:   t.StartThreshold,
		AngleSnap:        t.AngleSnap,
		HitPixels:        t.HitPixels,
	}
}

// Style converts the render section to a render.Style based on the
// default palette.
func (r RenderConfig) Style() render.Style {
	st := render.DefaultStyle()
	st.GridStep = r.GridStep
	st.LabelSize = r.LabelSize
	st.ShowNodes = r.ShowNodes
	st.ShowLengths = r.ShowLengths
	if bg, err := plan.ParseHex(r.Background); err == nil {
		st.Background = bg
	}
	return st
}

// Viewport creates the camera for the configured output size.
func (r RenderConfig) Viewport() *render.Viewport {
	return render.NewViewport(r.Width, r.Height, r.PixelsPerMeter)
}

// ParseLevel converts a level name to a slog.Level. The empty string
// means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log.level: unknown level %q", s)
}
