package main

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/plan"
	"github.com/gogpu/plan/history"
	"github.com/gogpu/plan/internal/config"
	"github.com/gogpu/plan/render"
	"github.com/gogpu/plan/tool"
)

// Script is a recorded editing session replayed through the tool
// controller.
type Script struct {
	Name   string `yaml:"name"`
	Output string `yaml:"output"`
	Steps  []Step `yaml:"steps"`
}

// Step is one input event. Exactly one field is set.
type Step struct {
	Tool  string    `yaml:"tool,omitempty"`
	Click []float64 `yaml:"click,omitempty"`
	Move  []float64 `yaml:"move,omitempty"`
	Key   string    `yaml:"key,omitempty"`
	Set   *SetStep  `yaml:"set,omitempty"`
}

// SetStep edits a property of the selected shape.
type SetStep struct {
	Property string `yaml:"property"`
	Value    any    `yaml:"value"`
}

// ParseScript decodes a YAML script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing script: %w", err)
	}
	if s.Name == "" {
		return s, errors.New("script has no name")
	}
	if s.Output == "" {
		s.Output = s.Name + ".png"
	}
	return s, nil
}

// LoadScript reads and decodes a YAML script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("reading script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Session is an editor instance: one scene with its history and tools.
type Session struct {
	Scene      *plan.Scene
	History    *history.Manager
	Controller *tool.Controller
	Viewport   *render.Viewport

	mouse    plan.Point
	hasMouse bool
}

// NewSession wires a scene, history and tool controller from cfg.
func NewSession(cfg config.Editor, logger *slog.Logger) *Session {
	scene := plan.NewScene()
	hist := history.New(history.WithMaxSize(cfg.History.MaxSize), history.WithLogger(logger))
	vp := cfg.Render.Viewport()
	return &Session{
		Scene:      scene,
		History:    hist,
		Controller: tool.NewController(scene, hist, vp, cfg.Tools.Settings()),
		Viewport:   vp,
	}
}

// Close releases the history.
func (s *Session) Close() error {
	return s.History.Close()
}

// Apply replays one step.
func (s *Session) Apply(st Step) error {
	switch {
	case st.Tool != "":
		return s.Controller.Use(st.Tool)
	case st.Click != nil:
		p, err := point(st.Click)
		if err != nil {
			return err
		}
		s.mouse, s.hasMouse = p, true
		s.Controller.PointerDown(p)
	case st.Move != nil:
		p, err := point(st.Move)
		if err != nil {
			return err
		}
		s.mouse, s.hasMouse = p, true
		s.Controller.PointerMove(p)
	case st.Key != "":
		ev, err := tool.ParseKey(st.Key)
		if err != nil {
			return err
		}
		s.Controller.KeyDown(ev)
	case st.Set != nil:
		return s.Controller.Selector().UpdateSelectedObject(plan.Property(st.Set.Property), st.Set.Value)
	default:
		return errors.New("empty step")
	}
	return nil
}

// Frame returns what the renderer should draw now.
func (s *Session) Frame() render.Frame {
	return render.Frame{
		Scene:     s.Scene,
		Viewport:  s.Viewport,
		Selection: s.Controller.Selection(),
		Hover:     s.Controller.Selector().Hover(),
		Mouse:     s.mouse,
		HasMouse:  s.hasMouse,
		Previews:  s.Controller.Preview(),
	}
}

func point(v []float64) (plan.Point, error) {
	if len(v) != 2 {
		return plan.Point{}, fmt.Errorf("point needs two coordinates, got %v", v)
	}
	return plan.Pt(v[0], v[1]), nil
}

// Run replays the script and writes the rendered PNG to path.
func Run(ctx context.Context, sc Script, cfg config.Editor, path string, logger *slog.Logger) error {
	logger = logger.With("script", sc.Name)
	sess := NewSession(cfg, logger)
	defer sess.Close()

	for i, st := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sess.Apply(st); err != nil {
			return fmt.Errorf("%s: step %d: %w", sc.Name, i+1, err)
		}
	}

	if b := sess.Scene.Bounds(); !b.IsEmpty() {
		sess.Viewport.Fit(b, cfg.Render.Margin)
	}

	r, err := render.NewRaster(cfg.Render.Style())
	if err != nil {
		return err
	}
	defer r.Close()

	target := render.NewPixmapTarget(cfg.Render.Width, cfg.Render.Height)
	if err := r.Render(target, sess.Frame()); err != nil {
		return fmt.Errorf("%s: render: %w", sc.Name, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, target.Image()); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: encode: %w", sc.Name, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("rendered",
		"output", path,
		"walls", len(sess.Scene.Walls()),
		"nodes", sess.Scene.Nodes().Len(),
		"shapes", sess.Scene.Len(),
		"undo", sess.History.UndoLen(),
	)
	return nil
}
