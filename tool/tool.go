// Package tool implements the interactive state machines that turn
// pointer and keyboard input into scene mutations.
//
// Every tool works on world-space points (meters); converting from screen
// pixels is the caller's job. Tools never mutate a Scene directly when a
// history.Manager is available: each committed edit is a plan command run
// through the manager, so that it can be undone.
package tool

import (
	"log/slog"

	"github.com/gogpu/plan"
	"github.com/gogpu/plan/history"
)

// Tool consumes input events for one editing mode.
type Tool interface {
	// Name returns the tool's registry name ("wall", "select", ...).
	Name() string

	// PointerDown handles a click at p.
	PointerDown(p plan.Point)

	// PointerMove handles pointer motion to p.
	PointerMove(p plan.Point)

	// KeyDown handles a key press and reports whether it was consumed.
	KeyDown(ev KeyEvent) bool

	// Preview returns the uncommitted shapes the tool is drawing, if any.
	Preview() []plan.Shape

	// Reset discards any in-progress, uncommitted state.
	Reset()
}

// Viewport is the part of the camera the tools depend on.
type Viewport interface {
	// Zoom returns the current zoom factor (1 = 100%).
	Zoom() float64

	// PixelsToMeters converts a screen distance to world meters at the
	// current zoom.
	PixelsToMeters(px float64) float64
}

// Settings holds the tunables shared by the drawing tools.
type Settings struct {
	// WallThickness is the thickness of new walls in meters.
	WallThickness float64

	// DividerThickness is the thickness of new zone dividers in meters.
	DividerThickness float64

	// SnapThreshold is the endpoint snap distance in meters at zoom 1.
	SnapThreshold float64

	// CloseThreshold is the distance at zoom 1 within which a wall chain
	// or polygon snaps shut onto its first point.
	CloseThreshold float64

	// StartThreshold is how far the pointer must move after the first
	// click before a live wall appears.
	StartThreshold float64

	// AngleSnap rounds free wall directions to multiples of this many
	// degrees. Zero disables it.
	AngleSnap float64

	// HitPixels is the selection tolerance in screen pixels.
	HitPixels float64
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		WallThickness:    0.2,
		DividerThickness: 0.05,
		SnapThreshold:    0.5,
		CloseThreshold:   0.75,
		StartThreshold:   0.01,
		AngleSnap:        0,
		HitPixels:        15,
	}
}

// env bundles what every tool shares.
type env struct {
	scene    *plan.Scene
	hist     *history.Manager
	vp       Viewport
	settings Settings
}

func (e *env) logger() *slog.Logger {
	return plan.Logger()
}

func (e *env) zoom() float64 {
	if e.vp == nil {
		return 1
	}
	return e.vp.Zoom()
}

func (e *env) snapThreshold() float64 {
	return plan.SnapThreshold(e.settings.SnapThreshold, e.zoom())
}

func (e *env) closeThreshold() float64 {
	return plan.SnapThreshold(e.settings.CloseThreshold, e.zoom())
}

// hitThreshold converts the pixel tolerance to meters. Without a viewport
// one pixel counts as one centimeter.
func (e *env) hitThreshold() float64 {
	if e.vp == nil {
		return e.settings.HitPixels / 100
	}
	return e.vp.PixelsToMeters(e.settings.HitPixels)
}

// run executes cmd through history when there is one, directly otherwise.
func (e *env) run(cmd history.Command) error {
	if e.hist == nil {
		return cmd.Execute()
	}
	return e.hist.Execute(cmd)
}

// add commits a new shape with an AddCommand.
func (e *env) add(sh plan.Shape) error {
	if err := e.run(plan.NewAddCommand(e.scene, sh)); err != nil {
		e.logger().Warn("tool: commit failed", "kind", sh.Kind(), "error", err)
		return err
	}
	e.logger().Debug("tool: committed", "kind", sh.Kind(), "id", sh.ID())
	return nil
}

// snapToEndpoint returns the nearest true wall endpoint within the snap
// threshold, or p itself.
func (e *env) snapToEndpoint(p plan.Point) (plan.Point, bool) {
	if n := e.scene.Nodes().FindNearestEndpoint(p, e.snapThreshold()); n != nil {
		return n.Point(), true
	}
	return p, false
}
