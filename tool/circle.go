package tool

import (
	"github.com/gogpu/plan"
	"github.com/gogpu/plan/history"
)

// CircleTool draws circles: the first click fixes the center, motion
// sizes the radius, the second click commits.
type CircleTool struct {
	env

	live *plan.Circle
}

// NewCircleTool creates a circle tool. hist and vp may be nil.
func NewCircleTool(scene *plan.Scene, hist *history.Manager, vp Viewport, settings Settings) *CircleTool {
	return &CircleTool{env: env{scene: scene, hist: hist, vp: vp, settings: settings}}
}

// Name returns "circle".
func (t *CircleTool) Name() string { return "circle" }

// Live returns the circle being sized, or nil.
func (t *CircleTool) Live() *plan.Circle { return t.live }

// PointerDown places the center or commits the live circle.
func (t *CircleTool) PointerDown(p plan.Point) {
	if t.live == nil {
		center, _ := t.snapToEndpoint(p)
		t.live = plan.NewCircle(center, 0)
		return
	}
	t.live.SetRadius(t.live.Center.Distance(p))
	if t.live.Radius < plan.MinSegmentLength {
		return
	}
	if err := t.add(t.live); err != nil {
		return
	}
	t.live = nil
}

// PointerMove resizes the live circle.
func (t *CircleTool) PointerMove(p plan.Point) {
	if t.live != nil {
		t.live.SetRadius(t.live.Center.Distance(p))
	}
}

// KeyDown discards the live circle on Escape.
func (t *CircleTool) KeyDown(ev KeyEvent) bool {
	if ev.Key == KeyEscape && t.live != nil {
		t.Reset()
		return true
	}
	return false
}

// Preview returns the live circle, if any.
func (t *CircleTool) Preview() []plan.Shape {
	if t.live == nil {
		return nil
	}
	return []plan.Shape{t.live}
}

// Reset discards the live circle.
func (t *CircleTool) Reset() { t.live = nil }
