package tool

import (
	"math"

	"github.com/gogpu/plan"
	"github.com/gogpu/plan/history"
)

// ArcTool draws counter-clockwise arcs in three clicks: center, then a
// point fixing radius and start angle, then a point fixing the end angle.
type ArcTool struct {
	env

	center    plan.Point
	hasCenter bool
	live      *plan.Arc
	placed    bool // radius and start angle fixed
}

// NewArcTool creates an arc tool. hist and vp may be nil.
func NewArcTool(scene *plan.Scene, hist *history.Manager, vp Viewport, settings Settings) *ArcTool {
	return &ArcTool{env: env{scene: scene, hist: hist, vp: vp, settings: settings}}
}

// Name returns "arc".
func (t *ArcTool) Name() string { return "arc" }

// Live returns the arc being drawn, or nil.
func (t *ArcTool) Live() *plan.Arc { return t.live }

func angleTo(c, p plan.Point) float64 {
	return math.Atan2(p.Y-c.Y, p.X-c.X)
}

// PointerDown advances through center, radius and end angle.
func (t *ArcTool) PointerDown(p plan.Point) {
	switch {
	case !t.hasCenter:
		t.center, _ = t.snapToEndpoint(p)
		t.hasCenter = true
	case !t.placed:
		r := t.center.Distance(p)
		if r < plan.MinSegmentLength {
			return
		}
		a := angleTo(t.center, p)
		t.live = plan.NewArc(t.center, r, a, a)
		t.placed = true
	default:
		t.live.SetAngles(t.live.StartAngle, angleTo(t.center, p))
		if err := t.add(t.live); err != nil {
			return
		}
		t.Reset()
	}
}

// PointerMove previews the radius before the second click and the sweep
// after it.
func (t *ArcTool) PointerMove(p plan.Point) {
	if !t.hasCenter {
		return
	}
	r := t.center.Distance(p)
	a := angleTo(t.center, p)
	if !t.placed {
		if r < plan.MinSegmentLength {
			t.live = nil
			return
		}
		if t.live == nil {
			t.live = plan.NewArc(t.center, r, a, a)
			return
		}
		t.live.SetRadius(r)
		t.live.SetAngles(a, a)
		return
	}
	t.live.SetAngles(t.live.StartAngle, a)
}

// KeyDown discards the arc in progress on Escape.
func (t *ArcTool) KeyDown(ev KeyEvent) bool {
	if ev.Key == KeyEscape && t.hasCenter {
		t.Reset()
		return true
	}
	return false
}

// Preview returns the arc being drawn, if any.
func (t *ArcTool) Preview() []plan.Shape {
	if t.live == nil {
		return nil
	}
	return []plan.Shape{t.live}
}

// Reset discards the arc in progress.
func (t *ArcTool) Reset() {
	t.hasCenter, t.placed = false, false
	t.live = nil
}
