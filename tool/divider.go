package tool

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/gogpu/plan"
	"github.com/gogpu/plan/history"
)

// DividerTool draws dashed dividers across zones. The divider remembers
// the zone its start point lies in; drawing outside any zone leaves the
// back-reference zero.
type DividerTool struct {
	env

	thickness float64
	live      *plan.ZoneDivider
}

// NewDividerTool creates a divider tool. hist and vp may be nil.
func NewDividerTool(scene *plan.Scene, hist *history.Manager, vp Viewport, settings Settings) *DividerTool {
	return &DividerTool{
		env:       env{scene: scene, hist: hist, vp: vp, settings: settings},
		thickness: settings.DividerThickness,
	}
}

// Name returns "divider".
func (t *DividerTool) Name() string { return "divider" }

// Live returns the divider being drawn, or nil.
func (t *DividerTool) Live() *plan.ZoneDivider { return t.live }

// PointerDown starts a divider or commits the live one.
func (t *DividerTool) PointerDown(p plan.Point) {
	if t.live == nil {
		var zoneID plan.ID
		if z := zoneAt(t.scene, p); z != nil {
			zoneID = z.ID()
		}
		t.live = plan.NewZoneDivider(p, p, t.thickness, zoneID)
		return
	}
	t.live.SetEnd(p)
	if t.live.Length < plan.MinWallLength {
		return
	}
	if err := t.add(t.live); err != nil {
		return
	}
	t.live = nil
}

// PointerMove drags the live divider's end.
func (t *DividerTool) PointerMove(p plan.Point) {
	if t.live != nil {
		t.live.SetEnd(p)
	}
}

// KeyDown discards the live divider on Escape.
func (t *DividerTool) KeyDown(ev KeyEvent) bool {
	if ev.Key == KeyEscape && t.live != nil {
		t.Reset()
		return true
	}
	return false
}

// Preview returns the live divider, if any.
func (t *DividerTool) Preview() []plan.Shape {
	if t.live == nil {
		return nil
	}
	return []plan.Shape{t.live}
}

// Reset discards the live divider.
func (t *DividerTool) Reset() { t.live = nil }

// zoneAt returns the topmost closed zone containing p.
func zoneAt(scene *plan.Scene, p plan.Point) *plan.Zone {
	zones := scene.Zones()
	for i := len(zones) - 1; i >= 0; i-- {
		z := zones[i]
		if z.Closed && len(z.Points) >= 3 && planar.RingContains(toRing(z.Points), toOrb(p)) {
			return z
		}
	}
	return nil
}

func toOrb(p plan.Point) orb.Point {
	return orb.Point{p.X, p.Y}
}

func toRing(points []plan.Point) orb.Ring {
	r := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		r = append(r, toOrb(p))
	}
	if len(points) > 0 {
		r = append(r, toOrb(points[0]))
	}
	return r
}
