package tool

import (
	"fmt"

	"github.com/gogpu/plan"
	"github.com/gogpu/plan/history"
)

// PathTool collects clicked points into a polygon or a zone.
//
// Clicking near the first point once three or more points exist closes
// the path and commits it. Enter commits what was drawn so far: an open
// polygon needs two points, a zone always needs three and is closed.
// Escape discards the points.
type PathTool struct {
	env

	kind      plan.Kind
	points    []plan.Point
	cursor    plan.Point
	hasCursor bool
}

// NewPolygonTool creates a tool drawing polygons.
func NewPolygonTool(scene *plan.Scene, hist *history.Manager, vp Viewport, settings Settings) *PathTool {
	return &PathTool{env: env{scene: scene, hist: hist, vp: vp, settings: settings}, kind: plan.KindPolygon}
}

// NewZoneTool creates a tool drawing zones.
func NewZoneTool(scene *plan.Scene, hist *history.Manager, vp Viewport, settings Settings) *PathTool {
	return &PathTool{env: env{scene: scene, hist: hist, vp: vp, settings: settings}, kind: plan.KindZone}
}

// Name returns "polygon" or "zone".
func (t *PathTool) Name() string { return t.kind.String() }

// Points returns the points clicked so far.
func (t *PathTool) Points() []plan.Point { return t.points }

// PointerDown adds a point, or closes the path when clicking its start.
func (t *PathTool) PointerDown(p plan.Point) {
	if len(t.points) >= 3 && p.Distance(t.points[0]) < t.closeThreshold() {
		t.commit(true)
		return
	}
	if n := len(t.points); n > 0 && plan.ExactPointMatch(t.points[n-1], p) {
		return
	}
	t.points = append(t.points, p)
}

// PointerMove tracks the cursor for the rubber-band preview.
func (t *PathTool) PointerMove(p plan.Point) {
	t.cursor, t.hasCursor = p, true
}

// KeyDown handles Enter (commit) and Escape (discard).
func (t *PathTool) KeyDown(ev KeyEvent) bool {
	switch ev.Key {
	case KeyEnter:
		if len(t.points) == 0 {
			return false
		}
		t.commit(t.kind == plan.KindZone)
		return true
	case KeyEscape:
		if len(t.points) == 0 {
			return false
		}
		t.Reset()
		return true
	}
	return false
}

func (t *PathTool) commit(closed bool) {
	var sh plan.Shape
	switch t.kind {
	case plan.KindZone:
		if len(t.points) < 3 {
			t.logger().Debug("tool: zone needs three points", "points", len(t.points))
			return
		}
		sh = plan.NewZone(fmt.Sprintf("Zone %d", len(t.scene.Zones())+1), t.points)
	default:
		if len(t.points) < 2 {
			return
		}
		sh = plan.NewPolygon(t.points, closed && len(t.points) >= 3)
	}
	if err := t.add(sh); err != nil {
		return
	}
	t.Reset()
}

// Preview returns the path drawn so far, extended to the cursor.
func (t *PathTool) Preview() []plan.Shape {
	if len(t.points) == 0 {
		return nil
	}
	pts := t.points
	if t.hasCursor {
		pts = append(pts[:len(pts):len(pts)], t.cursor)
	}
	return []plan.Shape{plan.NewPolygon(pts, false)}
}

// Reset discards the collected points.
func (t *PathTool) Reset() {
	t.points = nil
	t.hasCursor = false
}
