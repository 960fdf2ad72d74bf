package tool

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb/planar"

	"github.com/gogpu/plan"
	"github.com/gogpu/plan/history"
)

// Property input limits.
const (
	MinRadius = plan.MinSegmentLength
	MinAlpha  = 0.0
	MaxAlpha  = 1.0
)

// SelectTool picks shapes under the pointer, deletes them and edits their
// properties.
//
// A select tool may be restricted to some shape kinds; with no kinds it
// selects anything. The hit tolerance is constant in screen pixels and
// converted to meters through the viewport.
type SelectTool struct {
	env

	kinds     []plan.Kind
	selection plan.Selection
	hover     plan.Shape
	listeners []func(plan.Selection)
}

// NewSelectTool creates a select tool for the given kinds (all if none).
func NewSelectTool(scene *plan.Scene, hist *history.Manager, vp Viewport, settings Settings, kinds ...plan.Kind) *SelectTool {
	return &SelectTool{
		env:   env{scene: scene, hist: hist, vp: vp, settings: settings},
		kinds: kinds,
	}
}

// Name returns "select".
func (t *SelectTool) Name() string { return "select" }

// OnSelect registers fn to receive every selection change.
func (t *SelectTool) OnSelect(fn func(plan.Selection)) {
	t.listeners = append(t.listeners, fn)
}

// Selection returns the current selection.
func (t *SelectTool) Selection() plan.Selection { return t.selection }

// Hover returns the shape under the pointer, or nil.
func (t *SelectTool) Hover() plan.Shape { return t.hover }

// PointerDown selects the shape under p, or clears the selection.
func (t *SelectTool) PointerDown(p plan.Point) {
	t.Select(t.HitTest(p))
}

// PointerMove updates the hovered shape.
func (t *SelectTool) PointerMove(p plan.Point) {
	t.hover = t.HitTest(p)
}

// KeyDown deletes the selection on Delete/Backspace and clears it on
// Escape.
func (t *SelectTool) KeyDown(ev KeyEvent) bool {
	switch ev.Key {
	case KeyDelete, KeyBackspace:
		if t.selection.IsEmpty() {
			return false
		}
		if err := t.DeleteSelected(); err != nil {
			t.logger().Warn("tool: delete failed", "error", err)
		}
		return true
	case KeyEscape:
		if t.selection.IsEmpty() {
			return false
		}
		t.Select(nil)
		return true
	}
	return false
}

// Preview returns nil; selection has no uncommitted geometry.
func (t *SelectTool) Preview() []plan.Shape { return nil }

// Reset clears hover state. The selection survives tool switches.
func (t *SelectTool) Reset() { t.hover = nil }

// Select makes sh the selection (nil clears it) and notifies listeners.
func (t *SelectTool) Select(sh plan.Shape) {
	t.selection = t.scene.Select(sh)
	for _, fn := range t.listeners {
		fn(t.selection)
	}
}

// Refresh re-derives the selection from the scene. A selected shape that
// no longer exists is deselected; a wall gets its connected walls
// recomputed. Call it after undo or redo.
func (t *SelectTool) Refresh() {
	if t.hover != nil {
		if _, ok := t.scene.Get(t.hover.ID()); !ok {
			t.hover = nil
		}
	}
	if t.selection.IsEmpty() {
		return
	}
	sh, ok := t.scene.Get(t.selection.ID)
	if !ok {
		sh = nil
	}
	t.Select(sh)
}

// DeleteSelected removes the selected shape. Undoing the deletion selects
// the shape again.
func (t *SelectTool) DeleteSelected() error {
	if t.selection.IsEmpty() {
		return ErrNoSelection
	}
	cmd := plan.NewDeleteCommand(t.scene, t.selection.ID).WithReselect(t.Select)
	if err := t.run(cmd); err != nil {
		return err
	}
	t.logger().Debug("tool: deleted", "kind", t.selection.Kind, "id", t.selection.ID)
	t.hover = nil
	t.Select(nil)
	return nil
}

// UpdateSelectedObject validates value and applies it to property p of
// the selected shape. Numeric values may be given as numbers or numeric
// strings. Rejected input leaves the shape untouched.
func (t *SelectTool) UpdateSelectedObject(p plan.Property, value any) error {
	sh := t.selection.Shape
	if sh == nil {
		return ErrNoSelection
	}
	v, err := validate(p, value)
	if err != nil {
		return err
	}

	if t.hist != nil {
		err = t.hist.Execute(plan.NewModifyCommand(t.scene, sh, p, v))
	} else {
		err = t.setDirect(sh, p, v)
	}
	if err != nil {
		return err
	}
	t.Select(sh)
	return nil
}

func (t *SelectTool) setDirect(sh plan.Shape, p plan.Property, v any) error {
	if err := sh.SetProperty(p, v); err != nil {
		return err
	}
	return t.scene.Touch(sh.ID())
}

func validate(p plan.Property, value any) (any, error) {
	switch p {
	case plan.PropName, plan.PropFillColor, plan.PropBorderColor:
		return value, nil
	}

	f, err := number(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidValue, p, err)
	}
	var ok bool
	switch p {
	case plan.PropThickness:
		ok = f >= MinWallThickness && f <= MaxWallThickness
	case plan.PropRadius:
		ok = f >= MinRadius
	case plan.PropLength:
		ok = f > plan.MinWallLength
	case plan.PropFillAlpha, plan.PropBorderAlpha:
		ok = f >= MinAlpha && f <= MaxAlpha
	default:
		ok = true
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s = %v", ErrOutOfRange, p, f)
	}
	return f, nil
}

func number(v any) (float64, error) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case string:
		var err error
		if f, err = strconv.ParseFloat(strings.TrimSpace(x), 64); err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not finite: %v", f)
	}
	return f, nil
}

// HitTest returns the shape closest to p within the hit tolerance, or
// nil. On ties the shape drawn last wins.
func (t *SelectTool) HitTest(p plan.Point) plan.Shape {
	tol := t.hitThreshold()
	area := plan.RectFromPoints(p).Pad(tol)

	var (
		best     plan.Shape
		bestDist = math.Inf(1)
	)
	for _, sh := range t.scene.Query(area) {
		if !t.accepts(sh.Kind()) {
			continue
		}
		d := distanceTo(sh, p)
		if d <= tol && d <= bestDist {
			best, bestDist = sh, d
		}
	}
	return best
}

func (t *SelectTool) accepts(k plan.Kind) bool {
	if len(t.kinds) == 0 {
		return true
	}
	for _, want := range t.kinds {
		if want == k {
			return true
		}
	}
	return false
}

// distanceTo returns the distance from p to the visible outline of sh;
// zero when p is inside a wall envelope or a closed area.
func distanceTo(sh plan.Shape, p plan.Point) float64 {
	switch s := sh.(type) {
	case *plan.Wall:
		return envelope(segmentDistance(p, s.Start, s.End), s.Thickness)
	case *plan.ZoneDivider:
		return envelope(segmentDistance(p, s.Start, s.End), s.Thickness)
	case *plan.Circle:
		return math.Abs(p.Distance(s.Center) - s.Radius)
	case *plan.Arc:
		if s.ContainsAngle(math.Atan2(p.Y-s.Center.Y, p.X-s.Center.X)) {
			return math.Abs(p.Distance(s.Center) - s.Radius)
		}
		return math.Min(p.Distance(s.StartPoint()), p.Distance(s.EndPoint()))
	case *plan.Polygon:
		return pathDistance(p, s.Points, s.Closed)
	case *plan.Zone:
		return pathDistance(p, s.Points, s.Closed)
	}
	return math.Inf(1)
}

func envelope(d, thickness float64) float64 {
	return math.Max(0, d-thickness/2)
}

func segmentDistance(p, a, b plan.Point) float64 {
	return planar.DistanceFromSegment(toOrb(a), toOrb(b), toOrb(p))
}

func pathDistance(p plan.Point, points []plan.Point, closed bool) float64 {
	switch len(points) {
	case 0:
		return math.Inf(1)
	case 1:
		return p.Distance(points[0])
	}
	if closed && len(points) >= 3 && planar.RingContains(toRing(points), toOrb(p)) {
		return 0
	}
	d := math.Inf(1)
	for i := 1; i < len(points); i++ {
		d = math.Min(d, segmentDistance(p, points[i-1], points[i]))
	}
	if closed {
		d = math.Min(d, segmentDistance(p, points[len(points)-1], points[0]))
	}
	return d
}
