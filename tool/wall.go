package tool

import (
	"fmt"

	"github.com/gogpu/plan"
	"github.com/gogpu/plan/history"
)

// Wall thickness limits enforced at the input boundary.
const (
	MinWallThickness = 0.01
	MaxWallThickness = 10.0
)

// WallState is the state of the wall drawing state machine.
type WallState uint8

const (
	// WallIdle: no pending click and no live wall.
	WallIdle WallState = iota

	// WallPendingStart: a start point is registered but no wall exists
	// yet. Creation waits for pointer motion so a lone click never
	// produces a zero-length wall.
	WallPendingStart

	// WallDrawing: a live wall follows the pointer.
	WallDrawing
)

var wallStateNames = [...]string{
	WallIdle:         "idle",
	WallPendingStart: "pending-start",
	WallDrawing:      "drawing",
}

func (s WallState) String() string {
	if int(s) < len(wallStateNames) {
		return wallStateNames[s]
	}
	return "unknown"
}

// WallTool draws chains of connected walls.
//
// A click registers a start point, moving the pointer creates the live
// wall, the next click commits it and continues the chain from its end.
// Clicking back on the chain's first point closes the structure. Escape
// discards the live wall, Enter finishes the chain.
type WallTool struct {
	env

	thickness float64
	state     WallState
	pending   plan.Point
	live      *plan.Wall

	// Chain tracking: the first point of the current chain and how many
	// walls were committed since.
	chainStart    plan.Point
	hasChainStart bool
	chainWalls    int
}

// NewWallTool creates a wall tool. hist and vp may be nil.
func NewWallTool(scene *plan.Scene, hist *history.Manager, vp Viewport, settings Settings) *WallTool {
	return &WallTool{
		env:       env{scene: scene, hist: hist, vp: vp, settings: settings},
		thickness: settings.WallThickness,
	}
}

// Name returns "wall".
func (t *WallTool) Name() string { return "wall" }

// State returns the current state.
func (t *WallTool) State() WallState { return t.state }

// Live returns the wall following the pointer, or nil.
func (t *WallTool) Live() *plan.Wall { return t.live }

// PendingPoint returns the registered start point of the next wall.
func (t *WallTool) PendingPoint() (plan.Point, bool) {
	return t.pending, t.state != WallIdle
}

// ChainStart returns the first point of the chain being drawn.
func (t *WallTool) ChainStart() (plan.Point, bool) {
	return t.chainStart, t.hasChainStart
}

// Thickness returns the thickness used for new walls.
func (t *WallTool) Thickness() float64 { return t.thickness }

// SetThickness changes the thickness for new walls (and the live one).
// Values outside [MinWallThickness, MaxWallThickness] are rejected and
// the previous value stays in effect.
func (t *WallTool) SetThickness(v float64) error {
	if !(v >= MinWallThickness && v <= MaxWallThickness) {
		return fmt.Errorf("%w: wall thickness %v not in [%v, %v]", ErrOutOfRange, v, MinWallThickness, MaxWallThickness)
	}
	t.thickness = v
	if t.live != nil {
		t.live.SetThickness(v)
	}
	return nil
}

// PointerDown registers a start point or commits the live wall.
func (t *WallTool) PointerDown(p plan.Point) {
	if t.state == WallDrawing && t.live != nil {
		t.commit()
		return
	}

	start, _ := t.snapToEndpoint(p)
	t.pending = start
	if !t.hasChainStart {
		t.chainStart, t.hasChainStart = start, true
		t.chainWalls = 0
	}
	t.setState(WallPendingStart)
}

// PointerMove creates or updates the live wall.
func (t *WallTool) PointerMove(p plan.Point) {
	switch t.state {
	case WallPendingStart:
		if p.Distance(t.pending) <= t.settings.StartThreshold {
			return
		}
		t.live = plan.NewWall(t.pending, t.endPoint(p), t.thickness)
		t.setState(WallDrawing)
	case WallDrawing:
		t.live.SetEnd(t.endPoint(p))
	}
}

// endPoint resolves the live wall's end for pointer position p: the chain
// start when closing a loop, else a nearby true endpoint, else p with the
// optional angle snap applied.
func (t *WallTool) endPoint(p plan.Point) plan.Point {
	if t.hasChainStart && t.chainWalls >= 2 && p.Distance(t.chainStart) < t.closeThreshold() {
		return t.chainStart
	}
	if q, ok := t.snapToEndpoint(p); ok && !plan.ExactPointMatch(q, t.pending) {
		return q
	}
	return plan.SnapAngle(t.pending, p, t.settings.AngleSnap)
}

func (t *WallTool) commit() {
	w := t.live
	if w.Length < plan.MinWallLength {
		return
	}
	if err := t.add(w); err != nil {
		return
	}
	t.live = nil
	t.chainWalls++

	if t.chainWalls > 1 && plan.ExactPointMatch(w.End, t.chainStart) {
		t.logger().Debug("tool: wall chain closed", "walls", t.chainWalls)
		t.Reset()
		return
	}
	t.pending = w.End
	t.setState(WallPendingStart)
}

// KeyDown handles Escape (discard live wall) and Enter (finish chain).
// Both return to idle; committed walls are never touched.
func (t *WallTool) KeyDown(ev KeyEvent) bool {
	switch ev.Key {
	case KeyEscape, KeyEnter:
		if t.state == WallIdle {
			return false
		}
		t.Reset()
		return true
	}
	return false
}

// Preview returns the live wall, if any.
func (t *WallTool) Preview() []plan.Shape {
	if t.live == nil {
		return nil
	}
	return []plan.Shape{t.live}
}

// Reset discards the live wall and chain tracking and returns to idle.
func (t *WallTool) Reset() {
	t.live = nil
	t.hasChainStart = false
	t.chainWalls = 0
	t.setState(WallIdle)
}

func (t *WallTool) setState(s WallState) {
	if t.state != s {
		t.logger().Debug("tool: wall state", "from", t.state, "to", s)
	}
	t.state = s
}
