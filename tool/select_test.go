package tool

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/plan"
)

func insert(t *testing.T, scene *plan.Scene, shapes ...plan.Shape) {
	t.Helper()
	for _, sh := range shapes {
		_, err := scene.Insert(sh, -1)
		require.NoError(t, err)
	}
}

func TestHitTest(t *testing.T) {
	scene, h := newFixture(t)
	w := plan.NewWall(plan.Pt(0, 0), plan.Pt(4, 0), 0.2)
	c := plan.NewCircle(plan.Pt(10, 10), 1)
	a := plan.NewArc(plan.Pt(20, 0), 1, 0, math.Pi/2)
	p := plan.NewPolygon([]plan.Point{plan.Pt(0, 10), plan.Pt(3, 10)}, false)
	insert(t, scene, w, c, a, p)

	st := NewSelectTool(scene, h, nil, DefaultSettings())
	tests := []struct {
		name string
		at   plan.Point
		want plan.Shape
	}{
		{"wall centerline", plan.Pt(2, 0), w},
		{"wall edge tolerance", plan.Pt(2, 0.2), w},
		{"beside wall", plan.Pt(2, 0.5), nil},
		{"circle outline", plan.Pt(11.05, 10), c},
		{"circle center", plan.Pt(10, 10), nil},
		{"arc curve", plan.Pt(20, 1.1), a},
		{"arc outside sweep", plan.Pt(19, 0), nil},
		{"polyline", plan.Pt(1.5, 10.1), p},
		{"nothing", plan.Pt(-10, -10), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := st.HitTest(tt.at)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want.ID(), got.ID())
		})
	}
}

func TestHitTestPrefersClosestThenTopmost(t *testing.T) {
	scene, h := newFixture(t)
	z := plan.NewZone("Zone 1", []plan.Point{plan.Pt(0, 0), plan.Pt(4, 0), plan.Pt(4, 4), plan.Pt(0, 4)})
	w := plan.NewWall(plan.Pt(0, 2), plan.Pt(4, 2), 0.2)
	insert(t, scene, w, z)

	st := NewSelectTool(scene, h, nil, DefaultSettings())
	assert.Same(t, w, st.HitTest(plan.Pt(2, 2)), "walls draw above zones")
	assert.Same(t, z, st.HitTest(plan.Pt(1, 1)), "inside a zone counts as a hit")
}

func TestHitTestUsesViewportTolerance(t *testing.T) {
	scene, h := newFixture(t)
	c := plan.NewCircle(plan.Pt(0, 0), 1)
	insert(t, scene, c)

	far := NewSelectTool(scene, h, fakeViewport{zoom: 0.5}, DefaultSettings())
	near := NewSelectTool(scene, h, fakeViewport{zoom: 4}, DefaultSettings())
	assert.NotNil(t, far.HitTest(plan.Pt(1.2, 0)))
	assert.Nil(t, near.HitTest(plan.Pt(1.2, 0)))
}

func TestSelectToolKinds(t *testing.T) {
	scene, h := newFixture(t)
	z := plan.NewZone("Zone 1", []plan.Point{plan.Pt(0, 0), plan.Pt(4, 0), plan.Pt(4, 4), plan.Pt(0, 4)})
	w := plan.NewWall(plan.Pt(0, 2), plan.Pt(4, 2), 0.2)
	insert(t, scene, z, w)

	st := NewSelectTool(scene, h, nil, DefaultSettings(), plan.KindZone)
	assert.Same(t, z, st.HitTest(plan.Pt(2, 2)))
}

func TestSelectAndHover(t *testing.T) {
	scene, h := newFixture(t)
	a := plan.NewWall(plan.Pt(0, 0), plan.Pt(5, 0), 0.2)
	b := plan.NewWall(plan.Pt(5, 0), plan.Pt(5, 5), 0.2)
	insert(t, scene, a, b)

	st := NewSelectTool(scene, h, nil, DefaultSettings())
	var events []plan.Selection
	st.OnSelect(func(sel plan.Selection) { events = append(events, sel) })

	st.PointerMove(plan.Pt(2, 0))
	assert.Same(t, a, st.Hover())

	st.PointerDown(plan.Pt(2, 0))
	sel := st.Selection()
	assert.Equal(t, plan.KindWall, sel.Kind)
	assert.True(t, sel.Is(a))
	assert.Equal(t, []*plan.Wall{b}, sel.ConnectedWalls)

	st.PointerDown(plan.Pt(50, 50))
	assert.True(t, st.Selection().IsEmpty())
	require.Len(t, events, 2)
	assert.True(t, events[1].IsEmpty())

	st.Reset()
	assert.Nil(t, st.Hover())
}

func TestSelectToolEscape(t *testing.T) {
	scene, h := newFixture(t)
	c := plan.NewCircle(plan.Pt(0, 0), 1)
	insert(t, scene, c)
	st := NewSelectTool(scene, h, nil, DefaultSettings())

	assert.False(t, st.KeyDown(KeyEvent{Key: KeyEscape}))
	st.Select(c)
	assert.True(t, st.KeyDown(KeyEvent{Key: KeyEscape}))
	assert.True(t, st.Selection().IsEmpty())
	assert.Equal(t, 1, scene.Len())
}

func TestDeleteSelectedAndUndo(t *testing.T) {
	scene, h := newFixture(t)
	a := plan.NewWall(plan.Pt(0, 0), plan.Pt(5, 0), 0.2)
	b := plan.NewWall(plan.Pt(5, 0), plan.Pt(5, 5), 0.2)
	c := plan.NewWall(plan.Pt(5, 5), plan.Pt(0, 5), 0.2)
	insert(t, scene, a, b, c)

	st := NewSelectTool(scene, h, nil, DefaultSettings())
	assert.ErrorIs(t, st.DeleteSelected(), ErrNoSelection)

	st.PointerDown(plan.Pt(5, 2))
	require.True(t, st.Selection().Is(b))
	assert.True(t, st.KeyDown(KeyEvent{Key: KeyDelete}))

	assert.Equal(t, []*plan.Wall{a, c}, scene.Walls())
	assert.True(t, st.Selection().IsEmpty())
	assert.Len(t, scene.Nodes().NodeAt(plan.Pt(5, 0)).WallIDs, 1, "only a remains at (5,0)")

	require.NoError(t, h.Undo())
	assert.Equal(t, []*plan.Wall{a, b, c}, scene.Walls(), "restored at its old position")
	assert.True(t, st.Selection().Is(b), "undo re-selects the shape")
	assert.ElementsMatch(t, []*plan.Wall{a, c}, st.Selection().ConnectedWalls)

	require.NoError(t, h.Redo())
	assert.Len(t, scene.Walls(), 2)
}

func TestUpdateSelectedObject(t *testing.T) {
	scene, h := newFixture(t)
	w := plan.NewWall(plan.Pt(0, 0), plan.Pt(4, 0), 0.2)
	insert(t, scene, w)
	st := NewSelectTool(scene, h, nil, DefaultSettings())

	assert.ErrorIs(t, st.UpdateSelectedObject(plan.PropThickness, 0.3), ErrNoSelection)

	st.Select(w)
	require.NoError(t, st.UpdateSelectedObject(plan.PropThickness, "0.35"))
	assert.Equal(t, 0.35, w.Thickness)

	require.NoError(t, st.UpdateSelectedObject(plan.PropLength, 6))
	assert.InDelta(t, 6, w.Length, 1e-9)
	assert.NotNil(t, scene.Nodes().NodeAt(plan.Pt(6, 0)))

	require.NoError(t, h.Undo())
	assert.Equal(t, plan.Pt(4, 0), w.End)
	require.NoError(t, h.Undo())
	assert.Equal(t, 0.2, w.Thickness)
}

func TestUpdateSelectedObjectValidation(t *testing.T) {
	scene, h := newFixture(t)
	w := plan.NewWall(plan.Pt(0, 0), plan.Pt(4, 0), 0.2)
	c := plan.NewCircle(plan.Pt(10, 0), 1)
	z := plan.NewZone("Zone 1", []plan.Point{plan.Pt(0, 0), plan.Pt(1, 0), plan.Pt(1, 1)})
	insert(t, scene, w, c, z)
	st := NewSelectTool(scene, h, nil, DefaultSettings())

	tests := []struct {
		name    string
		shape   plan.Shape
		prop    plan.Property
		value   any
		wantErr error
	}{
		{"thin wall", w, plan.PropThickness, 0.001, ErrOutOfRange},
		{"thick wall", w, plan.PropThickness, 12.0, ErrOutOfRange},
		{"text thickness", w, plan.PropThickness, "thick", ErrInvalidValue},
		{"nan thickness", w, plan.PropThickness, math.NaN(), ErrInvalidValue},
		{"zero length", w, plan.PropLength, 0.0, ErrOutOfRange},
		{"tiny radius", c, plan.PropRadius, 0.0, ErrOutOfRange},
		{"alpha above one", z, plan.PropFillAlpha, 1.5, ErrOutOfRange},
		{"negative alpha", z, plan.PropBorderAlpha, -0.1, ErrOutOfRange},
		{"bool value", c, plan.PropRadius, true, ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st.Select(tt.shape)
			before := h.UndoLen()
			assert.ErrorIs(t, st.UpdateSelectedObject(tt.prop, tt.value), tt.wantErr)
			assert.Equal(t, before, h.UndoLen(), "rejected input records nothing")
		})
	}
	assert.Equal(t, 0.2, w.Thickness)
	assert.Equal(t, 4.0, w.Length)
	assert.Equal(t, 1.0, c.Radius)
	assert.Equal(t, 0.25, z.FillAlpha)
}

func TestUpdateSelectedObjectZone(t *testing.T) {
	scene, h := newFixture(t)
	z := plan.NewZone("Zone 1", []plan.Point{plan.Pt(0, 0), plan.Pt(1, 0), plan.Pt(1, 1)})
	insert(t, scene, z)
	st := NewSelectTool(scene, h, nil, DefaultSettings())
	st.Select(z)

	require.NoError(t, st.UpdateSelectedObject(plan.PropName, "Bedroom"))
	require.NoError(t, st.UpdateSelectedObject(plan.PropFillColor, "#00ff00"))
	require.NoError(t, st.UpdateSelectedObject(plan.PropFillAlpha, "0.6"))
	assert.Equal(t, "Bedroom", z.Name)
	assert.Equal(t, plan.RGB(0, 1, 0), z.FillColor)
	assert.Equal(t, 0.6, z.FillAlpha)

	assert.Error(t, st.UpdateSelectedObject(plan.PropFillColor, "green-ish"))
	assert.Equal(t, plan.RGB(0, 1, 0), z.FillColor)
}

func TestUpdateSelectedObjectWithoutHistory(t *testing.T) {
	scene := plan.NewScene()
	c := plan.NewCircle(plan.Pt(0, 0), 1)
	insert(t, scene, c)
	st := NewSelectTool(scene, nil, nil, DefaultSettings())
	st.Select(c)

	v := scene.Version()
	require.NoError(t, st.UpdateSelectedObject(plan.PropRadius, 2.5))
	assert.Equal(t, 2.5, c.Radius)
	assert.Greater(t, scene.Version(), v)
	assert.NotEmpty(t, scene.Query(plan.Rect{MinX: 2.2, MinY: -0.1, MaxX: 2.4, MaxY: 0.1}), "index follows the new bounds")
}

func TestRefreshDropsStaleSelection(t *testing.T) {
	scene, h := newFixture(t)
	c := plan.NewCircle(plan.Pt(0, 0), 1)
	insert(t, scene, c)
	st := NewSelectTool(scene, h, nil, DefaultSettings())
	st.Select(c)
	st.PointerMove(plan.Pt(1, 0))
	require.NotNil(t, st.Hover())

	_, _, err := scene.Remove(c.ID())
	require.NoError(t, err)
	st.Refresh()
	assert.True(t, st.Selection().IsEmpty())
	assert.Nil(t, st.Hover())
}
