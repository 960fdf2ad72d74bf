package plan_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/plan"
	"github.com/gogpu/plan/history"
)

func assertNodesRebuilt(t *testing.T, s *plan.Scene) {
	t.Helper()
	want := plan.NewNodeGraph()
	want.Rebuild(s.Walls())
	require.Equal(t, want.Len(), s.Nodes().Len(), "node count")
	for _, n := range want.Nodes() {
		got := s.Nodes().NodeAt(n.Point())
		require.NotNil(t, got, "missing node at %v", n.Point())
		assert.ElementsMatch(t, n.WallIDs, got.WallIDs)
		assert.Equal(t, n.IsIntersection, got.IsIntersection)
	}
}

func TestAddCommand(t *testing.T) {
	s := plan.NewScene()
	c := plan.NewCircle(plan.Pt(0, 0), 1)
	cmd := plan.NewAddCommand(s, c)
	assert.Equal(t, -1, cmd.Index())

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 0, cmd.Index())
	assert.Equal(t, []*plan.Circle{c}, s.Circles())

	require.NoError(t, cmd.Undo())
	assert.Empty(t, s.Circles())

	require.NoError(t, cmd.Execute())
	got, ok := s.Get(c.ID())
	require.True(t, ok)
	assert.Same(t, c, got, "redo re-inserts the same shape")
}

func TestDeleteCommandRestoresPosition(t *testing.T) {
	s := plan.NewScene()
	walls := []*plan.Wall{
		plan.NewWall(plan.Pt(0, 0), plan.Pt(4, 0), 0.2),
		plan.NewWall(plan.Pt(4, 0), plan.Pt(4, 3), 0.2),
		plan.NewWall(plan.Pt(4, 3), plan.Pt(0, 3), 0.2),
	}
	for _, w := range walls {
		_, err := s.Insert(w, -1)
		require.NoError(t, err)
	}

	var reselected plan.Shape
	cmd := plan.NewDeleteCommand(s, walls[1].ID()).WithReselect(func(sh plan.Shape) { reselected = sh })
	require.NoError(t, cmd.Execute())
	assert.Equal(t, 1, cmd.Index())
	assert.Equal(t, []*plan.Wall{walls[0], walls[2]}, s.Walls())
	assertNodesRebuilt(t, s)

	require.NoError(t, cmd.Undo())
	assert.Equal(t, walls, s.Walls())
	assert.Same(t, walls[1], reselected)
	assertNodesRebuilt(t, s)
}

func TestDeleteCommandLooksUpCurrentIndex(t *testing.T) {
	s := plan.NewScene()
	a := plan.NewCircle(plan.Pt(0, 0), 1)
	b := plan.NewCircle(plan.Pt(3, 0), 1)
	for _, c := range []*plan.Circle{a, b} {
		_, err := s.Insert(c, -1)
		require.NoError(t, err)
	}

	delB := plan.NewDeleteCommand(s, b.ID())
	_, _, err := s.Remove(a.ID())
	require.NoError(t, err)

	require.NoError(t, delB.Execute())
	assert.Equal(t, 0, delB.Index())
	assert.Zero(t, s.Len())
}

func TestDeleteCommandErrors(t *testing.T) {
	s := plan.NewScene()
	cmd := plan.NewDeleteCommand(s, plan.NewID())
	assert.ErrorIs(t, cmd.Execute(), plan.ErrShapeNotFound)
	assert.ErrorIs(t, cmd.Undo(), plan.ErrShapeNotFound)
}

func TestModifyCommandRestoresDerivedState(t *testing.T) {
	s := plan.NewScene()
	w := plan.NewWall(plan.Pt(0, 0), plan.Pt(3, 4), 0.2)
	_, err := s.Insert(w, -1)
	require.NoError(t, err)

	cmd := plan.NewModifyCommand(s, w, plan.PropLength, 10.0)
	assert.Equal(t, 5.0, cmd.Old())
	assert.Equal(t, 10.0, cmd.New())

	require.NoError(t, cmd.Execute())
	assert.InDelta(t, 10, w.Length, 1e-9)
	assert.InDelta(t, 8, w.End.Y, 1e-9)
	assertNodesRebuilt(t, s)
	assert.NotNil(t, s.Nodes().NodeAt(w.End))

	require.NoError(t, cmd.Undo())
	assert.Equal(t, plan.Pt(3, 4), w.End)
	assert.Equal(t, plan.Pt(3, 4), w.OriginalEnd)
	assert.Equal(t, 5.0, w.Length)
	assertNodesRebuilt(t, s)
}

func TestModifyCommandRejectedValue(t *testing.T) {
	s := plan.NewScene()
	z := plan.NewZone("Hall", []plan.Point{plan.Pt(0, 0), plan.Pt(1, 0), plan.Pt(1, 1)})
	_, err := s.Insert(z, -1)
	require.NoError(t, err)

	cmd := plan.NewModifyCommand(s, z, plan.PropFillAlpha, "opaque")
	err = cmd.Execute()
	var typeErr *plan.PropertyTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, 0.25, z.FillAlpha)
}

func TestModifyCommandMissingShape(t *testing.T) {
	s := plan.NewScene()
	c := plan.NewCircle(plan.Pt(0, 0), 1)
	cmd := plan.NewModifyCommand(s, c, plan.PropRadius, 2.0)
	assert.ErrorIs(t, cmd.Execute(), plan.ErrShapeNotFound)
}

func TestCommandsThroughHistory(t *testing.T) {
	s := plan.NewScene()
	h := history.New()
	t.Cleanup(func() { _ = h.Close() })

	shapes := []plan.Shape{
		plan.NewWall(plan.Pt(0, 0), plan.Pt(2, 0), 0.1),
		plan.NewCircle(plan.Pt(1, 1), 0.5),
		plan.NewPolygon([]plan.Point{plan.Pt(0, 0), plan.Pt(1, 1)}, false),
		plan.NewZone("Zone 1", []plan.Point{plan.Pt(0, 0), plan.Pt(2, 0), plan.Pt(2, 2)}),
		plan.NewZoneDivider(plan.Pt(0, 1), plan.Pt(2, 1), 0.05, plan.ID{}),
		plan.NewArc(plan.Pt(0, 0), 1, 0, 1),
	}
	for _, sh := range shapes {
		require.NoError(t, h.Execute(plan.NewAddCommand(s, sh)))
	}
	assert.Equal(t, len(shapes), s.Len())

	for range shapes {
		require.NoError(t, h.Undo())
	}
	assert.Zero(t, s.Len())

	for range shapes {
		require.NoError(t, h.Redo())
	}
	assert.Equal(t, len(shapes), s.Len())
	for _, sh := range shapes {
		_, ok := s.Get(sh.ID())
		assert.True(t, ok, "%s survived redo", sh.Kind())
	}
}

// Wall A (0,0)→(5,0) and wall B (5,0)→(5,5), both 1 m thick, drawn as one
// chain and undone again.
func TestWallChainEndToEnd(t *testing.T) {
	s := plan.NewScene()
	h := history.New()
	t.Cleanup(func() { _ = h.Close() })

	a := plan.NewWall(plan.Pt(0, 0), plan.Pt(5, 0), 1)
	b := plan.NewWall(plan.Pt(5, 0), plan.Pt(5, 5), 1)
	require.NoError(t, h.Execute(plan.NewAddCommand(s, a)))
	require.NoError(t, h.Execute(plan.NewAddCommand(s, b)))

	shared := s.Nodes().NodeAt(plan.Pt(5, 0))
	require.NotNil(t, shared)
	assert.Len(t, shared.WallIDs, 2)
	assert.False(t, shared.IsIntersection)
	assert.Equal(t, 3, s.Nodes().Len())

	square := plan.Pt(5, 0).Add(plan.PerpendicularOffset(a.Start, a.End, a.Thickness))
	wp := plan.BuildWallPolygon(a, s.Walls())
	assert.NotEqual(t, square, wp.Line1End, "corner must be mitered")
	assert.InDelta(t, 4.5, wp.Line1End.X, 1e-9)

	require.NoError(t, h.Undo())
	require.NoError(t, h.Undo())
	assert.Empty(t, s.Walls())
	assert.Zero(t, s.Nodes().Len())

	require.NoError(t, h.Redo())
	assert.Equal(t, []*plan.Wall{a}, s.Walls())
	assert.Equal(t, 2, s.Nodes().Len())
	assertNodesRebuilt(t, s)
}

func TestFailingUndoDropsCommand(t *testing.T) {
	s := plan.NewScene()
	h := history.New()
	t.Cleanup(func() { _ = h.Close() })

	c := plan.NewCircle(plan.Pt(0, 0), 1)
	require.NoError(t, h.Execute(plan.NewAddCommand(s, c)))

	// Removing the shape behind history's back makes its undo fail.
	_, _, err := s.Remove(c.ID())
	require.NoError(t, err)

	err = h.Undo()
	require.Error(t, err)
	assert.True(t, errors.Is(err, plan.ErrShapeNotFound))
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}
