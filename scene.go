package plan

import (
	"fmt"
	"slices"

	"github.com/gogpu/plan/internal/spatial"
)

// Scene owns every shape of a drawing, the Node Graph derived from its
// walls, and a spatial index over shape bounds.
//
// Shapes live in an arena keyed by ID; each kind keeps its own ordered ID
// list, which is the array order renderers and commands observe. Tools,
// commands and renderers all share one Scene by reference.
//
// Scene is not safe for concurrent use.
type Scene struct {
	shapes  map[ID]Shape
	order   [len(kindNames)][]ID
	nodes   *NodeGraph
	index   *spatial.Index[ID]
	version uint64

	listeners []func(Kind)
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		shapes: make(map[ID]Shape),
		nodes:  NewNodeGraph(),
		index:  spatial.New[ID](),
	}
}

// OnChange registers fn to be called after every mutation with the kind
// of the shape that changed. Renderers hook their refresh here.
func (s *Scene) OnChange(fn func(Kind)) {
	s.listeners = append(s.listeners, fn)
}

// Version increments on every mutation.
func (s *Scene) Version() uint64 {
	return s.version
}

// Len returns the total number of shapes.
func (s *Scene) Len() int {
	return len(s.shapes)
}

// Get returns the shape with the given ID.
func (s *Scene) Get(id ID) (Shape, bool) {
	sh, ok := s.shapes[id]
	return sh, ok
}

// IndexOf returns the position of id within its kind's list, or -1.
func (s *Scene) IndexOf(id ID) int {
	sh, ok := s.shapes[id]
	if !ok {
		return -1
	}
	return slices.Index(s.order[sh.Kind()], id)
}

// Insert adds sh at position at within its kind's list and returns the
// position used. A negative or out-of-range position appends.
func (s *Scene) Insert(sh Shape, at int) (int, error) {
	id := sh.ID()
	if _, dup := s.shapes[id]; dup {
		return -1, fmt.Errorf("%w: %s %s", ErrDuplicateShape, sh.Kind(), id)
	}

	k := sh.Kind()
	ids := s.order[k]
	if at < 0 || at > len(ids) {
		at = len(ids)
	}
	tail := at == len(ids)
	s.order[k] = slices.Insert(ids, at, id)
	s.shapes[id] = sh
	s.index.Set(id, boxOf(sh.Bounds()))

	if w, ok := sh.(*Wall); ok {
		if tail {
			s.nodes.Update(w)
		} else {
			s.nodes.Rebuild(s.Walls())
		}
	}
	s.changed(k)
	return at, nil
}

// Remove deletes the shape with the given ID and returns it together with
// the position it occupied.
func (s *Scene) Remove(id ID) (Shape, int, error) {
	sh, ok := s.shapes[id]
	if !ok {
		return nil, -1, fmt.Errorf("%w: %s", ErrShapeNotFound, id)
	}

	k := sh.Kind()
	at := slices.Index(s.order[k], id)
	s.order[k] = slices.Delete(s.order[k], at, at+1)
	delete(s.shapes, id)
	s.index.Delete(id)

	if k == KindWall {
		s.nodes.Rebuild(s.Walls())
	}
	s.changed(k)
	return sh, at, nil
}

// Touch re-derives everything that depends on the geometry of the shape
// with the given ID. Call it after mutating a shape in place.
func (s *Scene) Touch(id ID) error {
	sh, ok := s.shapes[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrShapeNotFound, id)
	}
	s.index.Set(id, boxOf(sh.Bounds()))
	if sh.Kind() == KindWall {
		s.nodes.Rebuild(s.Walls())
	}
	s.changed(sh.Kind())
	return nil
}

// Clear removes every shape.
func (s *Scene) Clear() {
	for id := range s.shapes {
		s.index.Delete(id)
	}
	clear(s.shapes)
	for k := range s.order {
		s.order[k] = nil
	}
	s.nodes.Rebuild(nil)
	for _, k := range Kinds {
		s.changed(k)
	}
}

func (s *Scene) changed(k Kind) {
	s.version++
	for _, fn := range s.listeners {
		fn(k)
	}
}

// Nodes returns the Node Graph of the scene's walls.
func (s *Scene) Nodes() *NodeGraph {
	return s.nodes
}

// ConnectedWalls returns the walls sharing a node with w (at most two).
func (s *Scene) ConnectedWalls(w *Wall) []*Wall {
	return s.nodes.ConnectedWalls(w, s.Walls())
}

// Shapes returns the shapes of one kind in list order.
func (s *Scene) Shapes(k Kind) []Shape {
	out := make([]Shape, 0, len(s.order[k]))
	for _, id := range s.order[k] {
		out = append(out, s.shapes[id])
	}
	return out
}

// IDs returns the IDs of one kind in list order.
func (s *Scene) IDs(k Kind) []ID {
	return slices.Clone(s.order[k])
}

// Query returns the shapes whose bounds intersect r, grouped by kind in
// drawing order (Kinds) and by list order within a kind.
func (s *Scene) Query(r Rect) []Shape {
	hits := make(map[ID]struct{})
	for _, id := range s.index.Search(boxOf(r)) {
		hits[id] = struct{}{}
	}
	out := make([]Shape, 0, len(hits))
	for _, k := range Kinds {
		for _, id := range s.order[k] {
			if _, ok := hits[id]; ok {
				out = append(out, s.shapes[id])
			}
		}
	}
	return out
}

// Bounds returns the union of all shape bounds, or an empty Rect.
func (s *Scene) Bounds() Rect {
	r := EmptyRect()
	for _, sh := range s.shapes {
		r = r.Union(sh.Bounds())
	}
	return r
}

// Walls returns the walls in list order.
func (s *Scene) Walls() []*Wall { return typed[*Wall](s, KindWall) }

// Circles returns the circles in list order.
func (s *Scene) Circles() []*Circle { return typed[*Circle](s, KindCircle) }

// Polygons returns the polygons in list order.
func (s *Scene) Polygons() []*Polygon { return typed[*Polygon](s, KindPolygon) }

// Zones returns the zones in list order.
func (s *Scene) Zones() []*Zone { return typed[*Zone](s, KindZone) }

// Dividers returns the zone dividers in list order.
func (s *Scene) Dividers() []*ZoneDivider { return typed[*ZoneDivider](s, KindDivider) }

// Arcs returns the arcs in list order.
func (s *Scene) Arcs() []*Arc { return typed[*Arc](s, KindArc) }

func typed[T Shape](s *Scene, k Kind) []T {
	out := make([]T, 0, len(s.order[k]))
	for _, id := range s.order[k] {
		out = append(out, s.shapes[id].(T))
	}
	return out
}

func boxOf(r Rect) spatial.Box {
	return spatial.Box{MinX: r.MinX, MinY: r.MinY, MaxX: r.MaxX, MaxY: r.MaxY}
}
