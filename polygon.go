package plan

// ring is the point sequence shared by Polygon and Zone.
// Point order defines the boundary path.
type ring struct {
	Points []Point
	Closed bool

	// Perimeter includes the closing segment only when Closed.
	Perimeter float64

	// Area is the Shoelace area; zero unless Closed with three or more points.
	Area float64
}

func newRing(points []Point, closed bool) ring {
	r := ring{Points: append([]Point(nil), points...), Closed: closed}
	r.recompute()
	return r
}

func (r *ring) recompute() {
	r.Perimeter = PathLength(r.Points, r.Closed)
	r.Area = 0
	if r.Closed && len(r.Points) >= 3 {
		r.Area = ShoelaceArea(r.Points)
	}
}

// AddPoint appends a point to the boundary path.
func (r *ring) AddPoint(p Point) {
	r.Points = append(r.Points, p)
	r.recompute()
}

// SetPoint moves the i-th point. Out of range indices are ignored.
func (r *ring) SetPoint(i int, p Point) {
	if i < 0 || i >= len(r.Points) {
		return
	}
	r.Points[i] = p
	r.recompute()
}

// Close marks the path as closed.
func (r *ring) Close() {
	r.Closed = true
	r.recompute()
}

// Bounds returns the box enclosing all points.
func (r *ring) Bounds() Rect {
	return RectFromPoints(r.Points...)
}

func (r ring) clone() ring {
	r.Points = append([]Point(nil), r.Points...)
	return r
}

// Polygon is an open or closed polyline.
type Polygon struct {
	base
	ring
}

// NewPolygon creates a polygon with a fresh ID. The points are copied.
func NewPolygon(points []Point, closed bool) *Polygon {
	return &Polygon{base: newBase(), ring: newRing(points, closed)}
}

// Kind returns KindPolygon.
func (p *Polygon) Kind() Kind { return KindPolygon }

// Clone returns a deep copy of the polygon with the same ID.
func (p *Polygon) Clone() Shape {
	return &Polygon{base: p.base, ring: p.ring.clone()}
}

func (p *Polygon) restore(src Shape) {
	*p = *src.Clone().(*Polygon)
}

// Property always fails: polygons have no editable scalar properties.
func (p *Polygon) Property(prop Property) (any, error) {
	return nil, unknownProperty(KindPolygon, prop)
}

// SetProperty always fails: polygons have no editable scalar properties.
func (p *Polygon) SetProperty(prop Property, _ any) error {
	return unknownProperty(KindPolygon, prop)
}
