package plan

import "math"

// Circle is a circle given by center and radius.
type Circle struct {
	base

	Center Point
	Radius float64

	// Derived values, recomputed by every setter.
	Area          float64
	Circumference float64
}

// NewCircle creates a circle with a fresh ID.
func NewCircle(center Point, radius float64) *Circle {
	c := &Circle{base: newBase(), Center: center}
	c.SetRadius(radius)
	return c
}

// Kind returns KindCircle.
func (c *Circle) Kind() Kind { return KindCircle }

// SetRadius changes the radius and recomputes area and circumference.
func (c *Circle) SetRadius(r float64) {
	c.Radius = r
	c.Area = math.Pi * r * r
	c.Circumference = 2 * math.Pi * r
}

// SetCenter moves the circle.
func (c *Circle) SetCenter(p Point) {
	c.Center = p
}

// Bounds returns the box enclosing the circle.
func (c *Circle) Bounds() Rect {
	return Rect{
		MinX: c.Center.X - c.Radius,
		MinY: c.Center.Y - c.Radius,
		MaxX: c.Center.X + c.Radius,
		MaxY: c.Center.Y + c.Radius,
	}
}

// Clone returns a copy of the circle with the same ID.
func (c *Circle) Clone() Shape {
	cp := *c
	return &cp
}

func (c *Circle) restore(src Shape) {
	*c = *src.(*Circle)
}

// Property returns the radius.
func (c *Circle) Property(p Property) (any, error) {
	if p == PropRadius {
		return c.Radius, nil
	}
	return nil, unknownProperty(KindCircle, p)
}

// SetProperty sets the radius.
func (c *Circle) SetProperty(p Property, v any) error {
	if p != PropRadius {
		return unknownProperty(KindCircle, p)
	}
	r, err := floatValue(p, v)
	if err != nil {
		return err
	}
	c.SetRadius(r)
	return nil
}
