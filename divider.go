package plan

import "math"

// ZoneDivider is a dashed line drawn across a zone.
type ZoneDivider struct {
	base

	Start, End Point
	Thickness  float64

	// ZoneID refers to the zone the divider was drawn in. It is a plain
	// back-reference: deleting the divider never touches the zone.
	ZoneID ID

	Dash *Dash

	// Derived values.
	Length float64
	Angle  float64
}

// NewZoneDivider creates a divider with the default dash and a fresh ID.
func NewZoneDivider(start, end Point, thickness float64, zoneID ID) *ZoneDivider {
	d := &ZoneDivider{
		base:      newBase(),
		Start:     start,
		End:       end,
		Thickness: thickness,
		ZoneID:    zoneID,
		Dash:      DefaultDividerDash(),
	}
	d.recompute()
	return d
}

func (d *ZoneDivider) recompute() {
	d.Length = d.Start.Distance(d.End)
	d.Angle = math.Atan2(d.End.Y-d.Start.Y, d.End.X-d.Start.X)
}

// Kind returns KindDivider.
func (d *ZoneDivider) Kind() Kind { return KindDivider }

// SetEnd moves the end point.
func (d *ZoneDivider) SetEnd(p Point) {
	d.End = p
	d.recompute()
}

// SetLength moves End along the current angle.
func (d *ZoneDivider) SetLength(length float64) {
	d.End = Point{
		X: d.Start.X + length*math.Cos(d.Angle),
		Y: d.Start.Y + length*math.Sin(d.Angle),
	}
	d.recompute()
}

// Bounds returns the centerline box padded by half the thickness.
func (d *ZoneDivider) Bounds() Rect {
	return RectFromPoints(d.Start, d.End).Pad(d.Thickness / 2)
}

// Clone returns a deep copy of the divider with the same ID.
func (d *ZoneDivider) Clone() Shape {
	c := *d
	c.Dash = d.Dash.Clone()
	return &c
}

func (d *ZoneDivider) restore(src Shape) {
	*d = *src.Clone().(*ZoneDivider)
}

// Property returns thickness or length.
func (d *ZoneDivider) Property(p Property) (any, error) {
	switch p {
	case PropThickness:
		return d.Thickness, nil
	case PropLength:
		return d.Length, nil
	}
	return nil, unknownProperty(KindDivider, p)
}

// SetProperty sets thickness or length.
func (d *ZoneDivider) SetProperty(p Property, v any) error {
	switch p {
	case PropThickness, PropLength:
		f, err := floatValue(p, v)
		if err != nil {
			return err
		}
		if p == PropThickness {
			d.Thickness = f
		} else {
			d.SetLength(f)
		}
		return nil
	}
	return unknownProperty(KindDivider, p)
}
