package plan

import "math"

const twoPi = 2 * math.Pi

// Arc is a circular arc swept counter-clockwise from StartAngle to EndAngle.
//
// StartAngle lies in [0, 2π) and EndAngle > StartAngle always holds: an end
// below the start gets 2π added, and a pair that would sweep nothing is
// widened to a full circle.
type Arc struct {
	base

	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64

	// Derived values.
	ArcLength   float64
	ChordLength float64
	SectorArea  float64
}

// NewArc creates an arc with a fresh ID. Angles are in radians.
func NewArc(center Point, radius, startAngle, endAngle float64) *Arc {
	a := &Arc{base: newBase(), Center: center, Radius: radius}
	a.SetAngles(startAngle, endAngle)
	return a
}

// NormalizeArcAngles applies the arc sweep convention to a raw angle pair.
func NormalizeArcAngles(start, end float64) (float64, float64) {
	start = normalizeAngle(start)
	end = normalizeAngle(end)
	if end < start {
		end += twoPi
	}
	if math.Abs(end-start) < 1e-12 {
		end = start + twoPi
	}
	return start, end
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// Kind returns KindArc.
func (a *Arc) Kind() Kind { return KindArc }

// Sweep returns the swept angle EndAngle-StartAngle.
func (a *Arc) Sweep() float64 {
	return a.EndAngle - a.StartAngle
}

// SetAngles normalizes and stores a new angle pair.
func (a *Arc) SetAngles(start, end float64) {
	a.StartAngle, a.EndAngle = NormalizeArcAngles(start, end)
	a.recompute()
}

// SetRadius changes the radius.
func (a *Arc) SetRadius(r float64) {
	a.Radius = r
	a.recompute()
}

func (a *Arc) recompute() {
	sweep := a.Sweep()
	a.ArcLength = a.Radius * sweep
	a.ChordLength = 2 * a.Radius * math.Sin(sweep/2)
	a.SectorArea = a.Radius * a.Radius * sweep / 2
}

// PointAt returns the point on the arc's circle at the given angle.
func (a *Arc) PointAt(angle float64) Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}

// StartPoint returns the point where the sweep begins.
func (a *Arc) StartPoint() Point { return a.PointAt(a.StartAngle) }

// EndPoint returns the point where the sweep ends.
func (a *Arc) EndPoint() Point { return a.PointAt(a.EndAngle) }

// ContainsAngle reports whether the direction angle lies within the sweep.
func (a *Arc) ContainsAngle(angle float64) bool {
	angle = normalizeAngle(angle)
	if angle < a.StartAngle {
		angle += twoPi
	}
	return angle <= a.EndAngle
}

// Bounds returns the box enclosing the arc curve: both endpoints plus
// every axis extreme the sweep passes.
func (a *Arc) Bounds() Rect {
	r := RectFromPoints(a.StartPoint(), a.EndPoint())
	for k := 0; k < 8; k++ {
		angle := float64(k) * math.Pi / 2
		if angle >= a.StartAngle && angle <= a.EndAngle {
			r = r.UnionPoint(a.PointAt(angle))
		}
	}
	return r
}

// Clone returns a copy of the arc with the same ID.
func (a *Arc) Clone() Shape {
	c := *a
	return &c
}

func (a *Arc) restore(src Shape) {
	*a = *src.(*Arc)
}

// Property returns radius, start_angle or end_angle.
func (a *Arc) Property(p Property) (any, error) {
	switch p {
	case PropRadius:
		return a.Radius, nil
	case PropStartAngle:
		return a.StartAngle, nil
	case PropEndAngle:
		return a.EndAngle, nil
	}
	return nil, unknownProperty(KindArc, p)
}

// SetProperty sets radius, start_angle or end_angle. Angle edits are
// normalized together with the other, unchanged angle.
func (a *Arc) SetProperty(p Property, v any) error {
	f, err := floatValue(p, v)
	switch p {
	case PropRadius:
		if err != nil {
			return err
		}
		a.SetRadius(f)
	case PropStartAngle:
		if err != nil {
			return err
		}
		a.SetAngles(f, a.EndAngle)
	case PropEndAngle:
		if err != nil {
			return err
		}
		a.SetAngles(a.StartAngle, f)
	default:
		return unknownProperty(KindArc, p)
	}
	return nil
}
