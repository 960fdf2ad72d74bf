package plan

import "math"

// Geometry tolerances in meters.
const (
	// MatchEpsilon is the single "same location" tolerance. Node matching,
	// wall-chain connectivity and miter junction detection all use it
	// through ExactPointMatch.
	MatchEpsilon = 0.01

	// MinSegmentLength is the length below which a direction is undefined.
	MinSegmentLength = 1e-4

	// MinWallLength is the length below which a wall is a zero-length
	// placeholder: never committed, drawn with a fixed vertical offset.
	MinWallLength = 0.001

	// MinMiterLength is the wall length below which corners are not mitered.
	MinMiterLength = 0.02

	parallelDeterminant = 0.001
	intersectionPad     = 0.1
	parallelCross       = 0.01
	spikeFactor         = 10
	spikeCapFactor      = 5
)

// Segment is a straight line segment between two points.
type Segment struct {
	Start, End Point
}

// ExactPointMatch reports whether p1 and p2 are the same location:
// both coordinate deltas strictly below MatchEpsilon.
func ExactPointMatch(p1, p2 Point) bool {
	return p1.Approx(p2, MatchEpsilon)
}

// NormalizedDirection returns the unit vector from start to end, or {0,0}
// when the segment is shorter than MinSegmentLength.
func NormalizedDirection(start, end Point) Point {
	d := end.Sub(start)
	length := d.Length()
	if length < MinSegmentLength {
		return Point{}
	}
	return d.Mul(1 / length)
}

// PerpendicularOffset returns the half-thickness displacement that moves
// the segment start→end onto one of its two parallel edges. The other edge
// is reached with the negated offset.
func PerpendicularOffset(start, end Point, thickness float64) Point {
	return NormalizedDirection(start, end).Perp().Mul(thickness / 2)
}

// LineIntersection intersects the infinite lines through a and b.
// It reports false for (nearly) parallel lines and for intersections that
// fall outside either segment's range, padded by 0.1 m so that meetings at
// an endpoint survive floating point slop.
func LineIntersection(a, b Segment) (Point, bool) {
	a1 := a.End.Y - a.Start.Y
	b1 := a.Start.X - a.End.X
	c1 := a1*a.Start.X + b1*a.Start.Y

	a2 := b.End.Y - b.Start.Y
	b2 := b.Start.X - b.End.X
	c2 := a2*b.Start.X + b2*b.Start.Y

	det := a1*b2 - a2*b1
	if math.Abs(det) < parallelDeterminant {
		return Point{}, false
	}

	p := Point{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}
	if !withinSegmentRange(p, a) || !withinSegmentRange(p, b) {
		return Point{}, false
	}
	return p, true
}

func withinSegmentRange(p Point, s Segment) bool {
	return p.X >= math.Min(s.Start.X, s.End.X)-intersectionPad &&
		p.X <= math.Max(s.Start.X, s.End.X)+intersectionPad &&
		p.Y >= math.Min(s.Start.Y, s.End.Y)-intersectionPad &&
		p.Y <= math.Max(s.Start.Y, s.End.Y)+intersectionPad
}

// MiteredCornerPoint returns the corner where the boundary lines of prev
// and cur meet at their shared junction.
//
// outside selects cur's boundary on the +PerpendicularOffset side (the
// Line1 edge of its WallPolygon); false selects the opposite edge. The
// matching boundary of prev is the one that continues that edge through
// the junction, whichever way prev is oriented.
//
// When no endpoint pair matches, cur.Start is used as the junction.
// Nearly parallel walls yield the midpoint of the two offset points, and a
// miter reaching farther than 10 half-thicknesses is capped at 5
// half-thicknesses along the bisector of the offset normals.
func MiteredCornerPoint(prev, cur *Wall, thickness float64, outside bool) Point {
	junction, curStarts := cur.Start, true
	switch {
	case ExactPointMatch(prev.End, cur.Start), ExactPointMatch(prev.Start, cur.Start):
		junction = cur.Start
	case ExactPointMatch(prev.End, cur.End), ExactPointMatch(prev.Start, cur.End):
		junction, curStarts = cur.End, false
	}

	// Directions pointing away from the junction.
	u1 := awayFrom(prev, junction)
	u2 := NormalizedDirection(cur.Start, cur.End)
	if !curStarts {
		u2 = u2.Neg()
	}

	// Normals of the selected boundary, oriented along the path that
	// enters the junction on prev and leaves it on cur.
	sign := 1.0
	if !outside {
		sign = -1
	}
	if !curStarts {
		sign = -sign
	}
	half := thickness / 2
	n1 := u1.Perp().Mul(-sign)
	n2 := u2.Perp().Mul(sign)

	p1 := junction.Add(n1.Mul(half))
	p2 := junction.Add(n2.Mul(half))

	cross := u1.Cross(u2)
	if math.Abs(cross) < parallelCross {
		return p1.Midpoint(p2)
	}

	// Intersect the offset rays p1 + λ·u1 and p2 + μ·u2.
	lambda := p2.Sub(p1).Cross(u2) / cross
	miter := p1.Add(u1.Mul(lambda))

	if miter.Distance(junction) > spikeFactor*half {
		bisector := n1.Add(n2).Normalize()
		if bisector == (Point{}) {
			bisector = n2
		}
		return junction.Add(bisector.Mul(spikeCapFactor * half))
	}
	return miter
}

// awayFrom returns w's unit direction pointing away from junction.
// The end of w nearest to the junction is treated as the attached one.
func awayFrom(w *Wall, junction Point) Point {
	if ExactPointMatch(w.Start, junction) ||
		(!ExactPointMatch(w.End, junction) && w.Start.Distance(junction) < w.End.Distance(junction)) {
		return NormalizedDirection(w.Start, w.End)
	}
	return NormalizedDirection(w.End, w.Start)
}

// WallPolygon holds the four corners of a wall's rendered outline.
// Line1 runs along the +PerpendicularOffset edge, Line2 along the opposite
// edge; both go from the wall's start side to its end side.
type WallPolygon struct {
	Line1Start, Line1End Point
	Line2Start, Line2End Point
}

// Outline returns the corners as a closed ring in drawing order.
func (wp WallPolygon) Outline() []Point {
	return []Point{wp.Line1Start, wp.Line1End, wp.Line2End, wp.Line2Start}
}

// Bounds returns the bounding box of the four corners.
func (wp WallPolygon) Bounds() Rect {
	return RectFromPoints(wp.Outline()...)
}

// BuildWallPolygon computes the outline of w, mitering its corners against
// the walls of all that share an endpoint with it. w itself may or may not
// be part of all; a live preview wall is matched through its original
// endpoints as well.
func BuildWallPolygon(w *Wall, all []*Wall) WallPolygon {
	var offset Point
	if w.Length < MinWallLength {
		offset = Point{X: 0, Y: w.Thickness / 2}
	} else {
		offset = PerpendicularOffset(w.Start, w.End, w.Thickness)
	}

	wp := WallPolygon{
		Line1Start: w.Start.Add(offset),
		Line1End:   w.End.Add(offset),
		Line2Start: w.Start.Sub(offset),
		Line2End:   w.End.Sub(offset),
	}
	if w.Length < MinMiterLength {
		return wp
	}

	if prev := connectedAt(w, all, w.Start, w.OriginalStart); prev != nil {
		wp.Line1Start = MiteredCornerPoint(prev, w, w.Thickness, true)
		wp.Line2Start = MiteredCornerPoint(prev, w, w.Thickness, false)
	}
	if next := connectedAt(w, all, w.End, w.OriginalEnd); next != nil {
		wp.Line1End = MiteredCornerPoint(next, w, w.Thickness, true)
		wp.Line2End = MiteredCornerPoint(next, w, w.Thickness, false)
	}
	return wp
}

// connectedAt returns the first wall other than w touching p or alt.
func connectedAt(w *Wall, all []*Wall, p, alt Point) *Wall {
	for _, other := range all {
		if other == w || other.ID() == w.ID() {
			continue
		}
		for _, q := range [...]Point{other.Start, other.End, other.OriginalStart, other.OriginalEnd} {
			if ExactPointMatch(q, p) || ExactPointMatch(q, alt) {
				return other
			}
		}
	}
	return nil
}

// SnapThreshold scales a base snap distance by zoom: base / max(0.1, √zoom).
// Snapping tightens as the user zooms in.
func SnapThreshold(base, zoom float64) float64 {
	if !(zoom > 0) {
		zoom = 0
	}
	return base / math.Max(0.1, math.Sqrt(zoom))
}

// SnapAngle rotates p around origin onto the nearest multiple of stepDeg
// degrees, keeping its distance. A non-positive step disables snapping.
func SnapAngle(origin, p Point, stepDeg float64) Point {
	if stepDeg <= 0 {
		return p
	}
	d := p.Sub(origin)
	length := d.Length()
	if length < MinSegmentLength {
		return p
	}
	step := stepDeg * math.Pi / 180
	angle := math.Round(math.Atan2(d.Y, d.X)/step) * step
	return Point{X: origin.X + length*math.Cos(angle), Y: origin.Y + length*math.Sin(angle)}
}

// SegmentDistance returns the distance from p to the segment a→b.
func SegmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/lenSq))
	return p.Distance(a.Add(ab.Mul(t)))
}

// ShoelaceArea returns the unsigned area enclosed by the ring of points.
func ShoelaceArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}
	var sum float64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}

// PathLength sums consecutive segment lengths, including the closing
// segment when closed is true.
func PathLength(points []Point, closed bool) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance(points[i])
	}
	if closed && len(points) > 2 {
		total += points[len(points)-1].Distance(points[0])
	}
	return total
}
