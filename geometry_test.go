package plan

import (
	"math"
	"testing"
)

func TestExactPointMatch(t *testing.T) {
	if !ExactPointMatch(Pt(5, 0), Pt(5.005, -0.005)) {
		t.Error("points 5mm apart should match")
	}
	if ExactPointMatch(Pt(5, 0), Pt(5.02, 0)) {
		t.Error("points 2cm apart should not match")
	}
}

func TestNormalizedDirection(t *testing.T) {
	if got := NormalizedDirection(Pt(1, 1), Pt(1, 4)); got != Pt(0, 1) {
		t.Errorf("direction = %v, want (0,1)", got)
	}
	if got := NormalizedDirection(Pt(1, 1), Pt(1, 1.00001)); got != (Point{}) {
		t.Errorf("degenerate direction = %v, want zero", got)
	}
}

func TestPerpendicularOffset(t *testing.T) {
	if got := PerpendicularOffset(Pt(0, 0), Pt(4, 0), 0.5); got != Pt(0, 0.25) {
		t.Errorf("offset = %v, want (0,0.25)", got)
	}
}

func TestLineIntersection(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Segment
		want   Point
		wantOK bool
	}{
		{
			name:   "crossing",
			a:      Segment{Pt(0, 0), Pt(2, 2)},
			b:      Segment{Pt(0, 2), Pt(2, 0)},
			want:   Pt(1, 1),
			wantOK: true,
		},
		{
			name:   "meeting at endpoint",
			a:      Segment{Pt(0, 0), Pt(5, 0)},
			b:      Segment{Pt(5, 0), Pt(5, 5)},
			want:   Pt(5, 0),
			wantOK: true,
		},
		{
			name: "parallel",
			a:    Segment{Pt(0, 0), Pt(1, 0)},
			b:    Segment{Pt(0, 1), Pt(1, 1)},
		},
		{
			name: "outside range",
			a:    Segment{Pt(0, 0), Pt(1, 0)},
			b:    Segment{Pt(5, -1), Pt(5, 1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LineIntersection(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Approx(tt.want, eps) {
				t.Errorf("point = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildWallPolygon_Standalone(t *testing.T) {
	w := NewWall(Pt(0, 0), Pt(4, 0), 0.2)
	wp := BuildWallPolygon(w, []*Wall{w})
	want := WallPolygon{
		Line1Start: Pt(0, 0.1), Line1End: Pt(4, 0.1),
		Line2Start: Pt(0, -0.1), Line2End: Pt(4, -0.1),
	}
	if wp != want {
		t.Errorf("polygon = %+v, want %+v", wp, want)
	}
}

func TestBuildWallPolygon_ZeroLength(t *testing.T) {
	w := NewWall(Pt(1, 1), Pt(1, 1), 0.4)
	wp := BuildWallPolygon(w, nil)
	if wp.Line1Start != Pt(1, 1.2) || wp.Line2End != Pt(1, 0.8) {
		t.Errorf("placeholder polygon = %+v, want vertical offset 0.2", wp)
	}
}

func TestBuildWallPolygon_LCorner(t *testing.T) {
	a := NewWall(Pt(0, 0), Pt(5, 0), 1)
	b := NewWall(Pt(5, 0), Pt(5, 5), 1)
	walls := []*Wall{a, b}

	pa := BuildWallPolygon(a, walls)
	if !pa.Line1End.Approx(Pt(4.5, 0.5), eps) {
		t.Errorf("A inner corner = %v, want (4.5,0.5)", pa.Line1End)
	}
	if !pa.Line2End.Approx(Pt(5.5, -0.5), eps) {
		t.Errorf("A outer corner = %v, want (5.5,-0.5)", pa.Line2End)
	}
	// The start of A is free and stays square.
	if pa.Line1Start != Pt(0, 0.5) || pa.Line2Start != Pt(0, -0.5) {
		t.Errorf("A free end mitered: %+v", pa)
	}

	// Both walls must agree on the shared corners.
	pb := BuildWallPolygon(b, walls)
	if !pb.Line1Start.Approx(pa.Line1End, eps) {
		t.Errorf("B inner corner = %v, want %v", pb.Line1Start, pa.Line1End)
	}
	if !pb.Line2Start.Approx(pa.Line2End, eps) {
		t.Errorf("B outer corner = %v, want %v", pb.Line2Start, pa.Line2End)
	}
}

func TestBuildWallPolygon_ReversedNeighbour(t *testing.T) {
	a := NewWall(Pt(0, 0), Pt(5, 0), 1)
	b := NewWall(Pt(5, 5), Pt(5, 0), 1)

	pa := BuildWallPolygon(a, []*Wall{a, b})
	if !pa.Line1End.Approx(Pt(4.5, 0.5), eps) || !pa.Line2End.Approx(Pt(5.5, -0.5), eps) {
		t.Errorf("corners with reversed neighbour = %v %v", pa.Line1End, pa.Line2End)
	}
}

func TestMiteredCornerPoint_Parallel(t *testing.T) {
	a := NewWall(Pt(0, 0), Pt(5, 0), 0.2)
	b := NewWall(Pt(5, 0), Pt(10, 0), 0.2)
	got := MiteredCornerPoint(b, a, 0.2, true)
	if !got.Approx(Pt(5, 0.1), eps) {
		t.Errorf("parallel corner = %v, want (5,0.1)", got)
	}
}

func TestMiteredCornerPoint_SpikeCapped(t *testing.T) {
	const thickness = 0.5
	a := NewWall(Pt(0, 0), Pt(5, 0), thickness)
	b := NewWall(Pt(5, 0), Pt(0, 0.5), thickness)
	limit := spikeCapFactor*thickness/2 + eps

	for _, outside := range []bool{true, false} {
		got := MiteredCornerPoint(b, a, thickness, outside)
		if d := got.Distance(Pt(5, 0)); d > limit {
			t.Errorf("outside=%v: miter %v is %v from the junction, limit %v", outside, got, d, limit)
		}
		if !got.IsFinite() {
			t.Errorf("outside=%v: non-finite miter %v", outside, got)
		}
	}
}

func TestSnapThreshold(t *testing.T) {
	tests := []struct {
		zoom, want float64
	}{
		{1, 0.5},
		{4, 0.25},
		{0.0001, 5},
		{0, 5},
		{math.NaN(), 5},
	}
	for _, tt := range tests {
		if got := SnapThreshold(0.5, tt.zoom); !approx(got, tt.want) {
			t.Errorf("SnapThreshold(0.5, %v) = %v, want %v", tt.zoom, got, tt.want)
		}
	}
}

func TestSnapAngle(t *testing.T) {
	got := SnapAngle(Pt(0, 0), Pt(1, 0.1), 15)
	want := Pt(math.Hypot(1, 0.1), 0)
	if !got.Approx(want, eps) {
		t.Errorf("SnapAngle = %v, want %v", got, want)
	}

	got = SnapAngle(Pt(1, 1), Pt(2, 2.1), 45)
	l := math.Hypot(1, 1.1)
	if !got.Approx(Pt(1+l/math.Sqrt2, 1+l/math.Sqrt2), eps) {
		t.Errorf("SnapAngle 45 = %v", got)
	}

	if got := SnapAngle(Pt(0, 0), Pt(1, 0.1), 0); got != Pt(1, 0.1) {
		t.Errorf("disabled SnapAngle moved the point: %v", got)
	}
}

func TestSegmentDistance(t *testing.T) {
	tests := []struct {
		p    Point
		want float64
	}{
		{Pt(1, 1), 1},
		{Pt(-3, 4), 5},
		{Pt(5, 0), 3},
		{Pt(1, 0), 0},
	}
	for _, tt := range tests {
		if got := SegmentDistance(tt.p, Pt(0, 0), Pt(2, 0)); !approx(got, tt.want) {
			t.Errorf("SegmentDistance(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if got := SegmentDistance(Pt(3, 4), Pt(0, 0), Pt(0, 0)); got != 5 {
		t.Errorf("degenerate segment distance = %v, want 5", got)
	}
}

func TestShoelaceArea(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)}
	if got := ShoelaceArea(square); got != 4 {
		t.Errorf("square area = %v, want 4", got)
	}
	reversed := []Point{Pt(0, 2), Pt(2, 2), Pt(2, 0), Pt(0, 0)}
	if got := ShoelaceArea(reversed); got != 4 {
		t.Errorf("clockwise square area = %v, want 4", got)
	}
	if got := ShoelaceArea(square[:2]); got != 0 {
		t.Errorf("two-point area = %v, want 0", got)
	}
}

func TestPathLength(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)}
	if got := PathLength(square, true); got != 8 {
		t.Errorf("closed length = %v, want 8", got)
	}
	if got := PathLength(square, false); got != 6 {
		t.Errorf("open length = %v, want 6", got)
	}
}
