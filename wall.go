package plan

// Wall is a straight wall segment with a thickness.
//
// Start and End are the drawn endpoints. OriginalStart and OriginalEnd are
// the committed connection points the Node Graph matches against; for a
// live preview wall they may differ from the drawn endpoints.
type Wall struct {
	base

	Start, End                 Point
	OriginalStart, OriginalEnd Point

	// Thickness in meters. The model trusts its caller: range checks
	// happen at the tool boundary.
	Thickness float64

	// Length is the derived distance Start→End.
	Length float64
}

// NewWall creates a wall from start to end with a fresh ID.
func NewWall(start, end Point, thickness float64) *Wall {
	w := &Wall{
		base:          newBase(),
		Start:         start,
		End:           end,
		OriginalStart: start,
		OriginalEnd:   end,
		Thickness:     thickness,
	}
	w.recompute()
	return w
}

func (w *Wall) recompute() {
	w.Length = w.Start.Distance(w.End)
}

// Kind returns KindWall.
func (w *Wall) Kind() Kind { return KindWall }

// Segment returns the wall centerline.
func (w *Wall) Segment() Segment {
	return Segment{Start: w.Start, End: w.End}
}

// SetStart moves the start point and its connection point.
func (w *Wall) SetStart(p Point) {
	w.Start, w.OriginalStart = p, p
	w.recompute()
}

// SetEnd moves the end point and its connection point.
func (w *Wall) SetEnd(p Point) {
	w.End, w.OriginalEnd = p, p
	w.recompute()
}

// SetThickness changes the wall thickness.
func (w *Wall) SetThickness(t float64) {
	w.Thickness = t
}

// SetLength moves End along the current direction so that the wall gets
// the given length. A zero-length wall is extended along +X.
func (w *Wall) SetLength(length float64) {
	dir := NormalizedDirection(w.Start, w.End)
	if dir == (Point{}) {
		dir = Point{X: 1}
	}
	w.SetEnd(w.Start.Add(dir.Mul(length)))
}

// Bounds returns the centerline box padded far enough to hold any mitered
// corner (miters are capped at five thicknesses from the junction).
func (w *Wall) Bounds() Rect {
	return RectFromPoints(w.Start, w.End).Pad(5 * w.Thickness)
}

// Clone returns a copy of the wall with the same ID.
func (w *Wall) Clone() Shape {
	c := *w
	return &c
}

func (w *Wall) restore(src Shape) {
	*w = *src.(*Wall)
}

// Property returns thickness or length.
func (w *Wall) Property(p Property) (any, error) {
	switch p {
	case PropThickness:
		return w.Thickness, nil
	case PropLength:
		return w.Length, nil
	}
	return nil, unknownProperty(KindWall, p)
}

// SetProperty sets thickness or length.
func (w *Wall) SetProperty(p Property, v any) error {
	switch p {
	case PropThickness, PropLength:
		f, err := floatValue(p, v)
		if err != nil {
			return err
		}
		if p == PropThickness {
			w.SetThickness(f)
		} else {
			w.SetLength(f)
		}
		return nil
	}
	return unknownProperty(KindWall, p)
}
