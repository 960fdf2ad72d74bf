package plan

import "math"

// Dash defines the dash pattern a zone divider is drawn with.
// Array holds alternating dash and gap lengths in meters. An odd-length
// array is logically repeated to make it even ([0.2] acts as [0.2, 0.2]).
type Dash struct {
	Array  []float64
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Returns nil if no positive length is provided.
func NewDash(lengths ...float64) *Dash {
	positive := false
	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
		if normalized[i] > 0 {
			positive = true
		}
	}
	if !positive {
		return nil
	}
	return &Dash{Array: normalized}
}

// DefaultDividerDash is the pattern new zone dividers get.
func DefaultDividerDash() *Dash {
	return NewDash(0.2, 0.1)
}

// PatternLength returns the total length of one complete pattern cycle.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
func (d *Dash) IsDashed() bool {
	return d.PatternLength() > 0
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	arrayCopy := make([]float64, len(d.Array))
	copy(arrayCopy, d.Array)
	return &Dash{Array: arrayCopy, Offset: d.Offset}
}

// Split cuts the segment start→end into the visible dash pieces.
// A nil or solid dash yields the whole segment.
func (d *Dash) Split(start, end Point) [][2]Point {
	total := start.Distance(end)
	if !d.IsDashed() || total == 0 {
		return [][2]Point{{start, end}}
	}

	pattern := d.Array
	if len(pattern)%2 != 0 {
		pattern = append(append([]float64(nil), pattern...), pattern...)
	}

	// Walk the pattern from Offset, emitting every "on" interval.
	var pieces [][2]Point
	pos := -math.Mod(d.Offset, d.PatternLength())
	for i := 0; pos < total; i = (i + 1) % len(pattern) {
		next := pos + pattern[i]
		if i%2 == 0 && next > 0 {
			a := math.Max(pos, 0) / total
			b := math.Min(next, total) / total
			if b > a {
				pieces = append(pieces, [2]Point{start.Lerp(end, a), start.Lerp(end, b)})
			}
		}
		pos = next
	}
	return pieces
}
