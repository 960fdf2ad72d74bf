// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/plan"
)

// painter rasterizes world-space geometry into one image with
// anti-aliased coverage from golang.org/x/image/vector. Subpaths are
// collected in screen space and rasterized over their bounding box only.
type painter struct {
	dst   *image.RGBA
	vp    *Viewport
	z     *vector.Rasterizer
	paths [][][2]float64
}

func newPainter(dst *image.RGBA, vp *Viewport) *painter {
	return &painter{dst: dst, vp: vp, z: vector.NewRasterizer(0, 0)}
}

func (p *painter) begin() {
	p.paths = p.paths[:0]
}

func (p *painter) flush(c plan.Color) {
	box := image.Rectangle{}
	first := true
	for _, path := range p.paths {
		for _, q := range path {
			pt := image.Pt(int(math.Floor(q[0])), int(math.Floor(q[1])))
			if first {
				box = image.Rectangle{Min: pt, Max: pt}
				first = false
			}
			box.Min.X = min(box.Min.X, pt.X)
			box.Min.Y = min(box.Min.Y, pt.Y)
			box.Max.X = max(box.Max.X, pt.X+2)
			box.Max.Y = max(box.Max.Y, pt.Y+2)
		}
	}
	box = box.Intersect(p.dst.Bounds())
	if first || box.Empty() {
		return
	}

	p.z.Reset(box.Dx(), box.Dy())
	p.z.DrawOp = draw.Over
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	for _, path := range p.paths {
		p.z.MoveTo(float32(path[0][0]-ox), float32(path[0][1]-oy))
		for _, q := range path[1:] {
			p.z.LineTo(float32(q[0]-ox), float32(q[1]-oy))
		}
		p.z.ClosePath()
	}
	p.z.Draw(p.dst, box, image.NewUniform(c.NRGBA()), image.Point{})
}

// subpath adds a closed polygon given in screen coordinates.
func (p *painter) subpath(pts [][2]float64) {
	if len(pts) < 3 {
		return
	}
	p.paths = append(p.paths, pts)
}

// fill paints the interior of a world-space polygon.
func (p *painter) fill(points []plan.Point, c plan.Color) {
	if len(points) < 3 {
		return
	}
	p.begin()
	pts := make([][2]float64, len(points))
	for i, q := range points {
		x, y := p.vp.WorldToScreen(q)
		pts[i] = [2]float64{x, y}
	}
	p.subpath(pts)
	p.flush(c)
}

// stroke paints a world-space polyline with a pixel width. Segments are
// emitted as quads and joints as discs, all with the same winding so
// their coverage merges instead of cancelling.
func (p *painter) stroke(points []plan.Point, closed bool, width float64, c plan.Color) {
	if len(points) < 2 || width <= 0 {
		return
	}
	p.begin()
	hw := width / 2
	n := len(points)
	segments := n - 1
	if closed {
		segments = n
	}
	for i := 0; i < segments; i++ {
		ax, ay := p.vp.WorldToScreen(points[i])
		bx, by := p.vp.WorldToScreen(points[(i+1)%n])
		p.quad(ax, ay, bx, by, hw)
	}
	if width > 2 {
		for i, q := range points {
			if !closed && (i == 0 || i == n-1) {
				continue
			}
			x, y := p.vp.WorldToScreen(q)
			p.subpath(discPoints(x, y, hw, 12))
		}
	}
	p.flush(c)
}

func (p *painter) quad(ax, ay, bx, by, hw float64) {
	dx, dy := bx-ax, by-ay
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	p.subpath([][2]float64{
		{ax + nx, ay + ny},
		{bx + nx, by + ny},
		{bx - nx, by - ny},
		{ax - nx, ay - ny},
	})
}

// line strokes a single world-space segment.
func (p *painter) line(a, b plan.Point, width float64, c plan.Color) {
	p.stroke([]plan.Point{a, b}, false, width, c)
}

// dot paints a disc of a pixel radius centered on a world point.
func (p *painter) dot(center plan.Point, radius float64, c plan.Color) {
	x, y := p.vp.WorldToScreen(center)
	p.begin()
	p.subpath(discPoints(x, y, radius, 16))
	p.flush(c)
}

// hline and vline draw axis-aligned screen lines for the grid.
func (p *painter) hline(y, width float64, c plan.Color) {
	b := p.dst.Bounds()
	p.begin()
	p.subpath([][2]float64{{0, y - width/2}, {float64(b.Dx()), y - width/2}, {float64(b.Dx()), y + width/2}, {0, y + width/2}})
	p.flush(c)
}

func (p *painter) vline(x, width float64, c plan.Color) {
	b := p.dst.Bounds()
	p.begin()
	p.subpath([][2]float64{{x - width/2, 0}, {x + width/2, 0}, {x + width/2, float64(b.Dy())}, {x - width/2, float64(b.Dy())}})
	p.flush(c)
}

// discPoints approximates a circle in screen space. Points run with
// decreasing angle to match the winding of the stroke quads.
func discPoints(cx, cy, r float64, n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := range pts {
		a := -2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}

// circlePoints approximates a world-space circle finely enough for its
// on-screen radius.
func circlePoints(center plan.Point, radius, scale float64) []plan.Point {
	n := segmentsFor(radius*scale, 2*math.Pi)
	pts := make([]plan.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = plan.Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return pts
}

// arcPoints samples an arc from its start to its end angle inclusive.
func arcPoints(a *plan.Arc, scale float64) []plan.Point {
	sweep := a.Sweep()
	n := segmentsFor(a.Radius*scale, sweep)
	pts := make([]plan.Point, n+1)
	for i := range pts {
		pts[i] = a.PointAt(a.StartAngle + sweep*float64(i)/float64(n))
	}
	return pts
}

// segmentsFor picks a polygon resolution keeping the chord error under
// about half a pixel.
func segmentsFor(radiusPx, sweep float64) int {
	n := 8
	if radiusPx > 0.5 {
		step := 2 * math.Acos(1-0.5/radiusPx)
		if step > 0 {
			n = int(math.Ceil(sweep / step))
		}
	}
	return max(8, min(n, 512))
}
