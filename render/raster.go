// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/plan"
)

// Layer z-orders used by Raster.
const (
	LayerScene   = 0
	LayerOverlay = 10
)

// ErrInvalidFrame is returned when a frame lacks its scene or viewport.
var ErrInvalidFrame = errors.New("render: frame needs a scene and a viewport")

// Raster is the CPU renderer.
//
// Committed shapes are drawn to a scene layer that is reused until the
// scene version or the camera changes. Hover, selection, previews and the
// cursor are drawn to an overlay layer on every call. Only shapes whose
// bounds intersect the visible world rectangle are drawn.
type Raster struct {
	style   Style
	labeler *Labeler

	layers *LayeredPixmapTarget
	cached struct {
		valid   bool
		scene   *plan.Scene
		version uint64
		view    viewState
	}
}

// NewRaster creates a CPU renderer. Labels are disabled when
// style.LabelSize is zero.
func NewRaster(style Style) (*Raster, error) {
	r := &Raster{style: style}
	if style.LabelSize > 0 {
		l, err := NewLabeler(style.LabelSize)
		if err != nil {
			return nil, err
		}
		r.labeler = l
	}
	return r, nil
}

// Style returns the renderer style.
func (r *Raster) Style() Style { return r.style }

// Invalidate forces the scene layer to be redrawn on the next call.
func (r *Raster) Invalidate() {
	r.cached.valid = false
}

// Render draws the frame to target.
func (r *Raster) Render(target Target, f Frame) error {
	if f.Scene == nil || f.Viewport == nil {
		return ErrInvalidFrame
	}
	if target == nil {
		return errors.New("render: nil target")
	}
	w, h := target.Width(), target.Height()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("render: invalid target size %dx%d", w, h)
	}
	if err := r.ensureLayers(w, h); err != nil {
		return err
	}

	view := f.Viewport.state()
	if !r.cached.valid || r.cached.scene != f.Scene || r.cached.version != f.Scene.Version() || r.cached.view != view {
		scene := r.layers.Layer(LayerScene)
		scene.Clear(color.Transparent)
		r.drawScene(scene.Image(), f)
		r.cached.valid = true
		r.cached.scene = f.Scene
		r.cached.version = f.Scene.Version()
		r.cached.view = view
		plan.Logger().Debug("render: scene layer redrawn", "version", f.Scene.Version())
	}

	overlay := r.layers.Layer(LayerOverlay)
	overlay.Clear(color.Transparent)
	r.drawOverlay(overlay.Image(), f)

	r.layers.Clear(r.style.Background.NRGBA())
	r.layers.Composite()
	draw.Draw(target.Image(), target.Image().Bounds(), r.layers.Image(), image.Point{}, draw.Src)
	return nil
}

func (r *Raster) ensureLayers(w, h int) error {
	if r.layers != nil && r.layers.Width() == w && r.layers.Height() == h {
		return nil
	}
	r.layers = NewLayeredPixmapTarget(w, h)
	r.cached.valid = false
	if _, err := r.layers.CreateLayer(LayerScene); err != nil {
		return err
	}
	_, err := r.layers.CreateLayer(LayerOverlay)
	return err
}

// Close releases the label font.
func (r *Raster) Close() error {
	if r.labeler == nil {
		return nil
	}
	return r.labeler.Close()
}

func (r *Raster) drawScene(dst *image.RGBA, f Frame) {
	p := newPainter(dst, f.Viewport)
	r.drawGrid(p, f.Viewport)

	walls := f.Scene.Walls()
	for _, sh := range f.Scene.Query(f.Viewport.VisibleWorld()) {
		r.drawShape(p, sh, walls, false)
	}

	if r.style.ShowNodes {
		for _, n := range f.Scene.Nodes().Nodes() {
			c := r.style.Endpoint
			if n.IsJunction() {
				c = r.style.Junction
			}
			p.dot(n.Point(), r.style.NodeRadius, c)
		}
	}
}

func (r *Raster) drawGrid(p *painter, vp *Viewport) {
	step := r.style.GridStep
	if step <= 0 {
		return
	}
	// Skip grids denser than four pixels per cell.
	for vp.MetersToPixels(step) < 4 {
		step *= 5
	}
	world := vp.VisibleWorld()
	for x := math.Floor(world.MinX/step) * step; x <= world.MaxX; x += step {
		sx, _ := vp.WorldToScreen(plan.Point{X: x})
		p.vline(sx, 1, r.gridColor(x, step))
	}
	for y := math.Floor(world.MinY/step) * step; y <= world.MaxY; y += step {
		_, sy := vp.WorldToScreen(plan.Point{Y: y})
		p.hline(sy, 1, r.gridColor(y, step))
	}
}

func (r *Raster) gridColor(v, step float64) plan.Color {
	if i := math.Round(v / step); math.Mod(i, 5) == 0 {
		return r.style.GridMajor
	}
	return r.style.Grid
}

// drawShape draws one shape. Previews are drawn in the preview color.
func (r *Raster) drawShape(p *painter, sh plan.Shape, walls []*plan.Wall, preview bool) {
	st := r.style
	pick := func(c plan.Color) plan.Color {
		if preview {
			return st.Preview
		}
		return c
	}
	scale := p.vp.Scale()

	switch s := sh.(type) {
	case *plan.Wall:
		outline := plan.BuildWallPolygon(s, walls).Outline()
		p.fill(outline, pick(st.Wall))
		p.stroke(outline, true, 1, pick(st.WallOutline))
		if st.ShowLengths {
			r.label(p, s.Start.Midpoint(s.End), fmt.Sprintf("%.2f m", s.Length), s.Length*scale)
		}
	case *plan.Circle:
		p.stroke(circlePoints(s.Center, s.Radius, scale), true, st.LineWidth, pick(st.Circle))
	case *plan.Polygon:
		p.stroke(s.Points, s.Closed, st.LineWidth, pick(st.Polygon))
	case *plan.Zone:
		if len(s.Points) >= 3 {
			p.fill(s.Points, pick(s.Fill()))
		}
		p.stroke(s.Points, s.Closed, st.LineWidth, pick(s.Border()))
		if len(s.Points) >= 3 {
			r.label(p, centroid(s.Points), s.Name, math.Inf(1))
		}
	case *plan.ZoneDivider:
		width := math.Max(s.Thickness*scale, 1)
		for _, seg := range s.Dash.Split(s.Start, s.End) {
			p.line(seg[0], seg[1], width, pick(st.Divider))
		}
	case *plan.Arc:
		p.stroke(arcPoints(s, scale), false, st.LineWidth, pick(st.Arc))
	}
}

// label draws text at a world point when it fits in room pixels.
func (r *Raster) label(p *painter, at plan.Point, text string, room float64) {
	if r.labeler == nil || text == "" {
		return
	}
	if r.labeler.Measure(text)+8 > room {
		return
	}
	x, y := p.vp.WorldToScreen(at)
	r.labeler.Draw(p.dst, text, x, y, r.style.Label.NRGBA())
}

func (r *Raster) drawOverlay(dst *image.RGBA, f Frame) {
	p := newPainter(dst, f.Viewport)
	walls := f.Scene.Walls()
	st := r.style

	if f.Hover != nil && !f.Selection.Is(f.Hover) {
		pts, closed := outlineOf(f.Hover, walls, p.vp.Scale())
		p.stroke(pts, closed, st.LineWidth+1, st.Hover)
	}
	for _, w := range f.Selection.ConnectedWalls {
		pts, closed := outlineOf(w, walls, p.vp.Scale())
		p.stroke(pts, closed, st.LineWidth+1, st.Connected)
	}
	if sel := f.Selection.Shape; sel != nil {
		pts, closed := outlineOf(sel, walls, p.vp.Scale())
		p.stroke(pts, closed, st.LineWidth+1.5, st.Selected)
	}

	for _, sh := range f.Previews {
		all := walls
		if w, ok := sh.(*plan.Wall); ok {
			all = append(walls[:len(walls):len(walls)], w)
		}
		r.drawShape(p, sh, all, true)
	}

	if f.HasMouse {
		p.dot(f.Mouse, st.NodeRadius, st.Cursor)
	}
}

// outlineOf returns the highlight outline of a shape.
func outlineOf(sh plan.Shape, walls []*plan.Wall, scale float64) ([]plan.Point, bool) {
	switch s := sh.(type) {
	case *plan.Wall:
		return plan.BuildWallPolygon(s, walls).Outline(), true
	case *plan.Circle:
		return circlePoints(s.Center, s.Radius, scale), true
	case *plan.Polygon:
		return s.Points, s.Closed
	case *plan.Zone:
		return s.Points, s.Closed
	case *plan.ZoneDivider:
		return []plan.Point{s.Start, s.End}, false
	case *plan.Arc:
		return arcPoints(s, scale), false
	}
	return nil, false
}

func centroid(points []plan.Point) plan.Point {
	var c plan.Point
	for _, q := range points {
		c = c.Add(q)
	}
	return c.Mul(1 / float64(len(points)))
}

var _ Renderer = (*Raster)(nil)
