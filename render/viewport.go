// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/gogpu/plan"
)

// Zoom limits.
const (
	MinZoom = 0.1
	MaxZoom = 50.0
)

// DefaultPixelsPerMeter is the scale at zoom 1.
const DefaultPixelsPerMeter = 50.0

// Viewport is the camera: it converts between world meters and screen
// pixels. Screen X = world X * scale + pan X, likewise for Y, where scale
// is PixelsPerMeter * zoom.
type Viewport struct {
	pixelsPerMeter float64
	zoom           float64
	panX, panY     float64
	width, height  int
}

// NewViewport creates a viewport of the given pixel size with the world
// origin centered. A non-positive pixelsPerMeter selects the default.
func NewViewport(width, height int, pixelsPerMeter float64) *Viewport {
	if pixelsPerMeter <= 0 {
		pixelsPerMeter = DefaultPixelsPerMeter
	}
	return &Viewport{
		pixelsPerMeter: pixelsPerMeter,
		zoom:           1,
		panX:           float64(width) / 2,
		panY:           float64(height) / 2,
		width:          width,
		height:         height,
	}
}

// Size returns the viewport size in pixels.
func (v *Viewport) Size() (width, height int) { return v.width, v.height }

// Resize changes the pixel size, keeping the pan offset.
func (v *Viewport) Resize(width, height int) {
	v.width, v.height = width, height
}

// Zoom returns the zoom factor.
func (v *Viewport) Zoom() float64 { return v.zoom }

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom].
func (v *Viewport) SetZoom(z float64) {
	v.zoom = clampZoom(z)
}

// Pan returns the screen position of the world origin.
func (v *Viewport) Pan() (x, y float64) { return v.panX, v.panY }

// SetPan moves the world origin to screen position (x, y).
func (v *Viewport) SetPan(x, y float64) {
	v.panX, v.panY = x, y
}

// PanBy shifts the view by (dx, dy) pixels.
func (v *Viewport) PanBy(dx, dy float64) {
	v.panX += dx
	v.panY += dy
}

// Scale returns the number of pixels per world meter at the current zoom.
func (v *Viewport) Scale() float64 {
	return v.pixelsPerMeter * v.zoom
}

// WorldToScreen converts a world point to pixel coordinates.
func (v *Viewport) WorldToScreen(p plan.Point) (x, y float64) {
	s := v.Scale()
	return p.X*s + v.panX, p.Y*s + v.panY
}

// ScreenToWorld converts pixel coordinates to a world point.
func (v *Viewport) ScreenToWorld(x, y float64) plan.Point {
	s := v.Scale()
	return plan.Point{X: (x - v.panX) / s, Y: (y - v.panY) / s}
}

// PixelsToMeters converts a screen distance to world meters. A fixed
// pixel tolerance therefore shrinks in world space as the zoom grows.
func (v *Viewport) PixelsToMeters(px float64) float64 {
	return px / v.Scale()
}

// MetersToPixels converts a world distance to pixels.
func (v *Viewport) MetersToPixels(m float64) float64 {
	return m * v.Scale()
}

// VisibleWorld returns the world rectangle covered by the viewport.
func (v *Viewport) VisibleWorld() plan.Rect {
	return plan.RectFromPoints(
		v.ScreenToWorld(0, 0),
		v.ScreenToWorld(float64(v.width), float64(v.height)),
	)
}

// ZoomAt multiplies the zoom by factor while keeping the world point under
// screen position (x, y) in place.
func (v *Viewport) ZoomAt(x, y, factor float64) {
	anchor := v.ScreenToWorld(x, y)
	v.SetZoom(v.zoom * factor)
	s := v.Scale()
	v.panX = x - anchor.X*s
	v.panY = y - anchor.Y*s
}

// Fit zooms and pans so that r fills the viewport with a margin in pixels
// on every side. Empty or degenerate rectangles only center the view.
func (v *Viewport) Fit(r plan.Rect, margin float64) {
	if r.IsEmpty() {
		return
	}
	availW := float64(v.width) - 2*margin
	availH := float64(v.height) - 2*margin
	if w, h := r.Width(), r.Height(); w > 0 && h > 0 && availW > 0 && availH > 0 {
		v.SetZoom(math.Min(availW/w, availH/h) / v.pixelsPerMeter)
	}
	c := r.Center()
	s := v.Scale()
	v.panX = float64(v.width)/2 - c.X*s
	v.panY = float64(v.height)/2 - c.Y*s
}

func clampZoom(z float64) float64 {
	if math.IsNaN(z) {
		return 1
	}
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}

// viewState identifies everything that affects the world-to-screen mapping.
type viewState struct {
	scale, panX, panY float64
	width, height     int
}

func (v *Viewport) state() viewState {
	return viewState{scale: v.Scale(), panX: v.panX, panY: v.panY, width: v.width, height: v.height}
}
