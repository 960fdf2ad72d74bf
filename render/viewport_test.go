// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"
	"testing"

	"github.com/gogpu/plan"
)

func TestViewportRoundTrip(t *testing.T) {
	vp := NewViewport(800, 600, 50)
	vp.SetZoom(2.5)
	vp.PanBy(13, -7)

	tests := []plan.Point{{X: 0, Y: 0}, {X: 3.5, Y: -1.25}, {X: -10, Y: 42}}
	for _, p := range tests {
		x, y := vp.WorldToScreen(p)
		got := vp.ScreenToWorld(x, y)
		if !got.Approx(p, 1e-9) {
			t.Errorf("ScreenToWorld(WorldToScreen(%v)) = %v", p, got)
		}
	}
}

func TestViewportOriginCentered(t *testing.T) {
	vp := NewViewport(800, 600, 50)
	x, y := vp.WorldToScreen(plan.Point{})
	if x != 400 || y != 300 {
		t.Errorf("origin at (%v, %v), want (400, 300)", x, y)
	}
	x, _ = vp.WorldToScreen(plan.Point{X: 2})
	if x != 500 {
		t.Errorf("2 m right of origin at x=%v, want 500", x)
	}
}

func TestViewportPixelsToMeters(t *testing.T) {
	vp := NewViewport(100, 100, 50)
	if got := vp.PixelsToMeters(15); math.Abs(got-0.3) > 1e-12 {
		t.Errorf("PixelsToMeters(15) at zoom 1 = %v, want 0.3", got)
	}
	vp.SetZoom(3)
	if got := vp.PixelsToMeters(15); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("PixelsToMeters(15) at zoom 3 = %v, want 0.1", got)
	}
}

func TestViewportZoomClamp(t *testing.T) {
	vp := NewViewport(100, 100, 0)
	vp.SetZoom(1000)
	if vp.Zoom() != MaxZoom {
		t.Errorf("Zoom() = %v, want %v", vp.Zoom(), MaxZoom)
	}
	vp.SetZoom(0)
	if vp.Zoom() != MinZoom {
		t.Errorf("Zoom() = %v, want %v", vp.Zoom(), MinZoom)
	}
	if vp.Scale() != DefaultPixelsPerMeter*MinZoom {
		t.Errorf("Scale() = %v, want default pixels per meter", vp.Scale())
	}
}

func TestViewportZoomAtKeepsAnchor(t *testing.T) {
	vp := NewViewport(800, 600, 50)
	before := vp.ScreenToWorld(120, 80)
	vp.ZoomAt(120, 80, 2)
	after := vp.ScreenToWorld(120, 80)
	if !after.Approx(before, 1e-9) {
		t.Errorf("anchor moved from %v to %v", before, after)
	}
	if vp.Zoom() != 2 {
		t.Errorf("Zoom() = %v, want 2", vp.Zoom())
	}
}

func TestViewportVisibleWorld(t *testing.T) {
	vp := NewViewport(200, 100, 50)
	r := vp.VisibleWorld()
	want := plan.Rect{MinX: -2, MinY: -1, MaxX: 2, MaxY: 1}
	if r != want {
		t.Errorf("VisibleWorld() = %+v, want %+v", r, want)
	}
}

func TestViewportFit(t *testing.T) {
	vp := NewViewport(200, 200, 50)
	vp.Fit(plan.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 5}, 20)

	// 160 px available for 10 m.
	if math.Abs(vp.Scale()-16) > 1e-9 {
		t.Errorf("Scale() = %v, want 16", vp.Scale())
	}
	x, y := vp.WorldToScreen(plan.Point{X: 5, Y: 2.5})
	if math.Abs(x-100) > 1e-9 || math.Abs(y-100) > 1e-9 {
		t.Errorf("center at (%v, %v), want (100, 100)", x, y)
	}
}
