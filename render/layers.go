// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"slices"
)

// layer is a single compositing layer.
type layer struct {
	img     *image.RGBA
	visible bool
}

// LayeredPixmapTarget is a target with z-ordered layers on top of a base
// image. Drawing goes to individual layers; Composite blends the visible
// ones onto the base in ascending z-order.
type LayeredPixmapTarget struct {
	base   *image.RGBA
	layers map[int]*layer
	zOrder []int // cached ascending z list, nil when stale
	width  int
	height int
}

// NewLayeredPixmapTarget creates a layered target with no layers.
func NewLayeredPixmapTarget(width, height int) *LayeredPixmapTarget {
	return &LayeredPixmapTarget{
		base:   image.NewRGBA(image.Rect(0, 0, width, height)),
		layers: make(map[int]*layer),
		width:  width,
		height: height,
	}
}

// Width returns the target width in pixels.
func (t *LayeredPixmapTarget) Width() int { return t.width }

// Height returns the target height in pixels.
func (t *LayeredPixmapTarget) Height() int { return t.height }

// Image returns the base image. Call Composite first to see the layers.
func (t *LayeredPixmapTarget) Image() *image.RGBA { return t.base }

// CreateLayer adds a transparent layer at z-order z.
func (t *LayeredPixmapTarget) CreateLayer(z int) (*PixmapTarget, error) {
	if _, exists := t.layers[z]; exists {
		return nil, fmt.Errorf("render: layer with z=%d already exists", z)
	}
	l := &layer{
		img:     image.NewRGBA(image.Rect(0, 0, t.width, t.height)),
		visible: true,
	}
	t.layers[z] = l
	t.zOrder = nil
	return NewPixmapTargetFromImage(l.img), nil
}

// RemoveLayer deletes the layer at z-order z.
func (t *LayeredPixmapTarget) RemoveLayer(z int) error {
	if _, exists := t.layers[z]; !exists {
		return fmt.Errorf("render: layer with z=%d does not exist", z)
	}
	delete(t.layers, z)
	t.zOrder = nil
	return nil
}

// Layer returns the target of the layer at z-order z, or nil.
func (t *LayeredPixmapTarget) Layer(z int) *PixmapTarget {
	l, ok := t.layers[z]
	if !ok {
		return nil
	}
	return NewPixmapTargetFromImage(l.img)
}

// SetLayerVisible shows or hides a layer without discarding its pixels.
func (t *LayeredPixmapTarget) SetLayerVisible(z int, visible bool) {
	if l, ok := t.layers[z]; ok {
		l.visible = visible
	}
}

// Layers returns the layer z-orders in ascending order.
func (t *LayeredPixmapTarget) Layers() []int {
	if t.zOrder == nil {
		t.zOrder = make([]int, 0, len(t.layers))
		for z := range t.layers {
			t.zOrder = append(t.zOrder, z)
		}
		slices.Sort(t.zOrder)
	}
	return slices.Clone(t.zOrder)
}

// Clear fills the base image with c.
func (t *LayeredPixmapTarget) Clear(c color.Color) {
	fill(t.base, c)
}

// ClearLayer fills the layer at z-order z with c.
func (t *LayeredPixmapTarget) ClearLayer(z int, c color.Color) error {
	l, ok := t.layers[z]
	if !ok {
		return fmt.Errorf("render: layer with z=%d does not exist", z)
	}
	fill(l.img, c)
	return nil
}

// Composite blends every visible layer onto the base with source-over.
func (t *LayeredPixmapTarget) Composite() {
	for _, z := range t.Layers() {
		if l := t.layers[z]; l.visible {
			draw.Draw(t.base, t.base.Bounds(), l.img, image.Point{}, draw.Over)
		}
	}
}

var _ Target = (*LayeredPixmapTarget)(nil)
