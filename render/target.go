// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Target is where a renderer draws: a CPU-backed RGBA image.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Image returns the pixels. The image shares memory with the target.
	Image() *image.RGBA
}

// PixmapTarget is a render target backed by an *image.RGBA.
//
// Example:
//
//	target := render.NewPixmapTarget(800, 600)
//	renderer.Render(target, frame)
//	png.Encode(w, target.Image())
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a target of the given size.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// NewPixmapTargetFromImage wraps an existing image without copying.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int { return t.img.Bounds().Dx() }

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int { return t.img.Bounds().Dy() }

// Image returns the underlying *image.RGBA.
func (t *PixmapTarget) Image() *image.RGBA { return t.img }

// Clear fills the entire target with c.
func (t *PixmapTarget) Clear(c color.Color) {
	fill(t.img, c)
}

// Resize replaces the image with a new one of the given size. The contents
// are not preserved.
func (t *PixmapTarget) Resize(width, height int) {
	t.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

func fill(img *image.RGBA, c color.Color) {
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

var _ Target = (*PixmapTarget)(nil)
