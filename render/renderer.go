// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/plan"

// Renderer draws frames to a render target.
//
// Every drawing backend implements this one contract. Renderers never
// mutate the scene or the selection; they may keep caches between calls
// but must produce the same output for the same Frame.
//
// Thread Safety: Renderers are NOT thread-safe. Each renderer should be
// used from a single goroutine.
type Renderer interface {
	// Render draws the frame to the target.
	Render(target Target, frame Frame) error

	// Close releases resources held by the renderer.
	Close() error
}

// Frame is everything a renderer reads to draw one frame.
type Frame struct {
	// Scene holds the committed shapes. Required.
	Scene *plan.Scene

	// Viewport maps world meters to pixels. Required.
	Viewport *Viewport

	// Selection is the selected shape with its connected walls.
	Selection plan.Selection

	// Hover is the shape under the pointer, or nil.
	Hover plan.Shape

	// Mouse is the pointer position in world coordinates, valid when
	// HasMouse is set.
	Mouse    plan.Point
	HasMouse bool

	// Previews are the uncommitted shapes of the active tool.
	Previews []plan.Shape
}
