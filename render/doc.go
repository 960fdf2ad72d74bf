// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws a plan.Scene.
//
// The package defines the contract between the drawing core and its
// presentation layer: a Renderer consumes a Frame (the scene, the current
// selection, hover and pointer state, uncommitted tool previews and the
// camera) and draws it to a Target. Renderers only read; rendering the
// same Frame twice produces the same image.
//
// # Renderer Implementations
//
//   - Raster: CPU renderer drawing into an *image.RGBA with
//     golang.org/x/image/vector. Dimension labels are shaped with
//     go-text/typesetting and laid out with golang.org/x/text/unicode/bidi.
//
// # Targets
//
//   - PixmapTarget: a plain *image.RGBA.
//   - LayeredPixmapTarget: z-ordered layers composited onto a base image.
//     Raster keeps the scene on one layer and redraws it only when the
//     scene or the camera changes; selection, hover and previews live on
//     an overlay layer redrawn every frame.
//
// # Usage
//
//	vp := render.NewViewport(800, 600, 50)
//	r, err := render.NewRaster(render.DefaultStyle())
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	target := render.NewPixmapTarget(800, 600)
//	err = r.Render(target, render.Frame{Scene: scene, Viewport: vp})
//
// # Coordinate System
//
// World coordinates are meters with Y pointing down, matching screen
// space. The Viewport maps them to pixels through a pixels-per-meter
// scale, a zoom factor and a pan offset.
package render
