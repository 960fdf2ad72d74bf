// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/plan"

// Style holds the colors and sizes used by Raster.
type Style struct {
	Background plan.Color
	Grid       plan.Color
	GridMajor  plan.Color

	// GridStep is the minor grid spacing in meters; every fifth line is
	// major. Zero disables the grid.
	GridStep float64

	Wall        plan.Color
	WallOutline plan.Color
	Circle      plan.Color
	Polygon     plan.Color
	Divider     plan.Color
	Arc         plan.Color
	Label       plan.Color
	Endpoint    plan.Color
	Junction    plan.Color

	Selected  plan.Color
	Connected plan.Color
	Hover     plan.Color
	Preview   plan.Color
	Cursor    plan.Color

	// LineWidth is the stroke width in pixels for outlines and curves.
	LineWidth float64

	// NodeRadius is the radius in pixels of node markers.
	NodeRadius float64

	// LabelSize is the label font size in pixels; zero disables labels.
	LabelSize float64

	ShowNodes   bool
	ShowLengths bool
}

// DefaultStyle returns a light drafting style.
func DefaultStyle() Style {
	return Style{
		Background:  plan.MustHex("#ffffff"),
		Grid:        plan.MustHex("#eef1f4"),
		GridMajor:   plan.MustHex("#d5dbe1"),
		GridStep:    1,
		Wall:        plan.MustHex("#4d4d4d"),
		WallOutline: plan.MustHex("#1a1a1a"),
		Circle:      plan.MustHex("#2e7d32"),
		Polygon:     plan.MustHex("#6a1b9a"),
		Divider:     plan.MustHex("#546e7a"),
		Arc:         plan.MustHex("#ef6c00"),
		Label:       plan.MustHex("#263238"),
		Endpoint:    plan.MustHex("#e53935"),
		Junction:    plan.MustHex("#1e88e5"),
		Selected:    plan.MustHex("#ff9800"),
		Connected:   plan.MustHex("#ffc107b0"),
		Hover:       plan.MustHex("#03a9f4"),
		Preview:     plan.MustHex("#42a5f5a0"),
		Cursor:      plan.MustHex("#e53935"),
		LineWidth:   1.5,
		NodeRadius:  3,
		LabelSize:   12,
		ShowNodes:   true,
		ShowLengths: true,
	}
}
