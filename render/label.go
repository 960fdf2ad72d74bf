// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"slices"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/plan/internal/cache"
)

// labelCacheSize bounds the number of memoized label widths.
const labelCacheSize = 512

// Run is a span of label text with a single direction, in visual order.
type Run struct {
	Text string
	RTL  bool
}

// Labeler measures and draws short dimension labels ("5.00 m", zone
// names). Widths come from HarfBuzz shaping so that kerning and complex
// scripts are accounted for; glyphs are drawn with x/image.
//
// A Labeler is not safe for concurrent use.
type Labeler struct {
	size   float64
	face   font.Face
	font   *gtfont.Font
	shaper shaping.HarfbuzzShaper
	widths *cache.Cache[string, float64]
}

// NewLabeler creates a labeler using the Go Regular font at size pixels.
func NewLabeler(size float64) (*Labeler, error) {
	return NewLabelerFromTTF(goregular.TTF, size)
}

// NewLabelerFromTTF creates a labeler from TrueType/OpenType font data.
func NewLabelerFromTTF(data []byte, size float64) (*Labeler, error) {
	if size <= 0 {
		return nil, fmt.Errorf("render: invalid label size %v", size)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("render: create face: %w", err)
	}

	gtFace, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		_ = face.Close()
		return nil, fmt.Errorf("render: parse font for shaping: %w", err)
	}

	return &Labeler{
		size:   size,
		face:   face,
		font:   gtFace.Font,
		widths: cache.New[string, float64](labelCacheSize),
	}, nil
}

// Size returns the font size in pixels.
func (l *Labeler) Size() float64 { return l.size }

// Runs splits s into directional runs in visual order. Text without
// right-to-left characters yields a single run.
func (l *Labeler) Runs(s string) []Run {
	if s == "" {
		return nil
	}
	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return []Run{{Text: s}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []Run{{Text: s}}
	}
	runs := make([]Run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		runs = append(runs, Run{Text: r.String(), RTL: r.Direction() == bidi.RightToLeft})
	}
	return runs
}

// Measure returns the advance width of s in pixels.
func (l *Labeler) Measure(s string) float64 {
	return l.widths.GetOrCreate(s, func() float64 {
		var w fixed.Int26_6
		for _, run := range l.Runs(s) {
			w += l.shapeRun(run)
		}
		return float64(w) / 64
	})
}

func (l *Labeler) shapeRun(run Run) fixed.Int26_6 {
	runes := []rune(run.Text)
	if len(runes) == 0 {
		return 0
	}
	dir := di.DirectionLTR
	if run.RTL {
		dir = di.DirectionRTL
	}
	out := l.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      gtfont.NewFace(l.font),
		Size:      fixed.Int26_6(l.size * 64),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	})
	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	return adv
}

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if r != ' ' && r != '\t' {
			return language.LookupScript(r)
		}
	}
	return language.Latin
}

// Draw renders s centered on pixel position (cx, cy).
func (l *Labeler) Draw(dst draw.Image, s string, cx, cy float64, c color.Color) {
	if s == "" {
		return
	}
	m := l.face.Metrics()
	w := l.Measure(s)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: l.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6((cx - w/2) * 64),
			Y: fixed.Int26_6(cy*64) + (m.Ascent-m.Descent)/2,
		},
	}
	for _, run := range l.Runs(s) {
		text := run.Text
		if run.RTL {
			r := []rune(text)
			slices.Reverse(r)
			text = string(r)
		}
		d.DrawString(text)
	}
}

// Close releases the font face.
func (l *Labeler) Close() error {
	return l.face.Close()
}
