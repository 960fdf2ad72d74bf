package plan

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is an RGBA color with each component in the range [0, 1].
// Shapes use it for display attributes only; it never affects geometry.
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ParseHex parses a color from "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA".
// The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	digits := make([]uint32, len(hex))
	for i := 0; i < len(hex); i++ {
		v, ok := hexDigit(hex[i])
		if !ok {
			return Color{}, fmt.Errorf("plan: invalid hex color %q", s)
		}
		digits[i] = v
	}

	var r, g, b uint32
	a := uint32(255)
	switch len(digits) {
	case 3, 4:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
		if len(digits) == 4 {
			a = digits[3] * 17
		}
	case 6, 8:
		r = digits[0]<<4 | digits[1]
		g = digits[2]<<4 | digits[3]
		b = digits[4]<<4 | digits[5]
		if len(digits) == 8 {
			a = digits[6]<<4 | digits[7]
		}
	default:
		return Color{}, fmt.Errorf("plan: invalid hex color %q", s)
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// MustHex is like ParseHex but returns opaque black on malformed input.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		return RGB(0, 0, 0)
	}
	return c
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	}
	return 0, false
}

// WithAlpha returns the color with its alpha component replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// NRGBA converts the color to the standard non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Hex formats the color as "#RRGGBBAA".
func (c Color) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
