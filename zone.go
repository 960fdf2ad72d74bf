package plan

// Default zone display attributes.
var (
	DefaultZoneFill   = MustHex("#4a90d9")
	DefaultZoneBorder = MustHex("#1f4e79")
)

// Zone is a named, colored closed area. The display attributes are not
// geometrically load-bearing.
type Zone struct {
	base
	ring

	Name        string
	FillColor   Color
	BorderColor Color
	FillAlpha   float64
	BorderAlpha float64
}

// NewZone creates a closed zone with default colors and a fresh ID.
func NewZone(name string, points []Point) *Zone {
	return &Zone{
		base:        newBase(),
		ring:        newRing(points, len(points) >= 3),
		Name:        name,
		FillColor:   DefaultZoneFill,
		BorderColor: DefaultZoneBorder,
		FillAlpha:   0.25,
		BorderAlpha: 1,
	}
}

// Kind returns KindZone.
func (z *Zone) Kind() Kind { return KindZone }

// Fill returns the fill color with the zone's fill alpha applied.
func (z *Zone) Fill() Color {
	return z.FillColor.WithAlpha(z.FillAlpha)
}

// Border returns the border color with the zone's border alpha applied.
func (z *Zone) Border() Color {
	return z.BorderColor.WithAlpha(z.BorderAlpha)
}

// Clone returns a deep copy of the zone with the same ID.
func (z *Zone) Clone() Shape {
	c := *z
	c.ring = z.ring.clone()
	return &c
}

func (z *Zone) restore(src Shape) {
	*z = *src.Clone().(*Zone)
}

// Property returns a display attribute.
func (z *Zone) Property(p Property) (any, error) {
	switch p {
	case PropName:
		return z.Name, nil
	case PropFillColor:
		return z.FillColor, nil
	case PropBorderColor:
		return z.BorderColor, nil
	case PropFillAlpha:
		return z.FillAlpha, nil
	case PropBorderAlpha:
		return z.BorderAlpha, nil
	}
	return nil, unknownProperty(KindZone, p)
}

// SetProperty changes a display attribute.
func (z *Zone) SetProperty(p Property, v any) error {
	switch p {
	case PropName:
		s, err := stringValue(p, v)
		if err != nil {
			return err
		}
		z.Name = s
	case PropFillColor, PropBorderColor:
		c, err := colorValue(p, v)
		if err != nil {
			return err
		}
		if p == PropFillColor {
			z.FillColor = c
		} else {
			z.BorderColor = c
		}
	case PropFillAlpha, PropBorderAlpha:
		a, err := floatValue(p, v)
		if err != nil {
			return err
		}
		if p == PropFillAlpha {
			z.FillAlpha = a
		} else {
			z.BorderAlpha = a
		}
	default:
		return unknownProperty(KindZone, p)
	}
	return nil
}
