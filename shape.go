package plan

// Kind identifies the type of a shape.
type Kind uint8

const (
	KindWall    Kind = iota // Wall segment with thickness
	KindCircle              // Circle by center and radius
	KindPolygon             // Open or closed polyline
	KindZone                // Named, colored closed area
	KindDivider             // Dashed line splitting a zone
	KindArc                 // Counter-clockwise circular arc
)

// Kinds lists every shape kind in drawing order.
var Kinds = [...]Kind{KindZone, KindPolygon, KindDivider, KindWall, KindCircle, KindArc}

var kindNames = [...]string{
	KindWall:    "wall",
	KindCircle:  "circle",
	KindPolygon: "polygon",
	KindZone:    "zone",
	KindDivider: "divider",
	KindArc:     "arc",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Property names an editable attribute of a shape.
type Property string

// Editable properties. Numeric properties take float64 values in meters
// or radians, colors take a Color or a hex string.
const (
	PropThickness   Property = "thickness"
	PropLength      Property = "length"
	PropRadius      Property = "radius"
	PropStartAngle  Property = "start_angle"
	PropEndAngle    Property = "end_angle"
	PropName        Property = "name"
	PropFillColor   Property = "fill_color"
	PropBorderColor Property = "border_color"
	PropFillAlpha   Property = "fill_alpha"
	PropBorderAlpha Property = "border_alpha"
)

// Shape is implemented by every drawable record in a Scene.
//
// Shapes are mutable. Derived measurements (length, area, ...) are
// recomputed by every setter, so reading a field after a mutation always
// sees consistent values.
type Shape interface {
	// ID returns the stable identifier of the shape.
	ID() ID

	// Kind returns the shape type.
	Kind() Kind

	// Bounds returns the axis-aligned bounding box in world meters.
	Bounds() Rect

	// Clone returns a deep copy carrying the same ID.
	Clone() Shape

	// Property returns the current value of an editable property.
	Property(p Property) (any, error)

	// SetProperty changes an editable property and recomputes derived values.
	SetProperty(p Property, v any) error

	// restore overwrites the receiver's state with src, which must be a
	// shape of the same concrete type. Commands use it for exact undo.
	restore(src Shape)
}

// base carries the identity shared by all shapes.
type base struct {
	id ID
}

func newBase() base {
	return base{id: NewID()}
}

// ID returns the stable identifier of the shape.
func (b *base) ID() ID { return b.id }

func floatValue(p Property, v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	}
	return 0, &PropertyTypeError{Property: p, Value: v}
}

func stringValue(p Property, v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", &PropertyTypeError{Property: p, Value: v}
}

func colorValue(p Property, v any) (Color, error) {
	switch x := v.(type) {
	case Color:
		return x, nil
	case string:
		c, err := ParseHex(x)
		if err != nil {
			return Color{}, &PropertyTypeError{Property: p, Value: v}
		}
		return c, nil
	}
	return Color{}, &PropertyTypeError{Property: p, Value: v}
}
