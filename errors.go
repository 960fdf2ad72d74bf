package plan

import (
	"errors"
	"fmt"
)

// Sentinel errors for the plan package.
var (
	// ErrShapeNotFound is returned when an ID does not name a shape in the scene.
	ErrShapeNotFound = errors.New("plan: shape not found")

	// ErrDuplicateShape is returned when a shape is inserted twice.
	ErrDuplicateShape = errors.New("plan: shape already in scene")

	// ErrUnknownProperty is returned for a property a shape does not have.
	ErrUnknownProperty = errors.New("plan: unknown property")
)

// PropertyTypeError is returned when a property value has the wrong type.
type PropertyTypeError struct {
	Property Property
	Value    any
}

func (e *PropertyTypeError) Error() string {
	return fmt.Sprintf("plan: invalid value %v (%T) for property %s", e.Value, e.Value, e.Property)
}

func unknownProperty(k Kind, p Property) error {
	return fmt.Errorf("%w: %s has no %q", ErrUnknownProperty, k, p)
}
