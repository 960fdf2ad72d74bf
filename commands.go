package plan

import "fmt"

// The commands below are the reversible mutations of a Scene. They satisfy
// history.Command and follow one template for every shape kind: the
// constructor captures references and values, Execute applies the change,
// Undo applies its exact inverse. All of them address shapes by ID, never
// by a cached list position.

// AddCommand inserts a shape into a scene.
type AddCommand struct {
	scene *Scene
	shape Shape
	index int
}

// NewAddCommand returns a command adding sh to scene.
func NewAddCommand(scene *Scene, sh Shape) *AddCommand {
	return &AddCommand{scene: scene, shape: sh, index: -1}
}

// Execute appends the shape and records the position it landed at.
func (c *AddCommand) Execute() error {
	at, err := c.scene.Insert(c.shape, -1)
	if err != nil {
		return err
	}
	c.index = at
	return nil
}

// Undo removes the shape again.
func (c *AddCommand) Undo() error {
	_, _, err := c.scene.Remove(c.shape.ID())
	return err
}

// Shape returns the shape being added.
func (c *AddCommand) Shape() Shape { return c.shape }

// Index returns the position recorded by the last Execute, or -1.
func (c *AddCommand) Index() int { return c.index }

func (c *AddCommand) String() string {
	return fmt.Sprintf("add %s %s", c.shape.Kind(), c.shape.ID())
}

// DeleteCommand removes a shape from a scene.
type DeleteCommand struct {
	scene    *Scene
	id       ID
	shape    Shape
	index    int
	reselect func(Shape)
}

// NewDeleteCommand returns a command deleting the shape with the given ID.
func NewDeleteCommand(scene *Scene, id ID) *DeleteCommand {
	return &DeleteCommand{scene: scene, id: id, index: -1}
}

// WithReselect sets a callback that re-selects the shape when the
// deletion is undone.
func (c *DeleteCommand) WithReselect(fn func(Shape)) *DeleteCommand {
	c.reselect = fn
	return c
}

// Execute looks the shape up by ID, records its current position and
// removes it.
func (c *DeleteCommand) Execute() error {
	sh, at, err := c.scene.Remove(c.id)
	if err != nil {
		return err
	}
	c.shape, c.index = sh, at
	return nil
}

// Undo re-inserts the shape at its recorded position.
func (c *DeleteCommand) Undo() error {
	if c.shape == nil {
		return fmt.Errorf("%w: %s was never deleted", ErrShapeNotFound, c.id)
	}
	if _, err := c.scene.Insert(c.shape, c.index); err != nil {
		return err
	}
	if c.reselect != nil {
		c.reselect(c.shape)
	}
	return nil
}

// Index returns the position recorded by the last Execute, or -1.
func (c *DeleteCommand) Index() int { return c.index }

func (c *DeleteCommand) String() string {
	return fmt.Sprintf("delete %s", c.id)
}

// ModifyCommand changes one property of a shape.
//
// The full shape state is captured at construction, before the new value
// is applied, so Undo restores it exactly even for edits that derive other
// fields (a wall length edit moves its end point).
type ModifyCommand struct {
	scene    *Scene
	id       ID
	property Property
	value    any
	old      any
	before   Shape
}

// NewModifyCommand returns a command setting property p of sh to v.
func NewModifyCommand(scene *Scene, sh Shape, p Property, v any) *ModifyCommand {
	old, _ := sh.Property(p)
	return &ModifyCommand{
		scene:    scene,
		id:       sh.ID(),
		property: p,
		value:    v,
		old:      old,
		before:   sh.Clone(),
	}
}

// Execute applies the new value.
func (c *ModifyCommand) Execute() error {
	sh, ok := c.scene.Get(c.id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrShapeNotFound, c.id)
	}
	if err := sh.SetProperty(c.property, c.value); err != nil {
		sh.restore(c.before)
		return err
	}
	return c.scene.Touch(c.id)
}

// Undo restores the state captured at construction.
func (c *ModifyCommand) Undo() error {
	sh, ok := c.scene.Get(c.id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrShapeNotFound, c.id)
	}
	sh.restore(c.before)
	return c.scene.Touch(c.id)
}

// Old returns the property value before the change.
func (c *ModifyCommand) Old() any { return c.old }

// New returns the property value being applied.
func (c *ModifyCommand) New() any { return c.value }

func (c *ModifyCommand) String() string {
	return fmt.Sprintf("modify %s %s: %v -> %v", c.id, c.property, c.old, c.value)
}
