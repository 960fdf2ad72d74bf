package tool

import (
	"fmt"
	"slices"

	"github.com/gogpu/plan"
	"github.com/gogpu/plan/history"
)

// Controller owns one tool per editing mode and routes input to the
// active one. It handles the undo/redo shortcuts itself:
//
//	Ctrl/Cmd+Z        undo
//	Ctrl/Cmd+Y        redo
//	Ctrl/Cmd+Shift+Z  redo
type Controller struct {
	scene *plan.Scene
	hist  *history.Manager

	tools    map[string]Tool
	names    []string
	active   Tool
	selector *SelectTool
}

// NewController creates a controller with the standard tool set. The
// select tool is active initially. hist and vp may be nil.
func NewController(scene *plan.Scene, hist *history.Manager, vp Viewport, settings Settings) *Controller {
	c := &Controller{
		scene: scene,
		hist:  hist,
		tools: make(map[string]Tool),
	}
	c.selector = NewSelectTool(scene, hist, vp, settings)
	c.Register(c.selector)
	c.Register(NewWallTool(scene, hist, vp, settings))
	c.Register(NewCircleTool(scene, hist, vp, settings))
	c.Register(NewPolygonTool(scene, hist, vp, settings))
	c.Register(NewZoneTool(scene, hist, vp, settings))
	c.Register(NewDividerTool(scene, hist, vp, settings))
	c.Register(NewArcTool(scene, hist, vp, settings))
	c.active = c.selector
	return c
}

// Register adds t, replacing any tool with the same name.
func (c *Controller) Register(t Tool) {
	name := t.Name()
	if _, ok := c.tools[name]; !ok {
		c.names = append(c.names, name)
	}
	c.tools[name] = t
}

// Names returns the registered tool names in registration order.
func (c *Controller) Names() []string {
	return slices.Clone(c.names)
}

// Tool returns the tool registered under name.
func (c *Controller) Tool(name string) (Tool, bool) {
	t, ok := c.tools[name]
	return t, ok
}

// Active returns the active tool.
func (c *Controller) Active() Tool { return c.active }

// Selector returns the select tool.
func (c *Controller) Selector() *SelectTool { return c.selector }

// Use activates the named tool. The previous tool's uncommitted state is
// discarded.
func (c *Controller) Use(name string) error {
	t, ok := c.tools[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	if t == c.active {
		return nil
	}
	if c.active != nil {
		c.active.Reset()
	}
	c.active = t
	plan.Logger().Debug("tool: activated", "tool", name)
	return nil
}

// PointerDown forwards a click to the active tool.
func (c *Controller) PointerDown(p plan.Point) {
	c.active.PointerDown(p)
}

// PointerMove forwards pointer motion to the active tool.
func (c *Controller) PointerMove(p plan.Point) {
	c.active.PointerMove(p)
}

// KeyDown handles the history shortcuts and forwards everything else to
// the active tool. It reports whether the key was consumed.
func (c *Controller) KeyDown(ev KeyEvent) bool {
	if ev.Command() {
		switch {
		case ev.Key == KeyZ && !ev.Shift:
			c.logError("undo", c.Undo())
			return true
		case ev.Key == KeyY, ev.Key == KeyZ && ev.Shift:
			c.logError("redo", c.Redo())
			return true
		}
	}
	return c.active.KeyDown(ev)
}

// Undo reverts the last command. Uncommitted drawing state is discarded
// first and the selection is refreshed afterwards.
func (c *Controller) Undo() error {
	if c.hist == nil {
		return nil
	}
	c.active.Reset()
	err := c.hist.Undo()
	c.selector.Refresh()
	return err
}

// Redo re-applies the last undone command.
func (c *Controller) Redo() error {
	if c.hist == nil {
		return nil
	}
	c.active.Reset()
	err := c.hist.Redo()
	c.selector.Refresh()
	return err
}

// Preview returns the active tool's uncommitted shapes.
func (c *Controller) Preview() []plan.Shape {
	return c.active.Preview()
}

// Selection returns the current selection.
func (c *Controller) Selection() plan.Selection {
	return c.selector.Selection()
}

func (c *Controller) logError(op string, err error) {
	if err != nil {
		plan.Logger().Warn("tool: "+op+" failed", "error", err)
	}
}
