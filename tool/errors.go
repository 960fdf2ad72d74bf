package tool

import "errors"

// Sentinel errors for the tool package.
var (
	// ErrOutOfRange is returned when a numeric input is outside its valid range.
	ErrOutOfRange = errors.New("tool: value out of range")

	// ErrInvalidValue is returned when an input has the wrong type or format.
	ErrInvalidValue = errors.New("tool: invalid value")

	// ErrNoSelection is returned by edits that need a selected shape.
	ErrNoSelection = errors.New("tool: nothing selected")

	// ErrUnknownTool is returned when a tool name is not registered.
	ErrUnknownTool = errors.New("tool: unknown tool")
)
