package history

import "errors"

// Sentinel errors for the history package.
var (
	// ErrNotImplemented is returned by commands that do not override
	// Execute or Undo. It signals a programming error.
	ErrNotImplemented = errors.New("history: command not implemented")

	// ErrClosed is returned when a closed Manager is used.
	ErrClosed = errors.New("history: manager closed")
)

// Command is a reversible unit of mutation.
//
// Execute performs the forward change and must leave every dependent
// structure exactly as a direct mutation would, because it runs both for
// the first application and for every redo. Undo performs the exact
// inverse.
type Command interface {
	Execute() error
	Undo() error
}

// Unimplemented can be embedded by commands under construction. Both
// methods fail with ErrNotImplemented until the embedding type overrides them.
type Unimplemented struct{}

// Execute returns ErrNotImplemented.
func (Unimplemented) Execute() error { return ErrNotImplemented }

// Undo returns ErrNotImplemented.
func (Unimplemented) Undo() error { return ErrNotImplemented }

// Func adapts a pair of functions to the Command interface.
type Func struct {
	Name   string
	Do     func() error
	Revert func() error
}

// Execute calls Do.
func (f Func) Execute() error {
	if f.Do == nil {
		return ErrNotImplemented
	}
	return f.Do()
}

// Undo calls Revert.
func (f Func) Undo() error {
	if f.Revert == nil {
		return ErrNotImplemented
	}
	return f.Revert()
}

func (f Func) String() string { return f.Name }
