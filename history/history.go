// Package history implements the undo/redo engine.
//
// A Manager keeps two stacks of commands. Executing a command pushes it on
// the undo stack and discards the redo branch; Undo moves the top command
// to the redo stack and Redo moves it back. Undo stack plus reversed redo
// stack always form one linear timeline.
//
// A Manager is an explicitly owned object: create one per canvas with New
// and hand it to every tool, then Close it when the canvas goes away.
package history

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/plan"
)

// DefaultMaxSize is the default undo depth.
const DefaultMaxSize = 100

// Manager executes commands and tracks their history.
// It is not safe for concurrent use.
type Manager struct {
	undo    []Command
	redo    []Command
	maxSize int
	logger  *slog.Logger

	// busy is set while Undo or Redo runs a command, so that a command
	// whose side effects dispatch further commands cannot re-enter history.
	busy   bool
	closed bool

	listeners []func(undoLen, redoLen int)
}

// Option configures a Manager.
type Option func(*Manager)

// WithMaxSize sets the undo depth. Values below 1 keep the default.
func WithMaxSize(n int) Option {
	return func(m *Manager) {
		if n >= 1 {
			m.maxSize = n
		}
	}
}

// WithLogger sets the logger. By default the plan package logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithListener registers fn to be called whenever the stack sizes change,
// e.g. to enable or disable undo/redo buttons.
func WithListener(fn func(undoLen, redoLen int)) Option {
	return func(m *Manager) {
		m.listeners = append(m.listeners, fn)
	}
}

// New creates an empty Manager.
func New(opts ...Option) *Manager {
	m := &Manager{maxSize: DefaultMaxSize, logger: plan.Logger()}
	for _, opt := range opts {
		opt(m)
	}
	m.logger.Info("history: created", "maxSize", m.maxSize)
	return m
}

// Execute runs cmd and records it. While an undo or redo is in progress
// the call is ignored. A command that fails is not recorded and leaves
// both stacks untouched.
func (m *Manager) Execute(cmd Command) error {
	if m.closed {
		return ErrClosed
	}
	if m.busy {
		m.logger.Debug("history: execute ignored during undo/redo", "command", describe(cmd))
		return nil
	}

	if err := run(cmd.Execute); err != nil {
		return fmt.Errorf("history: execute %s: %w", describe(cmd), err)
	}

	m.undo = append(m.undo, cmd)
	clear(m.redo)
	m.redo = m.redo[:0]
	if over := len(m.undo) - m.maxSize; over > 0 {
		clear(m.undo[:over])
		m.undo = m.undo[over:]
	}
	m.logger.Debug("history: executed", "command", describe(cmd), "undo", len(m.undo))
	m.notify()
	return nil
}

// Undo reverts the most recent command. It is a no-op when there is
// nothing to undo.
//
// If the command fails (error or panic) it is dropped from history, the
// failure is logged and returned, and the manager stays usable.
func (m *Manager) Undo() error {
	if m.closed {
		return ErrClosed
	}
	if len(m.undo) == 0 || m.busy {
		return nil
	}

	cmd := m.undo[len(m.undo)-1]
	m.undo[len(m.undo)-1] = nil
	m.undo = m.undo[:len(m.undo)-1]

	m.busy = true
	defer func() { m.busy = false }()

	if err := run(cmd.Undo); err != nil {
		m.logger.Warn("history: undo failed, command dropped", "command", describe(cmd), "error", err)
		m.notify()
		return fmt.Errorf("history: undo %s: %w", describe(cmd), err)
	}

	m.redo = append(m.redo, cmd)
	m.logger.Debug("history: undone", "command", describe(cmd), "redo", len(m.redo))
	m.notify()
	return nil
}

// Redo re-applies the most recently undone command. It is a no-op when
// there is nothing to redo. Failures are handled as in Undo.
func (m *Manager) Redo() error {
	if m.closed {
		return ErrClosed
	}
	if len(m.redo) == 0 || m.busy {
		return nil
	}

	cmd := m.redo[len(m.redo)-1]
	m.redo[len(m.redo)-1] = nil
	m.redo = m.redo[:len(m.redo)-1]

	m.busy = true
	defer func() { m.busy = false }()

	if err := run(cmd.Execute); err != nil {
		m.logger.Warn("history: redo failed, command dropped", "command", describe(cmd), "error", err)
		m.notify()
		return fmt.Errorf("history: redo %s: %w", describe(cmd), err)
	}

	m.undo = append(m.undo, cmd)
	m.logger.Debug("history: redone", "command", describe(cmd), "undo", len(m.undo))
	m.notify()
	return nil
}

// CanUndo reports whether Undo would do anything.
func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

// CanRedo reports whether Redo would do anything.
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// UndoLen returns the depth of the undo stack.
func (m *Manager) UndoLen() int { return len(m.undo) }

// RedoLen returns the depth of the redo stack.
func (m *Manager) RedoLen() int { return len(m.redo) }

// MaxSize returns the undo depth limit.
func (m *Manager) MaxSize() int { return m.maxSize }

// InProgress reports whether an undo or redo is currently running.
func (m *Manager) InProgress() bool { return m.busy }

// Clear drops both stacks without touching any scene state.
func (m *Manager) Clear() {
	m.undo, m.redo = nil, nil
	m.notify()
}

// Close clears the history and makes every further call fail with
// ErrClosed. Closing twice is harmless.
func (m *Manager) Close() error {
	if m.closed {
		return nil
	}
	m.undo, m.redo = nil, nil
	m.closed = true
	m.listeners = nil
	m.logger.Info("history: closed")
	return nil
}

func (m *Manager) notify() {
	for _, fn := range m.listeners {
		fn(len(m.undo), len(m.redo))
	}
}

// run calls fn, turning a panic into an error.
func run(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("panic: %w", e)
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

func describe(cmd Command) string {
	if s, ok := cmd.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", cmd)
}

// IsNotImplemented reports whether err stems from an Unimplemented command.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}
