package tool

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key the tools react to.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeyDelete
	KeyBackspace
	KeyZ
	KeyY
)

var keyNames = [...]string{
	KeyUnknown:   "unknown",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyDelete:    "delete",
	KeyBackspace: "backspace",
	KeyZ:         "z",
	KeyY:         "y",
}

// String returns the lower-case key name.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// KeyEvent is a key press with its modifiers.
// Meta is the Cmd key on macOS.
type KeyEvent struct {
	Key   Key
	Ctrl  bool
	Meta  bool
	Shift bool
}

// Command reports whether the platform command modifier (Ctrl or Cmd) is held.
func (ev KeyEvent) Command() bool {
	return ev.Ctrl || ev.Meta
}

// ParseKey parses a chord such as "escape", "ctrl+z" or "cmd+shift+z".
func ParseKey(s string) (KeyEvent, error) {
	var ev KeyEvent
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	for i, part := range parts {
		last := i == len(parts)-1
		switch {
		case part == "ctrl" && !last:
			ev.Ctrl = true
		case (part == "cmd" || part == "meta") && !last:
			ev.Meta = true
		case part == "shift" && !last:
			ev.Shift = true
		case last:
			switch part {
			case "esc":
				part = "escape"
			case "return":
				part = "enter"
			case "del":
				part = "delete"
			}
			for k, name := range keyNames {
				if name == part && Key(k) != KeyUnknown {
					ev.Key = Key(k)
				}
			}
			if ev.Key == KeyUnknown {
				return KeyEvent{}, fmt.Errorf("%w: key %q", ErrInvalidValue, s)
			}
		default:
			return KeyEvent{}, fmt.Errorf("%w: key %q", ErrInvalidValue, s)
		}
	}
	return ev, nil
}
