package plan

// Selection is the payload delivered to property panels and renderers
// when the selected shape changes. The zero value means "nothing selected".
type Selection struct {
	Kind  Kind
	Shape Shape
	ID    ID

	// ConnectedWalls is only set for walls: the walls sharing a node with
	// the selected one, at most one per endpoint.
	ConnectedWalls []*Wall
}

// Select builds the selection payload for sh.
func (s *Scene) Select(sh Shape) Selection {
	if sh == nil {
		return Selection{}
	}
	sel := Selection{Kind: sh.Kind(), Shape: sh, ID: sh.ID()}
	if w, ok := sh.(*Wall); ok {
		sel.ConnectedWalls = s.ConnectedWalls(w)
	}
	return sel
}

// IsEmpty reports whether nothing is selected.
func (sel Selection) IsEmpty() bool {
	return sel.Shape == nil
}

// Is reports whether sh is the selected shape.
func (sel Selection) Is(sh Shape) bool {
	return sel.Shape != nil && sh != nil && sel.ID == sh.ID()
}

// IsConnected reports whether w is highlighted as connected to the
// selected wall.
func (sel Selection) IsConnected(w *Wall) bool {
	for _, c := range sel.ConnectedWalls {
		if c.ID() == w.ID() {
			return true
		}
	}
	return false
}
