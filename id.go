package plan

import "github.com/google/uuid"

// ID is the stable identifier of a shape. It never changes over the
// shape's lifetime, including across undo and redo.
type ID uuid.UUID

// NewID returns a fresh random ID.
func NewID() ID {
	return ID(uuid.New())
}

// ParseID parses the canonical textual form of an ID.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, err
	}
	return ID(u), nil
}

// String returns the canonical textual form of the ID.
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id == ID{}
}
