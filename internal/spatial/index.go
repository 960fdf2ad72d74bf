// Package spatial provides an R-tree index over axis-aligned boxes,
// used for viewport culling and hit-test candidate lookup.
package spatial

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// minExtent keeps degenerate boxes (points, axis-aligned segments)
// insertable: the R-tree rejects non-positive side lengths.
const minExtent = 1e-9

// Box is an axis-aligned box in world coordinates.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

func (b Box) rect() rtreego.Rect {
	w := math.Max(b.MaxX-b.MinX, minExtent)
	h := math.Max(b.MaxY-b.MinY, minExtent)
	r, err := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, []float64{w, h})
	if err != nil {
		// Only reachable for NaN extents; index such boxes at the origin.
		r, _ = rtreego.NewRect(rtreego.Point{0, 0}, []float64{minExtent, minExtent})
	}
	return r
}

// entry is what the tree stores. Its rect is frozen at insert time so
// deletion finds the leaf even after the key's geometry moved.
type entry[K comparable] struct {
	key  K
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry[K]) Bounds() rtreego.Rect {
	return e.rect
}

// Index maps keys to boxes and answers intersection queries.
// Index is not safe for concurrent use.
type Index[K comparable] struct {
	tree    *rtreego.Rtree
	entries map[K]*entry[K]
}

// New creates an empty index.
func New[K comparable]() *Index[K] {
	return &Index[K]{
		tree:    rtreego.NewTree(2, 25, 50),
		entries: make(map[K]*entry[K]),
	}
}

// Len returns the number of indexed keys.
func (ix *Index[K]) Len() int {
	return len(ix.entries)
}

// Set inserts key with the given box, replacing any previous box.
func (ix *Index[K]) Set(key K, b Box) {
	ix.Delete(key)
	e := &entry[K]{key: key, rect: b.rect()}
	ix.entries[key] = e
	ix.tree.Insert(e)
}

// Delete removes key. It reports whether the key was present.
func (ix *Index[K]) Delete(key K) bool {
	e, ok := ix.entries[key]
	if !ok {
		return false
	}
	delete(ix.entries, key)
	ix.tree.Delete(e)
	return true
}

// Search returns the keys whose boxes intersect b, in no particular order.
func (ix *Index[K]) Search(b Box) []K {
	hits := ix.tree.SearchIntersect(b.rect())
	keys := make([]K, 0, len(hits))
	for _, h := range hits {
		keys = append(keys, h.(*entry[K]).key)
	}
	return keys
}
