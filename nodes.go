package plan

import "slices"

// Node is a deduplicated wall endpoint location.
type Node struct {
	X, Y float64

	// WallIDs lists the walls terminating here. Order is irrelevant and
	// an ID appears at most once.
	WallIDs []ID

	// IsIntersection is set while the node holds at most one wall and is
	// cleared as soon as a second wall attaches.
	IsIntersection bool
}

// Point returns the node location.
func (n *Node) Point() Point {
	return Point{X: n.X, Y: n.Y}
}

// IsEndpoint reports whether exactly one wall ends here, which makes the
// node a snap target.
func (n *Node) IsEndpoint() bool {
	return len(n.WallIDs) == 1
}

// IsJunction reports whether two or more walls meet here.
func (n *Node) IsJunction() bool {
	return len(n.WallIDs) >= 2
}

// NodeGraph tracks wall endpoint connectivity.
//
// Walls are added incrementally with Update. Removal is never incremental:
// the owner calls Rebuild with the remaining walls, which keeps junction
// bookkeeping trivially correct at the cost of an O(walls) pass.
type NodeGraph struct {
	nodes []*Node
}

// NewNodeGraph creates an empty graph.
func NewNodeGraph() *NodeGraph {
	return &NodeGraph{}
}

// Len returns the number of nodes.
func (g *NodeGraph) Len() int {
	return len(g.nodes)
}

// Nodes returns the nodes in creation order. The slice must not be modified.
func (g *NodeGraph) Nodes() []*Node {
	return g.nodes
}

// NodeAt returns the node matching p, or nil.
func (g *NodeGraph) NodeAt(p Point) *Node {
	for _, n := range g.nodes {
		if ExactPointMatch(n.Point(), p) {
			return n
		}
	}
	return nil
}

// Update registers both connection points of w. Calling it twice for the
// same wall changes nothing.
func (g *NodeGraph) Update(w *Wall) {
	g.attach(w.OriginalStart, w.ID())
	g.attach(w.OriginalEnd, w.ID())
}

func (g *NodeGraph) attach(p Point, id ID) {
	n := g.NodeAt(p)
	if n == nil {
		g.nodes = append(g.nodes, &Node{X: p.X, Y: p.Y, WallIDs: []ID{id}, IsIntersection: true})
		return
	}
	if !slices.Contains(n.WallIDs, id) {
		n.WallIDs = append(n.WallIDs, id)
	}
	if len(n.WallIDs) >= 2 {
		n.IsIntersection = false
	}
}

// Rebuild discards every node and registers walls in order.
func (g *NodeGraph) Rebuild(walls []*Wall) {
	g.nodes = g.nodes[:0]
	for _, w := range walls {
		g.Update(w)
	}
}

// FindNearestEndpoint returns the closest true endpoint strictly within
// threshold of p, or nil. Junctions are never returned, so a corner that
// is already joined cannot be chained through by accident.
func (g *NodeGraph) FindNearestEndpoint(p Point, threshold float64) *Node {
	var (
		best     *Node
		bestDist = threshold
	)
	for _, n := range g.nodes {
		if !n.IsEndpoint() {
			continue
		}
		if d := n.Point().Distance(p); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}

// ConnectedWalls returns the walls sharing a node with w: at most one per
// endpoint, the first other wall registered at that node. walls resolves
// IDs and is usually the scene's wall list.
func (g *NodeGraph) ConnectedWalls(w *Wall, walls []*Wall) []*Wall {
	byID := make(map[ID]*Wall, len(walls))
	for _, other := range walls {
		byID[other.ID()] = other
	}

	var connected []*Wall
	for _, p := range [...]Point{w.OriginalStart, w.OriginalEnd} {
		n := g.NodeAt(p)
		if n == nil {
			continue
		}
		for _, id := range n.WallIDs {
			other, ok := byID[id]
			if !ok || id == w.ID() || slices.Contains(connected, other) {
				continue
			}
			connected = append(connected, other)
			break
		}
	}
	return connected
}
