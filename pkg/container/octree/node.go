package octree

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// pointKey is the identity of a stored point: the bit patterns of its three
// coordinates. Two NaN payloads with identical bits are the same point, and
// +0 and -0 are different points.
type pointKey [3]uint32

func keyOf(loc mgl32.Vec3) pointKey {
	return pointKey{
		math.Float32bits(loc[0]),
		math.Float32bits(loc[1]),
		math.Float32bits(loc[2]),
	}
}

// node is one cell of the subdivision. Its life is one-way: it starts empty,
// fills up to capacity, and on the first overflowing insert splits into
// eight children, one per octant of its box. Points stored before the split
// stay at this level; only later inserts are routed downward.
type node[L Locatable] struct {
	box      Box
	points   map[pointKey]L
	children *[8]node[L]
	split    bool
	capacity int
}

func newNode[L Locatable](box Box, capacity int) node[L] {
	return node[L]{
		box:      box,
		points:   make(map[pointKey]L),
		capacity: capacity,
	}
}

func (n *node[L]) covers(p L) bool {
	return n.box.Covers(p.Location())
}

func (n *node[L]) insert(p L) bool {
	if !n.covers(p) {
		return false
	}
	if len(n.points) < n.capacity {
		n.points[keyOf(p.Location())] = p
		return true
	}
	if !n.split {
		n.splitNode()
	}
	for i := range n.children {
		if n.children[i].insert(p) {
			return true
		}
	}
	return false
}

// splitNode creates the eight children in octant order. The points already
// stored at this level are not redistributed.
func (n *node[L]) splitNode() {
	boxes := n.box.Split()
	children := new([8]node[L])
	for i := range children {
		children[i] = newNode[L](boxes[i], n.capacity)
	}
	n.children = children
	n.split = true
}

func (n *node[L]) contains(p L) bool {
	_, ok := n.points[keyOf(p.Location())]
	return ok
}

// delete removes p from this node's own set. Only when the removal succeeded
// here does it cascade into the children; their results are discarded.
// Emptied children are never merged back.
func (n *node[L]) delete(p L) bool {
	k := keyOf(p.Location())
	if _, ok := n.points[k]; !ok {
		return false
	}
	delete(n.points, k)
	if n.split {
		for i := range n.children {
			n.children[i].delete(p)
		}
	}
	return true
}

// query collects every stored point whose location box covers, pruning
// subtrees whose own box the query box has no corner inside.
func (n *node[L]) query(box Box, acc map[pointKey]L) {
	if !n.box.Overlaps(box) {
		return
	}
	for k, p := range n.points {
		if box.Covers(p.Location()) {
			acc[k] = p
		}
	}
	if n.split {
		for i := range n.children {
			n.children[i].query(box, acc)
		}
	}
}

func (n *node[L]) overlaps(box Box) bool {
	return n.box.Overlaps(box)
}

func (n *node[L]) size() int {
	total := len(n.points)
	if n.split {
		for i := range n.children {
			total += n.children[i].size()
		}
	}
	return total
}

func (n *node[L]) depth() int {
	if !n.split {
		return 1
	}
	deepest := 0
	for i := range n.children {
		if d := n.children[i].depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// equal compares structure: box, own point set keys, split state and,
// recursively, the children.
func (n *node[L]) equal(other *node[L]) bool {
	if n.box != other.box || n.split != other.split || len(n.points) != len(other.points) {
		return false
	}
	for k := range n.points {
		if _, ok := other.points[k]; !ok {
			return false
		}
	}
	if n.split {
		for i := range n.children {
			if !n.children[i].equal(&other.children[i]) {
				return false
			}
		}
	}
	return true
}
