// Package octree provides an in-memory spatial index over 3-d points: a
// recursive octant subdivision with capacity-bounded nodes, supporting
// insertion, deletion, membership tests and axis-aligned range queries.
package octree

import "github.com/go-gl/mathgl/mgl32"

// Locatable is the only capability the index requires from a payload: it can
// report its coordinates. Two payloads are the same point iff the bit
// patterns of their three coordinates match exactly.
type Locatable interface {
	Location() mgl32.Vec3
}

const defaultCapacity = 8

type options struct {
	capacity int
}

// Option configures a Tree at construction.
type Option func(*options)

// WithCapacity overrides the number of points a node stores directly before
// it splits on the next overflowing insert. Values below one are ignored.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		if capacity > 0 {
			o.capacity = capacity
		}
	}
}

// Tree is the index facade over the root node. The region it covers is fixed
// at construction as the minimal box enclosing the initial point set; Insert
// rejects anything outside it.
//
// The tree stores whatever values of L it is given. Instantiate it with a
// pointer type to share payloads with caller-owned storage; the caller must
// then keep that storage alive as long as the tree is. The tree is not safe
// for concurrent mutation.
type Tree[L Locatable] struct {
	root node[L]
}

// New builds an index over points. The root box is reduced over the whole
// set first, then every point is offered to the root in order. Because the
// box is half-open, a point sitting exactly on the set's maximum corner is
// rejected at this stage, the same way a later out-of-range Insert would be.
func New[L Locatable](points []L, opts ...Option) *Tree[L] {
	o := options{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tree[L]{root: newNode[L](BoxOf(points), o.capacity)}
	for _, p := range points {
		t.root.insert(p)
	}
	return t
}

// Insert adds p to the index. It reports false when the indexed region does
// not cover p, or when no octant on the way down could accept it.
func (t *Tree[L]) Insert(p L) bool {
	return t.root.insert(p)
}

// Delete removes p where it is stored at the root's own level, reporting
// false when it is not there. A successful removal also cascades through the
// subtree, clearing any copies routed into children after earlier splits.
func (t *Tree[L]) Delete(p L) bool {
	return t.root.delete(p)
}

// Contains reports whether p is stored directly at the root node.
func (t *Tree[L]) Contains(p L) bool {
	return t.root.contains(p)
}

// Covers reports whether the indexed region covers p's location.
func (t *Tree[L]) Covers(p L) bool {
	return t.root.covers(p)
}

// Overlaps reports whether the indexed region overlaps box, by corner
// sampling (see Box.Overlaps).
func (t *Tree[L]) Overlaps(box Box) bool {
	return t.root.overlaps(box)
}

// Query returns the set of stored points whose locations box covers.
// Duplicate coordinates collapse to one entry; order is unspecified.
func (t *Tree[L]) Query(box Box) []L {
	acc := make(map[pointKey]L)
	t.root.query(box, acc)
	points := make([]L, 0, len(acc))
	for _, p := range acc {
		points = append(points, p)
	}
	return points
}

// Bounds returns the region the index covers.
func (t *Tree[L]) Bounds() Box {
	return t.root.box
}

// Len returns the number of points currently stored, over the whole tree.
func (t *Tree[L]) Len() int {
	return t.root.size()
}

// Depth returns the number of node levels, 1 for an unsplit root.
func (t *Tree[L]) Depth() int {
	return t.root.depth()
}

// Equal reports structural equality with other: same boxes, same per-node
// point sets, same split topology. It exists to keep behavioural tests
// cheap, not as a feature in its own right.
func (t *Tree[L]) Equal(other *Tree[L]) bool {
	return t.root.equal(&other.root)
}
