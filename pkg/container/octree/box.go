package octree

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Box is an axis-aligned region of 3-d space delimited by its minimum and
// maximum corners. Coverage is half-open: the minimum corner belongs to the
// box, the maximum corner does not.
type Box struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// EmptyBox returns the inverted sentinel box that covers nothing. A min/max
// reduction seeded with it yields a degenerate box at the first point.
func EmptyBox() Box {
	return Box{
		Min: mgl32.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: mgl32.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

// BoxOf reduces the locations of points to the smallest box enclosing all of
// them. An empty input yields EmptyBox.
func BoxOf[L Locatable](points []L) Box {
	box := EmptyBox()
	for _, p := range points {
		loc := p.Location()
		for i := 0; i < 3; i++ {
			if loc[i] < box.Min[i] {
				box.Min[i] = loc[i]
			}
			if loc[i] > box.Max[i] {
				box.Max[i] = loc[i]
			}
		}
	}
	return box
}

// Covers reports whether loc lies inside the box, maximum corner excluded.
func (b Box) Covers(loc mgl32.Vec3) bool {
	return b.Min[0] <= loc[0] && loc[0] < b.Max[0] &&
		b.Min[1] <= loc[1] && loc[1] < b.Max[1] &&
		b.Min[2] <= loc[2] && loc[2] < b.Max[2]
}

// Overlaps samples the eight corners of other against b and reports true as
// soon as one of them is covered. A box strictly enclosing b, with no corner
// inside it, is therefore reported as non-overlapping; query pruning relies
// on this exact behaviour.
func (b Box) Overlaps(other Box) bool {
	for _, corner := range other.corners() {
		if b.Covers(corner) {
			return true
		}
	}
	return false
}

func (b Box) corners() [8]mgl32.Vec3 {
	return [8]mgl32.Vec3{
		{b.Min[0], b.Min[1], b.Min[2]},
		{b.Min[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Min[2]},
		{b.Min[0], b.Max[1], b.Max[2]},
		{b.Max[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Max[2]},
		{b.Max[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Max[2]},
	}
}

// Centre returns the midpoint of the box on every axis.
func (b Box) Centre() mgl32.Vec3 {
	return mgl32.Vec3{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Split subdivides the box at its centre into eight octants that tile it
// exactly, sharing only boundary planes. The order is fixed: down before up,
// front before back, left before right, i.e. dfl, dfr, dbl, dbr, ufl, ufr,
// ubl, ubr. Octant 0 spans Min..Centre, octant 7 spans Centre..Max.
func (b Box) Split() [8]Box {
	centre := b.Centre()
	min, max := b.Min, b.Max
	return [8]Box{
		{Min: min, Max: centre},
		{Min: mgl32.Vec3{centre[0], min[1], min[2]}, Max: mgl32.Vec3{max[0], centre[1], centre[2]}},
		{Min: mgl32.Vec3{min[0], centre[1], min[2]}, Max: mgl32.Vec3{centre[0], max[1], centre[2]}},
		{Min: mgl32.Vec3{centre[0], centre[1], min[2]}, Max: mgl32.Vec3{max[0], max[1], centre[2]}},
		{Min: mgl32.Vec3{min[0], min[1], centre[2]}, Max: mgl32.Vec3{centre[0], centre[1], max[2]}},
		{Min: mgl32.Vec3{centre[0], min[1], centre[2]}, Max: mgl32.Vec3{max[0], centre[1], max[2]}},
		{Min: mgl32.Vec3{min[0], centre[1], centre[2]}, Max: mgl32.Vec3{centre[0], max[1], max[2]}},
		{Min: centre, Max: max},
	}
}
