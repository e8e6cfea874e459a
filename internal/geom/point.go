// Package geom holds the default point payload stored in the octree index.
package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Point3 is a bare coordinate triple. Its identity is the bit pattern of the
// coordinates: two Point3 values are the same point iff all three float32s
// match bit for bit, so an exact NaN copy matches itself and +0 differs
// from -0.
type Point3 struct {
	X, Y, Z float32
}

func New(x, y, z float32) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Location satisfies the index's payload capability.
func (p Point3) Location() mgl32.Vec3 {
	return mgl32.Vec3{p.X, p.Y, p.Z}
}

// Equal compares bit patterns, not float values.
func (p Point3) Equal(other Point3) bool {
	return math.Float32bits(p.X) == math.Float32bits(other.X) &&
		math.Float32bits(p.Y) == math.Float32bits(other.Y) &&
		math.Float32bits(p.Z) == math.Float32bits(other.Z)
}

func (p Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
