package pointfile

import (
	"github.com/valyala/fastrand"

	"github.com/spatial3d/octree/internal/geom"
)

// Generate produces n points uniformly distributed over [0, span) per axis.
// The same seed yields the same points.
func Generate(n int, span float32, seed uint32) []geom.Point3 {
	var rng fastrand.RNG
	rng.Seed(seed)

	points := make([]geom.Point3, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, geom.New(
			coordinate(&rng, span),
			coordinate(&rng, span),
			coordinate(&rng, span),
		))
	}
	return points
}

func coordinate(rng *fastrand.RNG, span float32) float32 {
	// 24 random bits over 2^24 is exact in float32, keeping the fraction
	// strictly below one.
	return span * (float32(rng.Uint32n(1<<24)) / (1 << 24))
}
