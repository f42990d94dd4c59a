package pgen

import (
	"math/rand"
	"sort"

	"github.com/ungerik/go3d/float64/vec2"
)

// Path returns n points from start to end. Interior points are ordered by distance from start.
// Interior points wander up to variation away from the straight line.
func Path(rng *rand.Rand, start, end vec2.T, n int, variation float64) []vec2.T {
	if n < 2 {
		n = 2
	}
	path := make([]vec2.T, n)

	path[0] = start
	path[len(path)-1] = end

	nVec := vec2.Sub(&end, &start)
	if nVec.LengthSqr() == 0 {
		for i := range path {
			path[i] = start
		}
		return path
	}

	latVec := nVec.Normalize().Rotate90DegLeft()

	for i := 1; i < n-1; i++ {
		interpVec := vec2.Interpolate(&start, &end, rng.Float64())

		rnd := 2 * (rng.Float64() - 0.5) * variation
		lateral := latVec.Scaled(rnd)

		path[i] = vec2.Add(&interpVec, &lateral)
	}

	inner := path[1:n-1]
	sort.Slice(inner, func(i, j int) bool {
		ii := vec2.Sub(&start, &inner[i])
		jj := vec2.Sub(&start, &inner[j])
		return ii.LengthSqr() < jj.LengthSqr()
	})

	return path
}
