package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Slerp interpolates along the shorter arc between a and b.
// mgl32.QuatSlerp does not flip hemispheres on its own.
func Slerp(a, b mgl32.Quat, alpha float32) mgl32.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl32.QuatSlerp(a, b, alpha)
}

// QuatDist is the Euclidean norm of the componentwise difference (x, y, z, w).
func QuatDist(a, b mgl32.Quat) float32 {
	return a.Sub(b).Len()
}

// VecAbsDiff is the sum of absolute differences of the vector parts of a and b.
func VecAbsDiff(a, b mgl32.Quat) float32 {
	return abs32(a.V[0]-b.V[0]) + abs32(a.V[1]-b.V[1]) + abs32(a.V[2]-b.V[2])
}

// XYZW returns q in x, y, z, w order.
func XYZW(q mgl32.Quat) [4]float32 {
	return [4]float32{q.V[0], q.V[1], q.V[2], q.W}
}

func abs32(f float32) float32 {
	return float32(math.Abs(float64(f)))
}
