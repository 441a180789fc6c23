package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ScaleShear returns the identity scaled per axis: diag(s.x, s.y, s.z).
func ScaleShear(s mgl32.Vec3) mgl32.Mat3 {
	return mgl32.Diag3(s)
}

// Mat3AbsDiff is the sum of absolute per-entry differences of a and b.
func Mat3AbsDiff(a, b mgl32.Mat3) float32 {
	var d float64
	for i := range a {
		d += math.Abs(float64(a[i] - b[i]))
	}
	return float32(d)
}

// Mat3RowMajor flattens m row by row: [r0c0, r0c1, r0c2, r1c0, ...].
func Mat3RowMajor(m mgl32.Mat3) [9]float32 {
	var out [9]float32
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m.At(r, c)
		}
	}
	return out
}
