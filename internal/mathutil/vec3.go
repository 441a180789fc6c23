package mathutil

import "github.com/go-gl/mathgl/mgl32"

// Lerp returns a + (b - a) * alpha.
func Lerp(a, b mgl32.Vec3, alpha float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(alpha))
}

// Dist is the Euclidean distance between a and b.
func Dist(a, b mgl32.Vec3) float32 {
	return a.Sub(b).Len()
}
