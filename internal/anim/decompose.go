package anim

import (
	"github.com/go-gl/mathgl/mgl32"

	"dae-track-converter/internal/mathutil"
)

// Frames holds the decomposed channels of a sample sequence, index-aligned with its times.
type Frames struct {
	Positions  []mgl32.Vec3
	Rotations  []mgl32.Quat
	ScaleShear []mgl32.Mat3
}

// Decompose splits every transform into translation, rotation and a diagonal
// scale/shear matrix, then makes the rotation sequence continuous.
func Decompose(transforms []mgl32.Mat4) Frames {
	f := Frames{
		Positions:  make([]mgl32.Vec3, len(transforms)),
		Rotations:  make([]mgl32.Quat, len(transforms)),
		ScaleShear: make([]mgl32.Mat3, len(transforms)),
	}
	for i, m := range transforms {
		t, q, s := mathutil.Decompose(m)
		f.Positions[i] = t
		f.Rotations[i] = q
		f.ScaleShear[i] = mathutil.ScaleShear(s)
	}
	f.Rotations = FixSignContinuity(NormalizeHemisphere(f.Rotations))
	return f
}

// NormalizeHemisphere returns a copy of rots where every quaternion with a
// negative scalar part is negated, so w >= 0 throughout.
func NormalizeHemisphere(rots []mgl32.Quat) []mgl32.Quat {
	out := make([]mgl32.Quat, len(rots))
	for i, q := range rots {
		if q.W < 0 {
			q = q.Scale(-1)
		}
		out[i] = q
	}
	return out
}

// FixSignContinuity returns a copy of rots where each quaternion's vector part
// is flipped whenever that brings it strictly closer to its predecessor.
// Curves interpolate raw components, so two nearby frames on opposite sides
// would otherwise sweep through a long detour.
func FixSignContinuity(rots []mgl32.Quat) []mgl32.Quat {
	out := make([]mgl32.Quat, len(rots))
	copy(out, rots)
	for i := 1; i < len(out); i++ {
		prev, cur := out[i-1], out[i]
		alt := mgl32.Quat{W: cur.W, V: cur.V.Mul(-1)}
		if mathutil.VecAbsDiff(prev, cur) > mathutil.VecAbsDiff(prev, alt) {
			out[i] = alt
		}
	}
	return out
}
