package mathutil

import "github.com/go-gl/mathgl/mgl32"

// Mat4FromFloats copies 16 floats into a matrix without reordering.
// mgl32 storage is column-major, so floats written row by row end up transposed.
func Mat4FromFloats(f []float32) mgl32.Mat4 {
	var m mgl32.Mat4
	copy(m[:], f)
	return m
}

// Decompose splits an affine transform into translation, unit rotation and per-axis scale.
// Columns of the 3×3 part are normalized before the rotation is extracted, so scaled
// matrices still yield a unit quaternion.
func Decompose(m mgl32.Mat4) (mgl32.Vec3, mgl32.Quat, mgl32.Vec3) {
	t := m.Col(3).Vec3()

	c0, c1, c2 := m.Col(0).Vec3(), m.Col(1).Vec3(), m.Col(2).Vec3()
	s := mgl32.Vec3{c0.Len(), c1.Len(), c2.Len()}

	rot := mgl32.Mat3FromCols(
		unitOr(c0, s[0], mgl32.Vec3{1, 0, 0}),
		unitOr(c1, s[1], mgl32.Vec3{0, 1, 0}),
		unitOr(c2, s[2], mgl32.Vec3{0, 0, 1}),
	)
	q := mgl32.Mat4ToQuat(rot.Mat4()).Normalize()
	return t, q, s
}

func unitOr(v mgl32.Vec3, l float32, fallback mgl32.Vec3) mgl32.Vec3 {
	if l < 1e-12 {
		return fallback
	}
	return v.Mul(1 / l)
}

// Compose builds a transform from translation, rotation and per-axis scale.
// Inverse of Decompose for matrices without shear.
func Compose(t mgl32.Vec3, q mgl32.Quat, s mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(t[0], t[1], t[2]).
		Mul4(q.Mat4()).
		Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
}

// RowMajor flattens m row by row, the order documents write matrices in.
func RowMajor(m mgl32.Mat4) [16]float32 {
	var out [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m.At(r, c)
		}
	}
	return out
}
