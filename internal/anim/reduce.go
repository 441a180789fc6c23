package anim

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"dae-track-converter/internal/mathutil"
)

// Reduction thresholds. These are fixed; frame removal is an approximation,
// not a tunable lossy codec.
const (
	trivialFrameEpsilon = 0.001
	constantPairEpsilon = 0.0001
	scaleShearEpsilon   = 0.001
)

// ReduceVectors drops translation frames that linear interpolation of their
// neighbours predicts. The inputs are not modified.
func ReduceVectors(times []float32, values []mgl32.Vec3) ([]float32, []mgl32.Vec3) {
	return reduceInterpolated(times, values, mathutil.Lerp, mathutil.Dist)
}

// ReduceQuaternions drops rotation frames that spherical interpolation of
// their neighbours predicts. The inputs are not modified.
func ReduceQuaternions(times []float32, values []mgl32.Quat) ([]float32, []mgl32.Quat) {
	return reduceInterpolated(times, values, mathutil.Slerp, mathutil.QuatDist)
}

func reduceInterpolated[T any](
	times []float32,
	values []T,
	interp func(a, b T, alpha float32) T,
	dist func(a, b T) float32,
) ([]float32, []T) {
	ts, vs := slices.Clone(times), slices.Clone(values)

	i := 1
	for i < len(vs)-1 {
		t0, t1, t2 := ts[i-1], ts[i], ts[i+1]
		alpha := (t1 - t0) / (t2 - t0)
		if dist(vs[i], interp(vs[i-1], vs[i+1], alpha)) < trivialFrameEpsilon {
			ts = slices.Delete(ts, i, i+1)
			vs = slices.Delete(vs, i, i+1)
		} else {
			i++
		}
	}

	if len(vs) == 2 && dist(vs[0], vs[1]) < constantPairEpsilon {
		ts, vs = ts[:1], vs[:1]
	}
	return ts, vs
}

// ReduceScaleShear drops a scale/shear frame when it and its predecessor both
// repeat the frame before them. The inputs are not modified.
func ReduceScaleShear(times []float32, values []mgl32.Mat3) ([]float32, []mgl32.Mat3) {
	ts, vs := slices.Clone(times), slices.Clone(values)

	i := 2
	for i < len(vs) {
		diff1 := mathutil.Mat3AbsDiff(vs[i-1], vs[i-2])
		diff2 := mathutil.Mat3AbsDiff(vs[i], vs[i-1])
		if diff1 < scaleShearEpsilon && diff2 < scaleShearEpsilon {
			ts = slices.Delete(ts, i, i+1)
			vs = slices.Delete(vs, i, i+1)
		} else {
			i++
		}
	}

	if len(vs) == 2 && mathutil.Mat3AbsDiff(vs[0], vs[1]) < scaleShearEpsilon {
		ts, vs = ts[:1], vs[:1]
	}
	return ts, vs
}
