package anim

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestReduceVectorsTwoFrames(t *testing.T) {
	tests := []struct {
		name string
		b    mgl32.Vec3
		want int
	}{
		{"within epsilon collapses", mgl32.Vec3{0.00005, 0, 0}, 1},
		{"identical collapses", mgl32.Vec3{}, 1},
		{"beyond epsilon keeps both", mgl32.Vec3{0.001, 0, 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, vs := ReduceVectors([]float32{0, 1}, []mgl32.Vec3{{}, tt.b})
			if len(ts) != tt.want || len(vs) != tt.want {
				t.Errorf("len = %d/%d, want %d", len(ts), len(vs), tt.want)
			}
			if ts[0] != 0 {
				t.Errorf("first time = %v, want 0", ts[0])
			}
		})
	}
}

func TestReduceQuaternionsTwoFrames(t *testing.T) {
	a := mgl32.QuatIdent()
	near := mgl32.QuatRotate(0.00002, mgl32.Vec3{0, 1, 0})
	far := mgl32.QuatRotate(0.1, mgl32.Vec3{0, 1, 0})

	if ts, _ := ReduceQuaternions([]float32{0, 1}, []mgl32.Quat{a, near}); len(ts) != 1 {
		t.Errorf("near pair: len = %d, want 1", len(ts))
	}
	if ts, _ := ReduceQuaternions([]float32{0, 1}, []mgl32.Quat{a, far}); len(ts) != 2 {
		t.Errorf("far pair: len = %d, want 2", len(ts))
	}
}

func TestReduceVectorsUsesActualTimes(t *testing.T) {
	// Uneven spacing: the middle frame is on the line only when alpha uses real times.
	times := []float32{0, 1, 4}
	values := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {4, 0, 0}}
	ts, vs := ReduceVectors(times, values)
	if !floatsEqual(ts, []float32{0, 4}) || len(vs) != 2 {
		t.Errorf("ReduceVectors() = %v/%v, want knots [0 4]", ts, vs)
	}

	values[1] = mgl32.Vec3{2, 0, 0}
	if ts, _ := ReduceVectors(times, values); len(ts) != 3 {
		t.Errorf("off-line middle frame removed: %v", ts)
	}
}

func TestReduceScaleShearComparesPrecedingFrames(t *testing.T) {
	one := mgl32.Ident3()
	two := mgl32.Diag3(mgl32.Vec3{2, 2, 2})
	times := []float32{0, 1, 2, 3}

	ts, vs := ReduceScaleShear(times, []mgl32.Mat3{one, one, one, two})
	if !floatsEqual(ts, []float32{0, 1, 3}) || len(vs) != 3 {
		t.Errorf("ReduceScaleShear() times = %v, want [0 1 3]", ts)
	}

	ts, _ = ReduceScaleShear(times, []mgl32.Mat3{one, one, one, one})
	if len(ts) != 1 {
		t.Errorf("constant sequence len = %d, want 1", len(ts))
	}

	ts, _ = ReduceScaleShear([]float32{0, 1}, []mgl32.Mat3{one, mgl32.Diag3(mgl32.Vec3{1.0005, 1, 1})})
	if len(ts) != 1 {
		t.Errorf("near pair len = %d, want 1", len(ts))
	}
	ts, _ = ReduceScaleShear([]float32{0, 1}, []mgl32.Mat3{one, mgl32.Diag3(mgl32.Vec3{1.01, 1, 1})})
	if len(ts) != 2 {
		t.Errorf("far pair len = %d, want 2", len(ts))
	}
}

func TestReduceKeepsEndpointsAndLengths(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < 200; run++ {
		n := 1 + rng.Intn(12)
		times := make([]float32, n)
		vecs := make([]mgl32.Vec3, n)
		quats := make([]mgl32.Quat, n)
		mats := make([]mgl32.Mat3, n)
		for i := range times {
			times[i] = float32(i) * (0.5 + rng.Float32())
			if i > 0 {
				times[i] += times[i-1]
			}
			// Mostly repeated values so removals actually happen.
			step := float32(rng.Intn(3)) * 0.5
			vecs[i] = mgl32.Vec3{step, 0, 0}
			quats[i] = mgl32.QuatRotate(step, mgl32.Vec3{0, 1, 0})
			mats[i] = mgl32.Diag3(mgl32.Vec3{1 + step, 1, 1})
		}

		ts, vs := ReduceVectors(times, vecs)
		checkReduced(t, "vectors", times, ts, len(vs))
		ts, qs := ReduceQuaternions(times, quats)
		checkReduced(t, "quaternions", times, ts, len(qs))
		ts, ms := ReduceScaleShear(times, mats)
		if len(ts) != len(ms) || len(ts) == 0 || ts[0] != times[0] {
			t.Fatalf("scale/shear: times %v values %d", ts, len(ms))
		}
	}
}

func checkReduced(t *testing.T, name string, in, out []float32, values int) {
	t.Helper()
	if len(out) != values || len(out) == 0 {
		t.Fatalf("%s: len(times)=%d len(values)=%d", name, len(out), values)
	}
	if out[0] != in[0] {
		t.Fatalf("%s: first time %v, want %v", name, out[0], in[0])
	}
	if len(out) > 1 && out[len(out)-1] != in[len(in)-1] {
		t.Fatalf("%s: last time %v, want %v", name, out[len(out)-1], in[len(in)-1])
	}
}

func TestReduceWorksOnCopies(t *testing.T) {
	times := []float32{0, 1, 2}
	vecs := []mgl32.Vec3{{0, 0, 0}, {0, 1, 0}, {0, 2, 0}}
	quats := []mgl32.Quat{mgl32.QuatIdent(), mgl32.QuatIdent(), mgl32.QuatIdent()}

	posTimes, _ := ReduceVectors(times, vecs)
	rotTimes, _ := ReduceQuaternions(times, quats)

	if !floatsEqual(times, []float32{0, 1, 2}) {
		t.Fatalf("input times modified: %v", times)
	}
	if vecs[1] != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("input values modified: %v", vecs)
	}

	posTimes[0] = 99
	if rotTimes[0] != 0 || times[0] != 0 {
		t.Error("reduced time sequences share storage")
	}
}
