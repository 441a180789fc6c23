package anim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"dae-track-converter/internal/mathutil"
	"dae-track-converter/internal/skeleton"
)

// translationRows is a translation matrix written row by row, as documents store it.
func translationRows(x, y, z float32) [16]float32 {
	return [16]float32{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

func transformRows(t mgl32.Vec3, q mgl32.Quat, s mgl32.Vec3) [16]float32 {
	return mathutil.RowMajor(mathutil.Compose(t, q, s))
}

func inputSource(id string, times []float32) *Source {
	return &Source{
		ID:     id,
		Floats: times,
		Count:  len(times),
		Stride: 1,
		Params: []Param{{Name: ParamTime, Type: TypeFloat}},
	}
}

func outputSource(id string, mats [][16]float32) *Source {
	floats := make([]float32, 0, len(mats)*16)
	for _, m := range mats {
		floats = append(floats, m[:]...)
	}
	return &Source{
		ID:     id,
		Floats: floats,
		Count:  len(mats),
		Stride: 16,
		Params: []Param{{Name: ParamTransform, Type: TypeFloat4x4}},
	}
}

func interpolationSource(id string, n int) *Source {
	names := make([]string, n)
	for i := range names {
		names[i] = "LINEAR"
	}
	return &Source{
		ID:     id,
		Names:  names,
		Count:  n,
		Stride: 1,
		Params: []Param{{Name: "INTERPOLATION", Type: TypeName}},
	}
}

// buildAnimation returns a well-formed animation of bone1's transform.
func buildAnimation(id string, times []float32, mats [][16]float32) *Animation {
	return &Animation{
		ID: id,
		Items: []Item{
			inputSource(id+"-input", times),
			outputSource(id+"-output", mats),
			interpolationSource(id+"-interpolation", len(times)),
			&Sampler{
				ID: id + "-sampler",
				Inputs: []Input{
					{Semantic: SemanticInput, Source: "#" + id + "-input"},
					{Semantic: SemanticOutput, Source: "#" + id + "-output"},
					{Semantic: SemanticInterpolation, Source: "#" + id + "-interpolation"},
				},
			},
			&Channel{Source: "#" + id + "-sampler", Target: "bone1/transform"},
		},
	}
}

func (a *Animation) sampler() *Sampler {
	for _, it := range a.Items {
		if s, ok := it.(*Sampler); ok {
			return s
		}
	}
	return nil
}

func (a *Animation) channel() *Channel {
	for _, it := range a.Items {
		if c, ok := it.(*Channel); ok {
			return c
		}
	}
	return nil
}

func (a *Animation) source(id string) *Source {
	for _, it := range a.Items {
		if s, ok := it.(*Source); ok && s.ID == id {
			return s
		}
	}
	return nil
}

func testSkeleton(t *testing.T) *skeleton.Skeleton {
	t.Helper()
	s, err := skeleton.New([]skeleton.Bone{
		{ID: "root", Name: "Root", TransformSID: "transform", Parent: -1, BindTransform: mgl32.Ident4()},
		{ID: "bone1", Name: "Bone1", TransformSID: "transform", Parent: 0, BindTransform: mgl32.Ident4()},
		{ID: "bone2", Name: "Bone2", Parent: 1, BindTransform: mgl32.Ident4()},
	})
	if err != nil {
		t.Fatalf("skeleton.New() error = %v", err)
	}
	return s
}

func floatsEqual(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func floatsNear(a, b []float32, eps float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		d := a[i] - b[i]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}
