package anim

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Samples is the parallel time/transform sequence of one sampler.
// Transforms are in engine order (translation in column 3). Both slices are
// owned by the caller and never alias the source table.
type Samples struct {
	Times      []float32
	Transforms []mgl32.Mat4
}

// Len returns the number of samples.
func (s Samples) Len() int {
	return len(s.Times)
}

// Duration is the last sample time, or zero without samples.
func (s Samples) Duration() float32 {
	if len(s.Times) == 0 {
		return 0
	}
	return s.Times[len(s.Times)-1]
}

// ImportSampler resolves the animation's sampler into time and transform samples.
func ImportSampler(a *Animation, table SourceTable) (Samples, error) {
	var sampler *Sampler
	for _, item := range a.Items {
		s, ok := item.(*Sampler)
		if !ok {
			continue
		}
		if sampler != nil {
			return Samples{}, fmt.Errorf("animation %s: %w", a.ID, ErrDuplicateSampler)
		}
		sampler = s
	}
	if sampler == nil {
		return Samples{}, fmt.Errorf("animation %s: %w", a.ID, ErrNoSampler)
	}

	var input, output, interpolation *SourceData
	for _, in := range sampler.Inputs {
		id, ok := strings.CutPrefix(in.Source, "#")
		if !ok {
			return Samples{}, fmt.Errorf("animation %s: sampler %s input %s: only local source references are supported, got %q: %w",
				a.ID, sampler.ID, in.Semantic, in.Source, ErrUnresolvedSourceReference)
		}
		src, ok := table[id]
		if !ok {
			return Samples{}, fmt.Errorf("animation %s: sampler %s input %s references nonexistent source %q: %w",
				a.ID, sampler.ID, in.Semantic, in.Source, ErrUnresolvedSourceReference)
		}

		switch in.Semantic {
		case SemanticInput:
			input = src
		case SemanticOutput:
			output = src
		case SemanticInterpolation:
			interpolation = src
		}
	}

	if input == nil || output == nil || interpolation == nil {
		return Samples{}, fmt.Errorf("animation %s: sampler needs INPUT, OUTPUT and INTERPOLATION inputs: %w",
			a.ID, ErrIncompleteSampler)
	}

	times, err := pick(input.Floats, ParamTime, ErrMissingTimeArray, ErrAmbiguousTimeArray)
	if err != nil {
		return Samples{}, fmt.Errorf("animation %s: INPUT source %s: %w", a.ID, input.ID, err)
	}
	transforms, err := pick(output.Matrices, ParamTransform, ErrMissingTransformArray, ErrAmbiguousTransformArray)
	if err != nil {
		return Samples{}, fmt.Errorf("animation %s: OUTPUT source %s: %w", a.ID, output.ID, err)
	}

	if len(times) != len(transforms) {
		return Samples{}, fmt.Errorf("animation %s: %d times but %d transforms: %w",
			a.ID, len(times), len(transforms), ErrSampleCountMismatch)
	}

	s := Samples{
		Times:      make([]float32, len(times)),
		Transforms: make([]mgl32.Mat4, len(transforms)),
	}
	copy(s.Times, times)
	// Documents store matrices row by row while mgl32 reads storage column-major.
	// This is the only place storage order is normalized.
	for i, m := range transforms {
		s.Transforms[i] = m.Transpose()
	}
	return s, nil
}

// pick returns the array tagged tag, or the sole array when none is tagged.
func pick[T any](arrays map[string][]T, tag string, errMissing, errAmbiguous error) ([]T, error) {
	if arr, ok := arrays[tag]; ok {
		return arr, nil
	}
	switch len(arrays) {
	case 0:
		return nil, fmt.Errorf("no %s array: %w", tag, errMissing)
	case 1:
		for _, arr := range arrays {
			return arr, nil
		}
	}
	return nil, fmt.Errorf("%d arrays and none tagged %s: %w", len(arrays), tag, errAmbiguous)
}
