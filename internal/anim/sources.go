package anim

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"dae-track-converter/internal/mathutil"
)

// SourceData is the typed content of a source: one array per named param.
// Matrices keep document storage order; ImportSampler normalizes them.
type SourceData struct {
	ID       string
	Floats   map[string][]float32
	Matrices map[string][]mgl32.Mat4
	Names    map[string][]string
}

// SourceTable maps source identifiers to their typed content.
type SourceTable map[string]*SourceData

// paramWidth is the number of array values one param consumes per element.
func paramWidth(typ string) int {
	switch strings.ToLower(typ) {
	case "float4x4":
		return 16
	case "float3x3":
		return 9
	case "float4":
		return 4
	case "float3":
		return 3
	case "float2":
		return 2
	default:
		return 1
	}
}

// BuildSourceTable indexes every source of a by identifier.
// Duplicate identifiers and structurally invalid sources fail with ErrMalformedSource.
func BuildSourceTable(a *Animation) (SourceTable, error) {
	table := make(SourceTable)
	for _, item := range a.Items {
		src, ok := item.(*Source)
		if !ok {
			continue
		}
		if src.ID == "" {
			return nil, fmt.Errorf("animation %s: source without id: %w", a.ID, ErrMalformedSource)
		}
		if _, dup := table[src.ID]; dup {
			return nil, fmt.Errorf("animation %s: duplicate source id %q: %w", a.ID, src.ID, ErrMalformedSource)
		}
		data, err := typeSource(src)
		if err != nil {
			return nil, fmt.Errorf("animation %s: source %s: %w", a.ID, src.ID, err)
		}
		table[src.ID] = data
	}
	return table, nil
}

func typeSource(src *Source) (*SourceData, error) {
	if src.Err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSource, src.Err)
	}

	width := 0
	for _, p := range src.Params {
		width += paramWidth(p.Type)
	}
	stride := src.Stride
	if stride == 0 {
		stride = max(width, 1)
	}
	if width > stride {
		return nil, fmt.Errorf("params need %d values per element, stride is %d: %w", width, stride, ErrMalformedSource)
	}
	if src.Count < 0 {
		return nil, fmt.Errorf("negative count %d: %w", src.Count, ErrMalformedSource)
	}

	have := len(src.Floats)
	if src.Names != nil {
		have = len(src.Names)
	}
	if src.Count > have/stride {
		return nil, fmt.Errorf("%d elements of stride %d exceed %d values: %w", src.Count, stride, have, ErrMalformedSource)
	}

	data := &SourceData{
		ID:       src.ID,
		Floats:   make(map[string][]float32),
		Matrices: make(map[string][]mgl32.Mat4),
		Names:    make(map[string][]string),
	}
	seen := make(map[string]bool, len(src.Params))
	offset := 0
	for _, p := range src.Params {
		w := paramWidth(p.Type)
		off := offset
		offset += w
		// Unnamed params are placeholders that skip values.
		if p.Name == "" {
			continue
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate param %q: %w", p.Name, ErrMalformedSource)
		}
		seen[p.Name] = true

		switch strings.ToLower(p.Type) {
		case TypeFloat:
			if src.Names != nil {
				return nil, fmt.Errorf("float param %q on a name array: %w", p.Name, ErrMalformedSource)
			}
			vals := make([]float32, src.Count)
			for i := range vals {
				vals[i] = src.Floats[i*stride+off]
			}
			data.Floats[p.Name] = vals
		case TypeFloat4x4:
			if src.Names != nil {
				return nil, fmt.Errorf("matrix param %q on a name array: %w", p.Name, ErrMalformedSource)
			}
			mats := make([]mgl32.Mat4, src.Count)
			for i := range mats {
				base := i*stride + off
				mats[i] = mathutil.Mat4FromFloats(src.Floats[base : base+16])
			}
			data.Matrices[p.Name] = mats
		case TypeName:
			if src.Names == nil {
				return nil, fmt.Errorf("name param %q on a float array: %w", p.Name, ErrMalformedSource)
			}
			names := make([]string, src.Count)
			for i := range names {
				names[i] = src.Names[i*stride+off]
			}
			data.Names[p.Name] = names
		}
	}
	return data, nil
}
