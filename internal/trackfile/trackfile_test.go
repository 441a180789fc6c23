package trackfile

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"dae-track-converter/internal/anim"
)

func sampleTrack() *anim.Track {
	return &anim.Track{
		Name:        "hips",
		Position:    anim.Curve{Format: anim.FormatDaK32fC32f, Degree: anim.CurveDegree, Dim: 3, Knots: []float32{0, 2}, Controls: []float32{0, 0, 0, 0, 2, 0}},
		Orientation: anim.Curve{Format: anim.FormatD4Constant32f, Degree: anim.CurveDegree, Dim: 4, Controls: []float32{0, 0, 0, 1}},
		ScaleShear:  anim.Curve{Format: anim.FormatDaConstant32f, Degree: anim.CurveDegree, Dim: 9, Controls: []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}},
	}
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "walk.tracks.json")
	want := &Group{
		Name:         "walk",
		Duration:     2,
		TimeStep:     1.0 / 60,
		Oversampling: 1,
		Tracks:       []Track{FromTrack(sampleTrack())},
	}
	if err := Write(path, want); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got.Name != "walk" || got.Duration != 2 || got.Oversampling != 1 || len(got.Tracks) != 1 {
		t.Fatalf("Read() = %+v", got)
	}

	tr := got.Tracks[0].Anim()
	if tr.Position.Format != anim.FormatDaK32fC32f || !slices.Equal(tr.Position.Knots, []float32{0, 2}) {
		t.Errorf("Position = %+v", tr.Position)
	}
	if tr.Orientation.Format != anim.FormatD4Constant32f || !slices.Equal(tr.Orientation.Controls, []float32{0, 0, 0, 1}) {
		t.Errorf("Orientation = %+v", tr.Orientation)
	}
	if got.Tracks[0].ScaleShear.Format != "DaConstant32f" {
		t.Errorf("ScaleShear format name = %q", got.Tracks[0].ScaleShear.Format)
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name  string
		curve string
	}{
		{"unknown format", `{"format_id": 9, "dimension": 3, "controls": [0,0,0]}`},
		{"keyframes without knots", `{"format_id": 1, "dimension": 3, "controls": [0,0,0]}`},
		{"control count", `{"format_id": 1, "dimension": 3, "knots": [0, 1], "controls": [0,0,0]}`},
		{"constant with knots", `{"format_id": 4, "dimension": 3, "knots": [0], "controls": [0,0,0]}`},
		{"zero dimension", `{"format_id": 4, "dimension": 0, "controls": []}`},
		{"constant dimension mismatch", `{"format_id": 4, "dimension": 4, "controls": [0,0,0,1]}`},
	}
	ok4 := `{"format_id": 5, "dimension": 4, "controls": [0,0,0,1]}`
	ok9 := `{"format_id": 3, "dimension": 9, "controls": [1,0,0,0,1,0,0,0,1]}`
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := `{"name": "g", "tracks": [{"name": "b", "position": ` + tt.curve +
				`, "orientation": ` + ok4 + `, "scale_shear": ` + ok9 + `}]}`
			_, err := Decode(strings.NewReader(src))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Decode() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestReadMissing(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Error("Read() error = nil")
	}
}
