// Package trackfile stores converted track groups as JSON.
package trackfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"dae-track-converter/internal/anim"
)

// ErrInvalid is returned by Read and Decode for structurally broken curves.
var ErrInvalid = errors.New("trackfile: invalid curve")

// Group is a set of tracks played together.
type Group struct {
	Name         string  `json:"name"`
	Duration     float32 `json:"duration"`
	TimeStep     float32 `json:"time_step"`
	Oversampling float32 `json:"oversampling"`
	Tracks       []Track `json:"tracks"`
}

// Track is the stored form of anim.Track.
type Track struct {
	Name        string `json:"name"`
	Flags       uint32 `json:"flags"`
	Position    Curve  `json:"position"`
	Orientation Curve  `json:"orientation"`
	ScaleShear  Curve  `json:"scale_shear"`
}

// Curve is the stored form of anim.Curve. Format is informational;
// FormatID is authoritative on read.
type Curve struct {
	Format   string    `json:"format"`
	FormatID int32     `json:"format_id"`
	Degree   uint8     `json:"degree"`
	Dim      int       `json:"dimension"`
	Knots    []float32 `json:"knots,omitempty"`
	Controls []float32 `json:"controls"`
}

// FromTrack converts a produced track to its stored form.
func FromTrack(t *anim.Track) Track {
	return Track{
		Name:        t.Name,
		Flags:       t.Flags,
		Position:    fromCurve(t.Position),
		Orientation: fromCurve(t.Orientation),
		ScaleShear:  fromCurve(t.ScaleShear),
	}
}

func fromCurve(c anim.Curve) Curve {
	return Curve{
		Format:   c.Format.String(),
		FormatID: int32(c.Format),
		Degree:   c.Degree,
		Dim:      c.Dim,
		Knots:    c.Knots,
		Controls: c.Controls,
	}
}

// Anim converts a stored track back to anim.Track.
func (t Track) Anim() *anim.Track {
	return &anim.Track{
		Name:        t.Name,
		Flags:       t.Flags,
		Position:    t.Position.anim(),
		Orientation: t.Orientation.anim(),
		ScaleShear:  t.ScaleShear.anim(),
	}
}

func (c Curve) anim() anim.Curve {
	return anim.Curve{
		Format:   anim.CurveFormat(c.FormatID),
		Degree:   c.Degree,
		Dim:      c.Dim,
		Knots:    c.Knots,
		Controls: c.Controls,
	}
}

func (c Curve) validate() error {
	if err := c.anim().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Encode writes g as indented JSON.
func Encode(w io.Writer, g *Group) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}

// Decode reads a group and checks every curve.
func Decode(r io.Reader) (*Group, error) {
	var g Group
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, err
	}
	for _, t := range g.Tracks {
		for _, c := range []Curve{t.Position, t.Orientation, t.ScaleShear} {
			if err := c.validate(); err != nil {
				return nil, fmt.Errorf("track %s: %w", t.Name, err)
			}
		}
	}
	return &g, nil
}

// Write stores g at path, creating parent directories.
func Write(path string, g *Group) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("trackfile: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trackfile: %w", err)
	}
	if err := Encode(f, g); err != nil {
		f.Close()
		return fmt.Errorf("trackfile: write %s: %w", path, err)
	}
	return f.Close()
}

// Read loads a group written by Write.
func Read(path string) (*Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("trackfile: %w", err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("trackfile: read %s: %w", path, err)
	}
	return g, nil
}
