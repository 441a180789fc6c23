package collada

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"dae-track-converter/internal/anim"
	"dae-track-converter/internal/skeleton"
)

// Document is a decoded COLLADA file: its animations in document order and
// the joints of its visual scene.
type Document struct {
	UpAxis     string
	UnitMeter  float64
	animations []*anim.Animation
	joints     []skeleton.Bone
}

// Parse reads and decodes a COLLADA file.
func Parse(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("collada: read %s: %w", path, err)
	}
	doc, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("collada: parse %s: %w", path, err)
	}
	return doc, nil
}

// Decode decodes a COLLADA document from r. Encodings other than UTF-8 are
// converted using the label in the XML declaration.
func Decode(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var root xmlCollada
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}

	doc := &Document{
		UpAxis:    root.Asset.UpAxis,
		UnitMeter: root.Asset.Unit.Meter,
	}
	for _, lib := range root.Animations {
		for i := range lib.Animations {
			doc.addAnimation(&lib.Animations[i])
		}
	}

	scene := pickScene(root.VisualScenes, root.Scene.Instance.URL)
	if scene != nil {
		joints, err := collectJoints(scene.Nodes)
		if err != nil {
			return nil, err
		}
		doc.joints = joints
	}
	return doc, nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}

// Animations returns every animation that has its own sources, samplers or
// channels. Nested animations are flattened depth-first.
func (d *Document) Animations() []*anim.Animation {
	return d.animations
}

func (d *Document) addAnimation(x *xmlAnimation) {
	id := x.ID
	if id == "" {
		id = x.Name
	}
	if id == "" {
		id = fmt.Sprintf("animation-%d", len(d.animations))
	}

	a := &anim.Animation{ID: id}
	for i := range x.Sources {
		src := convertSource(&x.Sources[i])
		if src.Err != nil {
			anim.Logger().Debug("unreadable source", "animation", id, "source", src.ID, "err", src.Err)
		}
		a.Items = append(a.Items, src)
	}
	for _, s := range x.Samplers {
		sampler := &anim.Sampler{ID: s.ID}
		for _, in := range s.Inputs {
			sampler.Inputs = append(sampler.Inputs, anim.Input{Semantic: in.Semantic, Source: in.Source})
		}
		a.Items = append(a.Items, sampler)
	}
	for _, c := range x.Channels {
		a.Items = append(a.Items, &anim.Channel{Source: c.Source, Target: c.Target})
	}
	if len(a.Items) > 0 {
		d.animations = append(d.animations, a)
	}

	for i := range x.Animations {
		d.addAnimation(&x.Animations[i])
	}
}

// convertSource keeps unreadable arrays as sources carrying Err, so only
// the owning animation fails.
func convertSource(x *xmlSource) *anim.Source {
	src := &anim.Source{
		ID:     x.ID,
		Count:  x.Accessor.Count,
		Stride: x.Accessor.Stride,
	}
	for _, p := range x.Accessor.Params {
		src.Params = append(src.Params, anim.Param{Name: p.Name, Type: p.Type})
	}

	switch {
	case x.FloatArray != nil:
		floats, err := parseFloats(x.FloatArray.Data)
		if err != nil {
			src.Err = fmt.Errorf("float_array: %w", err)
			return src
		}
		src.Floats = floats
	case x.NameArray != nil:
		src.Names = strings.Fields(x.NameArray.Data)
		if src.Names == nil {
			src.Names = []string{}
		}
	}
	return src
}

func parseFloats(s string) ([]float32, error) {
	fields := strings.Fields(s)
	out := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, fmt.Errorf("float %d: %w", i, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

func pickScene(libs []xmlLibVisualScene, url string) *xmlVisualScene {
	var first *xmlVisualScene
	id := strings.TrimPrefix(url, "#")
	for li := range libs {
		for si := range libs[li].Scenes {
			s := &libs[li].Scenes[si]
			if first == nil {
				first = s
			}
			if id != "" && s.ID == id {
				return s
			}
		}
	}
	return first
}
