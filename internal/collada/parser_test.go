package collada

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"dae-track-converter/internal/anim"
)

func TestParseDocument(t *testing.T) {
	doc, err := Parse("testdata/walk.dae")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.UpAxis != "Y_UP" || doc.UnitMeter != 1 {
		t.Errorf("asset = %q/%v, want Y_UP/1", doc.UpAxis, doc.UnitMeter)
	}

	anims := doc.Animations()
	if len(anims) != 2 {
		t.Fatalf("len(Animations()) = %d, want 2 (container skipped)", len(anims))
	}
	if anims[0].ID != "hips-anim" || anims[1].ID != "spine-anim" {
		t.Errorf("ids = %s, %s", anims[0].ID, anims[1].ID)
	}
	if got := len(anims[0].Items); got != 5 {
		t.Errorf("len(Items) = %d, want 5", got)
	}
}

func TestDocumentSkeleton(t *testing.T) {
	doc, err := Parse("testdata/walk.dae")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	skel, err := doc.Skeleton()
	if err != nil {
		t.Fatalf("Skeleton() error = %v", err)
	}
	if skel.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 joints", skel.Len())
	}

	hips, ok := skel.BoneByID("hips")
	if !ok || hips.Name != "Hips" || hips.TransformSID != "transform" || hips.Parent != -1 {
		t.Errorf("hips = %+v", hips)
	}
	spine, ok := skel.BoneByID("spine")
	if !ok || spine.TransformSID != "" || spine.Parent != 0 {
		t.Errorf("spine = %+v", spine)
	}

	worlds := skel.WorldMatrices()
	if got := worlds[1].Col(3).Vec3(); got[1] != 3 {
		t.Errorf("spine world translation = %v, want y=3", got)
	}
}

func TestConvertDocument(t *testing.T) {
	doc, err := Parse("testdata/walk.dae")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	skel, err := doc.Skeleton()
	if err != nil {
		t.Fatalf("Skeleton() error = %v", err)
	}
	anims := doc.Animations()

	res, err := anim.Convert(anims[0], skel)
	if err != nil {
		t.Fatalf("Convert(hips) error = %v", err)
	}
	pos := res.Track.Position
	if res.Track.Name != "Hips" || pos.Format != anim.FormatDaK32fC32f || len(pos.Knots) != 2 {
		t.Errorf("hips track = %q %v knots=%v", res.Track.Name, pos.Format, pos.Knots)
	}

	res, err = anim.Convert(anims[1], skel)
	if err != nil {
		t.Fatalf("Convert(spine) error = %v", err)
	}
	if res.Stage != anim.StageEmptyAnimation {
		t.Errorf("spine Stage = %v, want empty", res.Stage)
	}
}

func TestDecodeLatin1(t *testing.T) {
	src := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<COLLADA><library_visual_scenes><visual_scene id=\"s\">" +
		"<node id=\"b\" name=\"Bras\xe9\" type=\"JOINT\"><matrix sid=\"transform\">1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1</matrix></node>" +
		"</visual_scene></library_visual_scenes></COLLADA>"
	doc, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	skel, err := doc.Skeleton()
	if err != nil {
		t.Fatalf("Skeleton() error = %v", err)
	}
	if b, _ := skel.BoneByID("b"); b.Name != "Brasé" {
		t.Errorf("Name = %q, want Brasé", b.Name)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"short matrix", `<COLLADA><library_visual_scenes><visual_scene><node id="j" type="JOINT"><matrix>1 0 0</matrix></node></visual_scene></library_visual_scenes></COLLADA>`},
		{"unknown charset", `<?xml version="1.0" encoding="x-klingon"?><COLLADA/>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.src)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

// animationXML is one sampled animation of hips/transform with the given
// time and matrix array contents.
func animationXML(id, times, matrices string) string {
	return `<animation id="` + id + `">
  <source id="` + id + `-in"><float_array>` + times + `</float_array>
    <technique_common><accessor count="2" stride="1"><param name="TIME" type="float"/></accessor></technique_common></source>
  <source id="` + id + `-out"><float_array>` + matrices + `</float_array>
    <technique_common><accessor count="2" stride="16"><param name="TRANSFORM" type="float4x4"/></accessor></technique_common></source>
  <source id="` + id + `-interp"><Name_array>LINEAR LINEAR</Name_array>
    <technique_common><accessor count="2" stride="1"><param name="INTERPOLATION" type="name"/></accessor></technique_common></source>
  <sampler id="` + id + `-sampler">
    <input semantic="INPUT" source="#` + id + `-in"/>
    <input semantic="OUTPUT" source="#` + id + `-out"/>
    <input semantic="INTERPOLATION" source="#` + id + `-interp"/>
  </sampler>
  <channel source="#` + id + `-sampler" target="hips/transform"/>
</animation>`
}

func TestDecodeUnreadableSourceFailsOnlyItsAnimation(t *testing.T) {
	ident := "1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1 "
	src := `<COLLADA><library_animations>` +
		animationXML("bad", "0 x", ident+ident) +
		animationXML("good", "0 1", ident+ident) +
		`</library_animations><library_visual_scenes><visual_scene id="s">` +
		`<node id="hips" type="JOINT"><matrix sid="transform">` + ident + `</matrix></node>` +
		`</visual_scene></library_visual_scenes></COLLADA>`

	doc, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	skel, err := doc.Skeleton()
	if err != nil {
		t.Fatalf("Skeleton() error = %v", err)
	}
	anims := doc.Animations()
	if len(anims) != 2 {
		t.Fatalf("len(Animations()) = %d, want 2", len(anims))
	}

	if _, err := anim.Convert(anims[0], skel); !errors.Is(err, anim.ErrMalformedSource) {
		t.Errorf("Convert(bad) error = %v, want %v", err, anim.ErrMalformedSource)
	}
	res, err := anim.Convert(anims[1], skel)
	if err != nil {
		t.Fatalf("Convert(good) error = %v", err)
	}
	if res.Stage != anim.StageTrackBuilt || res.Samples != 2 {
		t.Errorf("Convert(good) = %v with %d samples", res.Stage, res.Samples)
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse("testdata/missing.dae")
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Parse() error = %v, want not-exist", err)
	}
}
