package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"dae-track-converter/internal/anim"
	"dae-track-converter/internal/collada"
	"dae-track-converter/internal/diag"
	"dae-track-converter/internal/trackfile"
)

func main() {
	tracks := flag.Bool("tracks", false, "Treat the argument as a track file written by convert")
	verbose := flag.Bool("v", false, "Log reduction details")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: inspect [-v] [-tracks] <file>")
		os.Exit(2)
	}
	if *verbose {
		diag.SetLogger(diag.NewLogger(os.Stderr, "debug"))
	}

	path := flag.Arg(0)
	if *tracks {
		g, err := trackfile.Read(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Group %q: duration=%.3f, step=%.4f, oversampling=%.0f, tracks=%d\n",
			g.Name, g.Duration, g.TimeStep, g.Oversampling, len(g.Tracks))
		for _, t := range g.Tracks {
			printTrack(t.Anim())
		}
		return
	}

	doc, err := collada.Parse(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	bones, err := doc.Skeleton()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	anims := doc.Animations()
	fmt.Printf("Up: %s, Unit: %gm, Bones: %d, Animations: %d\n", doc.UpAxis, doc.UnitMeter, bones.Len(), len(anims))

	world := bones.WorldMatrices()
	for i, b := range bones.Bones {
		t := world[i].Col(3)
		sid := b.TransformSID
		if sid == "" {
			sid = "-"
		}
		fmt.Printf("  Bone[%d] %s (%s) parent=%d sid=%s bind=(%.3f, %.3f, %.3f)\n",
			i, b.ID, b.Name, b.Parent, sid, t[0], t[1], t[2])
	}

	failed := 0
	for _, a := range anims {
		res, err := anim.Convert(a, bones)
		if err != nil {
			failed++
			fmt.Printf("  Anim %s: %s [%s] %v\n", a.ID, res.Stage, diag.Classify(err), err)
			continue
		}
		fmt.Printf("  Anim %s: %s, samples=%d, duration=%.3f\n", a.ID, res.Stage, res.Samples, res.Duration)
		if res.Track != nil {
			printTrack(res.Track)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func printTrack(t *anim.Track) {
	fmt.Printf("    Track %s\n", t.Name)
	for _, c := range []struct {
		name  string
		curve anim.Curve
	}{
		{"position", t.Position},
		{"orientation", t.Orientation},
		{"scale/shear", t.ScaleShear},
	} {
		fmt.Printf("      %-12s %-14s frames=%d %s\n", c.name, c.curve.Format, c.curve.Frames(), knotList(c.curve.Knots))
	}
}

func knotList(knots []float32) string {
	if len(knots) == 0 {
		return ""
	}
	parts := make([]string, 0, min(len(knots), 8))
	for i, k := range knots {
		if i == 7 && len(knots) > 8 {
			parts = append(parts, "...")
			break
		}
		parts = append(parts, fmt.Sprintf("%.3f", k))
	}
	return "knots=[" + strings.Join(parts, " ") + "]"
}
