// Package preview draws the reduced curves of a track for visual inspection.
package preview

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"dae-track-converter/internal/anim"
)

// Options controls the output size. Supersample renders at N× and scales down.
type Options struct {
	Width       int
	Height      int
	Supersample int
}

var (
	background = color.NRGBA{255, 255, 255, 255}
	gridColor  = color.NRGBA{220, 220, 220, 255}
	knotColor  = color.NRGBA{40, 40, 40, 255}
	textColor  = color.NRGBA{20, 20, 20, 255}
	palette    = []color.NRGBA{
		{215, 48, 39, 255},
		{26, 152, 80, 255},
		{69, 117, 180, 255},
		{244, 165, 30, 255},
	}
)

type panel struct {
	label string
	curve anim.Curve
	comps []int
}

// Render plots position, orientation and the scale/shear diagonal of t in
// three stacked panels sharing one time axis.
func Render(t *anim.Track, opts Options) *image.NRGBA {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 512, 384
	}
	ss := max(opts.Supersample, 1)
	w, h := opts.Width*ss, opts.Height*ss

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	panels := []panel{
		{"position", t.Position, []int{0, 1, 2}},
		{"orientation", t.Orientation, []int{0, 1, 2, 3}},
		{"scale/shear", t.ScaleShear, []int{0, 4, 8}},
	}
	t0, t1 := timeRange(panels)
	ph := float32(h) / float32(len(panels))
	margin := float32(4 * ss)
	stroke := float32(ss)

	for i, p := range panels {
		top := float32(i)*ph + margin + float32(14*ss)
		bottom := float32(i+1)*ph - margin
		left, right := margin, float32(w)-margin
		fillRect(img, left, bottom-stroke/2, right, bottom+stroke/2, gridColor)
		if p.curve.Validate() != nil {
			continue
		}

		x := func(tt float32) float32 { return left + (right-left)*(tt-t0)/(t1-t0) }
		steps := max(int(right-left), 1)
		samples := make([][]float32, steps+1)
		for s := range samples {
			samples[s] = p.curve.Sample(t0 + (t1-t0)*float32(s)/float32(steps))
		}
		lo, hi := valueRange(samples, p.comps)
		y := func(v float32) float32 { return bottom - (bottom-top)*(v-lo)/(hi-lo) }

		for ci, c := range p.comps {
			pts := make([][2]float32, len(samples))
			for s, v := range samples {
				pts[s] = [2]float32{x(t0 + (t1-t0)*float32(s)/float32(steps)), y(v[c])}
			}
			polyline(img, pts, stroke, palette[ci%len(palette)])
		}
		if !p.curve.IsConstant() {
			for k, kt := range p.curve.Knots {
				for _, c := range p.comps {
					marker(img, x(kt), y(p.curve.Control(k)[c]), 2*stroke, knotColor)
				}
			}
		}
	}

	out := downsample(img, opts.Width, opts.Height)
	for i, p := range panels {
		label(out, 6, i*opts.Height/len(panels)+13, p.label+" "+p.curve.Format.String())
	}
	return out
}

func timeRange(panels []panel) (float32, float32) {
	lo, hi := float32(math.Inf(1)), float32(math.Inf(-1))
	for _, p := range panels {
		if p.curve.IsConstant() || len(p.curve.Knots) == 0 {
			continue
		}
		lo = min(lo, p.curve.Knots[0])
		hi = max(hi, p.curve.Knots[len(p.curve.Knots)-1])
	}
	if lo > hi {
		return 0, 1
	}
	if hi-lo < 1e-6 {
		hi = lo + 1
	}
	return lo, hi
}

func valueRange(samples [][]float32, comps []int) (float32, float32) {
	lo, hi := float32(math.Inf(1)), float32(math.Inf(-1))
	for _, v := range samples {
		for _, c := range comps {
			lo = min(lo, v[c])
			hi = max(hi, v[c])
		}
	}
	if hi-lo < 1e-6 {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

// polyline strokes consecutive points as quads of the given width. All quads
// share one winding so overlaps saturate instead of cancelling.
func polyline(dst draw.Image, pts [][2]float32, width float32, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	half := width / 2
	for i := 1; i < len(pts); i++ {
		x0, y0 := pts[i-1][0], pts[i-1][1]
		x1, y1 := pts[i][0], pts[i][1]
		dx, dy := x1-x0, y1-y0
		l := float32(math.Hypot(float64(dx), float64(dy)))
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half
		z.MoveTo(x0+nx, y0+ny)
		z.LineTo(x1+nx, y1+ny)
		z.LineTo(x1-nx, y1-ny)
		z.LineTo(x0-nx, y0-ny)
		z.ClosePath()
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func marker(dst draw.Image, x, y, r float32, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(x, y-r)
	z.LineTo(x+r, y)
	z.LineTo(x, y+r)
	z.LineTo(x-r, y)
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func fillRect(dst draw.Image, x0, y0, x1, y1 float32, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(x0, y0)
	z.LineTo(x1, y0)
	z.LineTo(x1, y1)
	z.LineTo(x0, y1)
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func label(dst draw.Image, x, y int, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
