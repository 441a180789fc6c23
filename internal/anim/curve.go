package anim

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"dae-track-converter/internal/mathutil"
)

// CurveFormat identifies a curve encoding in the target container.
type CurveFormat int32

// Format tags as numbered by the target container. Only DaK32fC32f and the
// three constant shapes are produced here.
const (
	FormatDaKeyframes32f CurveFormat = iota
	FormatDaK32fC32f
	FormatDaIdentity
	FormatDaConstant32f
	FormatD3Constant32f
	FormatD4Constant32f
)

// CurveDegree is the polynomial degree every produced curve is tagged with.
const CurveDegree = 2

func (f CurveFormat) String() string {
	switch f {
	case FormatDaKeyframes32f:
		return "DaKeyframes32f"
	case FormatDaK32fC32f:
		return "DaK32fC32f"
	case FormatDaIdentity:
		return "DaIdentity"
	case FormatDaConstant32f:
		return "DaConstant32f"
	case FormatD3Constant32f:
		return "D3Constant32f"
	case FormatD4Constant32f:
		return "D4Constant32f"
	default:
		return fmt.Sprintf("CurveFormat(%d)", int32(f))
	}
}

// Curve is a tagged union over the produced encodings. Constant formats carry
// their components in Controls and no knots; DaK32fC32f carries one knot per
// frame and Dim controls per knot.
type Curve struct {
	Format   CurveFormat
	Degree   uint8
	Dim      int
	Knots    []float32
	Controls []float32
}

// IsConstant reports whether c is one of the constant shapes.
func (c Curve) IsConstant() bool {
	switch c.Format {
	case FormatDaConstant32f, FormatD3Constant32f, FormatD4Constant32f:
		return true
	}
	return false
}

// Frames returns the number of stored frames: 1 for constants.
func (c Curve) Frames() int {
	if c.IsConstant() {
		return 1
	}
	return len(c.Knots)
}

// formatDim is the payload width each constant format requires.
var formatDim = map[CurveFormat]int{
	FormatDaConstant32f: 9,
	FormatD3Constant32f: 3,
	FormatD4Constant32f: 4,
}

// Validate checks that the payload matches the format tag: constants carry
// exactly their fixed width and no knots, keyframed curves carry Dim controls
// per knot for a position, orientation or scale/shear payload.
func (c Curve) Validate() error {
	switch c.Format {
	case FormatDaConstant32f, FormatD3Constant32f, FormatD4Constant32f:
		want := formatDim[c.Format]
		if c.Dim != want || len(c.Knots) != 0 || len(c.Controls) != want {
			return fmt.Errorf("%s with dimension %d, %d knots, %d controls: %w",
				c.Format, c.Dim, len(c.Knots), len(c.Controls), ErrInvalidCurve)
		}
	case FormatDaK32fC32f:
		if c.Dim != 3 && c.Dim != 4 && c.Dim != 9 {
			return fmt.Errorf("%s with dimension %d: %w", c.Format, c.Dim, ErrInvalidCurve)
		}
		if len(c.Knots) == 0 || len(c.Controls) != len(c.Knots)*c.Dim {
			return fmt.Errorf("%s with %d knots, %d controls: %w", c.Format, len(c.Knots), len(c.Controls), ErrInvalidCurve)
		}
	default:
		return fmt.Errorf("%s is not produced by this encoder: %w", c.Format, ErrInvalidCurve)
	}
	return nil
}

// Control returns the components of frame i, or nil when the curve holds no
// such frame.
func (c Curve) Control(i int) []float32 {
	if c.Dim <= 0 || i < 0 || (i+1)*c.Dim > len(c.Controls) {
		return nil
	}
	return c.Controls[i*c.Dim : (i+1)*c.Dim]
}

// Sample evaluates c at t. Keyframed curves are interpolated linearly between
// knots and clamped outside them, which is close enough for diagnostics.
// Invalid curves sample as zero.
func (c Curve) Sample(t float32) []float32 {
	out := make([]float32, max(c.Dim, 0))
	if c.Validate() != nil {
		return out
	}
	if c.IsConstant() || len(c.Knots) == 1 {
		copy(out, c.Controls[:c.Dim])
		return out
	}
	n := len(c.Knots)
	if t <= c.Knots[0] {
		copy(out, c.Control(0))
		return out
	}
	if t >= c.Knots[n-1] {
		copy(out, c.Control(n-1))
		return out
	}
	i := sort.Search(n, func(k int) bool { return c.Knots[k] > t })
	t0, t1 := c.Knots[i-1], c.Knots[i]
	alpha := (t - t0) / (t1 - t0)
	a, b := c.Control(i-1), c.Control(i)
	for k := range out {
		out[k] = a[k] + (b[k]-a[k])*alpha
	}
	return out
}

func keyframed(knots []float32, dim int, controls []float32) Curve {
	return Curve{
		Format:   FormatDaK32fC32f,
		Degree:   CurveDegree,
		Dim:      dim,
		Knots:    knots,
		Controls: controls,
	}
}

// EncodePosition emits a D3Constant32f curve for a single frame, DaK32fC32f otherwise.
func EncodePosition(times []float32, values []mgl32.Vec3) Curve {
	if len(values) == 1 {
		v := values[0]
		return Curve{Format: FormatD3Constant32f, Degree: CurveDegree, Dim: 3, Controls: []float32{v[0], v[1], v[2]}}
	}
	controls := make([]float32, 0, len(values)*3)
	for _, v := range values {
		controls = append(controls, v[0], v[1], v[2])
	}
	return keyframed(times, 3, controls)
}

// EncodeOrientation emits a D4Constant32f curve for a single frame, DaK32fC32f
// otherwise. Components are stored x, y, z, w.
func EncodeOrientation(times []float32, values []mgl32.Quat) Curve {
	if len(values) == 1 {
		q := mathutil.XYZW(values[0])
		return Curve{Format: FormatD4Constant32f, Degree: CurveDegree, Dim: 4, Controls: q[:]}
	}
	controls := make([]float32, 0, len(values)*4)
	for _, v := range values {
		q := mathutil.XYZW(v)
		controls = append(controls, q[:]...)
	}
	return keyframed(times, 4, controls)
}

// EncodeScaleShear emits a DaConstant32f curve for a single frame, DaK32fC32f
// otherwise. Matrices are stored row by row.
func EncodeScaleShear(times []float32, values []mgl32.Mat3) Curve {
	if len(values) == 1 {
		m := mathutil.Mat3RowMajor(values[0])
		return Curve{Format: FormatDaConstant32f, Degree: CurveDegree, Dim: 9, Controls: m[:]}
	}
	controls := make([]float32, 0, len(values)*9)
	for _, v := range values {
		m := mathutil.Mat3RowMajor(v)
		controls = append(controls, m[:]...)
	}
	return keyframed(times, 9, controls)
}
