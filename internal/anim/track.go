package anim

// Track is the converted animation of one bone.
type Track struct {
	Name        string
	Flags       uint32
	Position    Curve
	Orientation Curve
	ScaleShear  Curve
}

// BuildTrack reduces and encodes the decomposed frames of a bone. Each channel
// reduces its own copy of times.
func BuildTrack(name string, times []float32, f Frames) *Track {
	posTimes, positions := ReduceVectors(times, f.Positions)
	rotTimes, rotations := ReduceQuaternions(times, f.Rotations)
	scaleTimes, scales := ReduceScaleShear(times, f.ScaleShear)

	Logger().Debug("reduced track",
		"bone", name,
		"samples", len(times),
		"position", len(positions),
		"orientation", len(rotations),
		"scale_shear", len(scales),
	)

	return &Track{
		Name:        name,
		Flags:       0,
		Position:    EncodePosition(posTimes, positions),
		Orientation: EncodeOrientation(rotTimes, rotations),
		ScaleShear:  EncodeScaleShear(scaleTimes, scales),
	}
}
