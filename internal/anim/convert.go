package anim

// Stage is a state of the conversion of one animation.
type Stage int

const (
	StageInit Stage = iota
	StageSourcesLoaded
	StageSamplerResolved
	StageEmptyAnimation
	StageChannelResolved
	StageTrackBuilt
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageInit:
		return "init"
	case StageSourcesLoaded:
		return "sources-loaded"
	case StageSamplerResolved:
		return "sampler-resolved"
	case StageEmptyAnimation:
		return "empty"
	case StageChannelResolved:
		return "channel-resolved"
	case StageTrackBuilt:
		return "track-built"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of a conversion that did not fail.
// Track is nil when Stage is StageEmptyAnimation.
type Result struct {
	Stage    Stage
	Track    *Track
	Samples  int
	Duration float32
}

// Convert turns one animation into a Track for the bone its channel targets.
//
// An animation without samples is not an error: Convert returns a Result with
// StageEmptyAnimation and no track. On failure the Result has StageFailed and
// err wraps one of the Err* sentinels.
//
// Convert never modifies a or bones, so distinct animations may be converted
// concurrently against the same skeleton.
func Convert(a *Animation, bones BoneIndex) (Result, error) {
	failed := Result{Stage: StageFailed}

	table, err := BuildSourceTable(a)
	if err != nil {
		return failed, err
	}

	samples, err := ImportSampler(a, table)
	if err != nil {
		return failed, err
	}
	if samples.Len() == 0 {
		Logger().Debug("skipping empty animation", "animation", a.ID)
		return Result{Stage: StageEmptyAnimation}, nil
	}

	bone, err := ResolveChannel(a, bones)
	if err != nil {
		return failed, err
	}

	frames := Decompose(samples.Transforms)
	return Result{
		Stage:    StageTrackBuilt,
		Track:    BuildTrack(bone.Name, samples.Times, frames),
		Samples:  samples.Len(),
		Duration: samples.Duration(),
	}, nil
}
