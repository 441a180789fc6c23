package anim

import "errors"

// Conversion failures. All of them describe malformed input and abort the
// current animation only; none are worth retrying.
var (
	ErrMalformedSource           = errors.New("malformed source")
	ErrUnresolvedSourceReference = errors.New("unresolved source reference")
	ErrNoSampler                 = errors.New("no sampler")
	ErrDuplicateSampler          = errors.New("more than one sampler")
	ErrIncompleteSampler         = errors.New("incomplete sampler")
	ErrAmbiguousTimeArray        = errors.New("ambiguous time array")
	ErrMissingTimeArray          = errors.New("missing time array")
	ErrAmbiguousTransformArray   = errors.New("ambiguous transform array")
	ErrMissingTransformArray     = errors.New("missing transform array")
	ErrSampleCountMismatch       = errors.New("sample count mismatch")
	ErrNoChannel                 = errors.New("no channel")
	ErrDuplicateChannel          = errors.New("more than one channel")
	ErrUnsupportedChannelTarget  = errors.New("unsupported channel target")
	ErrUnknownBone               = errors.New("unknown bone")
)

// ErrInvalidCurve reports a curve whose payload does not fit its format tag.
var ErrInvalidCurve = errors.New("invalid curve")
