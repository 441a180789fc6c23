package diag

import (
	"errors"
	"io/fs"

	"dae-track-converter/internal/anim"
)

// Code is a short, stable failure category for logs and the manifest.
type Code string

const (
	CodeNone              Code = ""
	CodeUnknown           Code = "unknown"
	CodeIO                Code = "io"
	CodeMalformedSource   Code = "malformed_source"
	CodeUnresolvedSource  Code = "unresolved_source"
	CodeSampler           Code = "sampler"
	CodeTimeArray         Code = "time_array"
	CodeTransformArray    Code = "transform_array"
	CodeSampleCount       Code = "sample_count"
	CodeChannel           Code = "channel"
	CodeUnsupportedTarget Code = "unsupported_target"
	CodeUnknownBone       Code = "unknown_bone"
	CodeInvalidCurve      Code = "invalid_curve"
)

var codes = []struct {
	err  error
	code Code
}{
	{anim.ErrMalformedSource, CodeMalformedSource},
	{anim.ErrUnresolvedSourceReference, CodeUnresolvedSource},
	{anim.ErrNoSampler, CodeSampler},
	{anim.ErrDuplicateSampler, CodeSampler},
	{anim.ErrIncompleteSampler, CodeSampler},
	{anim.ErrAmbiguousTimeArray, CodeTimeArray},
	{anim.ErrMissingTimeArray, CodeTimeArray},
	{anim.ErrAmbiguousTransformArray, CodeTransformArray},
	{anim.ErrMissingTransformArray, CodeTransformArray},
	{anim.ErrSampleCountMismatch, CodeSampleCount},
	{anim.ErrNoChannel, CodeChannel},
	{anim.ErrDuplicateChannel, CodeChannel},
	{anim.ErrUnsupportedChannelTarget, CodeUnsupportedTarget},
	{anim.ErrUnknownBone, CodeUnknownBone},
	{anim.ErrInvalidCurve, CodeInvalidCurve},
}

// Classify maps err onto a Code using sentinel errors only, never message text.
func Classify(err error) Code {
	if err == nil {
		return CodeNone
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	var perr *fs.PathError
	if errors.As(err, &perr) {
		return CodeIO
	}
	return CodeUnknown
}
