package anim

import (
	"fmt"
	"strings"

	"dae-track-converter/internal/skeleton"
)

// ResolveChannel finds the animation's channel and the bone it targets.
// The target must be "<bone-id>/<transform-sid>" and the sid must name the
// bone's 4×4 matrix transform.
func ResolveChannel(a *Animation, bones BoneIndex) (skeleton.Bone, error) {
	var channel *Channel
	for _, item := range a.Items {
		c, ok := item.(*Channel)
		if !ok {
			continue
		}
		if channel != nil {
			return skeleton.Bone{}, fmt.Errorf("animation %s: %w", a.ID, ErrDuplicateChannel)
		}
		channel = c
	}
	if channel == nil {
		return skeleton.Bone{}, fmt.Errorf("animation %s: %w", a.ID, ErrNoChannel)
	}

	parts := strings.Split(channel.Target, "/")
	if len(parts) != 2 {
		return skeleton.Bone{}, fmt.Errorf("animation %s: channel target %q: %w", a.ID, channel.Target, ErrUnsupportedChannelTarget)
	}

	bone, ok := bones.BoneByID(parts[0])
	if !ok {
		return skeleton.Bone{}, fmt.Errorf("animation %s: channel references nonexistent bone %q: %w", a.ID, parts[0], ErrUnknownBone)
	}

	if bone.TransformSID != parts[1] {
		return skeleton.Bone{}, fmt.Errorf("animation %s: channel target %q is not the float4x4 transform of bone %s: %w",
			a.ID, channel.Target, bone.ID, ErrUnsupportedChannelTarget)
	}
	return bone, nil
}
