package anim

import "dae-track-converter/internal/skeleton"

// Item is one child element of an animation: *Source, *Sampler or *Channel.
type Item interface {
	animationItem()
}

// Animation is a single bone animation as read from the interchange document.
type Animation struct {
	ID    string // used in error messages only
	Items []Item
}

// Param is one named column of a source accessor.
type Param struct {
	Name string
	Type string // "float", "float4x4" or "name"
}

// Source is a named data array with its accessor description.
// Exactly one of Floats and Names carries data.
type Source struct {
	ID     string
	Floats []float32
	Names  []string
	Count  int // number of accessor elements
	Stride int // values per element
	Params []Param
	// Err is set when the document's array could not be read. Such a source
	// fails the animation that owns it with ErrMalformedSource.
	Err error
}

// Input assigns a source to a sampler role. Source is a URI, "#id" for local sources.
type Input struct {
	Semantic string
	Source   string
}

// Sampler groups sources into INPUT, OUTPUT and INTERPOLATION roles.
type Sampler struct {
	ID     string
	Inputs []Input
}

// Channel binds a sampler to "<bone-id>/<transform-sid>".
type Channel struct {
	Source string
	Target string
}

func (*Source) animationItem()  {}
func (*Sampler) animationItem() {}
func (*Channel) animationItem() {}

// BoneIndex resolves bone identifiers. Implementations must be safe for
// concurrent readers; *skeleton.Skeleton is one.
type BoneIndex interface {
	BoneByID(id string) (skeleton.Bone, bool)
}

// Sampler roles.
const (
	SemanticInput         = "INPUT"
	SemanticOutput        = "OUTPUT"
	SemanticInterpolation = "INTERPOLATION"
)

// Accessor param tags and types.
const (
	ParamTime      = "TIME"
	ParamTransform = "TRANSFORM"

	TypeFloat    = "float"
	TypeFloat4x4 = "float4x4"
	TypeName     = "name"
)
