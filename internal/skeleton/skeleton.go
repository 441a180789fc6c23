package skeleton

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Bone holds one joint of the skeleton hierarchy.
type Bone struct {
	ID   string // document identifier, used by channel targets
	Name string
	// TransformSID is the sid of the bone's single 4×4 matrix transform.
	// Empty when the joint is described by any other transform element.
	TransformSID  string
	Parent        int // -1 for roots
	BindTransform mgl32.Mat4
}

// Skeleton is a read-only bone list with an id index. Safe for concurrent readers.
type Skeleton struct {
	Bones []Bone
	byID  map[string]int
}

// New indexes bones by id. Parents must precede their children.
func New(bones []Bone) (*Skeleton, error) {
	s := &Skeleton{
		Bones: bones,
		byID:  make(map[string]int, len(bones)),
	}
	for i, b := range bones {
		if b.ID == "" {
			return nil, fmt.Errorf("skeleton: bone %d (%s) has no id", i, b.Name)
		}
		if _, dup := s.byID[b.ID]; dup {
			return nil, fmt.Errorf("skeleton: duplicate bone id %q", b.ID)
		}
		if b.Parent >= i {
			return nil, fmt.Errorf("skeleton: bone %q parent %d does not precede it", b.ID, b.Parent)
		}
		s.byID[b.ID] = i
	}
	return s, nil
}

// BoneByID looks a bone up by its document identifier.
func (s *Skeleton) BoneByID(id string) (Bone, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Bone{}, false
	}
	return s.Bones[i], true
}

// Len returns the number of bones.
func (s *Skeleton) Len() int {
	return len(s.Bones)
}

// WorldMatrices computes the bind-pose world transform of each bone,
// indexed like Bones.
func (s *Skeleton) WorldMatrices() []mgl32.Mat4 {
	worlds := make([]mgl32.Mat4, len(s.Bones))
	for i, b := range s.Bones {
		if b.Parent >= 0 {
			worlds[i] = worlds[b.Parent].Mul4(b.BindTransform)
		} else {
			worlds[i] = b.BindTransform
		}
	}
	return worlds
}
