package collada

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"dae-track-converter/internal/mathutil"
	"dae-track-converter/internal/skeleton"
)

// Skeleton builds the bone model from the joint nodes of the visual scene.
func (d *Document) Skeleton() (*skeleton.Skeleton, error) {
	s, err := skeleton.New(d.joints)
	if err != nil {
		return nil, fmt.Errorf("collada: %w", err)
	}
	return s, nil
}

func collectJoints(nodes []xmlNode) ([]skeleton.Bone, error) {
	var joints []skeleton.Bone
	var walk func(nodes []xmlNode, parent int) error
	walk = func(nodes []xmlNode, parent int) error {
		for i := range nodes {
			n := &nodes[i]
			next := parent
			if n.Type == "JOINT" && n.ID != "" {
				bind, sid, err := nodeTransform(n)
				if err != nil {
					return fmt.Errorf("node %s: %w", n.ID, err)
				}
				name := n.Name
				if name == "" {
					name = n.ID
				}
				joints = append(joints, skeleton.Bone{
					ID:            n.ID,
					Name:          name,
					TransformSID:  sid,
					Parent:        parent,
					BindTransform: bind,
				})
				next = len(joints) - 1
			}
			if err := walk(n.Nodes, next); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(nodes, -1); err != nil {
		return nil, err
	}
	return joints, nil
}

// nodeTransform composes the node's transform elements in document order.
// The returned sid is set only when the node is described by a single matrix.
func nodeTransform(n *xmlNode) (mgl32.Mat4, string, error) {
	m := mgl32.Ident4()
	var sid string
	count := 0
	for _, t := range n.Transforms {
		vals, err := parseFloats(t.Data)
		var local mgl32.Mat4
		switch t.XMLName.Local {
		case "matrix":
			if err == nil && len(vals) != 16 {
				err = fmt.Errorf("matrix has %d values", len(vals))
			}
			if err != nil {
				return m, "", err
			}
			local = mathutil.Mat4FromFloats(vals).Transpose()
			sid = t.SID
		case "translate":
			if err == nil && len(vals) != 3 {
				err = fmt.Errorf("translate has %d values", len(vals))
			}
			if err != nil {
				return m, "", err
			}
			local = mgl32.Translate3D(vals[0], vals[1], vals[2])
		case "rotate":
			if err == nil && len(vals) != 4 {
				err = fmt.Errorf("rotate has %d values", len(vals))
			}
			if err != nil {
				return m, "", err
			}
			axis := mgl32.Vec3{vals[0], vals[1], vals[2]}
			local = mgl32.HomogRotate3D(mgl32.DegToRad(vals[3]), axis.Normalize())
		case "scale":
			if err == nil && len(vals) != 3 {
				err = fmt.Errorf("scale has %d values", len(vals))
			}
			if err != nil {
				return m, "", err
			}
			local = mgl32.Scale3D(vals[0], vals[1], vals[2])
		default:
			continue
		}
		m = m.Mul4(local)
		count++
	}
	if count != 1 {
		sid = ""
	}
	return m, sid, nil
}
