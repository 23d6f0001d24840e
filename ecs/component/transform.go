package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is a node's pose relative to its parent (or the world when it
// has none).
type Transform struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Scale       mgl64.Vec3
	// Parent is the raw entity handle of the parent node, 0 for root nodes.
	Parent uint64
	// InheritOrientation composes the parent's orientation into the node's.
	// Position is always carried through the parent's orientation.
	InheritOrientation bool
}

// NewTransform returns an identity transform at pos.
func NewTransform(pos mgl64.Vec3) Transform {
	return Transform{
		Position:           pos,
		Orientation:        mgl64.QuatIdent(),
		Scale:              mgl64.Vec3{1, 1, 1},
		InheritOrientation: true,
	}
}

var TransformComponent = NewComponent[Transform]()
