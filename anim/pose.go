package anim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// UpAxis is the vertical axis every yaw rotates around.
var UpAxis = mgl64.Vec3{0, 1, 0}

// Pose is a position plus orientation handed to a scene node.
type Pose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// NewPose returns a pose at the origin with identity orientation.
func NewPose() Pose {
	return Pose{Orientation: mgl64.QuatIdent()}
}

// Yaw builds a pure rotation of deg degrees about UpAxis.
func Yaw(deg float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(deg), UpAxis)
}

// Yaw returns the pose's rotation about UpAxis in degrees, in (-180, 180].
func (p Pose) Yaw() float64 {
	// rotated +X projected onto the horizontal plane; +yaw turns +X toward -Z
	fwd := p.Orientation.Rotate(mgl64.Vec3{1, 0, 0})
	return mgl64.RadToDeg(math.Atan2(-fwd.Z(), fwd.X()))
}

// OrbitPosition is the point at deg degrees on a horizontal circle of the
// given radius, offset vertically by height.
func OrbitPosition(deg, radius, height float64) mgl64.Vec3 {
	rad := mgl64.DegToRad(deg)
	return mgl64.Vec3{radius * math.Cos(rad), height, radius * math.Sin(rad)}
}
