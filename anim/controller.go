// Package anim advances the professor/fish animation one frame at a time.
// It has no engine dependencies: callers feed elapsed seconds and apply the
// returned poses to whatever scene nodes they own.
package anim

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/rotate/common"
)

const (
	spinDegrees = 180.0
	fullTurn    = 360.0
)

// ErrInvalidArgument is returned for a negative or non-finite frame delta.
var ErrInvalidArgument = errors.New("anim: invalid argument")

// Animator is anything that can be advanced by an elapsed time.
type Animator interface {
	Advance(dt float64) (Frame, error)
}

// ProfessorState is the patrolling body's state.
type ProfessorState struct {
	// Speed is signed; its sign is the direction of travel along Z.
	Speed           float64
	Spinning        bool
	SpinProgressDeg float64
	HeadingDeg      float64
	Pose            Pose
}

// FishState is the orbiting body's state. Pose is local to the professor.
type FishState struct {
	OrbitDeg float64
	SpinDeg  float64
	Pose     Pose
}

// Frame is the output of one Advance call.
type Frame struct {
	Professor Pose
	Fish      Pose
}

// Controller owns the animation state for both bodies.
type Controller struct {
	tuning    Tuning
	professor ProfessorState
	fish      FishState
}

// New creates a controller at its initial state.
func New(t Tuning) *Controller {
	c := &Controller{tuning: t}
	c.Reset()
	return c
}

// Reset restores the initial state.
func (c *Controller) Reset() {
	c.professor = ProfessorState{
		Speed: c.tuning.PatrolSpeed,
		Pose:  NewPose(),
	}
	c.fish = FishState{
		SpinDeg: common.WrapDegrees(c.tuning.FishInitialYaw),
		Pose:    NewPose(),
	}
	c.fish.Pose.Orientation = Yaw(c.fish.SpinDeg)
}

// Tuning returns the constants the controller was built with.
func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// SetTuning swaps the constants and resets to the initial state.
func (c *Controller) SetTuning(t Tuning) {
	c.tuning = t
	c.Reset()
}

// Professor returns a copy of the professor state.
func (c *Controller) Professor() ProfessorState {
	return c.professor
}

// Fish returns a copy of the fish state.
func (c *Controller) Fish() FishState {
	return c.fish
}

// Frame returns the current poses without advancing.
func (c *Controller) Frame() Frame {
	return Frame{Professor: c.professor.Pose, Fish: c.fish.Pose}
}

// Advance moves the animation forward by dt seconds.
func (c *Controller) Advance(dt float64) (Frame, error) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return c.Frame(), fmt.Errorf("%w: dt=%v", ErrInvalidArgument, dt)
	}
	if dt == 0 {
		return c.Frame(), nil
	}

	if c.professor.Spinning {
		c.spin(dt)
	} else {
		c.patrol(dt)
	}
	return c.Frame(), nil
}

func (c *Controller) spin(dt float64) {
	p := &c.professor
	step := c.tuning.ProfessorAngularSpeed * dt

	if p.SpinProgressDeg+step >= spinDegrees {
		p.SpinProgressDeg = 0
		p.Spinning = false
		return
	}

	if p.HeadingDeg >= fullTurn {
		p.HeadingDeg = 0
	}
	p.SpinProgressDeg += step
	p.HeadingDeg += step
	p.Pose.Orientation = Yaw(p.HeadingDeg)

	c.orbit(dt, c.tuning.FishAngularSpeed+c.tuning.ProfessorAngularSpeed)
}

func (c *Controller) patrol(dt float64) {
	p := &c.professor
	z := p.Pose.Position.Z()
	if z < -c.tuning.PatrolBound || z > c.tuning.PatrolBound {
		p.Speed = -p.Speed
		p.Spinning = true
	}

	p.Pose.Position[2] += p.Speed * dt

	c.orbit(dt, c.tuning.FishAngularSpeed)
}

// orbit self-spins the fish, places it at the current orbit angle, then
// advances the angle by rate*dt.
func (c *Controller) orbit(dt, rate float64) {
	f := &c.fish
	f.SpinDeg = common.WrapDegrees(f.SpinDeg - c.tuning.FishAngularSpeed*dt)
	f.Pose.Orientation = Yaw(f.SpinDeg)
	f.Pose.Position = OrbitPosition(f.OrbitDeg, c.tuning.FishRadius, c.tuning.FishHeight)

	if f.OrbitDeg >= fullTurn {
		f.OrbitDeg = 0
	} else {
		f.OrbitDeg += rate * dt
	}
}
