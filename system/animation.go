package system

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/rotate/anim"
	"github.com/milk9111/rotate/ecs"
	"github.com/milk9111/rotate/ecs/component"
)

const (
	EventSpinStarted  ecs.EventType = "spin_started"
	EventSpinFinished ecs.EventType = "spin_finished"
)

// AnimationSystem advances the controller each frame and writes the poses
// into the Professor and Fish nodes.
type AnimationSystem struct {
	world     *ecs.World
	ctrl      *anim.Controller
	log       *zap.Logger
	professor ecs.Entity
	fish      ecs.Entity

	// Paused skips advancing; the nodes keep their last pose.
	Paused bool
}

func NewAnimationSystem(w *ecs.World, ctrl *anim.Controller, log *zap.Logger) (*AnimationSystem, error) {
	prof, ok := w.Lookup(ProfessorNode)
	if !ok {
		return nil, fmt.Errorf("animation: scene node %q not found", ProfessorNode)
	}
	fish, ok := w.Lookup(FishNode)
	if !ok {
		return nil, fmt.Errorf("animation: scene node %q not found", FishNode)
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &AnimationSystem{world: w, ctrl: ctrl, log: log, professor: prof, fish: fish}
	s.apply(ctrl.Frame())
	return s, nil
}

// Controller exposes the animation state, e.g. for the HUD.
func (s *AnimationSystem) Controller() *anim.Controller {
	return s.ctrl
}

// Reset puts the animation back to its initial state and re-applies it.
func (s *AnimationSystem) Reset() {
	s.ctrl.Reset()
	s.apply(s.ctrl.Frame())
}

// FrameStarted never asks the loop to stop.
func (s *AnimationSystem) FrameStarted(dt float64) (bool, error) {
	if s.Paused {
		return true, nil
	}

	wasSpinning := s.ctrl.Professor().Spinning
	frame, err := s.ctrl.Advance(dt)
	if err != nil {
		return true, err
	}
	s.apply(frame)

	p := s.ctrl.Professor()
	switch {
	case !wasSpinning && p.Spinning:
		s.world.Events().Push(ecs.Event{Type: EventSpinStarted, Entity: s.professor, Data: p})
		s.log.Debug("professor spin started",
			zap.Float64("z", p.Pose.Position.Z()),
			zap.Float64("speed", p.Speed))
	case wasSpinning && !p.Spinning:
		s.world.Events().Push(ecs.Event{Type: EventSpinFinished, Entity: s.professor, Data: p})
		s.log.Debug("professor spin finished", zap.Float64("heading", p.HeadingDeg))
	}
	return true, nil
}

func (s *AnimationSystem) apply(f anim.Frame) {
	ecs.Update(s.world, s.professor, component.TransformComponent, func(t *component.Transform) {
		t.Position = f.Professor.Position
		t.Orientation = f.Professor.Orientation
	})
	ecs.Update(s.world, s.fish, component.TransformComponent, func(t *component.Transform) {
		t.Position = f.Fish.Position
		t.Orientation = f.Fish.Orientation
	})
}
