package system

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/rotate/anim"
	"github.com/milk9111/rotate/ecs"
	"github.com/milk9111/rotate/ecs/component"
)

func newAnimationSystem(t *testing.T) (*ecs.World, *AnimationSystem) {
	t.Helper()
	w, spec := demoScene(t)
	sys, err := NewAnimationSystem(w, anim.New(spec.Animation), nil)
	if err != nil {
		t.Fatalf("new animation system: %v", err)
	}
	return w, sys
}

func nodeTransform(t *testing.T, w *ecs.World, name component.Name) component.Transform {
	t.Helper()
	e, ok := w.Lookup(name)
	if !ok {
		t.Fatalf("missing node %q", name)
	}
	tr, err := WorldTransform(w, e)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestAnimationSystemRequiresNodes(t *testing.T) {
	if _, err := NewAnimationSystem(ecs.NewWorld(), anim.New(anim.DefaultTuning()), nil); err == nil {
		t.Fatalf("expected error for empty world")
	}
}

func TestAnimationSystemAppliesPoses(t *testing.T) {
	w, sys := newAnimationSystem(t)
	loop := NewLoop(w, sys)

	for i := 0; i < 2; i++ {
		ok, err := loop.Step(1.0)
		if err != nil || !ok {
			t.Fatalf("step %d: ok=%v err=%v", i, ok, err)
		}
	}

	prof := nodeTransform(t, w, ProfessorNode)
	if !nearVec(prof.Position, mgl64.Vec3{0, 0, 200}) {
		t.Fatalf("unexpected professor position %v", prof.Position)
	}

	// the fish orbits the professor: local offset plus parent position
	local := sys.Controller().Fish().Pose.Position
	fish := nodeTransform(t, w, FishNode)
	if !nearVec(fish.Position, prof.Position.Add(local)) {
		t.Fatalf("fish %v not offset from professor %v by %v", fish.Position, prof.Position, local)
	}
}

func TestAnimationSystemSpinEvents(t *testing.T) {
	w, sys := newAnimationSystem(t)
	loop := NewLoop(w, sys)

	var started, finished int
	for i := 0; i < 12; i++ {
		if _, err := loop.Step(0.5); err != nil {
			t.Fatal(err)
		}
		for _, ev := range w.Events().Peek() {
			switch ev.Type {
			case EventSpinStarted:
				started++
			case EventSpinFinished:
				finished++
			}
		}
	}
	// 0.5s ticks: the spin starts on tick 7 (z=300) and ends on tick 12
	if started != 1 || finished != 1 {
		t.Fatalf("expected one start and one finish, got %d/%d", started, finished)
	}
	if sys.Controller().Professor().Spinning {
		t.Fatalf("spin should be over")
	}
}

func TestAnimationSystemPauseAndReset(t *testing.T) {
	w, sys := newAnimationSystem(t)
	loop := NewLoop(w, sys)
	loop.Step(1.0)

	sys.Paused = true
	before := nodeTransform(t, w, ProfessorNode)
	loop.Step(1.0)
	if after := nodeTransform(t, w, ProfessorNode); after.Position != before.Position {
		t.Fatalf("paused system moved the professor")
	}

	sys.Reset()
	if p := nodeTransform(t, w, ProfessorNode); !nearVec(p.Position, mgl64.Vec3{}) {
		t.Fatalf("reset should return the professor to the origin, got %v", p.Position)
	}
}

func TestAnimationSystemSurfacesInvalidDelta(t *testing.T) {
	w, sys := newAnimationSystem(t)
	loop := NewLoop(w, sys)
	_, err := loop.Step(math.NaN())
	if !errors.Is(err, anim.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
