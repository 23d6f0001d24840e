package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/rotate/anim"
	"github.com/milk9111/rotate/ecs"
	"github.com/milk9111/rotate/ecs/component"
	"github.com/milk9111/rotate/prefabs"
)

func nearVec(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-9)
}

func demoScene(t *testing.T) (*ecs.World, *prefabs.DemoSpec) {
	t.Helper()
	spec, err := prefabs.LoadDemoSpec("")
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	w := ecs.NewWorld()
	if err := BuildScene(w, spec); err != nil {
		t.Fatalf("build scene: %v", err)
	}
	return w, spec
}

func TestBuildScene(t *testing.T) {
	w, _ := demoScene(t)
	for _, name := range []component.Name{AxesNode, GridNode, ProfessorNode, FishNode} {
		e, ok := w.Lookup(name)
		if !ok {
			t.Fatalf("missing node %q", name)
		}
		if !ecs.Has(w, e, component.ShapeComponent) || !ecs.Has(w, e, component.TransformComponent) {
			t.Fatalf("node %q lacks transform or shape", name)
		}
	}

	grid, _ := w.Lookup(GridNode)
	shape, _ := ecs.Get(w, grid, component.ShapeComponent)
	if len(shape.Lines) != 42 {
		t.Fatalf("expected 42 grid lines, got %d", len(shape.Lines))
	}

	fish, _ := w.Lookup(FishNode)
	ft, _ := ecs.Get(w, fish, component.TransformComponent)
	prof, _ := w.Lookup(ProfessorNode)
	if ecs.EntityFromRaw(ft.Parent) != prof || ft.InheritOrientation {
		t.Fatalf("fish must hang off the professor without inheriting orientation: %+v", ft)
	}

	if err := BuildScene(w, &prefabs.DemoSpec{}); err == nil {
		t.Fatalf("building twice should fail on duplicate names")
	}
}

func TestWorldTransformFollowsParent(t *testing.T) {
	w := ecs.NewWorld()
	parent := w.CreateEntity()
	child := w.CreateEntity()

	pt := component.NewTransform(mgl64.Vec3{0, 0, 100})
	pt.Orientation = anim.Yaw(90)
	ct := component.NewTransform(mgl64.Vec3{50, -10, 0})
	ct.Parent = parent.Raw()
	ct.InheritOrientation = false
	ct.Orientation = anim.Yaw(30)

	if err := ecs.Add(w, parent, component.TransformComponent, pt); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, child, component.TransformComponent, ct); err != nil {
		t.Fatal(err)
	}

	got, err := WorldTransform(w, child)
	if err != nil {
		t.Fatal(err)
	}
	// yaw 90 turns +X into -Z
	if !nearVec(got.Position, mgl64.Vec3{0, -10, 50}) {
		t.Fatalf("unexpected child position %v", got.Position)
	}
	if math.Abs(anim.Pose{Orientation: got.Orientation}.Yaw()-30) > 1e-9 {
		t.Fatalf("child orientation should ignore the parent, got yaw %v", anim.Pose{Orientation: got.Orientation}.Yaw())
	}

	ct.InheritOrientation = true
	ecs.Add(w, child, component.TransformComponent, ct)
	got, _ = WorldTransform(w, child)
	if math.Abs(anim.Pose{Orientation: got.Orientation}.Yaw()-120) > 1e-9 {
		t.Fatalf("inherited yaw should compose to 120, got %v", anim.Pose{Orientation: got.Orientation}.Yaw())
	}
}

func TestWorldTransformErrors(t *testing.T) {
	w := ecs.NewWorld()
	bare := w.CreateEntity()
	if _, err := WorldTransform(w, bare); err == nil {
		t.Fatalf("expected error for entity without transform")
	}

	loop := w.CreateEntity()
	lt := component.NewTransform(mgl64.Vec3{})
	lt.Parent = loop.Raw()
	ecs.Add(w, loop, component.TransformComponent, lt)
	if _, err := WorldTransform(w, loop); err == nil {
		t.Fatalf("expected error for self-parented node")
	}
}
