package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/colornames"

	"github.com/milk9111/rotate/anim"
	"github.com/milk9111/rotate/ecs"
	"github.com/milk9111/rotate/ecs/component"
	"github.com/milk9111/rotate/prefabs"
)

const (
	ProfessorNode component.Name = "Professor"
	FishNode      component.Name = "Fish"
	AxesNode      component.Name = "AxesNode"
	GridNode      component.Name = "GridPlaneNode"
)

// maxSceneDepth bounds parent chains so a bad Parent link cannot loop.
const maxSceneDepth = 32

// BuildScene creates the axes, grid, professor and fish nodes described by
// spec. The fish hangs off the professor without inheriting its orientation.
func BuildScene(w *ecs.World, spec *prefabs.DemoSpec) error {
	axes, err := w.CreateNamed(AxesNode)
	if err != nil {
		return err
	}
	if err := addNode(w, axes, component.NewTransform(mgl64.Vec3{}), component.Shape{
		Kind:  component.ShapeAxes,
		Size:  mgl64.Vec3{spec.Axes.Length, spec.Axes.Length, spec.Axes.Length},
		Width: 2,
	}); err != nil {
		return err
	}

	grid, err := w.CreateNamed(GridNode)
	if err != nil {
		return err
	}
	if err := addNode(w, grid, component.NewTransform(mgl64.Vec3{}), GridShape(spec.Grid)); err != nil {
		return err
	}

	prof, err := w.CreateNamed(ProfessorNode)
	if err != nil {
		return err
	}
	if err := addNode(w, prof, component.NewTransform(spec.Professor.Position.Vec3), component.Shape{
		Kind:  component.ShapeBox,
		Size:  spec.Professor.Size.Vec3,
		Color: spec.Professor.Color.Or(colornames.Orange),
		Width: 1.5,
	}); err != nil {
		return err
	}

	fish, err := w.CreateNamed(FishNode)
	if err != nil {
		return err
	}
	ft := component.NewTransform(mgl64.Vec3{})
	ft.Parent = prof.Raw()
	ft.InheritOrientation = false
	ft.Scale = mgl64.Vec3{spec.Fish.Scale, spec.Fish.Scale, spec.Fish.Scale}
	ft.Orientation = anim.Yaw(spec.Animation.FishInitialYaw)
	return addNode(w, fish, ft, component.Shape{
		Kind:  component.ShapeDiamond,
		Size:  spec.Fish.Size.Vec3,
		Color: spec.Fish.Color.Or(colornames.Skyblue),
		Width: 1.5,
	})
}

// GridShape turns the grid section of a scene spec into a line shape.
func GridShape(g prefabs.GridSpec) component.Shape {
	return component.Shape{
		Kind:  component.ShapeLines,
		Lines: GridLines(g.HalfExtent, g.Spacing),
		Color: g.Color.Or(colornames.White),
		Width: 1,
	}
}

func addNode(w *ecs.World, e ecs.Entity, t component.Transform, s component.Shape) error {
	if err := ecs.Add(w, e, component.TransformComponent, t); err != nil {
		return err
	}
	return ecs.Add(w, e, component.ShapeComponent, s)
}

// WorldTransform resolves e's transform against its parents. A child's
// position is carried through the parent's orientation and scale; its
// orientation composes with the parent's only when InheritOrientation is set.
func WorldTransform(w *ecs.World, e ecs.Entity) (component.Transform, error) {
	return worldTransform(w, e, 0)
}

func worldTransform(w *ecs.World, e ecs.Entity, depth int) (component.Transform, error) {
	if depth > maxSceneDepth {
		return component.Transform{}, fmt.Errorf("scene: parent chain of %v deeper than %d", e, maxSceneDepth)
	}
	local, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return component.Transform{}, fmt.Errorf("scene: entity %v has no transform", e)
	}
	if local.Parent == 0 {
		return local, nil
	}

	parent, err := worldTransform(w, ecs.EntityFromRaw(local.Parent), depth+1)
	if err != nil {
		return component.Transform{}, err
	}

	out := local
	out.Parent = 0
	scaled := mgl64.Vec3{
		parent.Scale.X() * local.Position.X(),
		parent.Scale.Y() * local.Position.Y(),
		parent.Scale.Z() * local.Position.Z(),
	}
	out.Position = parent.Position.Add(parent.Orientation.Rotate(scaled))
	if local.InheritOrientation {
		out.Orientation = parent.Orientation.Mul(local.Orientation)
	}
	out.Scale = mgl64.Vec3{
		parent.Scale.X() * local.Scale.X(),
		parent.Scale.Y() * local.Scale.Y(),
		parent.Scale.Z() * local.Scale.Z(),
	}
	return out, nil
}
