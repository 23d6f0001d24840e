package system

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/rotate/ecs"
	"github.com/milk9111/rotate/ecs/component"
	"github.com/milk9111/rotate/obj"
)

// ColoredSegment is a node-local line with its draw colour.
type ColoredSegment struct {
	component.Segment
	Color color.Color
}

// RenderSystem draws every node that has a transform and a shape as
// projected wireframe lines.
type RenderSystem struct {
	Camera *obj.Camera
}

func NewRenderSystem(cam *obj.Camera) *RenderSystem {
	return &RenderSystem{Camera: cam}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || r.Camera == nil || w == nil || screen == nil {
		return
	}
	for _, e := range w.Query(component.TransformComponent.Kind(), component.ShapeComponent.Kind()) {
		shape, _ := ecs.Get(w, e, component.ShapeComponent)
		t, err := WorldTransform(w, e)
		if err != nil {
			continue
		}
		width := shape.Width
		if width <= 0 {
			width = 1
		}
		for _, seg := range ShapeSegments(shape) {
			a, b := TransformPoint(t, seg.From), TransformPoint(t, seg.To)
			x0, y0, x1, y1, ok := r.Camera.ProjectSegment(a, b)
			if !ok {
				continue
			}
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, seg.Color, true)
		}
	}
}

// TransformPoint maps a node-local point to world space.
func TransformPoint(t component.Transform, p mgl64.Vec3) mgl64.Vec3 {
	scaled := mgl64.Vec3{t.Scale.X() * p.X(), t.Scale.Y() * p.Y(), t.Scale.Z() * p.Z()}
	return t.Position.Add(t.Orientation.Rotate(scaled))
}

// ShapeSegments expands a shape into node-local lines.
func ShapeSegments(s component.Shape) []ColoredSegment {
	clr := s.Color
	if clr == nil {
		clr = colornames.White
	}
	switch s.Kind {
	case component.ShapeAxes:
		return axesSegments(s.Size)
	case component.ShapeBox:
		return colorAll(boxSegments(s.Size), clr)
	case component.ShapeDiamond:
		return colorAll(diamondSegments(s.Size), clr)
	case component.ShapeLines:
		return colorAll(s.Lines, clr)
	}
	return nil
}

func colorAll(segs []component.Segment, clr color.Color) []ColoredSegment {
	out := make([]ColoredSegment, len(segs))
	for i, s := range segs {
		out[i] = ColoredSegment{Segment: s, Color: clr}
	}
	return out
}

func axesSegments(size mgl64.Vec3) []ColoredSegment {
	var origin mgl64.Vec3
	return []ColoredSegment{
		{component.Segment{From: origin, To: mgl64.Vec3{size.X(), 0, 0}}, colornames.Red},
		{component.Segment{From: origin, To: mgl64.Vec3{0, size.Y(), 0}}, colornames.Lime},
		{component.Segment{From: origin, To: mgl64.Vec3{0, 0, size.Z()}}, colornames.Blue},
	}
}

// boxSegments is a box standing on y=0, plus a heading tick along +Z.
func boxSegments(size mgl64.Vec3) []component.Segment {
	hx, hz, h := size.X()/2, size.Z()/2, size.Y()
	corners := [8]mgl64.Vec3{
		{-hx, 0, -hz}, {hx, 0, -hz}, {hx, 0, hz}, {-hx, 0, hz},
		{-hx, h, -hz}, {hx, h, -hz}, {hx, h, hz}, {-hx, h, hz},
	}
	segs := make([]component.Segment, 0, 13)
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		segs = append(segs,
			component.Segment{From: corners[i], To: corners[j]},
			component.Segment{From: corners[i+4], To: corners[j+4]},
			component.Segment{From: corners[i], To: corners[i+4]},
		)
	}
	mid := mgl64.Vec3{0, h / 2, hz}
	segs = append(segs, component.Segment{From: mid, To: mid.Add(mgl64.Vec3{0, 0, size.Z()})})
	return segs
}

// diamondSegments is an octahedron with its long axis on X.
func diamondSegments(size mgl64.Vec3) []component.Segment {
	hx, hy, hz := size.X()/2, size.Y()/2, size.Z()/2
	tips := [2]mgl64.Vec3{{hx, 0, 0}, {-hx, 0, 0}}
	ring := [4]mgl64.Vec3{{0, hy, 0}, {0, 0, hz}, {0, -hy, 0}, {0, 0, -hz}}
	segs := make([]component.Segment, 0, 12)
	for i, r := range ring {
		segs = append(segs, component.Segment{From: r, To: ring[(i+1)%4]})
		for _, tip := range tips {
			segs = append(segs, component.Segment{From: tip, To: r})
		}
	}
	return segs
}
