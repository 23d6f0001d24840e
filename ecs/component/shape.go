package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeKind selects the wireframe a node is drawn with.
type ShapeKind int

const (
	ShapeNone ShapeKind = iota
	ShapeAxes
	ShapeBox
	ShapeDiamond
	ShapeLines
)

// Segment is a line in node-local space.
type Segment struct {
	From mgl64.Vec3
	To   mgl64.Vec3
}

// Shape describes how the render system draws a node.
type Shape struct {
	Kind  ShapeKind
	Size  mgl64.Vec3
	Color color.Color
	// Lines is used by ShapeLines.
	Lines []Segment
	Width float32
}

var ShapeComponent = NewComponent[Shape]()
