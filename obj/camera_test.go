package obj

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func demoCamera() *Camera {
	c := NewCamera(1280, 720)
	c.SetPosition(mgl64.Vec3{0, 100, 700})
	c.LookAt(mgl64.Vec3{0, 100, 0})
	c.SetNearClipDistance(5)
	return c
}

func TestProjectCentre(t *testing.T) {
	c := demoCamera()
	x, y, ok := c.Project(mgl64.Vec3{0, 100, 0})
	if !ok {
		t.Fatalf("look-at point reported behind the camera")
	}
	if math.Abs(x-640) > 1e-6 || math.Abs(y-360) > 1e-6 {
		t.Fatalf("expected screen centre, got (%v, %v)", x, y)
	}
}

func TestProjectDirections(t *testing.T) {
	c := demoCamera()
	cases := []struct {
		name  string
		point mgl64.Vec3
		check func(x, y float64) bool
	}{
		{"right", mgl64.Vec3{100, 100, 0}, func(x, y float64) bool { return x > 640 }},
		{"left", mgl64.Vec3{-100, 100, 0}, func(x, y float64) bool { return x < 640 }},
		{"up", mgl64.Vec3{0, 200, 0}, func(x, y float64) bool { return y < 360 }},
		{"down", mgl64.Vec3{0, 0, 0}, func(x, y float64) bool { return y > 360 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y, ok := c.Project(tc.point)
			if !ok || !tc.check(x, y) {
				t.Fatalf("unexpected projection (%v, %v) ok=%v", x, y, ok)
			}
		})
	}
}

func TestProjectBehindCamera(t *testing.T) {
	c := demoCamera()
	if _, _, ok := c.Project(mgl64.Vec3{0, 100, 800}); ok {
		t.Fatalf("point behind the eye should not project")
	}
	if _, _, _, _, ok := c.ProjectSegment(mgl64.Vec3{0, 0, 800}, mgl64.Vec3{10, 0, 900}); ok {
		t.Fatalf("segment fully behind the eye should be rejected")
	}
}

func TestProjectSegmentClipsNearPlane(t *testing.T) {
	c := demoCamera()
	x0, y0, _, _, ok := c.ProjectSegment(mgl64.Vec3{0, 100, 0}, mgl64.Vec3{0, 100, 2000})
	if !ok {
		t.Fatalf("segment crossing the near plane should be kept")
	}
	if math.Abs(x0-640) > 1e-6 || math.Abs(y0-360) > 1e-6 {
		t.Fatalf("visible endpoint moved: (%v, %v)", x0, y0)
	}
}

func TestAspectRatio(t *testing.T) {
	c := NewCamera(1280, 720)
	if math.Abs(c.AspectRatio()-1280.0/720.0) > 1e-12 {
		t.Fatalf("unexpected aspect %v", c.AspectRatio())
	}
	c.SetScreenSize(0, 10)
	if math.Abs(c.AspectRatio()-1280.0/720.0) > 1e-12 {
		t.Fatalf("invalid size should be ignored")
	}
}
