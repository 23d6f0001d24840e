package obj

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera that maps world points onto the screen.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	fovY    float64 // degrees
	near    float64
	far     float64
	screenW int
	screenH int

	view  mgl64.Mat4
	proj  mgl64.Mat4
	dirty bool
}

// NewCamera creates a camera at the origin looking down -Z.
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		Target:  mgl64.Vec3{0, 0, -1},
		Up:      mgl64.Vec3{0, 1, 0},
		fovY:    45,
		near:    5,
		far:     10000,
		screenW: screenW,
		screenH: screenH,
		dirty:   true,
	}
}

// SetPosition moves the eye.
func (c *Camera) SetPosition(p mgl64.Vec3) {
	c.Position = p
	c.dirty = true
}

// LookAt points the camera at target.
func (c *Camera) LookAt(target mgl64.Vec3) {
	c.Target = target
	c.dirty = true
}

// SetNearClipDistance sets the near plane; non-positive values are ignored.
func (c *Camera) SetNearClipDistance(d float64) {
	if d <= 0 {
		return
	}
	c.near = d
	c.dirty = true
}

// SetFarClipDistance sets the far plane; it must lie beyond the near plane.
func (c *Camera) SetFarClipDistance(d float64) {
	if d <= c.near {
		return
	}
	c.far = d
	c.dirty = true
}

// SetFovY sets the vertical field of view in degrees.
func (c *Camera) SetFovY(deg float64) {
	if deg <= 0 || deg >= 180 {
		return
	}
	c.fovY = deg
	c.dirty = true
}

// SetScreenSize updates the logical screen size used for the aspect ratio.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if c.screenW == w && c.screenH == h {
		return
	}
	c.screenW = w
	c.screenH = h
	c.dirty = true
}

// AspectRatio is width over height of the viewport.
func (c *Camera) AspectRatio() float64 {
	if c.screenH == 0 {
		return 1
	}
	return float64(c.screenW) / float64(c.screenH)
}

func (c *Camera) update() {
	if !c.dirty {
		return
	}
	c.view = mgl64.LookAtV(c.Position, c.Target, c.Up)
	c.proj = mgl64.Perspective(mgl64.DegToRad(c.fovY), c.AspectRatio(), c.near, c.far)
	c.dirty = false
}

// Project maps a world point to screen pixels. ok is false when the point
// lies behind the near plane.
func (c *Camera) Project(p mgl64.Vec3) (x, y float64, ok bool) {
	c.update()
	v := c.view.Mul4x1(p.Vec4(1)).Vec3()
	if v.Z() > -c.near {
		return 0, 0, false
	}
	x, y = c.toScreen(v)
	return x, y, true
}

// ProjectSegment projects a world segment, clipping it against the near
// plane. ok is false when the whole segment is behind the camera.
func (c *Camera) ProjectSegment(a, b mgl64.Vec3) (x0, y0, x1, y1 float64, ok bool) {
	c.update()
	va := c.view.Mul4x1(a.Vec4(1)).Vec3()
	vb := c.view.Mul4x1(b.Vec4(1)).Vec3()
	limit := -c.near

	aIn, bIn := va.Z() <= limit, vb.Z() <= limit
	switch {
	case !aIn && !bIn:
		return 0, 0, 0, 0, false
	case !aIn:
		va = clipToPlane(vb, va, limit)
	case !bIn:
		vb = clipToPlane(va, vb, limit)
	}

	x0, y0 = c.toScreen(va)
	x1, y1 = c.toScreen(vb)
	return x0, y0, x1, y1, true
}

// clipToPlane moves out along in->out until it sits on z == limit.
func clipToPlane(in, out mgl64.Vec3, limit float64) mgl64.Vec3 {
	t := (limit - in.Z()) / (out.Z() - in.Z())
	return in.Add(out.Sub(in).Mul(t))
}

func (c *Camera) toScreen(view mgl64.Vec3) (float64, float64) {
	clip := c.proj.Mul4x1(view.Vec4(1))
	w := clip.W()
	if math.Abs(w) < 1e-12 {
		w = 1e-12
	}
	ndcX, ndcY := clip.X()/w, clip.Y()/w
	sx := (ndcX + 1) / 2 * float64(c.screenW)
	sy := (1 - ndcY) / 2 * float64(c.screenH)
	return sx, sy
}
