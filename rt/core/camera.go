package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Default camera placement of the demo.
var (
	DefaultEye    = mgl32.Vec3{2, 2, 4}
	DefaultCenter = mgl32.Vec3{0, 0, 0}
	DefaultUp     = mgl32.Vec3{0, 1, 0}
)

const (
	DefaultFovy = float32(2 * math.Pi / 5)
	DefaultNear = float32(0.1)
	DefaultFar  = float32(100.0)

	DefaultZoomMin   = float32(0.1)
	DefaultZoomMax   = float32(100.0)
	DefaultZoomSpeed = float32(2.0)
)

// ViewProjection holds a fixed look-at camera and a perspective projection.
type ViewProjection struct {
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3

	Fovy   float32
	Aspect float32
	Near   float32
	Far    float32

	Projection     mgl32.Mat4
	View           mgl32.Mat4
	ViewProjection mgl32.Mat4
}

func NewViewProjection(aspect float32) *ViewProjection {
	vp := &ViewProjection{
		Eye:    DefaultEye,
		Center: DefaultCenter,
		Up:     DefaultUp,
		Fovy:   DefaultFovy,
		Near:   DefaultNear,
		Far:    DefaultFar,
	}
	vp.View = mgl32.LookAtV(vp.Eye, vp.Center, vp.Up)
	vp.SetAspect(aspect)
	return vp
}

// SetAspect rebuilds the projection for a new aspect ratio.
func (vp *ViewProjection) SetAspect(aspect float32) {
	if aspect <= 0 {
		aspect = 1.0
	}
	vp.Aspect = aspect
	vp.Projection = mgl32.Perspective(vp.Fovy, vp.Aspect, vp.Near, vp.Far)
	vp.ViewProjection = vp.Projection.Mul4(vp.View)
}

// SetView replaces the view matrix, e.g. with an interactive camera's.
func (vp *ViewProjection) SetView(view mgl32.Mat4, eye mgl32.Vec3) {
	vp.View = view
	vp.Eye = eye
	vp.ViewProjection = vp.Projection.Mul4(vp.View)
}

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// OrbitCamera orbits around Center. Left drag rotates, right (or middle)
// drag pans and scrolling zooms. Input only marks the camera changed;
// Tick reports and clears that flag once per frame.
type OrbitCamera struct {
	Center   mgl32.Vec3
	Up       mgl32.Vec3
	Distance float32
	Yaw      float32 // radians, around Up
	Pitch    float32 // radians, clamped short of the poles

	RotateSpeed float32 // radians per pixel
	PanSpeed    float32 // fraction of Distance per pixel
	ZoomSpeed   float32
	ZoomMin     float32
	ZoomMax     float32

	rotating bool
	panning  bool
	hasLast  bool
	lastX    float64
	lastY    float64
	changed  bool
}

const maxPitch = float32(math.Pi/2 - 0.01)

func NewOrbitCamera(eye, center, up mgl32.Vec3) *OrbitCamera {
	c := &OrbitCamera{
		Center:      center,
		Up:          up,
		RotateSpeed: 0.005,
		PanSpeed:    0.002,
		ZoomSpeed:   DefaultZoomSpeed,
		ZoomMin:     DefaultZoomMin,
		ZoomMax:     DefaultZoomMax,
		changed:     true,
	}
	offset := eye.Sub(center)
	c.Distance = offset.Len()
	if c.Distance > 0 {
		c.Pitch = float32(math.Asin(float64(offset.Y() / c.Distance)))
		c.Yaw = float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
	}
	c.clamp()
	return c
}

func (c *OrbitCamera) Eye() mgl32.Vec3 {
	cp := float32(math.Cos(float64(c.Pitch)))
	dir := mgl32.Vec3{
		cp * float32(math.Sin(float64(c.Yaw))),
		float32(math.Sin(float64(c.Pitch))),
		cp * float32(math.Cos(float64(c.Yaw))),
	}
	return c.Center.Add(dir.Mul(c.Distance))
}

// Matrix returns the view matrix.
func (c *OrbitCamera) Matrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Center, c.Up)
}

// Tick reports whether the camera moved since the previous Tick.
// The first Tick after construction always reports true.
func (c *OrbitCamera) Tick() bool {
	changed := c.changed
	c.changed = false
	return changed
}

func (c *OrbitCamera) Rotate(dYaw, dPitch float32) {
	if dYaw == 0 && dPitch == 0 {
		return
	}
	c.Yaw += dYaw
	c.Pitch += dPitch
	c.clamp()
	c.changed = true
}

// Pan shifts the center in the view plane by screen-space pixels.
func (c *OrbitCamera) Pan(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	forward := c.Center.Sub(c.Eye()).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward).Normalize()
	scale := c.Distance * c.PanSpeed
	c.Center = c.Center.Add(right.Mul(-dx * scale)).Add(up.Mul(dy * scale))
	c.changed = true
}

// Zoom scales the distance; positive delta moves closer.
func (c *OrbitCamera) Zoom(delta float32) {
	if delta == 0 {
		return
	}
	old := c.Distance
	c.Distance *= float32(math.Exp(float64(-delta * c.ZoomSpeed * 0.05)))
	c.clamp()
	if c.Distance != old {
		c.changed = true
	}
}

func (c *OrbitCamera) SetButton(button MouseButton, pressed bool) {
	switch button {
	case MouseButtonLeft:
		c.rotating = pressed
	case MouseButtonRight, MouseButtonMiddle:
		c.panning = pressed
	}
	if !pressed && !c.rotating && !c.panning {
		c.hasLast = false
	}
}

func (c *OrbitCamera) MoveCursor(x, y float64) {
	if !c.hasLast {
		c.lastX, c.lastY = x, y
		c.hasLast = true
		return
	}
	dx := float32(x - c.lastX)
	dy := float32(y - c.lastY)
	c.lastX, c.lastY = x, y

	if c.rotating {
		c.Rotate(-dx*c.RotateSpeed, dy*c.RotateSpeed)
	} else if c.panning {
		c.Pan(dx, dy)
	}
}

func (c *OrbitCamera) Scroll(dy float64) {
	c.Zoom(float32(dy))
}

func (c *OrbitCamera) clamp() {
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	if c.Distance < c.ZoomMin {
		c.Distance = c.ZoomMin
	}
	if c.ZoomMax > 0 && c.Distance > c.ZoomMax {
		c.Distance = c.ZoomMax
	}
}
