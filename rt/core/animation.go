package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

const DefaultAnimationSpeed = 0.01

// Animation drives the shape rotation once per frame.
type Animation struct {
	Rotation mgl32.Vec3
	Enabled  bool
	Speed    float32 // radians per frame, on every axis
}

func NewAnimation(enabled bool) *Animation {
	return &Animation{Enabled: enabled, Speed: DefaultAnimationSpeed}
}

// Step advances the rotation, or holds it at zero when disabled.
func (a *Animation) Step() {
	if !a.Enabled {
		a.Rotation = mgl32.Vec3{0, 0, 0}
		return
	}
	a.Rotation = a.Rotation.Add(mgl32.Vec3{a.Speed, a.Speed, a.Speed})
}
