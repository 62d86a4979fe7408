package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Scene is the CPU side of a render session: one shape, one light and the
// uniform mirrors that the GPU side flushes every frame.
type Scene struct {
	Light     LightParams
	Transform *Transform
	Animation *Animation
	View      *ViewProjection

	// Camera is nil when the shape is animated; the view is then fixed.
	Camera *OrbitCamera

	Uniforms *Uniforms

	Model  mgl32.Mat4
	Normal mgl32.Mat4

	VertexCount uint32
}

// NewScene resolves the light defaults and performs the one-time uniform
// writes. With animate set, the camera is fixed and its matrices and the
// light/eye positions are written here; otherwise an orbit camera is created
// and the first Update writes them.
func NewScene(li LightInputs, vertexCount uint32, aspect float32, animate bool) *Scene {
	s := &Scene{
		Light:       li.Defaults(),
		Transform:   NewTransform(),
		Animation:   NewAnimation(animate),
		View:        NewViewProjection(aspect),
		Uniforms:    NewUniforms(),
		Model:       mgl32.Ident4(),
		Normal:      mgl32.Ident4(),
		VertexCount: vertexCount,
	}

	s.Uniforms.WriteLight(s.Light)

	if animate {
		s.Uniforms.WriteViewProjection(s.View.ViewProjection)
		s.Uniforms.WritePositions(s.View.Eye, s.View.Eye)
	} else {
		s.Camera = NewOrbitCamera(s.View.Eye, s.View.Center, s.View.Up)
	}
	return s
}

// Update runs the CPU half of a frame and reports whether the camera moved.
func (s *Scene) Update() bool {
	s.Animation.Step()

	moved := false
	if s.Camera != nil && s.Camera.Tick() {
		eye := s.Camera.Eye()
		s.View.SetView(s.Camera.Matrix(), eye)
		s.Uniforms.WriteViewProjection(s.View.ViewProjection)
		// The light rides with the viewer.
		s.Uniforms.WritePositions(eye, eye)
		moved = true
	}

	s.Transform.Rotation = s.Animation.Rotation
	s.Model = s.Transform.ModelMatrix()
	s.Normal = NormalMatrix(s.Model)
	s.Uniforms.WriteModel(s.Model, s.Normal)

	return moved
}

// Resize rebuilds the projection for a new aspect ratio and rewrites the view-projection.
func (s *Scene) Resize(aspect float32) {
	s.View.SetAspect(aspect)
	s.Uniforms.WriteViewProjection(s.View.ViewProjection)
}
