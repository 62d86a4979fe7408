package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is the object-to-world placement of the shape.
// Rotation holds Euler angles in radians, applied X then Y then Z.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Vec3
	Scale       mgl32.Vec3
}

func NewTransform() *Transform {
	return &Transform{
		Translation: mgl32.Vec3{0, 0, 0},
		Rotation:    mgl32.Vec3{0, 0, 0},
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// ModelMatrix returns M = T * Rx * Ry * Rz * S.
func (t *Transform) ModelMatrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	rotate := mgl32.HomogRotate3DX(t.Rotation.X()).
		Mul4(mgl32.HomogRotate3DY(t.Rotation.Y())).
		Mul4(mgl32.HomogRotate3DZ(t.Rotation.Z()))
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(rotate).Mul4(scale)
}

// NormalMatrix returns the inverse-transpose of model.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat4 {
	return model.Inv().Transpose()
}
