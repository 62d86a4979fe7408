package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTransform_IdentityByDefault(t *testing.T) {
	tr := NewTransform()
	if !tr.ModelMatrix().ApproxEqual(mgl32.Ident4()) {
		t.Errorf("Expected identity model matrix, got %v", tr.ModelMatrix())
	}
}

func TestTransform_Composition(t *testing.T) {
	tr := NewTransform()
	tr.Translation = mgl32.Vec3{1, 2, 3}
	tr.Rotation = mgl32.Vec3{0.3, -0.7, 1.1}
	tr.Scale = mgl32.Vec3{2, 2, 2}

	want := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.HomogRotate3DX(0.3)).
		Mul4(mgl32.HomogRotate3DY(-0.7)).
		Mul4(mgl32.HomogRotate3DZ(1.1)).
		Mul4(mgl32.Scale3D(2, 2, 2))

	if !matNear(tr.ModelMatrix(), want, 1e-5) {
		t.Errorf("Model matrix mismatch:\n got %v\nwant %v", tr.ModelMatrix(), want)
	}

	p := tr.ModelMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !vecNear(p.Vec3(), mgl32.Vec3{1, 2, 3}, 1e-5) {
		t.Errorf("Origin should map to the translation, got %v", p)
	}
}

// matNear compares element-wise with an absolute tolerance. mgl32's
// ApproxEqualThreshold is relative and demands near-exact zeros.
func matNear(a, b mgl32.Mat4, tol float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > tol {
			return false
		}
	}
	return true
}

func vecNear(a, b mgl32.Vec3, tol float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > tol {
			return false
		}
	}
	return true
}

func TestNormalMatrix_IsInverseTranspose(t *testing.T) {
	tr := NewTransform()
	tr.Translation = mgl32.Vec3{0.5, -1, 2}
	tr.Rotation = mgl32.Vec3{0.1, 0.2, 0.3}
	tr.Scale = mgl32.Vec3{1, 3, 0.5}
	model := tr.ModelMatrix()

	normal := NormalMatrix(model)

	// N^T * M must be the identity.
	if got := normal.Transpose().Mul4(model); !matNear(got, mgl32.Ident4(), 1e-5) {
		t.Errorf("transpose(N) * M should be identity, got %v", got)
	}
}

func TestNormalMatrix_ScaleInvertsAxes(t *testing.T) {
	tr := NewTransform()
	tr.Scale = mgl32.Vec3{1, 3, 0.5}

	want := mgl32.Diag4(mgl32.Vec4{1, 1.0 / 3.0, 2, 1})
	if got := NormalMatrix(tr.ModelMatrix()); !matNear(got, want, 1e-6) {
		t.Errorf("Normal matrix of diag(1,3,0.5) should be diag(1,1/3,2), got %v", got)
	}
}

func TestNormalMatrix_IgnoresTranslation(t *testing.T) {
	tr := NewTransform()
	tr.Translation = mgl32.Vec3{4, -2, 7}
	tr.Scale = mgl32.Vec3{2, 2, 2}

	n := NormalMatrix(tr.ModelMatrix()).Mul4x1(mgl32.Vec4{0, 1, 0, 0})
	if !vecNear(n.Vec3(), mgl32.Vec3{0, 0.5, 0}, 1e-6) {
		t.Errorf("Translation must not leak into transformed normals, got %v", n)
	}
}

func TestNormalMatrix_PureRotationEqualsModel(t *testing.T) {
	tr := NewTransform()
	tr.Rotation = mgl32.Vec3{0.4, 0.4, 0.4}
	model := tr.ModelMatrix()

	if !matNear(NormalMatrix(model), model, 1e-5) {
		t.Errorf("For a pure rotation the normal matrix should equal the model matrix")
	}
}

func TestAnimation_Step(t *testing.T) {
	a := NewAnimation(true)
	a.Step()
	a.Step()
	if !vecNear(a.Rotation, mgl32.Vec3{0.02, 0.02, 0.02}, 1e-6) {
		t.Errorf("Expected rotation 0.02 on every axis, got %v", a.Rotation)
	}

	a.Enabled = false
	a.Step()
	if a.Rotation != (mgl32.Vec3{}) {
		t.Errorf("Disabled animation should hold rotation at zero, got %v", a.Rotation)
	}
}
