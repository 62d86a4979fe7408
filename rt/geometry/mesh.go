package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrMeshEmpty    = errors.New("mesh has no vertices")
	ErrMeshStride   = errors.New("mesh positions are not a multiple of 3 floats")
	ErrMeshMismatch = errors.New("mesh positions and normals differ in length")
)

// Mesh is a non-indexed triangle list: every 3 floats of Positions form a
// vertex, every 3 vertices a triangle. Normals is parallel to Positions.
type Mesh struct {
	Positions []float32
	Normals   []float32
}

func (m *Mesh) VertexCount() uint32 {
	return uint32(len(m.Positions) / 3)
}

func (m *Mesh) Validate() error {
	if len(m.Positions) == 0 {
		return ErrMeshEmpty
	}
	if len(m.Positions)%3 != 0 {
		return fmt.Errorf("%w: got %d", ErrMeshStride, len(m.Positions))
	}
	if len(m.Positions) != len(m.Normals) {
		return fmt.Errorf("%w: %d positions, %d normals", ErrMeshMismatch, len(m.Positions), len(m.Normals))
	}
	return nil
}

func (m *Mesh) addVertex(p, n mgl32.Vec3) {
	m.Positions = append(m.Positions, p[0], p[1], p[2])
	m.Normals = append(m.Normals, n[0], n[1], n[2])
}

// addQuad emits a-b-c and a-c-d.
func (m *Mesh) addQuad(a, b, c, d, na, nb, nc, nd mgl32.Vec3) {
	m.addVertex(a, na)
	m.addVertex(b, nb)
	m.addVertex(c, nc)
	m.addVertex(a, na)
	m.addVertex(c, nc)
	m.addVertex(d, nd)
}

// ByName returns one of the built-in demo shapes with its default size.
func ByName(name string) (Mesh, error) {
	switch name {
	case "cube":
		return Cube(2), nil
	case "sphere":
		return Sphere(1.5, 20, 15), nil
	case "cylinder":
		return Cylinder(0.5, 1.5, 2.5, 20), nil
	case "torus":
		return Torus(1.5, 0.4, 24, 16), nil
	default:
		return Mesh{}, fmt.Errorf("unknown shape %q (want cube, sphere, cylinder or torus)", name)
	}
}

// Names lists the shapes ByName understands.
func Names() []string {
	return []string{"cube", "sphere", "cylinder", "torus"}
}
