package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Cube returns an axis aligned cube centered at the origin with flat face normals.
func Cube(side float32) Mesh {
	h := side / 2
	var m Mesh

	faces := []struct {
		n          mgl32.Vec3
		a, b, c, d mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{-h, -h, h}, mgl32.Vec3{h, -h, h}, mgl32.Vec3{h, h, h}, mgl32.Vec3{-h, h, h}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{h, -h, -h}, mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{-h, h, -h}, mgl32.Vec3{h, h, -h}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{h, -h, h}, mgl32.Vec3{h, -h, -h}, mgl32.Vec3{h, h, -h}, mgl32.Vec3{h, h, h}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{-h, -h, h}, mgl32.Vec3{-h, h, h}, mgl32.Vec3{-h, h, -h}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{-h, h, h}, mgl32.Vec3{h, h, h}, mgl32.Vec3{h, h, -h}, mgl32.Vec3{-h, h, -h}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{h, -h, -h}, mgl32.Vec3{h, -h, h}, mgl32.Vec3{-h, -h, h}},
	}
	for _, f := range faces {
		m.addQuad(f.a, f.b, f.c, f.d, f.n, f.n, f.n, f.n)
	}
	return m
}

func spherePoint(radius, theta, phi float32) mgl32.Vec3 {
	st, ct := sincos(theta)
	sp, cp := sincos(phi)
	return mgl32.Vec3{radius * st * cp, radius * ct, -radius * st * sp}
}

// Sphere returns a UV sphere with u longitude and v latitude segments.
func Sphere(radius float32, u, v int) Mesh {
	if u < 3 {
		u = 3
	}
	if v < 2 {
		v = 2
	}
	var m Mesh
	for i := 0; i < u; i++ {
		phi0 := float32(i) * 2 * math.Pi / float32(u)
		phi1 := float32(i+1) * 2 * math.Pi / float32(u)
		for j := 0; j < v; j++ {
			theta0 := float32(j) * math.Pi / float32(v)
			theta1 := float32(j+1) * math.Pi / float32(v)

			a := spherePoint(radius, theta0, phi0)
			b := spherePoint(radius, theta1, phi0)
			c := spherePoint(radius, theta1, phi1)
			d := spherePoint(radius, theta0, phi1)
			m.addQuad(a, b, c, d,
				spherePoint(1, theta0, phi0), spherePoint(1, theta1, phi0),
				spherePoint(1, theta1, phi1), spherePoint(1, theta0, phi1))
		}
	}
	return m
}

// Cylinder returns a hollow cylinder (a tube with annular caps) along Y.
// rin may be zero for a solid look; the inner wall then collapses to the axis.
func Cylinder(rin, rout, height float32, n int) Mesh {
	if n < 3 {
		n = 3
	}
	h := height / 2
	up := mgl32.Vec3{0, 1, 0}
	down := mgl32.Vec3{0, -1, 0}

	var m Mesh
	for i := 0; i < n; i++ {
		s0, c0 := sincos(float32(i) * 2 * math.Pi / float32(n))
		s1, c1 := sincos(float32(i+1) * 2 * math.Pi / float32(n))
		r0 := mgl32.Vec3{c0, 0, -s0}
		r1 := mgl32.Vec3{c1, 0, -s1}

		outer := func(r mgl32.Vec3, y float32) mgl32.Vec3 { return mgl32.Vec3{rout * r[0], y, rout * r[2]} }
		inner := func(r mgl32.Vec3, y float32) mgl32.Vec3 { return mgl32.Vec3{rin * r[0], y, rin * r[2]} }

		// outer wall
		m.addQuad(outer(r0, -h), outer(r1, -h), outer(r1, h), outer(r0, h), r0, r1, r1, r0)
		// inner wall, facing the axis
		m.addQuad(inner(r1, -h), inner(r0, -h), inner(r0, h), inner(r1, h), r1.Mul(-1), r0.Mul(-1), r0.Mul(-1), r1.Mul(-1))
		// top cap
		m.addQuad(inner(r0, h), outer(r0, h), outer(r1, h), inner(r1, h), up, up, up, up)
		// bottom cap
		m.addQuad(inner(r1, -h), outer(r1, -h), outer(r0, -h), inner(r0, -h), down, down, down, down)
	}
	return m
}

// Torus returns a ring of major radius R and tube radius r around the Y axis,
// with nMajor segments along the ring and nMinor around the tube.
func Torus(R, r float32, nMajor, nMinor int) Mesh {
	if nMajor < 3 {
		nMajor = 3
	}
	if nMinor < 3 {
		nMinor = 3
	}
	point := func(u, v float32) (mgl32.Vec3, mgl32.Vec3) {
		su, cu := sincos(u)
		sv, cv := sincos(v)
		n := mgl32.Vec3{cv * cu, sv, -cv * su}
		p := mgl32.Vec3{(R + r*cv) * cu, r * sv, -(R + r*cv) * su}
		return p, n
	}

	var m Mesh
	for i := 0; i < nMajor; i++ {
		u0 := float32(i) * 2 * math.Pi / float32(nMajor)
		u1 := float32(i+1) * 2 * math.Pi / float32(nMajor)
		for j := 0; j < nMinor; j++ {
			v0 := float32(j) * 2 * math.Pi / float32(nMinor)
			v1 := float32(j+1) * 2 * math.Pi / float32(nMinor)

			a, na := point(u0, v0)
			b, nb := point(u1, v0)
			c, nc := point(u1, v1)
			d, nd := point(u0, v1)
			m.addQuad(a, b, c, d, na, nb, nc, nd)
		}
	}
	return m
}

func sincos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}
