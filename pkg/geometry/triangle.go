package geometry

import (
	"github.com/kgrant/go-whitted-raytracer/pkg/core"
	"github.com/kgrant/go-whitted-raytracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
	Mat        material.Material
	normal     core.Vec3 // Cached unit normal
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{
		V0:  v0,
		V1:  v1,
		V2:  v2,
		Mat: mat,
	}
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	t.normal = edge1.Cross(edge2).Normalize()
	return t
}

// Material returns the triangle's material
func (t *Triangle) Material() material.Material {
	return t.Mat
}

// Intersect tests if a ray intersects with the triangle using the
// Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray) (Intersection, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	// If the determinant is near zero, the ray lies in the plane of
	// the triangle, or the triangle is degenerate.
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return Intersection{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return Intersection{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return Intersection{}, false
	}

	tHit := f * edge2.Dot(q)
	if tHit <= epsilon {
		return Intersection{}, false
	}

	return Intersection{
		Point:  ray.At(tHit),
		Normal: faceForward(ray, t.normal),
		T:      tHit,
		Object: t,
	}, true
}
