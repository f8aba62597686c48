package geometry

import (
	"math"

	"github.com/kgrant/go-whitted-raytracer/pkg/core"
	"github.com/kgrant/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Mat:    mat,
	}
}

// Material returns the sphere's material
func (s *Sphere) Material() material.Material {
	return s.Mat
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 || a == 0 {
		return Intersection{}, false
	}

	// Prefer the closer root; fall back to the far root when the origin
	// is inside the sphere.
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root <= 0 {
		root = (-halfB + sqrtD) / a
		if root <= 0 {
			return Intersection{}, false
		}
	}

	point := ray.At(root)
	outward := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	return Intersection{
		Point:  point,
		Normal: faceForward(ray, outward),
		T:      root,
		Object: s,
	}, true
}
