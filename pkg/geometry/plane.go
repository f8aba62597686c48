package geometry

import (
	"math"

	"github.com/kgrant/go-whitted-raytracer/pkg/core"
	"github.com/kgrant/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3
	Normal core.Vec3 // Normalized by the constructor
	Mat    material.Material
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
		Mat:    mat,
	}
}

// Material returns the plane's material
func (p *Plane) Material() material.Material {
	return p.Mat
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (Intersection, bool) {
	// A near-zero denominator means the ray is parallel to the plane
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < 1e-8 {
		return Intersection{}, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= 0 {
		return Intersection{}, false
	}

	return Intersection{
		Point:  ray.At(t),
		Normal: faceForward(ray, p.Normal),
		T:      t,
		Object: p,
	}, true
}
