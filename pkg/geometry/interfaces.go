package geometry

import (
	"github.com/kgrant/go-whitted-raytracer/pkg/core"
	"github.com/kgrant/go-whitted-raytracer/pkg/material"
)

// Intersection contains information about a ray-shape intersection
type Intersection struct {
	Point  core.Vec3 // Point of intersection
	Normal core.Vec3 // Unit surface normal, oriented against the ray
	T      float64   // Parameter t along the ray
	Object Shape     // The intersected shape, for identity comparison
}

// Shape interface for objects that can be intersected by rays.
// Intersect reports the nearest intersection with t > 0, or false if the
// ray misses. Degenerate inputs (parallel rays, zero-area geometry) must
// report a miss rather than propagate NaN into the shading pipeline.
type Shape interface {
	Intersect(ray core.Ray) (Intersection, bool)
	Material() material.Material
}

// faceForward flips the outward normal against the ray direction so that
// shading sees a normal on the incident side of the surface.
func faceForward(ray core.Ray, outward core.Vec3) core.Vec3 {
	if ray.Direction.Dot(outward) < 0 {
		return outward
	}
	return outward.Negate()
}
