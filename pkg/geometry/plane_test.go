package geometry

import (
	"math"
	"testing"

	"github.com/kgrant/go-whitted-raytracer/pkg/core"
	"github.com/kgrant/go-whitted-raytracer/pkg/material"
)

func TestPlane_Intersect_Hit(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.DefaultMaterial())
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))

	hit, ok := plane.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-5.0) > 1e-9 {
		t.Errorf("Expected t=5, got t=%f", hit.T)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,1,0), got %v", hit.Normal)
	}
}

func TestPlane_Intersect_Miss(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.DefaultMaterial())

	tests := []struct {
		name         string
		rayOrigin    core.Vec3
		rayDirection core.Vec3
	}{
		{"parallel ray", core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)},
		{"plane behind ray origin", core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			if hit, ok := plane.Intersect(ray); ok {
				t.Errorf("Expected miss, but got hit at t=%f", hit.T)
			}
		})
	}
}

func TestPlane_Intersect_FromBelowFlipsNormal(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.DefaultMaterial())
	ray := core.NewRay(core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0))

	hit, ok := plane.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.Normal.Subtract(core.NewVec3(0, -1, 0)).Length() > 1e-9 {
		t.Errorf("Expected flipped normal (0,-1,0), got %v", hit.Normal)
	}
}
