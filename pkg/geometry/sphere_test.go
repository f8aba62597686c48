package geometry

import (
	"math"
	"testing"

	"github.com/kgrant/go-whitted-raytracer/pkg/core"
	"github.com/kgrant/go-whitted-raytracer/pkg/material"
)

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.DefaultMaterial())
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if hit, ok := sphere.Intersect(ray); ok {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Intersect_BehindOrigin(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, material.DefaultMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if hit, ok := sphere.Intersect(ray); ok {
		t.Errorf("Expected miss for sphere behind ray origin, got hit at t=%f", hit.T)
	}
}

func TestSphere_Intersect_OutsideAndInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.DefaultMaterial())

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "hit from outside",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "hit from inside uses far root with flipped normal",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, ok := sphere.Intersect(ray)
			if !ok {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Object != sphere {
				t.Error("Expected intersection to reference the sphere")
			}
		})
	}
}

func TestSphere_Intersect_NormalIsUnit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(3, -2, 7), 2.5, material.DefaultMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(3, -2, 7))

	hit, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-9 {
		t.Errorf("Expected unit normal, got length %v", hit.Normal.Length())
	}
}
