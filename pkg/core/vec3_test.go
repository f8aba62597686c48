package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != NewVec3(5, 7, 9) {
		t.Errorf("Add: expected (5,7,9), got %v", got)
	}
	if got := b.Subtract(a); got != NewVec3(3, 3, 3) {
		t.Errorf("Subtract: expected (3,3,3), got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: expected (2,4,6), got %v", got)
	}
	if got := a.Negate(); got != NewVec3(-1, -2, -3) {
		t.Errorf("Negate: expected (-1,-2,-3), got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: expected 32, got %v", got)
	}
	if got := a.Cross(b); got != NewVec3(-3, 6, -3) {
		t.Errorf("Cross: expected (-3,6,-3), got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4)
	n := v.Normalize()

	if math.Abs(n.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit length, got %v", n.Length())
	}
	if math.Abs(n.X-0.6) > 1e-9 || math.Abs(n.Z-0.8) > 1e-9 {
		t.Errorf("Expected (0.6,0,0.8), got %v", n)
	}
}

func TestVec3_NormalizeZeroVector(t *testing.T) {
	if got := NewVec3(0, 0, 0).Normalize(); got != NewVec3(0, 0, 0) {
		t.Errorf("Expected zero vector, got %v", got)
	}
}

func TestVec3_DistanceAndDirection(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(4, 4, 0)

	if got := a.DistanceTo(b); math.Abs(got-5) > 1e-9 {
		t.Errorf("DistanceTo: expected 5, got %v", got)
	}
	dir := a.DirectionTo(b)
	if math.Abs(dir.Length()-1) > 1e-9 {
		t.Errorf("DirectionTo: expected unit length, got %v", dir.Length())
	}
	if math.Abs(dir.X-0.6) > 1e-9 || math.Abs(dir.Y-0.8) > 1e-9 {
		t.Errorf("DirectionTo: expected (0.6,0.8,0), got %v", dir)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 0, 2))

	if math.Abs(ray.Direction.Length()-1) > 1e-9 {
		t.Errorf("Expected normalized direction, got length %v", ray.Direction.Length())
	}
	if got := ray.At(3); got != NewVec3(1, 0, 3) {
		t.Errorf("At(3): expected (1,0,3), got %v", got)
	}
}
