package core

import "testing"

func TestColor_Arithmetic(t *testing.T) {
	a := NewColor(0.25, 0.5, 0.125)
	b := NewColor(0.25, 0.25, 0.375)

	if got := a.Add(b); got != NewColor(0.5, 0.75, 0.5) {
		t.Errorf("Add: expected (0.5,0.75,0.5), got %v", got)
	}
	if got := a.Multiply(2); got != NewColor(0.5, 1, 0.25) {
		t.Errorf("Multiply: expected (0.5,1,0.25), got %v", got)
	}
	if got := NewColor(0.5, 1, 2).MultiplyColor(NewColor(2, 0.5, 0.25)); got != NewColor(1, 0.5, 0.5) {
		t.Errorf("MultiplyColor: expected (1,0.5,0.5), got %v", got)
	}
}

func TestColor_NotClampedByArithmetic(t *testing.T) {
	// Additive light contributions may exceed [0,1]; only Clamp reins
	// them in.
	bright := NewColor(0.8, 0.8, 0.8).Add(NewColor(0.8, 0.8, 0.8))
	if bright.R <= 1 {
		t.Errorf("Expected unclamped component > 1, got %v", bright.R)
	}
	if got := bright.Clamp(0, 1); got != NewColor(1, 1, 1) {
		t.Errorf("Clamp: expected (1,1,1), got %v", got)
	}
	if got := NewColor(-0.5, 0.5, 1.5).Clamp(0, 1); got != NewColor(0, 0.5, 1) {
		t.Errorf("Clamp: expected (0,0.5,1), got %v", got)
	}
}
