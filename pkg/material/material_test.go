package material

import "testing"

func TestDefaultMaterial_Valid(t *testing.T) {
	if err := DefaultMaterial().Validate(); err != nil {
		t.Errorf("Expected default material to validate, got %v", err)
	}
}

func TestMaterial_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Material)
		wantErr bool
	}{
		{"negative shininess", func(m *Material) { m.Shininess = -1 }, true},
		{"negative intrinsic", func(m *Material) { m.Intrinsic = -0.5 }, true},
		{"negative reflectivity", func(m *Material) { m.Reflectivity = -0.1 }, true},
		{"weights exceeding one are allowed", func(m *Material) { m.Intrinsic, m.Reflectivity = 1, 1 }, false},
		{"zero weights are allowed", func(m *Material) { m.Intrinsic, m.Reflectivity = 0, 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultMaterial()
			tt.mutate(&m)
			err := m.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
