package material

import (
	"fmt"

	"github.com/kgrant/go-whitted-raytracer/pkg/core"
)

// Material holds the Phong shading coefficients for a surface: ambient,
// diffuse and specular colors, the shininess exponent controlling specular
// falloff, and the intrinsic/reflective weights used to blend local
// illumination with the reflected contribution.
type Material struct {
	Ambient      core.Color
	Diffuse      core.Color
	Specular     core.Color
	Shininess    float64
	Intrinsic    float64
	Reflectivity float64
}

// DefaultMaterial returns a matte white material with no reflectivity
func DefaultMaterial() Material {
	return Material{
		Ambient:      core.NewColor(0.2, 0.2, 0.2),
		Diffuse:      core.NewColor(0.8, 0.8, 0.8),
		Specular:     core.NewColor(1.0, 1.0, 1.0),
		Shininess:    16.0,
		Intrinsic:    1.0,
		Reflectivity: 0.0,
	}
}

// Validate checks the material coefficients. The intrinsic and reflective
// weights are not required to sum to 1; scenes may author over-bright
// blends deliberately.
func (m Material) Validate() error {
	if m.Shininess < 0 {
		return fmt.Errorf("material: negative shininess %v", m.Shininess)
	}
	if m.Intrinsic < 0 {
		return fmt.Errorf("material: negative intrinsic weight %v", m.Intrinsic)
	}
	if m.Reflectivity < 0 {
		return fmt.Errorf("material: negative reflectivity weight %v", m.Reflectivity)
	}
	return nil
}
