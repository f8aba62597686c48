package scene

import (
	"github.com/kgrant/go-whitted-raytracer/pkg/core"
	"github.com/kgrant/go-whitted-raytracer/pkg/material"
)

// PointLight represents a point light in 3D space. Only the ambient,
// diffuse and specular colors of a material are meaningful for a light;
// the other material coefficients are ignored.
type PointLight struct {
	position  core.Vec3
	ambient   core.Color
	diffuse   core.Color
	specular  core.Color
	intensity core.Color // Per-channel intensity scale
	kc        float64    // Constant attenuation coefficient
	kl        float64    // Linear attenuation coefficient
	kq        float64    // Quadratic attenuation coefficient
}

// NewPointLight creates a point light with default colors and constant
// intensity (no distance attenuation)
func NewPointLight(position core.Vec3) *PointLight {
	return &PointLight{
		position:  position,
		ambient:   core.NewColor(0.2, 0.2, 0.2),
		diffuse:   core.NewColor(1, 1, 1),
		specular:  core.NewColor(1, 1, 1),
		intensity: core.NewColor(1, 1, 1),
		kc:        1,
	}
}

// NewPointLightFromMaterial creates a point light taking its ambient,
// diffuse and specular colors from the given material
func NewPointLightFromMaterial(position core.Vec3, mat material.Material) *PointLight {
	light := NewPointLight(position)
	light.SetColors(mat.Ambient, mat.Diffuse, mat.Specular)
	return light
}

// SetColors sets the ambient, diffuse and specular colors of the light
func (l *PointLight) SetColors(ambient, diffuse, specular core.Color) {
	l.ambient = ambient
	l.diffuse = diffuse
	l.specular = specular
}

// SetIntensity sets the per-channel intensity scale
func (l *PointLight) SetIntensity(intensity core.Color) {
	l.intensity = intensity
}

// SetAttenuation sets the radial attenuation coefficients for the
// falloff 1/(kc + kl*d + kq*d²)
func (l *PointLight) SetAttenuation(kc, kl, kq float64) {
	l.kc = kc
	l.kl = kl
	l.kq = kq
}

// Position returns the light's world-space position
func (l *PointLight) Position() core.Vec3 {
	return l.position
}

// AmbientColor returns the light's ambient color
func (l *PointLight) AmbientColor() core.Color {
	return l.ambient
}

// DiffuseColor returns the light's diffuse color
func (l *PointLight) DiffuseColor() core.Color {
	return l.diffuse
}

// SpecularColor returns the light's specular color
func (l *PointLight) SpecularColor() core.Color {
	return l.specular
}

// IntensityAtPoint returns the light's contribution scale at the given
// point: the diffuse color scaled per channel by the intensity factor and
// the radial attenuation falloff
func (l *PointLight) IntensityAtPoint(point core.Vec3) core.Color {
	falloff := 1.0
	distance := l.position.DistanceTo(point)
	if denominator := l.kc + l.kl*distance + l.kq*distance*distance; denominator > 1e-8 {
		falloff = 1.0 / denominator
	}
	return l.diffuse.MultiplyColor(l.intensity).Multiply(falloff)
}
