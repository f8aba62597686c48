package scene

import (
	"fmt"

	"github.com/kgrant/go-whitted-raytracer/pkg/core"
	"github.com/kgrant/go-whitted-raytracer/pkg/geometry"
)

// Scene owns an ordered list of shapes and an ordered list of lights.
// Both lists are append-only during setup and read-only during tracing.
type Scene struct {
	objects []geometry.Shape
	lights  []core.Light
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// AddObject appends a shape to the scene
func (s *Scene) AddObject(shape geometry.Shape) {
	s.objects = append(s.objects, shape)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light core.Light) {
	s.lights = append(s.lights, light)
}

// NumObjects returns the number of shapes in the scene
func (s *Scene) NumObjects() int {
	return len(s.objects)
}

// Object returns the shape at index i
func (s *Scene) Object(i int) geometry.Shape {
	return s.objects[i]
}

// NumLights returns the number of lights in the scene
func (s *Scene) NumLights() int {
	return len(s.lights)
}

// Light returns the light at index i
func (s *Scene) Light(i int) core.Light {
	return s.lights[i]
}

// Describe returns a short human-readable summary of the scene
func (s *Scene) Describe() string {
	return fmt.Sprintf("Scene(objects:%d, lights:%d)", len(s.objects), len(s.lights))
}
