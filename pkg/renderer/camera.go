package renderer

import (
	"fmt"
	"math"

	"github.com/kgrant/go-whitted-raytracer/pkg/core"
)

// CameraConfig holds camera configuration parameters
type CameraConfig struct {
	Position    core.Vec3
	LookAt      core.Vec3
	Up          core.Vec3
	FieldOfView float64 // Horizontal field of view in degrees
	AspectRatio float64 // Width / height
	NearClip    float64 // Distance from the eye to the viewing plane
}

// Camera maps normalized viewport coordinates to world-space points on a
// viewing plane in front of the eye
type Camera struct {
	position core.Vec3
	forward  core.Vec3
	right    core.Vec3
	up       core.Vec3
	nearClip float64
	halfTan  float64 // tan(fov/2), cached
	aspect   float64
}

// NewCamera creates a look-at pinhole camera, rejecting configuration
// that yields a degenerate basis
func NewCamera(config CameraConfig) (*Camera, error) {
	forward := config.Position.DirectionTo(config.LookAt)
	if forward.Length() == 0 {
		return nil, fmt.Errorf("camera: look-at point coincides with position %v", config.Position)
	}
	cross := forward.Cross(config.Up)
	if cross.Length() < 1e-8 {
		return nil, fmt.Errorf("camera: up vector %v collinear with view direction", config.Up)
	}
	right := cross.Normalize()
	up := right.Cross(forward)

	return &Camera{
		position: config.Position,
		forward:  forward,
		right:    right,
		up:       up,
		nearClip: config.NearClip,
		halfTan:  math.Tan(config.FieldOfView * math.Pi / 360.0),
		aspect:   config.AspectRatio,
	}, nil
}

// Position returns the eye position
func (c *Camera) Position() core.Vec3 {
	return c.position
}

// NearClip returns the distance from the eye to the viewing plane
func (c *Camera) NearClip() float64 {
	return c.nearClip
}

// ViewportToWorld maps a normalized viewport coordinate (u, v in [0,1],
// with (0,0) the bottom-left corner) at the given depth along the view
// direction to a world-space point
func (c *Camera) ViewportToWorld(u, v, depth float64) core.Vec3 {
	viewportWidth := 2.0 * depth * c.halfTan
	viewportHeight := viewportWidth / c.aspect

	return c.position.
		Add(c.forward.Multiply(depth)).
		Add(c.right.Multiply((u - 0.5) * viewportWidth)).
		Add(c.up.Multiply((v - 0.5) * viewportHeight))
}
