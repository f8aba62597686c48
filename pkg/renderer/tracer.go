package renderer

import (
	"fmt"
	"image"
	"math"

	"github.com/kgrant/go-whitted-raytracer/pkg/core"
	"github.com/kgrant/go-whitted-raytracer/pkg/geometry"
)

// Scene interface to avoid depending on a concrete scene container
type Scene interface {
	NumObjects() int
	Object(i int) geometry.Shape
	NumLights() int
	Light(i int) core.Light
}

// TracerConfig contains tracing configuration
type TracerConfig struct {
	ShadowColor     core.Color // Added per light instead of diffuse+specular when occluded
	BackgroundColor core.Color // Returned when a ray hits nothing
	ShadowBias      float64    // Offset along the normal before casting shadow rays
	ReflectionBias  float64    // Offset along the reflected direction before recursing
	MaxReflections  int        // Recursion depth cutoff
	Workers         int        // Parallel workers; 0 means one per CPU
	TileSize        int        // Tile edge length in pixels; 0 means default
	Logger          core.Logger
}

// DefaultTracerConfig returns sensible default values
func DefaultTracerConfig() TracerConfig {
	return TracerConfig{
		ShadowColor:     core.NewColor(0.125, 0.125, 0.125),
		BackgroundColor: core.NewColor(0, 0, 0),
		ShadowBias:      1e-4,
		ReflectionBias:  1e-4,
		MaxReflections:  3,
		TileSize:        64,
	}
}

// Tracer is the recursive shading engine. Its configuration is immutable
// during a trace pass, so a single Tracer is safe to share across workers.
type Tracer struct {
	config TracerConfig
}

// NewTracer creates a tracer, rejecting malformed configuration
func NewTracer(config TracerConfig) (*Tracer, error) {
	if config.ShadowBias < 0 {
		return nil, fmt.Errorf("tracer: negative shadow bias %v", config.ShadowBias)
	}
	if config.ReflectionBias < 0 {
		return nil, fmt.Errorf("tracer: negative reflection bias %v", config.ReflectionBias)
	}
	if config.MaxReflections < 0 {
		return nil, fmt.Errorf("tracer: negative max reflections %d", config.MaxReflections)
	}
	if config.Workers < 0 {
		return nil, fmt.Errorf("tracer: negative worker count %d", config.Workers)
	}
	if config.TileSize == 0 {
		config.TileSize = DefaultTracerConfig().TileSize
	}
	if config.TileSize < 0 {
		return nil, fmt.Errorf("tracer: negative tile size %d", config.TileSize)
	}
	return &Tracer{config: config}, nil
}

// Config returns the tracer's configuration
func (t *Tracer) Config() TracerConfig {
	return t.config
}

// Trace renders the scene into the frame buffer: for each pixel it builds
// a primary ray from the eye through the pixel's center on the viewing
// plane and resolves its color recursively. Tiles are rendered in
// parallel; each pixel is written exactly once, so frame buffer writes
// need no synchronization.
func (t *Tracer) Trace(camera *Camera, scene Scene, frameBuffer *FrameBuffer) RenderStats {
	tiles := splitIntoTiles(frameBuffer.Width(), frameBuffer.Height(), t.config.TileSize)

	pool := NewWorkerPool(t, camera, scene, frameBuffer, t.config.Workers, len(tiles))
	pool.Start()
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{TaskID: i, Bounds: tile})
	}
	pool.Stop()

	var stats RenderStats
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Merge(result.Stats)
	}

	if t.config.Logger != nil {
		t.config.Logger.Printf("traced %d pixels (%d rays) across %d tiles", stats.Pixels, stats.Rays, stats.Tiles)
	}
	return stats
}

// renderBounds renders every pixel inside the given bounds. Bounds from
// different tasks never overlap.
func (t *Tracer) renderBounds(camera *Camera, scene Scene, frameBuffer *FrameBuffer, bounds image.Rectangle) RenderStats {
	invWidth := 1.0 / float64(frameBuffer.Width())
	invHeight := 1.0 / float64(frameBuffer.Height())
	eye := camera.Position()
	nearClip := camera.NearClip()

	var stats RenderStats
	stats.Tiles = 1
	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		for col := bounds.Min.X; col < bounds.Max.X; col++ {
			pixelWorldPosition := camera.ViewportToWorld(
				(float64(col)+0.5)*invWidth,
				(float64(row)+0.5)*invHeight,
				nearClip,
			)
			primaryRay := core.NewRay(eye, pixelWorldPosition.Subtract(eye))
			frameBuffer.SetPixel(row, col, t.rayColor(camera, scene, primaryRay, 0, &stats))
			stats.Pixels++
		}
	}
	return stats
}

// RayColor recursively resolves the color seen along a ray
func (t *Tracer) RayColor(camera *Camera, scene Scene, ray core.Ray, depth int) core.Color {
	var stats RenderStats
	return t.rayColor(camera, scene, ray, depth, &stats)
}

// rayColor is the recursive core of RayColor. Every ray intersected
// against the scene, including shadow and reflection rays, is counted
// into stats.
func (t *Tracer) rayColor(camera *Camera, scene Scene, ray core.Ray, depth int, stats *RenderStats) core.Color {
	if depth >= t.config.MaxReflections {
		return core.NewColor(0, 0, 0)
	}
	stats.Rays++

	hit, ok := t.findNearestIntersection(scene, ray)
	if !ok {
		return t.config.BackgroundColor
	}

	mat := hit.Object.Material()

	reflectedColor := core.NewColor(0, 0, 0)
	if mat.Reflectivity > 0 {
		reflectedColor = t.rayColor(camera, scene, t.reflectRay(ray, hit), depth+1, stats)
	}

	// Local illumination: ambient plus, per light, either the lit
	// diffuse+specular contribution or the shadow tint.
	localColor := mat.Ambient
	for i := 0; i < scene.NumLights(); i++ {
		light := scene.Light(i)
		stats.Rays++
		if t.isInShadow(hit, light, scene) {
			localColor = localColor.Add(t.config.ShadowColor)
			continue
		}
		diffuse := t.diffuseColor(hit, light)
		specular := t.specularColor(hit, light, camera)
		localColor = localColor.Add(light.IntensityAtPoint(hit.Point).MultiplyColor(diffuse.Add(specular)))
	}

	// Weighted blend, not an energy-conserving split. The weights are
	// author-supplied and need not sum to 1.
	return localColor.Multiply(mat.Intrinsic).Add(reflectedColor.Multiply(mat.Reflectivity))
}

// findNearestIntersection scans every shape in the scene for the hit with
// the smallest positive t
func (t *Tracer) findNearestIntersection(scene Scene, ray core.Ray) (geometry.Intersection, bool) {
	closest := geometry.Intersection{T: math.Inf(1)}
	found := false
	for i := 0; i < scene.NumObjects(); i++ {
		if hit, ok := scene.Object(i).Intersect(ray); ok && hit.T < closest.T {
			closest = hit
			found = true
		}
	}
	return closest, found
}

// reflectRay mirrors the ray about the surface normal at the hit point,
// offsetting the origin slightly along the reflected direction to avoid
// re-intersecting the surface it just left
func (t *Tracer) reflectRay(ray core.Ray, hit geometry.Intersection) core.Ray {
	d := ray.Direction
	reflected := d.Negate().Add(hit.Normal.Multiply(2 * d.Dot(hit.Normal))).Normalize()
	return core.NewRay(hit.Point.Add(reflected.Multiply(t.config.ReflectionBias)), reflected)
}

// isInShadow reports whether another shape blocks the light from reaching
// the hit point. The shaded shape itself never occludes, and the occluder
// must lie strictly between the point and the light.
func (t *Tracer) isInShadow(hit geometry.Intersection, light core.Light, scene Scene) bool {
	origin := hit.Point.Add(hit.Normal.Multiply(t.config.ShadowBias))
	shadowRay := core.NewRay(origin, light.Position().Subtract(origin))
	distanceToLight := origin.DistanceTo(light.Position())

	for i := 0; i < scene.NumObjects(); i++ {
		occlusion, ok := scene.Object(i).Intersect(shadowRay)
		if ok && occlusion.Object != hit.Object && occlusion.T < distanceToLight {
			return true
		}
	}
	return false
}

// diffuseColor computes the Lambertian term: back-facing lights
// contribute nothing, never a negative color
func (t *Tracer) diffuseColor(hit geometry.Intersection, light core.Light) core.Color {
	directionToLight := hit.Point.DirectionTo(light.Position())
	strength := math.Max(0, hit.Normal.Dot(directionToLight))
	return hit.Object.Material().Diffuse.Multiply(strength)
}

// specularColor computes the Blinn-Phong term using the halfway vector
// between the directions to the camera and to the light
func (t *Tracer) specularColor(hit geometry.Intersection, light core.Light, camera *Camera) core.Color {
	directionToCamera := hit.Point.DirectionTo(camera.Position())
	directionToLight := hit.Point.DirectionTo(light.Position())
	halfway := directionToCamera.Add(directionToLight).Normalize()

	mat := hit.Object.Material()
	strength := math.Pow(math.Max(0, hit.Normal.Dot(halfway)), mat.Shininess)
	return mat.Specular.Multiply(strength)
}
