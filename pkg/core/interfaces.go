package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Light interface for scene lights. IntensityAtPoint may be constant or
// distance-attenuated; the tracer does not care which.
type Light interface {
	Position() Vec3
	IntensityAtPoint(point Vec3) Color
}
