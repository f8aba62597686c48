package scene

import "github.com/kgrant/go-whitted-raytracer/pkg/core"

// Named colors used by the built-in scenes
var (
	Black      = core.NewColor(0, 0, 0)
	White      = core.NewColor(1, 1, 1)
	Gray       = core.NewColor(0.5, 0.5, 0.5)
	LightGray  = core.NewColor(0.8, 0.8, 0.8)
	Red        = core.NewColor(0.9, 0.15, 0.1)
	Green      = core.NewColor(0.1, 0.7, 0.2)
	LightGreen = core.NewColor(0.5, 0.9, 0.55)
	Blue       = core.NewColor(0.15, 0.2, 0.9)
	SkyBlue    = core.NewColor(0.53, 0.81, 0.92)
	Orange     = core.NewColor(0.95, 0.6, 0.1)
)
