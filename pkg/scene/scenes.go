package scene

import (
	"github.com/kgrant/go-whitted-raytracer/pkg/core"
	"github.com/kgrant/go-whitted-raytracer/pkg/geometry"
	"github.com/kgrant/go-whitted-raytracer/pkg/material"
)

// NewSimpleScene creates a single matte green sphere lit from above by a
// bright white light
func NewSimpleScene() *Scene {
	brightWhite := material.DefaultMaterial()
	brightWhite.Ambient = Gray
	brightWhite.Diffuse = White
	brightWhite.Specular = White

	matteGreen := material.Material{
		Ambient:      LightGreen,
		Diffuse:      Green,
		Specular:     Green,
		Shininess:    16,
		Intrinsic:    1.0,
		Reflectivity: 0.0,
	}

	s := NewScene()
	s.AddLight(NewPointLightFromMaterial(core.NewVec3(0, 100, 25), brightWhite))
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 50, 0), 25, matteGreen))
	return s
}

// NewMirrorScene creates a fully reflective sphere next to a colored one
// above a matte ground plane
func NewMirrorScene() *Scene {
	mirror := material.Material{
		Ambient:      Black,
		Diffuse:      Black,
		Specular:     White,
		Shininess:    64,
		Intrinsic:    0.0,
		Reflectivity: 1.0,
	}
	matteRed := material.Material{
		Ambient:      core.NewColor(0.25, 0.05, 0.05),
		Diffuse:      Red,
		Specular:     White,
		Shininess:    32,
		Intrinsic:    0.9,
		Reflectivity: 0.1,
	}
	ground := material.Material{
		Ambient:      core.NewColor(0.15, 0.15, 0.15),
		Diffuse:      LightGray,
		Specular:     Gray,
		Shininess:    8,
		Intrinsic:    1.0,
		Reflectivity: 0.0,
	}

	s := NewScene()
	s.AddLight(NewPointLight(core.NewVec3(0, 120, 60)))
	s.AddObject(geometry.NewSphere(core.NewVec3(-30, 40, 0), 25, mirror))
	s.AddObject(geometry.NewSphere(core.NewVec3(30, 40, 0), 25, matteRed))
	s.AddObject(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground))
	return s
}

// NewShowcaseScene creates a mixed-primitive scene with two lights: a
// shiny sphere, a triangle and a slightly reflective ground plane
func NewShowcaseScene() *Scene {
	shinyBlue := material.Material{
		Ambient:      core.NewColor(0.05, 0.05, 0.2),
		Diffuse:      Blue,
		Specular:     White,
		Shininess:    48,
		Intrinsic:    0.8,
		Reflectivity: 0.2,
	}
	matteOrange := material.Material{
		Ambient:      core.NewColor(0.2, 0.12, 0.05),
		Diffuse:      Orange,
		Specular:     Orange,
		Shininess:    16,
		Intrinsic:    1.0,
		Reflectivity: 0.0,
	}
	polishedGround := material.Material{
		Ambient:      core.NewColor(0.1, 0.1, 0.1),
		Diffuse:      Gray,
		Specular:     White,
		Shininess:    24,
		Intrinsic:    0.85,
		Reflectivity: 0.15,
	}

	key := NewPointLight(core.NewVec3(-60, 140, 80))
	fill := NewPointLight(core.NewVec3(80, 60, 40))
	fill.SetIntensity(core.NewColor(0.4, 0.4, 0.5))
	fill.SetAttenuation(1, 0.002, 0)

	s := NewScene()
	s.AddLight(key)
	s.AddLight(fill)
	s.AddObject(geometry.NewSphere(core.NewVec3(-20, 35, 0), 25, shinyBlue))
	s.AddObject(geometry.NewTriangle(
		core.NewVec3(20, 10, -30),
		core.NewVec3(70, 10, -10),
		core.NewVec3(40, 70, -20),
		matteOrange,
	))
	s.AddObject(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), polishedGround))
	return s
}
