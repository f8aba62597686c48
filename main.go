package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/kgrant/go-whitted-raytracer/pkg/core"
	"github.com/kgrant/go-whitted-raytracer/pkg/renderer"
	"github.com/kgrant/go-whitted-raytracer/pkg/scene"
)

// view pairs a name with an eye position for the look-at camera
type view struct {
	name string
	eye  core.Vec3
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "simple", "Scene type: 'simple', 'mirror' or 'showcase'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	views := flag.String("views", "front", "Camera views: 'front' or 'all' (front/behind/top/bottom)")
	format := flag.String("format", "png", "Output format: 'png' or 'ppm'")
	outDir := flag.String("out", "output", "Output directory")
	workers := flag.Int("workers", 0, "Parallel workers (0 = one per CPU)")
	depth := flag.Int("depth", 3, "Maximum reflection depth")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  simple   - Single matte sphere under a white light")
		fmt.Println("  mirror   - Mirrored sphere reflecting a colored sphere above a ground plane")
		fmt.Println("  showcase - Sphere, triangle and reflective ground under two lights")
		fmt.Println()
		fmt.Println("Output will be saved to <out>/<scene_type>/scene-<view>.<format>")
		return
	}

	fmt.Println("Starting Whitted Raytracer...")

	// Create scene and camera target based on command line argument
	var selectedScene *scene.Scene
	var target core.Vec3
	switch *sceneType {
	case "simple":
		selectedScene = scene.NewSimpleScene()
		target = core.NewVec3(0, 50, 0)
	case "mirror":
		selectedScene = scene.NewMirrorScene()
		target = core.NewVec3(0, 40, 0)
	case "showcase":
		selectedScene = scene.NewShowcaseScene()
		target = core.NewVec3(0, 35, 0)
	default:
		fmt.Printf("Unknown scene type: %s. Using simple scene.\n", *sceneType)
		selectedScene = scene.NewSimpleScene()
		target = core.NewVec3(0, 50, 0)
		*sceneType = "simple"
	}

	config := renderer.DefaultTracerConfig()
	config.BackgroundColor = scene.SkyBlue
	config.MaxReflections = *depth
	config.Workers = *workers
	config.Logger = log.New(os.Stdout, "", 0)
	tracer, err := renderer.NewTracer(config)
	if err != nil {
		fmt.Printf("Error creating tracer: %v\n", err)
		os.Exit(1)
	}

	frameBuffer, err := renderer.NewFrameBuffer(*width, *height, config.BackgroundColor)
	if err != nil {
		fmt.Printf("Error creating frame buffer: %v\n", err)
		os.Exit(1)
	}

	outputDir := filepath.Join(*outDir, *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Initializing target frame buffer %s\n", frameBuffer.Describe())
	fmt.Printf("Assembling %s\n", selectedScene.Describe())

	cameraViews := []view{{name: "front", eye: target.Add(core.NewVec3(0, 10, 90))}}
	if *views == "all" {
		cameraViews = append(cameraViews,
			view{name: "behind", eye: target.Add(core.NewVec3(0, 10, -90))},
			view{name: "top", eye: target.Add(core.NewVec3(0, 90, 1))},
			view{name: "bottom", eye: target.Add(core.NewVec3(0, -90, 1))},
		)
	}

	aspectRatio := float64(*width) / float64(*height)
	for _, v := range cameraViews {
		camera, err := renderer.NewCamera(renderer.CameraConfig{
			Position:    v.eye,
			LookAt:      target,
			Up:          core.NewVec3(0, 1, 0),
			FieldOfView: 90.0,
			AspectRatio: aspectRatio,
			NearClip:    1.0,
		})
		if err != nil {
			fmt.Printf("Error creating %s camera: %v\n", v.name, err)
			os.Exit(1)
		}

		startTime := time.Now()
		tracer.Trace(camera, selectedScene, frameBuffer)
		fmt.Printf("Rendered %s view in %v\n", v.name, time.Since(startTime))

		filename := filepath.Join(outputDir, fmt.Sprintf("scene-%s.%s", v.name, *format))
		if err := saveFrame(frameBuffer, filename, *format); err != nil {
			fmt.Printf("Error saving %s: %v\n", filename, err)
			os.Exit(1)
		}
		fmt.Printf("Render saved as %s\n", filename)
	}
}

// saveFrame writes the frame buffer to a file in the requested format
func saveFrame(frameBuffer *renderer.FrameBuffer, filename, format string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	switch format {
	case "ppm":
		return frameBuffer.WritePPM(file)
	case "png":
		return png.Encode(file, frameBuffer.ToImage())
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
