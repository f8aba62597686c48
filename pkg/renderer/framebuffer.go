package renderer

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/kgrant/go-whitted-raytracer/pkg/core"
)

// FrameBuffer is a fixed-size row-major grid of colors. Row 0 is the
// bottom scanline, matching the camera's upward v axis; exporters flip to
// top-down scanline order at write time.
type FrameBuffer struct {
	width  int
	height int
	pixels []core.Color
}

// NewFrameBuffer creates a frame buffer filled with the given color
func NewFrameBuffer(width, height int, fill core.Color) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("framebuffer: invalid dimensions %dx%d", width, height)
	}
	pixels := make([]core.Color, width*height)
	for i := range pixels {
		pixels[i] = fill
	}
	return &FrameBuffer{width: width, height: height, pixels: pixels}, nil
}

// Width returns the buffer width in pixels
func (fb *FrameBuffer) Width() int {
	return fb.width
}

// Height returns the buffer height in pixels
func (fb *FrameBuffer) Height() int {
	return fb.height
}

// NumPixels returns the total pixel count
func (fb *FrameBuffer) NumPixels() int {
	return fb.width * fb.height
}

// SetPixel stores a color at (row, col)
func (fb *FrameBuffer) SetPixel(row, col int, c core.Color) {
	fb.pixels[row*fb.width+col] = c
}

// PixelAt returns the color at (row, col)
func (fb *FrameBuffer) PixelAt(row, col int) core.Color {
	return fb.pixels[row*fb.width+col]
}

// Describe returns a short human-readable summary of the buffer
func (fb *FrameBuffer) Describe() string {
	megaPixels := float64(fb.width*fb.height) / 1e6
	return fmt.Sprintf("%dx%d (%.2f MP)", fb.width, fb.height, megaPixels)
}

// WritePPM writes the buffer as a binary PPM (P6) image, clamping colors
// to the displayable [0,1] range
func (fb *FrameBuffer) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", fb.width, fb.height); err != nil {
		return fmt.Errorf("framebuffer: writing ppm header: %w", err)
	}
	buf := make([]byte, 0, fb.width*3)
	for row := fb.height - 1; row >= 0; row-- {
		buf = buf[:0]
		for col := 0; col < fb.width; col++ {
			c := fb.PixelAt(row, col).Clamp(0, 1)
			buf = append(buf, byte(c.R*255), byte(c.G*255), byte(c.B*255))
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("framebuffer: writing ppm row: %w", err)
		}
	}
	return nil
}

// ToImage converts the buffer to an image.RGBA, clamping colors to the
// displayable [0,1] range
func (fb *FrameBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for row := 0; row < fb.height; row++ {
		for col := 0; col < fb.width; col++ {
			c := fb.PixelAt(row, col).Clamp(0, 1)
			img.Set(col, fb.height-1-row, color.RGBA{
				R: uint8(c.R * 255),
				G: uint8(c.G * 255),
				B: uint8(c.B * 255),
				A: 255,
			})
		}
	}
	return img
}
