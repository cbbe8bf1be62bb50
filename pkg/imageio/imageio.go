// Package imageio decodes PNG, JPEG, BMP, and TIFF files into the
// material.Raster images a scene's Image texture samples from.
package imageio

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// Load reads an image file, auto-detecting PNG, JPEG, BMP, or TIFF from its
// header, and converts it into a material.Raster.
func Load(filename string) (*material.Raster, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("imageio: failed to open %q: %w", filename, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("imageio: failed to decode %q: %w", filename, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]color.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = color.FromVec3(core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			))
		}
	}

	return &material.Raster{Width: width, Height: height, Pixels: pixels}, nil
}
