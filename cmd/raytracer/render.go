package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/df07/go-raytracer-core/pkg/framebuffer"
	"github.com/df07/go-raytracer-core/pkg/renderer"
	"github.com/df07/go-raytracer-core/pkg/rlog"
)

func runRender(cmd *cobra.Command, args []string) error {
	s, err := loadScene()
	if err != nil {
		return err
	}

	logger, err := rlog.NewDevelopment()
	if err != nil {
		return fmt.Errorf("starting logger: %w", err)
	}
	defer logger.Sync()

	numWorkers := workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	fmt.Println(headingStyle.Render(fmt.Sprintf("rendering %dx%d, %d samples, %d workers", s.Width, s.Height, samples, numWorkers)))

	slot := &renderer.RenderSlot{}
	renderer.RenderFull(s, samples, depth, numWorkers, logger, slot)

	fb, ok := slot.Take()
	if !ok {
		return fmt.Errorf("render produced no frame")
	}
	return writePNG(fb, outputFile)
}

func writePNG(fb *framebuffer.Framebuffer, path string) error {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	buf := fb.Buffer()
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := buf[y*fb.Width+x]
			img.Set(x, y, color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 255})
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	fmt.Println(headingStyle.Render("wrote " + path))
	return nil
}
