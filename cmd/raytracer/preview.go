package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/df07/go-raytracer-core/pkg/renderer"
)

func runPreview(cmd *cobra.Command, args []string) error {
	s, err := loadScene()
	if err != nil {
		return err
	}

	fmt.Println(headingStyle.Render(fmt.Sprintf("previewing %dx%d", s.Width, s.Height)))

	random := rand.New(rand.NewSource(1))
	fb := renderer.RenderPreview(s, random)
	return writePNG(fb, outputFile)
}
