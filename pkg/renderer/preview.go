package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/framebuffer"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/scene"
)

// RenderPreview renders a single, non-recursive sample per pixel, reporting
// each hit surface's PreviewColor rather than tracing any scattered rays.
// It's meant for an interactive camera that needs fast, low-fidelity
// feedback while moving, not a final image.
func RenderPreview(s *scene.Scene, random *rand.Rand) *framebuffer.Framebuffer {
	objects := s.Objects.RelativeTo(s.Camera.Pos).CameraSorted(s.Camera.Pos)
	fb := framebuffer.New(s.Width, s.Height)

	sizeMinus1X := math.Max(float64(s.Width-1), 1)
	sizeMinus1Y := math.Max(float64(s.Height-1), 1)

	i := 0
	buf := make([]color.Color, s.Width*s.Height)
	for y := 0; y < s.Height; y++ {
		py := float64(s.Height) - float64(y)
		for x := 0; x < s.Width; x++ {
			px := float64(x)
			u := (px + random.Float64()) / sizeMinus1X
			v := (py + random.Float64()) / sizeMinus1Y
			ray := s.Camera.GetRay(u, v)
			buf[i] = previewColor(ray, objects, s.Background)
			i++
		}
	}
	_ = fb.SetBuffer(buf)
	return fb
}

// previewColor reports the hit surface's texture color directly, with no
// scattering or recursion; misses fall back to background or the sky.
func previewColor(ray core.Ray, objects *geometry.ObjectList, background *color.Color) color.Color {
	hit, ok := objects.Hit(ray, 0, infinity)
	if !ok {
		if background != nil {
			return *background
		}
		return backgroundGradient(ray.Direction)
	}
	return hit.Material.PreviewColor(hit.U, hit.V, hit.Pos)
}
