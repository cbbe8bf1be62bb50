package material

import (
	"math/rand"

	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
)

// DiffuseLight is a light-emitting material that never scatters.
type DiffuseLight struct {
	Texture Texture
}

// NewDiffuseLight creates a DiffuseLight material over the given texture.
func NewDiffuseLight(t Texture) *DiffuseLight {
	return &DiffuseLight{Texture: t}
}

// Scatter always fails: DiffuseLight absorbs every incoming ray.
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit RayHit, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the texture's color at (u,v,p).
func (d *DiffuseLight) Emitted(u, v float64, p core.Vec3) color.Color {
	return d.Texture.Evaluate(u, v, p)
}

// PreviewColor returns the texture color, same as Emitted.
func (d *DiffuseLight) PreviewColor(u, v float64, p core.Vec3) color.Color {
	return d.Texture.Evaluate(u, v, p)
}
