package material

import (
	"math/rand"

	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
)

// Lambertian is a perfectly diffuse material.
type Lambertian struct {
	Texture Texture
}

// NewLambertian creates a Lambertian material over the given texture.
func NewLambertian(t Texture) *Lambertian {
	return &Lambertian{Texture: t}
}

// Scatter reflects along normal + a uniformly random unit vector.
func (l *Lambertian) Scatter(rayIn core.Ray, hit RayHit, random *rand.Rand) (ScatterResult, bool) {
	scattered := core.NewRay(hit.Pos, hit.Normal.Add(core.RandomUnitVector(random)))
	return ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Texture.Evaluate(hit.U, hit.V, hit.Pos),
	}, true
}

// Emitted is zero; Lambertian surfaces don't emit light.
func (l *Lambertian) Emitted(u, v float64, p core.Vec3) color.Color {
	return color.Black
}

// PreviewColor returns the texture color, with no lighting applied.
func (l *Lambertian) PreviewColor(u, v float64, p core.Vec3) color.Color {
	return l.Texture.Evaluate(u, v, p)
}
