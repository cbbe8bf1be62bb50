package material

import (
	"math/rand"

	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
)

// Metal is a specular-reflective material with adjustable fuzz.
type Metal struct {
	Texture Texture
	Fuzz    float64 // 0 = perfect mirror, 1 = very fuzzy
}

// NewMetal creates a Metal material, clamping fuzz to [0,1].
func NewMetal(t Texture, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Texture: t, Fuzz: fuzz}
}

func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Scatter reflects rayIn about the normal, perturbed by Fuzz; absorbs if the
// perturbed direction dips below the surface.
func (m *Metal) Scatter(rayIn core.Ray, hit RayHit, random *rand.Rand) (ScatterResult, bool) {
	reflected := reflect(rayIn.Direction, hit.Normal).Normalize()
	// Skipping the draw when Fuzz==0 leaves the result unchanged (it's
	// multiplied by zero either way) but means this diverges from the
	// random stream of a reference that always draws.
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitBall(random).Multiply(m.Fuzz))
	}
	scattered := core.NewRay(hit.Pos, reflected)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}
	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Texture.Evaluate(hit.U, hit.V, hit.Pos),
	}, true
}

// Emitted is zero; Metal surfaces don't emit light.
func (m *Metal) Emitted(u, v float64, p core.Vec3) color.Color {
	return color.Black
}

// PreviewColor returns the texture color, with no lighting applied.
func (m *Metal) PreviewColor(u, v float64, p core.Vec3) color.Color {
	return m.Texture.Evaluate(u, v, p)
}
