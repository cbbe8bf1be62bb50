package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
)

// Dielectric is a transparent, refractive material like glass or water.
// It never absorbs (attenuation is always white) and emits nothing.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a Dielectric material with the given index of refraction.
func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{RefractiveIndex: ior}
}

// Schlick approximates Fresnel reflectance.
func Schlick(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	outPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	outParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - outPerp.LengthSquared())))
	return outPerp.Add(outParallel)
}

// Scatter reflects or refracts per Snell's law, using Schlick's approximation
// to decide between the two when total internal reflection doesn't force it.
func (d *Dielectric) Scatter(rayIn core.Ray, hit RayHit, random *rand.Rand) (ScatterResult, bool) {
	refractionRatio := d.RefractiveIndex
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	}

	unitDir := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDir.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Schlick(cosTheta, refractionRatio) > random.Float64() {
		direction = reflect(unitDir, hit.Normal)
	} else {
		direction = refract(unitDir, hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Pos, direction),
		Attenuation: color.White,
	}, true
}

// Emitted is zero; Dielectric surfaces don't emit light.
func (d *Dielectric) Emitted(u, v float64, p core.Vec3) color.Color {
	return color.Black
}

// PreviewColor is always white: the preview path doesn't trace refraction.
func (d *Dielectric) PreviewColor(u, v float64, p core.Vec3) color.Color {
	return color.White
}
