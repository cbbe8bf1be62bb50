// Package renderer implements full-frame shading, the parallel sampler, the
// single-sample preview path, and the mutex-guarded render publication slot.
package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
)

// shadowAcneGuard is the minimum hit distance accepted by RayColor, keeping
// a scattered ray from immediately re-hitting the surface it left due to
// floating point error.
const shadowAcneGuard = 0.001

// RayColor traces ray through objects, recursing up to depth bounces and
// accumulating emitted light attenuated by each surface it scatters from.
// Misses resolve to background if set, else the sky gradient.
func RayColor(ray core.Ray, objects *geometry.ObjectList, background *color.Color, depth int, random *rand.Rand) color.Color {
	if depth <= 0 {
		return color.Black
	}

	hit, ok := objects.Hit(ray, shadowAcneGuard, infinity)
	if !ok {
		if background != nil {
			return *background
		}
		return backgroundGradient(ray.Direction)
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Pos)
	result, scattered := hit.Material.Scatter(ray, hit, random)
	if !scattered {
		return emitted
	}

	incoming := RayColor(result.Scattered, objects, background, depth-1, random)
	return color.FromVec3(emitted.Vec.Add(result.Attenuation.Vec.MultiplyVec(incoming.Vec)))
}

var infinity = math.Inf(1)

// backgroundGradient is the sky: a linear blend from white at direction.Y=-1
// to sky blue at direction.Y=1 (halfway at the horizon), keyed on the ray's
// raw (non-unit) direction.Y, since camera rays are not unit length.
func backgroundGradient(direction core.Vec3) color.Color {
	t := (direction.Y + 1.0) / 2.0
	white := core.NewVec3(1, 1, 1).Multiply(1 - t)
	sky := core.NewVec3(0.5, 0.7, 1.0).Multiply(t)
	return color.FromVec3(white.Add(sky))
}
