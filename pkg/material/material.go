// Package material implements the tagged-variant Material and Texture types,
// plus the RayHit surface record they operate on.
package material

import (
	"math/rand"

	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
)

// RayHit is a surface intersection record. If FrontFace is true, Normal
// points against the incoming ray (outward for the hit surface); otherwise
// Normal has already been flipped so it always points back toward the ray.
type RayHit struct {
	Pos       core.Vec3
	Normal    core.Vec3
	FrontFace bool
	U, V      float64
	Material  Material
}

// NewRayHit builds a RayHit, orienting Normal against the incoming ray.
func NewRayHit(pos, outwardNormal core.Vec3, rayDir core.Vec3, u, v float64, mat Material) RayHit {
	frontFace := rayDir.Dot(outwardNormal) < 0
	normal := outwardNormal
	if !frontFace {
		normal = outwardNormal.Negate()
	}
	return RayHit{Pos: pos, Normal: normal, FrontFace: frontFace, U: u, V: v, Material: mat}
}

// ScatterResult is a material's reply to an incoming ray: a new ray and an
// attenuation to apply to whatever light it gathers.
type ScatterResult struct {
	Scattered   core.Ray
	Attenuation color.Color
}

// Material is the tagged-variant interface implemented by Lambertian, Metal,
// Dielectric, and DiffuseLight.
type Material interface {
	// Scatter proposes a new ray and an attenuation for it, or returns
	// ok=false if the surface absorbs the incoming ray.
	Scatter(rayIn core.Ray, hit RayHit, random *rand.Rand) (ScatterResult, bool)
	// Emitted returns the light emitted by the surface, independent of
	// any incident light. Zero for all but DiffuseLight.
	Emitted(u, v float64, p core.Vec3) color.Color
	// PreviewColor is the single-sample, non-recursive color used by the
	// preview path: the material's texture color, or white for Dielectric.
	PreviewColor(u, v float64, p core.Vec3) color.Color
}
