// Package geometry implements the Object3D shapes (Sphere, axis rectangles,
// Brick) and the ObjectList that holds them for a scene.
package geometry

import (
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// Object3D is the tagged-variant interface implemented by every shape that
// can appear in a scene: Sphere, XYRect, XZRect, YZRect, and Brick.
type Object3D interface {
	// Hit tests for intersection with ray over the parametric range from
	// tMin to tMax. Rectangles exclude both endpoints; Sphere includes them.
	Hit(ray core.Ray, tMin, tMax float64) (material.RayHit, bool)
	// RelativeTo returns a copy of the object with its geometry shifted into
	// camera-relative space, as required before rendering or picking.
	RelativeTo(cameraPos core.Vec3) Object3D
	// DistanceFromCamera returns a camera-sorting key. For Sphere it is a
	// true Euclidean distance; for the rectangle-based shapes it is a
	// squared distance, faithfully reproducing the asymmetry of the
	// original renderer's depth ordering.
	DistanceFromCamera(cameraPos core.Vec3) float64
	// Tag names the variant for scene persistence.
	Tag() string
}

// Sphere is centered at Pos with the given Radius and Material.
type Sphere struct {
	Pos      core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a Sphere.
func NewSphere(pos core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Pos: pos, Radius: radius, Material: mat}
}

// Tag names the variant for scene persistence.
func (s *Sphere) Tag() string { return "Sphere" }

// Hit solves the sphere quadratic at²+bt+c=0 for the nearest root in range.
// UV is only computed for non-solid textures; solid colors don't need it.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (material.RayHit, bool) {
	oc := ray.Origin.Subtract(s.Pos)

	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c

	if discriminant <= 0 {
		return material.RayHit{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return material.RayHit{}, false
		}
	}

	pos := ray.At(root)
	outwardNormal := pos.Subtract(s.Pos).Multiply(1.0 / s.Radius)

	u, v := 0.0, 0.0
	if _, solid := textureOf(s.Material).(*material.Solid); !solid && textureOf(s.Material) != nil {
		d := outwardNormal
		u = 0.5 + math.Atan2(d.X, d.Z)/(2.0*math.Pi)
		v = 0.5 + math.Asin(d.Y)/math.Pi
	}

	return material.NewRayHit(pos, outwardNormal, ray.Direction, u, v, s.Material), true
}

// RelativeTo shifts the sphere into camera-relative space.
func (s *Sphere) RelativeTo(cameraPos core.Vec3) Object3D {
	return &Sphere{Pos: s.Pos.Subtract(cameraPos), Radius: s.Radius, Material: s.Material}
}

// DistanceFromCamera is the true Euclidean distance to the sphere's center.
func (s *Sphere) DistanceFromCamera(cameraPos core.Vec3) float64 {
	return s.Pos.Subtract(cameraPos).Length()
}

// textureOf extracts the texture backing a material, where one exists, so
// Sphere.Hit can skip UV computation for SolidColor textures. Materials that
// don't expose a texture (Dielectric) report nil.
func textureOf(mat material.Material) material.Texture {
	switch m := mat.(type) {
	case *material.Lambertian:
		return m.Texture
	case *material.Metal:
		return m.Texture
	case *material.DiffuseLight:
		return m.Texture
	default:
		return nil
	}
}
