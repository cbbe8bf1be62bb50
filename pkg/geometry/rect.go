package geometry

import (
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// XYRect is an axis-aligned rectangle in the plane z=K, spanning from Pos to
// Corner in (x,y). Containment at the rectangle's edge is strict.
type XYRect struct {
	Pos, Corner core.Vec2
	K           float64
	Material    material.Material
}

// NewXYRect creates an XYRect.
func NewXYRect(pos, corner core.Vec2, k float64, mat material.Material) *XYRect {
	return &XYRect{Pos: pos, Corner: corner, K: k, Material: mat}
}

// Tag names the variant for scene persistence.
func (r *XYRect) Tag() string { return "XYRect" }

// Hit intersects ray with the plane z=K, then checks strict (x,y) containment.
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64) (material.RayHit, bool) {
	dist := (r.K - ray.Origin.Z) / ray.Direction.Z
	if dist <= tMin || dist >= tMax {
		return material.RayHit{}, false
	}
	x := ray.Origin.X + dist*ray.Direction.X
	y := ray.Origin.Y + dist*ray.Direction.Y
	if x <= r.Pos.X || x >= r.Corner.X || y <= r.Pos.Y || y >= r.Corner.Y {
		return material.RayHit{}, false
	}
	outwardNormal := core.NewVec3(0, 0, 1)
	u := (x - r.Pos.X) / (r.Corner.X - r.Pos.X)
	v := (y - r.Pos.Y) / (r.Corner.Y - r.Pos.Y)
	return material.NewRayHit(ray.At(dist), outwardNormal, ray.Direction, u, v, r.Material), true
}

// RelativeTo shifts the rectangle into camera-relative space.
func (r *XYRect) RelativeTo(cameraPos core.Vec3) Object3D {
	camPos := core.NewVec2(cameraPos.X, cameraPos.Y)
	return &XYRect{
		Pos:      r.Pos.Subtract(camPos),
		Corner:   r.Corner.Subtract(camPos),
		K:        r.K - cameraPos.Z,
		Material: r.Material,
	}
}

// DistanceFromCamera returns the squared distance to the rectangle's center,
// matching the renderer's original (asymmetric with Sphere) depth key.
func (r *XYRect) DistanceFromCamera(cameraPos core.Vec3) float64 {
	center := core.NewVec3((r.Pos.X+r.Corner.X)/2, (r.Pos.Y+r.Corner.Y)/2, r.K)
	return center.Subtract(cameraPos).LengthSquared()
}

// XZRect is an axis-aligned rectangle in the plane y=K, spanning from Pos to
// Corner in (x,z).
type XZRect struct {
	Pos, Corner core.Vec2
	K           float64
	Material    material.Material
}

// NewXZRect creates an XZRect.
func NewXZRect(pos, corner core.Vec2, k float64, mat material.Material) *XZRect {
	return &XZRect{Pos: pos, Corner: corner, K: k, Material: mat}
}

// Tag names the variant for scene persistence.
func (r *XZRect) Tag() string { return "XZRect" }

// Hit intersects ray with the plane y=K, then checks strict (x,z) containment.
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64) (material.RayHit, bool) {
	dist := (r.K - ray.Origin.Y) / ray.Direction.Y
	if dist <= tMin || dist >= tMax {
		return material.RayHit{}, false
	}
	x := ray.Origin.X + dist*ray.Direction.X
	z := ray.Origin.Z + dist*ray.Direction.Z
	if x <= r.Pos.X || x >= r.Corner.X || z <= r.Pos.Y || z >= r.Corner.Y {
		return material.RayHit{}, false
	}
	outwardNormal := core.NewVec3(0, 1, 0)
	u := (x - r.Pos.X) / (r.Corner.X - r.Pos.X)
	v := (z - r.Pos.Y) / (r.Corner.Y - r.Pos.Y)
	return material.NewRayHit(ray.At(dist), outwardNormal, ray.Direction, u, v, r.Material), true
}

// RelativeTo shifts the rectangle into camera-relative space.
func (r *XZRect) RelativeTo(cameraPos core.Vec3) Object3D {
	camPos := core.NewVec2(cameraPos.X, cameraPos.Z)
	return &XZRect{
		Pos:      r.Pos.Subtract(camPos),
		Corner:   r.Corner.Subtract(camPos),
		K:        r.K - cameraPos.Y,
		Material: r.Material,
	}
}

// DistanceFromCamera returns the squared distance to the rectangle's center.
func (r *XZRect) DistanceFromCamera(cameraPos core.Vec3) float64 {
	center := core.NewVec3((r.Pos.X+r.Corner.X)/2, r.K, (r.Pos.Y+r.Corner.Y)/2)
	return center.Subtract(cameraPos).LengthSquared()
}

// YZRect is an axis-aligned rectangle in the plane x=K, spanning from Pos to
// Corner in (y,z).
type YZRect struct {
	Pos, Corner core.Vec2
	K           float64
	Material    material.Material
}

// NewYZRect creates a YZRect.
func NewYZRect(pos, corner core.Vec2, k float64, mat material.Material) *YZRect {
	return &YZRect{Pos: pos, Corner: corner, K: k, Material: mat}
}

// Tag names the variant for scene persistence.
func (r *YZRect) Tag() string { return "YZRect" }

// Hit intersects ray with the plane x=K, then checks strict (y,z) containment.
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64) (material.RayHit, bool) {
	dist := (r.K - ray.Origin.X) / ray.Direction.X
	if dist <= tMin || dist >= tMax {
		return material.RayHit{}, false
	}
	y := ray.Origin.Y + dist*ray.Direction.Y
	z := ray.Origin.Z + dist*ray.Direction.Z
	if y <= r.Pos.X || y >= r.Corner.X || z <= r.Pos.Y || z >= r.Corner.Y {
		return material.RayHit{}, false
	}
	outwardNormal := core.NewVec3(1, 0, 0)
	u := (y - r.Pos.X) / (r.Corner.X - r.Pos.X)
	v := (z - r.Pos.Y) / (r.Corner.Y - r.Pos.Y)
	return material.NewRayHit(ray.At(dist), outwardNormal, ray.Direction, u, v, r.Material), true
}

// RelativeTo shifts the rectangle into camera-relative space.
func (r *YZRect) RelativeTo(cameraPos core.Vec3) Object3D {
	camPos := core.NewVec2(cameraPos.Y, cameraPos.Z)
	return &YZRect{
		Pos:      r.Pos.Subtract(camPos),
		Corner:   r.Corner.Subtract(camPos),
		K:        r.K - cameraPos.X,
		Material: r.Material,
	}
}

// DistanceFromCamera returns the squared distance to the rectangle's center.
func (r *YZRect) DistanceFromCamera(cameraPos core.Vec3) float64 {
	center := core.NewVec3(r.K, (r.Pos.X+r.Corner.X)/2, (r.Pos.Y+r.Corner.Y)/2)
	return center.Subtract(cameraPos).LengthSquared()
}
