package geometry

import (
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// Brick is an axis-aligned box built from six rectangles, all sharing one
// Material by reference so a caller updating the material updates every
// face at once.
type Brick struct {
	Pos, Corner core.Vec3
	Sides       *ObjectList
	Material    material.Material
}

// NewBrick builds a Brick spanning from pos to pos+size, generating its six
// faces as rectangles that share mat.
func NewBrick(pos, size core.Vec3, mat material.Material) *Brick {
	corner := pos.Add(size)
	sides := NewObjectList([]Object3D{
		NewXYRect(core.NewVec2(pos.X, pos.Y), core.NewVec2(corner.X, corner.Y), pos.Z, mat),
		NewXYRect(core.NewVec2(pos.X, pos.Y), core.NewVec2(corner.X, corner.Y), corner.Z, mat),
		NewYZRect(core.NewVec2(pos.Y, pos.Z), core.NewVec2(corner.Y, corner.Z), pos.X, mat),
		NewYZRect(core.NewVec2(pos.Y, pos.Z), core.NewVec2(corner.Y, corner.Z), corner.X, mat),
		NewXZRect(core.NewVec2(pos.X, pos.Z), core.NewVec2(corner.X, corner.Z), pos.Y, mat),
		NewXZRect(core.NewVec2(pos.X, pos.Z), core.NewVec2(corner.X, corner.Z), corner.Y, mat),
	})
	return &Brick{Pos: pos, Corner: corner, Sides: sides, Material: mat}
}

// Tag names the variant for scene persistence.
func (b *Brick) Tag() string { return "Brick" }

// Hit delegates to the brick's six faces.
func (b *Brick) Hit(ray core.Ray, tMin, tMax float64) (material.RayHit, bool) {
	return b.Sides.Hit(ray, tMin, tMax)
}

// RelativeTo shifts the brick and its faces into camera-relative space.
func (b *Brick) RelativeTo(cameraPos core.Vec3) Object3D {
	return &Brick{
		Pos:      b.Pos.Subtract(cameraPos),
		Corner:   b.Corner.Subtract(cameraPos),
		Sides:    b.Sides.RelativeTo(cameraPos),
		Material: b.Material,
	}
}

// DistanceFromCamera uses the squared distance to the brick's center.
func (b *Brick) DistanceFromCamera(cameraPos core.Vec3) float64 {
	center := b.Pos.Add(b.Corner).Multiply(0.5)
	return center.Subtract(cameraPos).LengthSquared()
}
