package geometry

import (
	"sort"

	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// ObjectList holds a scene's objects in list order. Hit returns the first
// object in list order that the ray intersects, not the closest one: the
// caller is expected to have already sorted the list by camera distance via
// CameraSorted if nearest-first behavior is wanted.
type ObjectList struct {
	Objects []Object3D
}

// NewObjectList wraps a slice of objects.
func NewObjectList(objects []Object3D) *ObjectList {
	return &ObjectList{Objects: objects}
}

// Hit returns the first intersection found walking the list in order.
func (l *ObjectList) Hit(ray core.Ray, tMin, tMax float64) (material.RayHit, bool) {
	for _, obj := range l.Objects {
		if hit, ok := obj.Hit(ray, tMin, tMax); ok {
			return hit, true
		}
	}
	return material.RayHit{}, false
}

// RelativeTo shifts every object (and nested Brick faces) into
// camera-relative space.
func (l *ObjectList) RelativeTo(cameraPos core.Vec3) *ObjectList {
	out := make([]Object3D, len(l.Objects))
	for i, obj := range l.Objects {
		out[i] = obj.RelativeTo(cameraPos)
	}
	return NewObjectList(out)
}

// CameraSorted returns a copy of the list ordered nearest-to-farthest from
// cameraPos, recursing into Brick faces. ObjectList.Hit always returns the
// first-in-list intersection, so sorting first is what makes list-order
// traversal approximate nearest-hit behavior.
func (l *ObjectList) CameraSorted(cameraPos core.Vec3) *ObjectList {
	out := make([]Object3D, len(l.Objects))
	copy(out, l.Objects)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceFromCamera(cameraPos) < out[j].DistanceFromCamera(cameraPos)
	})
	for i, obj := range out {
		if brick, ok := obj.(*Brick); ok {
			sorted := *brick
			sorted.Sides = brick.Sides.CameraSorted(cameraPos)
			out[i] = &sorted
		}
	}
	return NewObjectList(out)
}

// HitObject returns the index into Objects of the first object the ray
// intersects in list order, recursing into Brick faces so a brick counts as
// hit if any of its sides is hit.
func (l *ObjectList) HitObject(ray core.Ray, tMin, tMax float64) (int, bool) {
	for i, obj := range l.Objects {
		if hitsObject(obj, ray, tMin, tMax) {
			return i, true
		}
	}
	return 0, false
}

func hitsObject(obj Object3D, ray core.Ray, tMin, tMax float64) bool {
	if brick, ok := obj.(*Brick); ok {
		_, ok := brick.Sides.HitObject(ray, tMin, tMax)
		return ok
	}
	_, ok := obj.Hit(ray, tMin, tMax)
	return ok
}
