package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/material"
)

func redSphere(z float64) *geometry.Sphere {
	return geometry.NewSphere(core.NewVec3(0, 0, z), 0.5, material.NewLambertian(material.NewSolid(color.New(255, 0, 0))))
}

// TestScene_PickObject_FrontToBackOrder exercises scenario E4: a camera at
// the origin looking down -Z, with two spheres in list order front-to-back,
// should pick index 0.
func TestScene_PickObject_FrontToBackOrder(t *testing.T) {
	objects := geometry.NewObjectList([]geometry.Object3D{redSphere(-2), redSphere(-5)})
	s := NewScene(80, 60, 90, nil, objects)
	s.Camera.SetPose(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	index, ok := s.PickObject()
	require.True(t, ok)
	assert.Equal(t, 0, index)
}

func TestSceneList_NextWraps(t *testing.T) {
	list := DefaultScenes(80, 60)
	require.Equal(t, 4, list.Len())

	for i := 0; i < list.Len(); i++ {
		list.Next()
	}
	assert.Equal(t, 0, list.CurrentIndex(), "Next should wrap back to the first scene")
}

func TestSceneList_PrevWraps(t *testing.T) {
	list := DefaultScenes(80, 60)
	list.Prev()
	assert.Equal(t, list.Len()-1, list.CurrentIndex(), "Prev from index 0 should wrap to the last scene")
}

func TestDiffuseLightOnly_HasSingleObject(t *testing.T) {
	s := DiffuseLightOnly(20, 20)
	assert.Equal(t, 1, len(s.Objects.Objects))
}
