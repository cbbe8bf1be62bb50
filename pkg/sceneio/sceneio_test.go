package sceneio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/material"
	"github.com/df07/go-raytracer-core/pkg/scene"
)

func buildScene() *scene.Scene {
	red := material.NewLambertian(material.NewSolid(color.New(200, 30, 30)))
	checker := material.NewLambertian(material.NewChecker(color.New(255, 255, 255), color.New(0, 0, 0), 2))
	chrome := material.NewMetal(material.NewSolid(color.New(180, 180, 180)), 0.1)
	light := material.NewDiffuseLight(material.NewSolid(color.White))

	objects := geometry.NewObjectList([]geometry.Object3D{
		geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, red),
		geometry.NewXZRect(core.NewVec2(-5, -5), core.NewVec2(5, 5), -0.5, checker),
		geometry.NewBrick(core.NewVec3(1, 0, 1), core.NewVec3(1, 1, 1), chrome),
		geometry.NewXYRect(core.NewVec2(-1, -1), core.NewVec2(1, 1), 3, light),
	})

	bg := color.New(10, 10, 30)
	s := scene.NewScene(80, 60, 70, &bg, objects)
	s.Camera.SetPose(core.NewVec3(0, 1, -4), core.NewVec3(0, -0.2, 1))
	return s
}

// TestSceneio_RoundTrip exercises the scenario E6 persistence round trip: a
// scene marshaled to YAML and unmarshaled back keeps its size, camera,
// background, object tags, and the sphere's and brick's geometry.
func TestSceneio_RoundTrip(t *testing.T) {
	original := buildScene()

	data, err := Marshal(original)
	require.NoError(t, err)

	restored, err := Unmarshal(data, nil)
	require.NoError(t, err)

	assert.Equal(t, original.Width, restored.Width)
	assert.Equal(t, original.Height, restored.Height)
	assert.Equal(t, original.Camera.VFov, restored.Camera.VFov)
	assert.True(t, original.Camera.Pos.Equals(restored.Camera.Pos))
	assert.True(t, original.Camera.Rotation.Equals(restored.Camera.Rotation))
	require.NotNil(t, restored.Background)
	assert.Equal(t, original.Background.Hex(), restored.Background.Hex())

	require.Equal(t, len(original.Objects.Objects), len(restored.Objects.Objects))
	for i, obj := range original.Objects.Objects {
		assert.Equal(t, obj.Tag(), restored.Objects.Objects[i].Tag())
	}

	sphere, ok := restored.Objects.Objects[0].(*geometry.Sphere)
	require.True(t, ok)
	assert.True(t, sphere.Pos.Equals(core.NewVec3(0, 0, -2)))
	assert.Equal(t, 0.5, sphere.Radius)

	brick, ok := restored.Objects.Objects[2].(*geometry.Brick)
	require.True(t, ok)
	assert.True(t, brick.Pos.Equals(core.NewVec3(1, 0, 1)))
	assert.True(t, brick.Corner.Equals(core.NewVec3(2, 1, 2)))
}

// TestSceneio_Unmarshal_BadYAML confirms a parse failure returns an error
// rather than a partial scene.
func TestSceneio_Unmarshal_BadYAML(t *testing.T) {
	_, err := Unmarshal([]byte("not: [valid"), nil)
	require.Error(t, err)
}

// TestSceneio_Unmarshal_ImageWithoutLookup confirms an Image texture with no
// lookup callback fails rather than silently producing a blank texture.
func TestSceneio_Unmarshal_ImageWithoutLookup(t *testing.T) {
	doc := []byte(`
width: 10
height: 10
vfov: 60
cameraPos: {x: 0, y: 0, z: 0}
cameraRotation: {x: 0, y: 0, z: 1}
objects:
  - tag: Sphere
    pos: {x: 0, y: 0, z: 0}
    radius: 1
    material:
      tag: Lambertian
      texture:
        tag: Image
        imageId: foo
`)
	_, err := Unmarshal(doc, nil)
	require.Error(t, err)
}
