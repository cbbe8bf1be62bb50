package renderer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/material"
	"github.com/df07/go-raytracer-core/pkg/scene"
)

func TestRayColor_MissUsesSkyGradient(t *testing.T) {
	objects := geometry.NewObjectList(nil)
	random := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	c := RayColor(ray, objects, nil, 1, random)
	// Straight up: t=1, pure sky blue, no white blend.
	assert.InDelta(t, 0.5, c.Vec.X, 1e-9)
	assert.InDelta(t, 0.7, c.Vec.Y, 1e-9)
	assert.InDelta(t, 1.0, c.Vec.Z, 1e-9)
}

func TestRayColor_DepthZero_IsBlack(t *testing.T) {
	objects := geometry.NewObjectList(nil)
	random := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	c := RayColor(ray, objects, nil, 0, random)
	assert.True(t, c.Vec.IsZero())
}

func TestRayColor_HitsEmissiveSurface(t *testing.T) {
	light := material.NewDiffuseLight(material.NewSolid(color.New(255, 255, 255)))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, light)
	objects := geometry.NewObjectList([]geometry.Object3D{sphere})
	random := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	c := RayColor(ray, objects, nil, 4, random)
	assert.True(t, c.Vec.Equals(color.White.Vec))
}

// TestSingleSphere_CenterPixelIsRedTinted exercises scenario E1. Depth 2 is
// the smallest depth at which a Lambertian hit gathers any light: at depth 1
// the scattered ray is traced at depth 0 and returns black.
func TestSingleSphere_CenterPixelIsRedTinted(t *testing.T) {
	s := scene.SingleSphere(80, 60)
	random := rand.New(rand.NewSource(1))

	objects := s.Objects.RelativeTo(s.Camera.Pos).CameraSorted(s.Camera.Pos)
	ray := s.Camera.GetRay(0.5, 0.5)
	c := RayColor(ray, objects, s.Background, 2, random)

	assert.Greater(t, c.Vec.X, c.Vec.Y)
	assert.Greater(t, c.Vec.X, c.Vec.Z)
}

func TestSingleSphere_CornerPixelIsSky(t *testing.T) {
	s := scene.SingleSphere(80, 60)
	random := rand.New(rand.NewSource(1))

	objects := s.Objects.RelativeTo(s.Camera.Pos).CameraSorted(s.Camera.Pos)
	ray := s.Camera.GetRay(0.01, 0.99)
	c := RayColor(ray, objects, s.Background, 1, random)

	assert.GreaterOrEqual(t, c.Vec.Z, c.Vec.X)
	assert.GreaterOrEqual(t, c.Vec.Z, c.Vec.Y)
}

func TestRenderPreview_DiffuseLightOnlyMatchesTextureExactly(t *testing.T) {
	s := scene.DiffuseLightOnly(20, 20)
	random := rand.New(rand.NewSource(1))

	fb := RenderPreview(s, random)
	require.Equal(t, 20*20, len(fb.Buffer()))

	center := fb.Buffer()[10*20+10]
	assert.Equal(t, uint8(255), center.R())
}

func TestPairwiseMean_AveragesEachPixel(t *testing.T) {
	a := []color.Color{color.New(100, 0, 0)}
	b := []color.Color{color.New(200, 0, 0)}
	out := pairwiseMean(a, b)
	assert.InDelta(t, 150.0/255.0, out[0].Vec.X, 1e-3)
}
