package material

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
)

func upwardHit() RayHit {
	return NewRayHit(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, -1, 0),
		0, 0,
		nil,
	)
}

func TestNewRayHit_FrontFace(t *testing.T) {
	hit := upwardHit()
	assert.True(t, hit.FrontFace)
	assert.True(t, hit.Normal.Equals(core.NewVec3(0, 1, 0)))
}

func TestNewRayHit_BackFaceFlipsNormal(t *testing.T) {
	hit := NewRayHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), 0, 0, nil)
	assert.False(t, hit.FrontFace)
	assert.True(t, hit.Normal.Equals(core.NewVec3(0, -1, 0)))
}

func TestLambertian_Scatter_AlwaysScatters(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	mat := NewLambertian(NewSolid(color.New(100, 150, 200)))
	hit := upwardHit()
	hit.Material = mat

	result, ok := mat.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), hit, random)
	require.True(t, ok)
	assert.True(t, result.Attenuation.Vec.Equals(color.New(100, 150, 200).Vec))
}

func TestMetal_Scatter_AbsorbsBelowSurface(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	mat := NewMetal(NewSolid(color.White), 0)
	hit := upwardHit()

	grazing := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -0.01, 0))
	_, ok := mat.Scatter(grazing, hit, random)
	assert.True(t, ok)

	intoSurface := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))
	_, ok2 := mat.Scatter(intoSurface, hit, random)
	assert.False(t, ok2)
}

func TestDielectric_PreviewColor_IsWhite(t *testing.T) {
	mat := NewDielectric(1.5)
	assert.True(t, mat.PreviewColor(0, 0, core.Vec3{}).Vec.Equals(color.White.Vec))
}

func TestDielectric_Scatter_AlwaysWhiteAttenuation(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	mat := NewDielectric(1.5)
	hit := upwardHit()

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0.1, -1, 0))
	result, ok := mat.Scatter(ray, hit, random)
	require.True(t, ok)
	assert.True(t, result.Attenuation.Vec.Equals(color.White.Vec))
}

func TestDiffuseLight_NeverScatters(t *testing.T) {
	mat := NewDiffuseLight(NewSolid(color.White))
	_, ok := mat.Scatter(core.Ray{}, RayHit{}, rand.New(rand.NewSource(1)))
	assert.False(t, ok)
	assert.True(t, mat.Emitted(0, 0, core.Vec3{}).Vec.Equals(color.White.Vec))
}

func TestChecker_AlternatesByWorldPosition(t *testing.T) {
	tex := NewChecker(color.New(255, 255, 255), color.New(0, 0, 0), 1)
	a := tex.Evaluate(0, 0, core.NewVec3(0.1, 0.1, 0.1))
	b := tex.Evaluate(0, 0, core.NewVec3(4, 0.1, 0.1))
	assert.NotEqual(t, a.Hex(), b.Hex())
}

func TestSchlick_NormalIncidence(t *testing.T) {
	eta := 1.5
	r0 := (1 - eta) / (1 + eta)
	want := r0 * r0
	assert.InDelta(t, want, Schlick(1.0, eta), 1e-9)
}

func TestSchlick_GrazingIncidence_IsOne(t *testing.T) {
	assert.InDelta(t, 1.0, Schlick(0.0, 1.5), 1e-9)
}
