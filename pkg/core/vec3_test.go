package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_DotCross(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)
	assert.Equal(t, 0.0, a.Dot(b))
	assert.True(t, a.Cross(b).Equals(NewVec3(0, 0, 1)))
}

func TestVec3_RotateY_QuarterTurn(t *testing.T) {
	v := NewVec3(0, 0, 1)
	rotated := v.RotateY(math.Pi / 2)
	assert.True(t, rotated.Equals(NewVec3(1, 0, 0)), "got %v", rotated)
}

func TestVec3_RotateX_QuarterTurn(t *testing.T) {
	v := NewVec3(0, 0, 1)
	rotated := v.RotateX(math.Pi / 2)
	assert.True(t, rotated.Equals(NewVec3(0, -1, 0)), "got %v", rotated)
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0)
	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-9)
}

func TestVec3_Normalize_Zero(t *testing.T) {
	assert.True(t, NewVec3(0, 0, 0).Normalize().IsZero())
}

func TestVec3_GammaCorrect(t *testing.T) {
	v := NewVec3(0.25, 0.25, 0.25)
	corrected := v.GammaCorrect(2.0)
	assert.InDelta(t, 0.5, corrected.X, 1e-9)
}

func TestRandomUnitVector_IsUnit(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		v := RandomUnitVector(random)
		assert.InDelta(t, 1.0, v.Length(), 1e-9)
	}
}

func TestRandomInUnitBall_WithinRadius(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		v := RandomInUnitBall(random)
		assert.LessOrEqual(t, v.LengthSquared(), 1.0)
	}
}
