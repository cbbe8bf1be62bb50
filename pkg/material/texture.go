package material

import (
	"math"

	perlin "github.com/aquilax/go-perlin"

	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
)

// Texture is the tagged-variant interface for spatially-varying color:
// Solid, Checker, Image, and the supplemental Perlin.
type Texture interface {
	// Evaluate returns the color at the given UV (image textures) and/or
	// world-space point (checker, Perlin).
	Evaluate(u, v float64, p core.Vec3) color.Color
	// Tag is the serialization tag used by pkg/sceneio.
	Tag() string
}

// Solid is a uniform color texture.
type Solid struct {
	Color color.Color
}

// NewSolid creates a solid-color texture.
func NewSolid(c color.Color) *Solid { return &Solid{Color: c} }

func (s *Solid) Evaluate(u, v float64, p core.Vec3) color.Color { return s.Color }
func (s *Solid) Tag() string                                    { return "SolidColor" }

// Checker alternates between two colors based on world-space position,
// independent of (u,v).
type Checker struct {
	Odd, Even color.Color
	Scale     float64
}

// NewChecker creates a 3-D checkerboard texture.
func NewChecker(odd, even color.Color, scale float64) *Checker {
	return &Checker{Odd: odd, Even: even, Scale: scale}
}

func (c *Checker) Evaluate(u, v float64, p core.Vec3) color.Color {
	sines := math.Sin(c.Scale*p.X) * math.Sin(c.Scale*p.Y) * math.Sin(c.Scale*p.Z)
	if sines < 0 {
		return c.Odd
	}
	return c.Even
}

func (c *Checker) Tag() string { return "Checkered" }

// Raster is a read-only RGB image indexed by (u, v) in [0,1]^2.
type Raster struct {
	Width, Height int
	Pixels        []color.Color // row-major, Pixels[y*Width+x]
}

// At samples the raster at (u,v), flipping v and clamping out-of-range
// indices to the edge. No bilinear filtering.
func (r *Raster) At(u, v float64) color.Color {
	x := int(u * float64(r.Width))
	y := int((1 - v) * float64(r.Height))
	if x < 0 {
		x = 0
	}
	if x >= r.Width {
		x = r.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= r.Height {
		y = r.Height - 1
	}
	return r.Pixels[y*r.Width+x]
}

// Image samples a Raster at the hit's (u,v) coordinates.
type Image struct {
	Raster  *Raster
	ImageID string // host-provided lookup key, used by pkg/sceneio
}

// NewImage creates an image texture over the given raster.
func NewImage(raster *Raster, imageID string) *Image {
	return &Image{Raster: raster, ImageID: imageID}
}

func (t *Image) Evaluate(u, v float64, p core.Vec3) color.Color {
	return t.Raster.At(u, v)
}

func (t *Image) Tag() string { return "Image" }

// Perlin is a procedural noise texture, supplementing the spec's three
// texture tags. It is point-parameterized like Checker.
type Perlin struct {
	Color color.Color
	Scale float64
	Seed  int64
	noise *perlin.Perlin
}

// NewPerlin creates a Perlin-noise-modulated texture. alpha/beta/n follow
// go-perlin's standard recommended defaults (2, 2, 3).
func NewPerlin(c color.Color, scale float64, seed int64) *Perlin {
	return &Perlin{
		Color: c,
		Scale: scale,
		Seed:  seed,
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

func (t *Perlin) Evaluate(u, v float64, p core.Vec3) color.Color {
	n := t.noise.Noise3D(t.Scale*p.X, t.Scale*p.Y, t.Scale*p.Z)
	weight := 0.5 + 0.5*n
	return color.FromVec3(t.Color.Vec.Multiply(weight))
}

func (t *Perlin) Tag() string { return "Perlin" }
