// Package color wraps a linear-RGB Vec3 with 8-bit and hex conversions.
package color

import (
	"fmt"

	"github.com/df07/go-raytracer-core/pkg/core"
)

// Color is a linear RGB triplet with components in [0, 1].
type Color struct {
	Vec core.Vec3
}

// New creates a Color from 8-bit channels. Dividing (rather than multiplying
// by 1/255) keeps R/G/B returning exactly the channels passed in.
func New(r, g, b uint8) Color {
	return Color{Vec: core.NewVec3(
		float64(r)/255.0,
		float64(g)/255.0,
		float64(b)/255.0,
	)}
}

// Black is the zero color.
var Black = Color{}

// White is full-intensity white.
var White = New(255, 255, 255)

// FromVec3 clamps a Vec3 into [0,1] and wraps it as a Color.
func FromVec3(v core.Vec3) Color {
	return Color{Vec: v.Clamp(0, 1)}
}

// R returns the red channel truncated to 8 bits.
func (c Color) R() uint8 { return uint8(255 * c.Vec.X) }

// G returns the green channel truncated to 8 bits.
func (c Color) G() uint8 { return uint8(255 * c.Vec.Y) }

// B returns the blue channel truncated to 8 bits.
func (c Color) B() uint8 { return uint8(255 * c.Vec.Z) }

// Hex renders the color as a lower-case "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}

// FromHex parses a "#rrggbb" string into a Color. A string of the wrong
// length or with a malformed channel returns an error.
func FromHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("color: invalid hex string %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:3], "%02x", &r); err != nil {
		return Color{}, fmt.Errorf("color: invalid hex string %q: %w", s, err)
	}
	if _, err := fmt.Sscanf(s[3:5], "%02x", &g); err != nil {
		return Color{}, fmt.Errorf("color: invalid hex string %q: %w", s, err)
	}
	if _, err := fmt.Sscanf(s[5:7], "%02x", &b); err != nil {
		return Color{}, fmt.Errorf("color: invalid hex string %q: %w", s, err)
	}
	return New(r, g, b), nil
}
