// Package framebuffer holds a fixed-size grid of colors and packs it to bytes
// for a display sink.
package framebuffer

import (
	"errors"

	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
)

// ErrInvalidLength is returned by SetBuffer when the supplied slice doesn't
// match the framebuffer's pixel count.
var ErrInvalidLength = errors.New("framebuffer: buffer length does not match width*height")

// Framebuffer is a fixed-size grid of colors.
type Framebuffer struct {
	Width, Height int
	buffer        []color.Color
}

// New creates a black framebuffer of the given size.
func New(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		buffer: make([]color.Color, width*height),
	}
}

// Buffer returns the underlying color slice, row-major.
func (fb *Framebuffer) Buffer() []color.Color {
	return fb.buffer
}

// SetBuffer replaces the framebuffer contents. Fails if lengths don't match.
func (fb *Framebuffer) SetBuffer(buf []color.Color) error {
	if len(buf) != len(fb.buffer) {
		return ErrInvalidLength
	}
	copy(fb.buffer, buf)
	return nil
}

// ContainsPoint reports whether p lies within the framebuffer bounds.
func (fb *Framebuffer) ContainsPoint(p core.Vec2) bool {
	return p.X >= 0 && p.X < float64(fb.Width) && p.Y >= 0 && p.Y < float64(fb.Height)
}

// SetPixel sets the color at integer pixel coordinates (x, y), if in bounds.
func (fb *Framebuffer) SetPixel(x, y int, c color.Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.buffer[y*fb.Width+x] = c
}

// ToBytes packs the framebuffer into row-major R,G,B[,A] bytes. With alpha,
// an opaque 0xFF channel is appended per pixel.
func (fb *Framebuffer) ToBytes(alpha bool) []byte {
	stride := 3
	if alpha {
		stride = 4
	}
	out := make([]byte, 0, len(fb.buffer)*stride)
	for _, c := range fb.buffer {
		out = append(out, c.R(), c.G(), c.B())
		if alpha {
			out = append(out, 0xFF)
		}
	}
	return out
}
