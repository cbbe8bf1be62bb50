package geometry

import (
	"math"

	"github.com/df07/go-raytracer-core/pkg/core"
)

// Movement and rotation speeds applied per handled input event.
const (
	movementSpeed = 0.05
	rotationSpeed = 0.001
)

// CameraInput is a single frame's worth of requested camera movement: six
// boolean directions, an optional reset, and an optional mouse delta.
type CameraInput struct {
	Forward, Back, Right, Left, Up, Down bool
	Reset                                bool
	MouseMove                            *core.Vec2
}

// Camera is a pinhole camera. Rotation is a direction vector, not a set of
// Euler angles: basis vectors are re-derived from it whenever the camera's
// state changes.
type Camera struct {
	Pos         core.Vec3
	Rotation    core.Vec3
	AspectRatio float64
	VFov        float64

	horizontal      core.Vec3
	vertical        core.Vec3
	lowerLeftCorner core.Vec3
}

// NewCamera builds a Camera and derives its basis vectors.
func NewCamera(pos, rotation core.Vec3, aspectRatio, vfov float64) *Camera {
	c := &Camera{Pos: pos, Rotation: rotation, AspectRatio: aspectRatio, VFov: vfov}
	c.rebuild()
	return c
}

// rebuild recomputes the derived basis vectors from Pos, Rotation,
// AspectRatio, and VFov. Every camera mutation ends by calling this.
func (c *Camera) rebuild() {
	w := c.Rotation.Negate().Normalize()
	u := core.NewVec3(0, 1, 0).Cross(w)
	v := w.Cross(u)

	viewportHeight := 2.0 * math.Tan(degToRad(c.VFov)/2.0)
	viewportWidth := c.AspectRatio * viewportHeight

	c.horizontal = u.Multiply(viewportWidth)
	c.vertical = v.Multiply(viewportHeight)
	c.lowerLeftCorner = c.Pos.
		Subtract(c.horizontal.Multiply(0.5)).
		Subtract(c.vertical.Multiply(0.5)).
		Subtract(w)
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }

// SetPose sets Pos and Rotation and rebuilds the derived basis. Pos and
// Rotation are exported for serialization, but setting them directly skips
// the rebuild; callers that need the camera usable afterward should use
// SetPose instead.
func (c *Camera) SetPose(pos, rotation core.Vec3) {
	c.Pos = pos
	c.Rotation = rotation
	c.rebuild()
}

// ChangeVFov updates the vertical field of view and rebuilds the basis.
func (c *Camera) ChangeVFov(vfov float64) {
	c.VFov = vfov
	c.rebuild()
}

// Reset returns the camera to the origin looking down +Z.
func (c *Camera) Reset() {
	c.Pos = core.NewVec3(0, 0, 0)
	c.Rotation = core.NewVec3(0, 0, 1)
	c.rebuild()
}

// Resize updates the aspect ratio and rebuilds the basis.
func (c *Camera) Resize(aspectRatio float64) {
	c.AspectRatio = aspectRatio
	c.rebuild()
}

// HandleInput applies one frame of movement and rotation input.
func (c *Camera) HandleInput(input CameraInput) {
	if input.Reset {
		c.Reset()
		return
	}

	if input.Forward {
		c.Pos = c.Pos.Add(c.Rotation.Multiply(movementSpeed))
	}
	if input.Back {
		c.Pos = c.Pos.Subtract(c.Rotation.Multiply(movementSpeed))
	}
	if input.Right {
		c.Pos = c.Pos.Subtract(c.Rotation.RotateY(math.Pi / 2).Multiply(movementSpeed))
	}
	if input.Left {
		c.Pos = c.Pos.Add(c.Rotation.RotateY(math.Pi / 2).Multiply(movementSpeed))
	}
	if input.Up {
		c.Pos.Y += c.Rotation.Length() * movementSpeed
	}
	if input.Down {
		c.Pos.Y -= c.Rotation.Length() * movementSpeed
	}

	if input.MouseMove != nil {
		sign := -1.0
		if c.Rotation.Z > 0 {
			sign = 1.0
		}
		rotateX := -input.MouseMove.X * rotationSpeed
		rotateY := input.MouseMove.Y * sign * rotationSpeed

		c.Rotation = c.Rotation.RotateY(rotateX)
		c.Rotation = c.Rotation.RotateX(rotateY)
	}

	c.rebuild()
}

// GetRay returns the ray from the camera through viewport coordinates (x, y),
// each typically in [0, 1].
func (c *Camera) GetRay(x, y float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(x)).
		Add(c.vertical.Multiply(y)).
		Subtract(c.Pos)
	return core.NewRay(c.Pos, direction)
}

// PickRay returns the ray used by the object picker. It deliberately reuses
// Rotation as a displaced target point rather than as a direction, matching
// the renderer this was ported from: the ray's direction is Pos+Rotation, so
// it points where the camera is looking only when Pos is the origin (or
// parallel to Rotation).
func (c *Camera) PickRay() core.Ray {
	return core.NewRay(c.Pos, c.Pos.Add(c.Rotation))
}
