// Package scene ties a Camera and an ObjectList together into a renderable
// Scene, and groups several Scenes into a switchable SceneList.
package scene

import (
	"math"

	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
)

// Scene bundles a camera, its objects, and an optional background override.
// Background, when nil, falls back to the sky gradient.
type Scene struct {
	Camera     *geometry.Camera
	Objects    *geometry.ObjectList
	Background *color.Color
	Width      int
	Height     int
}

// NewScene creates a Scene with a fresh camera positioned at the origin
// looking down +Z.
func NewScene(width, height int, vfov float64, background *color.Color, objects *geometry.ObjectList) *Scene {
	aspectRatio := float64(width) / float64(height)
	cam := geometry.NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), aspectRatio, vfov)
	return &Scene{Camera: cam, Objects: objects, Background: background, Width: width, Height: height}
}

// Resize updates the image dimensions and the camera's aspect ratio.
func (s *Scene) Resize(width, height int) {
	s.Width, s.Height = width, height
	s.Camera.Resize(float64(width) / float64(height))
}

// PickObject returns the index of the first object the camera's pick ray
// hits, in list order. See geometry.Camera.PickRay for the ray's quirk.
func (s *Scene) PickObject() (int, bool) {
	return s.Objects.HitObject(s.Camera.PickRay(), 0, infinity)
}

var infinity = math.Inf(1)

// SceneList holds several scenes and a rotating index into them, for
// switching between preset scenes at runtime.
type SceneList struct {
	scenes  []*Scene
	current int
}

// NewSceneList wraps a slice of scenes, starting at index 0.
func NewSceneList(scenes []*Scene) *SceneList {
	return &SceneList{scenes: scenes}
}

// Current returns the currently selected scene.
func (l *SceneList) Current() *Scene {
	return l.scenes[l.current]
}

// CurrentIndex returns the index of the currently selected scene.
func (l *SceneList) CurrentIndex() int {
	return l.current
}

// Len returns the number of scenes held.
func (l *SceneList) Len() int {
	return len(l.scenes)
}

// Next advances to the next scene, wrapping to the first past the end.
func (l *SceneList) Next() {
	l.current++
	l.clamp()
}

// Prev moves to the previous scene, wrapping to the last before the start.
func (l *SceneList) Prev() {
	l.current--
	l.clamp()
}

func (l *SceneList) clamp() {
	n := len(l.scenes)
	if l.current < 0 {
		l.current = n - 1
	} else if l.current >= n {
		l.current = 0
	}
}

// Resize resizes every scene in the list.
func (l *SceneList) Resize(width, height int) {
	for _, s := range l.scenes {
		s.Resize(width, height)
	}
}

// ResetCameras resets every scene's camera to its default pose.
func (l *SceneList) ResetCameras() {
	for _, s := range l.scenes {
		s.Camera.Reset()
	}
}
