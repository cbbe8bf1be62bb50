package scene

import (
	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/material"
)

// SingleSphere builds a scene with one red Lambertian sphere over the sky
// gradient: center=(0,0,-1), radius=0.5, viewed from the origin looking
// down -Z.
func SingleSphere(width, height int) *Scene {
	red := material.NewLambertian(material.NewSolid(color.New(255, 0, 0)))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, red)
	objects := geometry.NewObjectList([]geometry.Object3D{sphere})
	s := NewScene(width, height, 90, nil, objects)
	s.Camera.SetPose(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	return s
}

// DielectricBubble builds a scene with a glass sphere floating over a
// checkerboard ground plane, viewed from overhead.
func DielectricBubble(width, height int) *Scene {
	checker := material.NewChecker(color.New(255, 255, 255), color.New(0, 0, 0), 10)
	ground := material.NewLambertian(checker)
	glass := material.NewDielectric(1.5)

	groundRect := geometry.NewXZRect(core.NewVec2(-10, -10), core.NewVec2(10, 10), -0.5, ground)
	bubble := geometry.NewSphere(core.NewVec3(0, 0.5, -3), 1.0, glass)

	objects := geometry.NewObjectList([]geometry.Object3D{bubble, groundRect})
	s := NewScene(width, height, 60, nil, objects)
	s.Camera.SetPose(core.NewVec3(0, 4, -3), core.NewVec3(0, -1, -0.3))
	return s
}

// CornellLikeBox builds an open-fronted box from single rectangles: a white
// floor, ceiling and back wall, a red side wall at x=0 and a green one at
// x=size, a diffuse-light panel just under the ceiling, and two grey
// interior bricks, in the classic Cornell-box arrangement used to
// demonstrate color bleeding. The walls are not bricks, and there is no
// front wall.
func CornellLikeBox(width, height int) *Scene {
	white := material.NewLambertian(material.NewSolid(color.New(235, 235, 235)))
	red := material.NewLambertian(material.NewSolid(color.New(200, 30, 30)))
	green := material.NewLambertian(material.NewSolid(color.New(30, 200, 30)))
	grey := material.NewLambertian(material.NewSolid(color.New(150, 150, 150)))
	light := material.NewDiffuseLight(material.NewSolid(color.New(255, 255, 255)))

	const size = 5.0
	objects := geometry.NewObjectList([]geometry.Object3D{
		geometry.NewYZRect(core.NewVec2(0, 0), core.NewVec2(size, size), size, green),
		geometry.NewYZRect(core.NewVec2(0, 0), core.NewVec2(size, size), 0, red),
		geometry.NewXZRect(core.NewVec2(0, 0), core.NewVec2(size, size), 0, white),
		geometry.NewXZRect(core.NewVec2(0, 0), core.NewVec2(size, size), size, white),
		geometry.NewXYRect(core.NewVec2(0, 0), core.NewVec2(size, size), size, white),
		geometry.NewXZRect(core.NewVec2(size/2-0.75, size/2-0.75), core.NewVec2(size/2+0.75, size/2+0.75), size-0.01, light),
		geometry.NewBrick(core.NewVec3(1.2, 0, 1.2), core.NewVec3(1.2, 2.5, 1.2), grey),
		geometry.NewBrick(core.NewVec3(2.8, 0, 3.0), core.NewVec3(1.2, 1.2, 1.2), grey),
	})

	s := NewScene(width, height, 60, nil, objects)
	s.Camera.SetPose(core.NewVec3(size/2, size/2, -size*1.3), core.NewVec3(0, 0, 1))
	return s
}

// DiffuseLightOnly builds a scene containing only DiffuseLight primitives,
// used to confirm the preview path reports texture color exactly where a
// primitive is hit and the background everywhere else.
func DiffuseLightOnly(width, height int) *Scene {
	panel := material.NewDiffuseLight(material.NewSolid(color.New(255, 255, 255)))
	rect := geometry.NewXYRect(core.NewVec2(-1, -1), core.NewVec2(1, 1), -2, panel)
	objects := geometry.NewObjectList([]geometry.Object3D{rect})
	s := NewScene(width, height, 90, nil, objects)
	s.Camera.SetPose(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	return s
}

// DefaultScenes returns the preset scenes presented to a user cycling
// through SceneList with next/prev.
func DefaultScenes(width, height int) *SceneList {
	return NewSceneList([]*Scene{
		SingleSphere(width, height),
		DielectricBubble(width, height),
		CornellLikeBox(width, height),
		DiffuseLightOnly(width, height),
	})
}
