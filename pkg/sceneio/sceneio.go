// Package sceneio serializes and parses a Scene as YAML, using a "tag"
// discriminator field on objects, materials, and textures to round-trip the
// tagged-variant types in pkg/geometry and pkg/material.
package sceneio

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-raytracer-core/pkg/color"
	"github.com/df07/go-raytracer-core/pkg/core"
	"github.com/df07/go-raytracer-core/pkg/geometry"
	"github.com/df07/go-raytracer-core/pkg/material"
	"github.com/df07/go-raytracer-core/pkg/scene"
)

// ImageLookup resolves an Image texture's ImageID to its pixel data, since
// a raster isn't itself persisted in the textual scene format.
type ImageLookup func(imageID string) (*material.Raster, error)

type vec2doc struct {
	X, Y float64
}

type vec3doc struct {
	X, Y, Z float64
}

type textureDoc struct {
	Tag     string  `yaml:"tag"`
	Color   *hexDoc `yaml:"color,omitempty"`
	Odd     *hexDoc `yaml:"odd,omitempty"`
	Even    *hexDoc `yaml:"even,omitempty"`
	Scale   float64 `yaml:"scale,omitempty"`
	Seed    int64   `yaml:"seed,omitempty"`
	ImageID string  `yaml:"imageId,omitempty"`
}

type hexDoc string

type materialDoc struct {
	Tag             string      `yaml:"tag"`
	Texture         *textureDoc `yaml:"texture,omitempty"`
	Fuzz            float64     `yaml:"fuzz,omitempty"`
	RefractiveIndex float64     `yaml:"refractiveIndex,omitempty"`
}

type objectDoc struct {
	Tag      string      `yaml:"tag"`
	Pos      *vec3doc    `yaml:"pos,omitempty"`
	Size     *vec3doc    `yaml:"size,omitempty"`
	Radius   float64     `yaml:"radius,omitempty"`
	Pos2     *vec2doc    `yaml:"pos2,omitempty"`
	Corner2  *vec2doc    `yaml:"corner2,omitempty"`
	K        float64     `yaml:"k,omitempty"`
	Material materialDoc `yaml:"material"`
}

type sceneDoc struct {
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	VFov       float64     `yaml:"vfov"`
	CameraPos  vec3doc     `yaml:"cameraPos"`
	CameraRot  vec3doc     `yaml:"cameraRotation"`
	Background *hexDoc     `yaml:"background,omitempty"`
	Objects    []objectDoc `yaml:"objects"`
}

func toVec3doc(v core.Vec3) vec3doc   { return vec3doc{v.X, v.Y, v.Z} }
func fromVec3doc(d vec3doc) core.Vec3 { return core.NewVec3(d.X, d.Y, d.Z) }
func toVec2doc(v core.Vec2) vec2doc   { return vec2doc{v.X, v.Y} }
func fromVec2doc(d vec2doc) core.Vec2 { return core.NewVec2(d.X, d.Y) }

func toHex(c color.Color) hexDoc { return hexDoc(c.Hex()) }
func fromHex(h hexDoc) (color.Color, error) {
	return color.FromHex(string(h))
}

// Marshal renders a scene as YAML.
func Marshal(s *scene.Scene) ([]byte, error) {
	doc := sceneDoc{
		Width:     s.Width,
		Height:    s.Height,
		VFov:      s.Camera.VFov,
		CameraPos: toVec3doc(s.Camera.Pos),
		CameraRot: toVec3doc(s.Camera.Rotation),
	}
	if s.Background != nil {
		h := toHex(*s.Background)
		doc.Background = &h
	}
	for _, obj := range s.Objects.Objects {
		od, err := marshalObject(obj)
		if err != nil {
			return nil, err
		}
		doc.Objects = append(doc.Objects, od)
	}
	return yaml.Marshal(doc)
}

// Unmarshal parses YAML into a Scene. lookup resolves any Image texture's
// ImageID back into pixel data; pass nil if no scene in data uses Image.
func Unmarshal(data []byte, lookup ImageLookup) (*scene.Scene, error) {
	var doc sceneDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("sceneio: parse failed: %w", err)
	}

	objects := make([]geometry.Object3D, 0, len(doc.Objects))
	for _, od := range doc.Objects {
		obj, err := unmarshalObject(od, lookup)
		if err != nil {
			return nil, fmt.Errorf("sceneio: parse failed: %w", err)
		}
		objects = append(objects, obj)
	}

	var background *color.Color
	if doc.Background != nil {
		c, err := fromHex(*doc.Background)
		if err != nil {
			return nil, fmt.Errorf("sceneio: parse failed: %w", err)
		}
		background = &c
	}

	s := scene.NewScene(doc.Width, doc.Height, doc.VFov, background, geometry.NewObjectList(objects))
	s.Camera.SetPose(fromVec3doc(doc.CameraPos), fromVec3doc(doc.CameraRot))
	return s, nil
}

func marshalObject(obj geometry.Object3D) (objectDoc, error) {
	md, err := marshalMaterial(materialOf(obj))
	if err != nil {
		return objectDoc{}, err
	}
	switch o := obj.(type) {
	case *geometry.Sphere:
		p := toVec3doc(o.Pos)
		return objectDoc{Tag: o.Tag(), Pos: &p, Radius: o.Radius, Material: md}, nil
	case *geometry.Brick:
		p := toVec3doc(o.Pos)
		size := toVec3doc(o.Corner.Subtract(o.Pos))
		return objectDoc{Tag: o.Tag(), Pos: &p, Size: &size, Material: md}, nil
	case *geometry.XYRect:
		p, c := toVec2doc(o.Pos), toVec2doc(o.Corner)
		return objectDoc{Tag: o.Tag(), Pos2: &p, Corner2: &c, K: o.K, Material: md}, nil
	case *geometry.XZRect:
		p, c := toVec2doc(o.Pos), toVec2doc(o.Corner)
		return objectDoc{Tag: o.Tag(), Pos2: &p, Corner2: &c, K: o.K, Material: md}, nil
	case *geometry.YZRect:
		p, c := toVec2doc(o.Pos), toVec2doc(o.Corner)
		return objectDoc{Tag: o.Tag(), Pos2: &p, Corner2: &c, K: o.K, Material: md}, nil
	default:
		return objectDoc{}, fmt.Errorf("sceneio: unknown object tag %q", obj.Tag())
	}
}

func unmarshalObject(od objectDoc, lookup ImageLookup) (geometry.Object3D, error) {
	mat, err := unmarshalMaterial(od.Material, lookup)
	if err != nil {
		return nil, err
	}
	switch od.Tag {
	case "Sphere":
		if od.Pos == nil {
			return nil, fmt.Errorf("Sphere missing pos")
		}
		return geometry.NewSphere(fromVec3doc(*od.Pos), od.Radius, mat), nil
	case "Brick":
		if od.Pos == nil || od.Size == nil {
			return nil, fmt.Errorf("Brick missing pos/size")
		}
		return geometry.NewBrick(fromVec3doc(*od.Pos), fromVec3doc(*od.Size), mat), nil
	case "XYRect":
		if od.Pos2 == nil || od.Corner2 == nil {
			return nil, fmt.Errorf("XYRect missing pos2/corner2")
		}
		return geometry.NewXYRect(fromVec2doc(*od.Pos2), fromVec2doc(*od.Corner2), od.K, mat), nil
	case "XZRect":
		if od.Pos2 == nil || od.Corner2 == nil {
			return nil, fmt.Errorf("XZRect missing pos2/corner2")
		}
		return geometry.NewXZRect(fromVec2doc(*od.Pos2), fromVec2doc(*od.Corner2), od.K, mat), nil
	case "YZRect":
		if od.Pos2 == nil || od.Corner2 == nil {
			return nil, fmt.Errorf("YZRect missing pos2/corner2")
		}
		return geometry.NewYZRect(fromVec2doc(*od.Pos2), fromVec2doc(*od.Corner2), od.K, mat), nil
	default:
		return nil, fmt.Errorf("unknown object tag %q", od.Tag)
	}
}

func materialOf(obj geometry.Object3D) material.Material {
	switch o := obj.(type) {
	case *geometry.Sphere:
		return o.Material
	case *geometry.Brick:
		return o.Material
	case *geometry.XYRect:
		return o.Material
	case *geometry.XZRect:
		return o.Material
	case *geometry.YZRect:
		return o.Material
	default:
		return nil
	}
}

func marshalMaterial(mat material.Material) (materialDoc, error) {
	switch m := mat.(type) {
	case *material.Lambertian:
		td, err := marshalTexture(m.Texture)
		return materialDoc{Tag: "Lambertian", Texture: &td}, err
	case *material.Metal:
		td, err := marshalTexture(m.Texture)
		return materialDoc{Tag: "Metal", Texture: &td, Fuzz: m.Fuzz}, err
	case *material.Dielectric:
		return materialDoc{Tag: "Dielectric", RefractiveIndex: m.RefractiveIndex}, nil
	case *material.DiffuseLight:
		td, err := marshalTexture(m.Texture)
		return materialDoc{Tag: "DiffuseLight", Texture: &td}, err
	default:
		return materialDoc{}, fmt.Errorf("sceneio: unknown material")
	}
}

func unmarshalMaterial(md materialDoc, lookup ImageLookup) (material.Material, error) {
	switch md.Tag {
	case "Lambertian":
		tex, err := unmarshalTexture(md.Texture, lookup)
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(tex), nil
	case "Metal":
		tex, err := unmarshalTexture(md.Texture, lookup)
		if err != nil {
			return nil, err
		}
		return material.NewMetal(tex, md.Fuzz), nil
	case "Dielectric":
		return material.NewDielectric(md.RefractiveIndex), nil
	case "DiffuseLight":
		tex, err := unmarshalTexture(md.Texture, lookup)
		if err != nil {
			return nil, err
		}
		return material.NewDiffuseLight(tex), nil
	default:
		return nil, fmt.Errorf("unknown material tag %q", md.Tag)
	}
}

func marshalTexture(tex material.Texture) (textureDoc, error) {
	switch t := tex.(type) {
	case *material.Solid:
		h := toHex(t.Color)
		return textureDoc{Tag: t.Tag(), Color: &h}, nil
	case *material.Checker:
		odd, even := toHex(t.Odd), toHex(t.Even)
		return textureDoc{Tag: t.Tag(), Odd: &odd, Even: &even, Scale: t.Scale}, nil
	case *material.Perlin:
		h := toHex(t.Color)
		return textureDoc{Tag: t.Tag(), Color: &h, Scale: t.Scale, Seed: t.Seed}, nil
	case *material.Image:
		return textureDoc{Tag: t.Tag(), ImageID: t.ImageID}, nil
	default:
		return textureDoc{}, fmt.Errorf("sceneio: unknown texture")
	}
}

func unmarshalTexture(td *textureDoc, lookup ImageLookup) (material.Texture, error) {
	if td == nil {
		return nil, fmt.Errorf("missing texture")
	}
	switch td.Tag {
	case "SolidColor":
		c, err := fromHex(*td.Color)
		if err != nil {
			return nil, err
		}
		return material.NewSolid(c), nil
	case "Checkered":
		odd, err := fromHex(*td.Odd)
		if err != nil {
			return nil, err
		}
		even, err := fromHex(*td.Even)
		if err != nil {
			return nil, err
		}
		return material.NewChecker(odd, even, td.Scale), nil
	case "Perlin":
		c, err := fromHex(*td.Color)
		if err != nil {
			return nil, err
		}
		return material.NewPerlin(c, td.Scale, td.Seed), nil
	case "Image":
		if lookup == nil {
			return nil, fmt.Errorf("Image texture requires an ImageLookup")
		}
		raster, err := lookup(td.ImageID)
		if err != nil {
			return nil, fmt.Errorf("image lookup %q: %w", td.ImageID, err)
		}
		return material.NewImage(raster, td.ImageID), nil
	default:
		return nil, fmt.Errorf("unknown texture tag %q", td.Tag)
	}
}
