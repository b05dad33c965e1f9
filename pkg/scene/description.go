package scene

import (
	"fmt"

	"github.com/df07/diorama-raytracer/pkg/core"
	"github.com/df07/diorama-raytracer/pkg/geometry"
	"github.com/df07/diorama-raytracer/pkg/lights"
	"github.com/df07/diorama-raytracer/pkg/material"
)

// TextureLoader resolves a texture reference from a scene description
type TextureLoader func(path string) (material.Texture, error)

// Description is the serializable form of a scene, as read from YAML scene files
type Description struct {
	Name      string                         `yaml:"name"`
	Camera    CameraDescription              `yaml:"camera"`
	Light     *LightDescription              `yaml:"light,omitempty"`
	Day       *PresetDescription             `yaml:"day,omitempty"`
	Night     *PresetDescription             `yaml:"night,omitempty"`
	Materials map[string]MaterialDescription `yaml:"materials"`
	CubeSize  float64                        `yaml:"cube_size"`
	Cubes     []CubeDescription              `yaml:"cubes"`
	Ground    *GroundDescription             `yaml:"ground,omitempty"`
}

// CameraDescription places the camera
type CameraDescription struct {
	Eye    [3]float64 `yaml:"eye"`
	Center [3]float64 `yaml:"center"`
	Up     [3]float64 `yaml:"up"`
}

// LightDescription overrides the initial point light
type LightDescription struct {
	Position  [3]float64 `yaml:"position"`
	Color     [3]uint8   `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
}

// PresetDescription overrides one side of the day/night cycle
type PresetDescription struct {
	Sky      [3]uint8   `yaml:"sky"`
	Position [3]float64 `yaml:"position"`
	Color    [3]uint8   `yaml:"color"`
}

// MaterialDescription mirrors material.Material with an optional texture path
type MaterialDescription struct {
	Diffuse         [3]uint8   `yaml:"diffuse"`
	Specular        float64    `yaml:"specular"`
	Albedo          [4]float64 `yaml:"albedo"`
	RefractiveIndex float64    `yaml:"refractive_index"`
	Texture         string     `yaml:"texture,omitempty"`
	Emissive        [3]uint8   `yaml:"emissive"`
}

// CubeDescription places one cube. A zero size falls back to the description's CubeSize.
type CubeDescription struct {
	Center   [3]float64 `yaml:"center"`
	Size     float64    `yaml:"size,omitempty"`
	Material string     `yaml:"material"`
}

// GroundDescription places the bounded ground plane
type GroundDescription struct {
	Center   [3]float64 `yaml:"center"`
	Size     float64    `yaml:"size"`
	Material string     `yaml:"material"`
}

// Build turns a description into a renderable scene. Materials are built once
// and shared by every shape that names them. A nil loader skips textures and
// leaves the base diffuse color; any loader error aborts the build.
func Build(desc *Description, loadTexture TextureLoader) (*Scene, error) {
	if desc == nil {
		return nil, fmt.Errorf("scene description is nil")
	}

	s := NewScene(desc.Name, geometry.CameraConfig{
		Eye:    vec(desc.Camera.Eye),
		Center: vec(desc.Camera.Center),
		Up:     vec(desc.Camera.Up),
	})

	if desc.Light != nil {
		s.Light = lights.NewPointLight(vec(desc.Light.Position), rgb(desc.Light.Color), desc.Light.Intensity)
	}
	if desc.Day != nil {
		s.Cycle.Day = preset(*desc.Day)
	}
	if desc.Night != nil {
		s.Cycle.Night = preset(*desc.Night)
	}

	textures := make(map[string]material.Texture)
	materials := make(map[string]*material.Material, len(desc.Materials))
	for name, md := range desc.Materials {
		var texture material.Texture
		if md.Texture != "" && loadTexture != nil {
			cached, ok := textures[md.Texture]
			if !ok {
				loaded, err := loadTexture(md.Texture)
				if err != nil {
					return nil, fmt.Errorf("failed to load texture for material %q: %w", name, err)
				}
				textures[md.Texture] = loaded
				cached = loaded
			}
			texture = cached
		}
		materials[name] = material.NewMaterial(rgb(md.Diffuse), md.Specular, md.Albedo, md.RefractiveIndex, texture, rgb(md.Emissive))
	}

	lookup := func(name string) (*material.Material, error) {
		mat, ok := materials[name]
		if !ok {
			return nil, fmt.Errorf("unknown material %q", name)
		}
		return mat, nil
	}

	for i, cd := range desc.Cubes {
		mat, err := lookup(cd.Material)
		if err != nil {
			return nil, fmt.Errorf("cube %d: %w", i, err)
		}
		size := cd.Size
		if size == 0 {
			size = desc.CubeSize
		}
		if size <= 0 {
			return nil, fmt.Errorf("cube %d: size must be positive, got %g", i, size)
		}
		s.AddCube(vec(cd.Center), size, mat)
	}

	if desc.Ground != nil {
		mat, err := lookup(desc.Ground.Material)
		if err != nil {
			return nil, fmt.Errorf("ground: %w", err)
		}
		if desc.Ground.Size <= 0 {
			return nil, fmt.Errorf("ground: size must be positive, got %g", desc.Ground.Size)
		}
		s.AddGroundPlane(vec(desc.Ground.Center), desc.Ground.Size, mat)
	}

	return s, nil
}

func vec(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func rgb(c [3]uint8) core.Color {
	return core.NewColor(c[0], c[1], c[2])
}

func preset(p PresetDescription) lights.Preset {
	return lights.Preset{
		Sky:      rgb(p.Sky),
		Position: vec(p.Position),
		Color:    rgb(p.Color),
	}
}
