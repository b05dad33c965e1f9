package scene

import (
	"errors"
	"strings"
	"testing"

	"github.com/df07/diorama-raytracer/pkg/core"
	"github.com/df07/diorama-raytracer/pkg/geometry"
	"github.com/df07/diorama-raytracer/pkg/material"
)

func TestBuild_DefaultDiorama(t *testing.T) {
	loads := make(map[string]int)
	loader := func(path string) (material.Texture, error) {
		loads[path]++
		return material.NewSolidColor(core.NewColor(1, 2, 3)), nil
	}

	s, err := Build(DefaultDiorama(), loader)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if got := s.GetPrimitiveCount(); got != 65 {
		t.Errorf("Expected 64 cubes and a ground plane, got %d shapes", got)
	}

	first, ok := s.Shapes[0].(*geometry.Cube)
	if !ok {
		t.Fatalf("Expected first shape to be a cube, got %T", s.Shapes[0])
	}
	if first.Center != core.NewVec3(-2.2, 2.4, -5) {
		t.Errorf("Expected first cube at (-2.2,2.4,-5), got %v", first.Center)
	}
	if first.Size != DioramaCubeSize {
		t.Errorf("Expected cube size %f, got %f", DioramaCubeSize, first.Size)
	}
	if first.Material.Emissive != core.NewColor(75, 0, 90) {
		t.Errorf("Expected emissive portal material, got %v", first.Material.Emissive)
	}

	second := s.Shapes[1].(*geometry.Cube)
	if first.Material != second.Material {
		t.Error("Expected portal cubes to share one material")
	}

	ground, ok := s.Shapes[len(s.Shapes)-1].(*geometry.GroundPlane)
	if !ok {
		t.Fatalf("Expected last shape to be the ground plane, got %T", s.Shapes[len(s.Shapes)-1])
	}
	if ground.Size != 10 || ground.Center != core.NewVec3(-2, 0.7, -4) {
		t.Errorf("Unexpected ground placement: center %v size %f", ground.Center, ground.Size)
	}
	if ground.Material.Texture != nil {
		t.Error("Expected untextured grass")
	}

	if len(loads) != 6 {
		t.Errorf("Expected 6 distinct textures, got %d: %v", len(loads), loads)
	}
	for path, count := range loads {
		if count != 1 {
			t.Errorf("Expected %s to load once, loaded %d times", path, count)
		}
	}

	if s.Camera.Eye != core.NewVec3(-1.5, 2, 5) {
		t.Errorf("Expected camera eye (-1.5,2,5), got %v", s.Camera.Eye)
	}
	if s.Light.Position != core.NewVec3(1, 5, 5) {
		t.Errorf("Expected default light position, got %v", s.Light.Position)
	}
}

func TestBuild_WithoutTextures(t *testing.T) {
	s, err := Build(DefaultDiorama(), nil)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	for i, shape := range s.Shapes {
		if cube, ok := shape.(*geometry.Cube); ok && cube.Material.Texture != nil {
			t.Fatalf("Shape %d: expected no texture when loader is nil", i)
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	errMissing := errors.New("missing file")

	tests := []struct {
		name        string
		desc        *Description
		loader      TextureLoader
		expectedErr string
	}{
		{
			name:        "Nil description",
			desc:        nil,
			expectedErr: "nil",
		},
		{
			name: "Texture failure",
			desc: &Description{
				Materials: map[string]MaterialDescription{"stone": {Texture: "stone.png"}},
			},
			loader: func(path string) (material.Texture, error) {
				return nil, errMissing
			},
			expectedErr: "missing file",
		},
		{
			name: "Unknown cube material",
			desc: &Description{
				CubeSize: 1,
				Cubes:    []CubeDescription{{Material: "lava"}},
			},
			expectedErr: `unknown material "lava"`,
		},
		{
			name: "Unknown ground material",
			desc: &Description{
				Ground: &GroundDescription{Size: 1, Material: "sand"},
			},
			expectedErr: `unknown material "sand"`,
		},
		{
			name: "Zero cube size",
			desc: &Description{
				Materials: map[string]MaterialDescription{"stone": {}},
				Cubes:     []CubeDescription{{Material: "stone"}},
			},
			expectedErr: "size must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.desc, tt.loader)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.expectedErr) {
				t.Errorf("Expected error containing %q, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestBuild_TextureErrorWraps(t *testing.T) {
	errMissing := errors.New("missing file")
	desc := &Description{
		Materials: map[string]MaterialDescription{"stone": {Texture: "stone.png"}},
	}

	_, err := Build(desc, func(path string) (material.Texture, error) {
		return nil, errMissing
	})
	if !errors.Is(err, errMissing) {
		t.Errorf("Expected wrapped loader error, got %v", err)
	}
}

func TestBuild_Overrides(t *testing.T) {
	desc := &Description{
		Light: &LightDescription{Position: [3]float64{0, 10, 0}, Color: [3]uint8{255, 0, 0}, Intensity: 2},
		Night: &PresetDescription{Sky: [3]uint8{0, 0, 0}, Position: [3]float64{0, -1, 0}, Color: [3]uint8{9, 9, 9}},
		Materials: map[string]MaterialDescription{
			"glass": {Diffuse: [3]uint8{255, 255, 255}, Albedo: [4]float64{0, 0.5, 0.1, 0.8}, RefractiveIndex: 1.5},
		},
		Cubes: []CubeDescription{{Center: [3]float64{0, 0, -5}, Size: 2, Material: "glass"}},
	}

	s, err := Build(desc, nil)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if s.Light.Intensity != 2 || s.Light.Color != core.NewColor(255, 0, 0) {
		t.Errorf("Expected light override, got %+v", s.Light)
	}
	if s.Cycle.Night.Color != core.NewColor(9, 9, 9) {
		t.Errorf("Expected night override, got %+v", s.Cycle.Night)
	}
	if s.Cycle.Day.Sky != core.NewColor(68, 142, 228) {
		t.Errorf("Expected default day sky, got %v", s.Cycle.Day.Sky)
	}

	cube := s.Shapes[0].(*geometry.Cube)
	if cube.Size != 2 {
		t.Errorf("Expected per-cube size 2, got %f", cube.Size)
	}
	if cube.Material.Transparency() != 0.8 {
		t.Errorf("Expected transparency 0.8, got %f", cube.Material.Transparency())
	}
}
