package scene

import (
	"github.com/df07/diorama-raytracer/pkg/core"
	"github.com/df07/diorama-raytracer/pkg/geometry"
	"github.com/df07/diorama-raytracer/pkg/lights"
	"github.com/df07/diorama-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// Shapes are scanned in order for every ray, so their order is part of the scene.
type Scene struct {
	Name   string
	Shapes []geometry.Shape      // Objects in the scene, in scan order
	Camera geometry.CameraConfig // Initial camera placement
	Light  lights.PointLight     // Initial light before any day/night toggle
	Cycle  lights.DayNightCycle  // Day and night presets for the toggle
}

// NewScene creates an empty scene with the default light and day/night cycle
func NewScene(name string, camera geometry.CameraConfig) *Scene {
	return &Scene{
		Name:   name,
		Shapes: make([]geometry.Shape, 0),
		Camera: camera,
		Light:  lights.DefaultLight(),
		Cycle:  lights.DefaultDayNightCycle(),
	}
}

// AddCube appends an axis-aligned cube to the scene
func (s *Scene) AddCube(center core.Vec3, size float64, mat *material.Material) *geometry.Cube {
	cube := geometry.NewCube(center, size, mat)
	s.Shapes = append(s.Shapes, cube)
	return cube
}

// AddGroundPlane appends a bounded ground plane to the scene
func (s *Scene) AddGroundPlane(center core.Vec3, size float64, mat *material.Material) *geometry.GroundPlane {
	ground := geometry.NewGroundPlane(center, size, mat)
	s.Shapes = append(s.Shapes, ground)
	return ground
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
