package lights

import "github.com/df07/diorama-raytracer/pkg/core"

// PointLight is the single light of a scene
type PointLight struct {
	Position  core.Vec3  // World position
	Color     core.Color // Light color, tints specular highlights
	Intensity float64    // Scalar multiplier for diffuse and specular terms
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, color core.Color, intensity float64) PointLight {
	return PointLight{
		Position:  position,
		Color:     color,
		Intensity: intensity,
	}
}

// DirectionFrom returns the unit direction from point toward the light
// and the distance between them.
func (l PointLight) DirectionFrom(point core.Vec3) (core.Vec3, float64) {
	toLight := l.Position.Subtract(point)
	return toLight.Normalize(), toLight.Length()
}
