package material

import (
	"github.com/df07/diorama-raytracer/pkg/core"
)

// Albedo channel indices
const (
	AlbedoDiffuse = iota
	AlbedoSpecular
	AlbedoReflectivity
	AlbedoTransparency
)

// Material describes how a surface responds to light.
// A Material is immutable once built and is shared by pointer between every
// shape that uses it.
type Material struct {
	Diffuse         core.Color // Base color, used when Texture is nil
	Specular        float64    // Phong exponent
	Albedo          [4]float64 // Diffuse, specular, reflectivity and transparency weights
	RefractiveIndex float64
	Texture         Texture // Optional
	Emissive        core.Color
}

// NewMaterial creates a new material
func NewMaterial(diffuse core.Color, specular float64, albedo [4]float64, refractiveIndex float64, texture Texture, emissive core.Color) *Material {
	return &Material{
		Diffuse:         diffuse,
		Specular:        specular,
		Albedo:          albedo,
		RefractiveIndex: refractiveIndex,
		Texture:         texture,
		Emissive:        emissive,
	}
}

// NewBlackMaterial returns a material that contributes nothing
func NewBlackMaterial() *Material {
	return &Material{}
}

// SurfaceColor samples the texture at (u, v) or falls back to the diffuse color
func (m *Material) SurfaceColor(u, v float64) core.Color {
	if m.Texture == nil {
		return m.Diffuse
	}
	return m.Texture.Sample(u, v)
}

// Reflectivity returns the mirror reflection weight
func (m *Material) Reflectivity() float64 {
	return m.Albedo[AlbedoReflectivity]
}

// Transparency returns the refraction weight
func (m *Material) Transparency() float64 {
	return m.Albedo[AlbedoTransparency]
}
