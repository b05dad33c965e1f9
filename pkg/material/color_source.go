package material

import (
	"github.com/df07/diorama-raytracer/pkg/core"
)

// Texture maps normalized UV coordinates to a color.
// Implementations must be safe for concurrent reads.
type Texture interface {
	// Sample returns the color at (u, v), both expected in [0, 1]
	Sample(u, v float64) core.Color
}

// SolidColor is a texture with the same color everywhere
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Sample returns the solid color regardless of UV
func (s *SolidColor) Sample(u, v float64) core.Color {
	return s.Color
}
