package geometry

import (
	"github.com/df07/diorama-raytracer/pkg/core"
	"github.com/df07/diorama-raytracer/pkg/material"
)

// Intersection is the result of testing one ray against one shape.
// Callers must check Hit before reading Distance: misses carry a
// shape-specific sentinel distance.
type Intersection struct {
	Point    core.Vec3          // Point of intersection
	Normal   core.Vec3          // Outward unit normal at the point
	Distance float64            // Parameter t along the ray, >= 0 when Hit
	Hit      bool               // Whether the ray hit the shape
	Material *material.Material // Material of the hit shape
}

// NewIntersection creates a hit record
func NewIntersection(point, normal core.Vec3, distance float64, mat *material.Material) Intersection {
	return Intersection{
		Point:    point,
		Normal:   normal,
		Distance: distance,
		Hit:      true,
		Material: mat,
	}
}

// EmptyIntersection returns the generic miss record
func EmptyIntersection() Intersection {
	return Intersection{
		Distance: 0,
		Hit:      false,
		Material: material.NewBlackMaterial(),
	}
}
