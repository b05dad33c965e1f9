package geometry

import (
	"math"

	"github.com/df07/diorama-raytracer/pkg/core"
	"github.com/df07/diorama-raytracer/pkg/material"
)

// ParallelEpsilon is the |normal·direction| below which a ray counts as parallel to the plane
const ParallelEpsilon = 1e-6

// GroundPlane is a finite horizontal square at Center.Y extending Size/2 along X and Z
type GroundPlane struct {
	Center   core.Vec3          // Center of the square
	Size     float64            // Edge length along X and Z
	Material *material.Material // Shared material
	bounds   core.AABB
}

// NewGroundPlane creates a new bounded ground plane
func NewGroundPlane(center core.Vec3, size float64, mat *material.Material) *GroundPlane {
	return &GroundPlane{
		Center:   center,
		Size:     size,
		Material: mat,
		bounds:   core.NewAABBFromCenter(center, size),
	}
}

// Intersect tests the ray against the plane y = Center.Y and accepts the hit
// only when it lands inside the square. Misses report an infinite distance.
func (p *GroundPlane) Intersect(ray core.Ray) Intersection {
	normal := core.NewVec3(0, 1, 0)

	denominator := normal.Dot(ray.Direction)
	if math.Abs(denominator) > ParallelEpsilon {
		t := -(normal.Dot(ray.Origin) - p.Center.Y) / denominator
		if t >= 0 {
			point := ray.At(t)
			if p.bounds.ContainsXZ(point) {
				return NewIntersection(point, normal, t, p.Material)
			}
		}
	}

	return Intersection{
		Distance: math.Inf(1),
		Hit:      false,
		Material: p.Material,
	}
}
