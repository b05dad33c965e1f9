package geometry

import (
	"math"

	"github.com/df07/diorama-raytracer/pkg/core"
	"github.com/df07/diorama-raytracer/pkg/material"
)

// FaceEpsilon is how close a hit point must be to a face plane to take its normal
const FaceEpsilon = 1e-4

// Cube is an axis-aligned box with equal edges
type Cube struct {
	Center   core.Vec3          // Center point of the cube
	Size     float64            // Edge length
	Material *material.Material // Shared material
	bounds   core.AABB
}

// NewCube creates a new axis-aligned cube
func NewCube(center core.Vec3, size float64, mat *material.Material) *Cube {
	return &Cube{
		Center:   center,
		Size:     size,
		Material: mat,
		bounds:   core.NewAABBFromCenter(center, size),
	}
}

// Bounds returns the cube's min/max corners
func (c *Cube) Bounds() core.AABB {
	return c.bounds
}

// Intersect tests the ray against the cube with the slab method.
// Only hits entering the cube at t >= 0 count; a ray starting inside
// or entirely in front of the cube misses.
func (c *Cube) Intersect(ray core.Ray) Intersection {
	tMin, _, ok := c.bounds.Slab(ray)
	if !ok || tMin < 0 {
		return EmptyIntersection()
	}

	point := ray.At(tMin)
	return NewIntersection(point, c.faceNormal(point), tMin, c.Material)
}

// faceNormal returns the outward normal of the first face, in the order
// -X, +X, -Y, +Y, -Z, +Z, whose plane lies within FaceEpsilon of the point.
// Edges and corners resolve to the earliest face in that order.
func (c *Cube) faceNormal(point core.Vec3) core.Vec3 {
	min, max := c.bounds.Min, c.bounds.Max

	switch {
	case math.Abs(point.X-min.X) < FaceEpsilon:
		return core.NewVec3(-1, 0, 0)
	case math.Abs(point.X-max.X) < FaceEpsilon:
		return core.NewVec3(1, 0, 0)
	case math.Abs(point.Y-min.Y) < FaceEpsilon:
		return core.NewVec3(0, -1, 0)
	case math.Abs(point.Y-max.Y) < FaceEpsilon:
		return core.NewVec3(0, 1, 0)
	case math.Abs(point.Z-min.Z) < FaceEpsilon:
		return core.NewVec3(0, 0, -1)
	case math.Abs(point.Z-max.Z) < FaceEpsilon:
		return core.NewVec3(0, 0, 1)
	}

	return core.Vec3{}
}
