package core

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromCenter creates a cube-shaped AABB with the given edge length
func NewAABBFromCenter(center Vec3, size float64) AABB {
	half := size / 2
	extent := NewVec3(half, half, half)
	return AABB{Min: center.Subtract(extent), Max: center.Add(extent)}
}

// Slab intersects the ray with the box one axis at a time and returns the
// entry and exit parameters. The running interval starts from the X slab and is
// narrowed by Y then Z; the test fails as soon as an axis interval does not
// overlap it. Zero direction components divide to ±Inf, which the comparisons
// absorb without special casing. The direction does not need to be normalized.
func (aabb AABB) Slab(ray Ray) (tNear, tFar float64, ok bool) {
	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		t1 := (aabb.Min.Axis(axis) - origin) / direction
		t2 := (aabb.Max.Axis(axis) - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if axis == 0 {
			tNear, tFar = t1, t2
			continue
		}

		if tNear > t2 || t1 > tFar {
			return 0, 0, false
		}
		if t1 > tNear {
			tNear = t1
		}
		if t2 < tFar {
			tFar = t2
		}
	}

	return tNear, tFar, true
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// ContainsXZ reports whether the point's X and Z lie inside the box footprint (bounds inclusive)
func (aabb AABB) ContainsXZ(point Vec3) bool {
	return point.X >= aabb.Min.X && point.X <= aabb.Max.X &&
		point.Z >= aabb.Min.Z && point.Z <= aabb.Max.Z
}
