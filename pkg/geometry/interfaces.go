package geometry

import (
	"github.com/df07/diorama-raytracer/pkg/core"
)

// Shape interface for objects that can be hit by rays.
// Intersect must not mutate the shape; shapes are read concurrently during a render pass.
type Shape interface {
	Intersect(ray core.Ray) Intersection
}
