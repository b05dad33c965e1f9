package renderer

import (
	"github.com/df07/diorama-raytracer/pkg/core"
	"github.com/df07/diorama-raytracer/pkg/geometry"
	"github.com/df07/diorama-raytracer/pkg/lights"
	"github.com/df07/diorama-raytracer/pkg/scene"
)

// InspectResult describes what the primary ray through one pixel hits
type InspectResult struct {
	Hit          geometry.Intersection
	Shape        geometry.Shape // Nil on a miss
	ShapeIndex   int            // Position in the scene's scan order, -1 on a miss
	Direction    core.Vec3
	ShadowFactor float64 // Fraction of the light blocked at the hit point
}

// Inspect casts the primary ray through pixel (x, y) and reports the nearest shape it hits
func Inspect(s *scene.Scene, camera *geometry.Camera, light lights.PointLight, x, y, width, height int) InspectResult {
	direction := PrimaryDirection(x, y, width, height, camera)
	ray := core.NewRay(camera.Eye, direction)

	result := InspectResult{
		Hit:        geometry.EmptyIntersection(),
		ShapeIndex: -1,
		Direction:  direction,
	}
	for i, shape := range s.Shapes {
		hit := shape.Intersect(ray)
		if hit.Hit && (!result.Hit.Hit || hit.Distance < result.Hit.Distance) {
			result.Hit = hit
			result.Shape = shape
			result.ShapeIndex = i
		}
	}

	if result.Hit.Hit {
		rt := NewRaytracer(s.Shapes, light, s.Cycle.Sky(true))
		result.ShadowFactor = rt.castShadow(result.Hit)
	}
	return result
}
