package renderer

import (
	"math"

	"github.com/df07/diorama-raytracer/pkg/core"
	"github.com/df07/diorama-raytracer/pkg/geometry"
	"github.com/df07/diorama-raytracer/pkg/lights"
	"github.com/df07/diorama-raytracer/pkg/material"
)

const (
	// MaxDepth is the deepest recursion level that still shades; deeper rays return the sky
	MaxDepth = 3
	// OriginBias pushes secondary ray origins off the surface they start from
	OriginBias = 1e-4
	// UVScale divides world hit points before they are mapped into [0, 1]
	UVScale = 0.5
)

// Raytracer shades rays against a fixed set of shapes and one point light.
// It holds no mutable state, so one instance can serve any number of goroutines
// for the duration of a render pass.
type Raytracer struct {
	shapes []geometry.Shape
	light  lights.PointLight
	sky    core.Color
}

// NewRaytracer creates a raytracer for one render pass
func NewRaytracer(shapes []geometry.Shape, light lights.PointLight, sky core.Color) *Raytracer {
	return &Raytracer{
		shapes: shapes,
		light:  light,
		sky:    sky,
	}
}

// CastRay returns the color seen along direction from origin.
// Depth counts bounces from the primary ray, which starts at 0.
func (rt *Raytracer) CastRay(origin, direction core.Vec3, depth int) core.Color {
	if depth > MaxDepth {
		return rt.sky
	}

	hit := rt.hitWorld(core.NewRay(origin, direction))
	if !hit.Hit {
		return rt.sky
	}

	mat := hit.Material
	lightDir, _ := rt.light.DirectionFrom(hit.Point)
	viewDir := origin.Subtract(hit.Point).Normalize()
	reflectDir := reflect(lightDir.Negate(), hit.Normal).Normalize()

	shadowIntensity := rt.castShadow(hit)
	lightIntensity := rt.light.Intensity * (1 - shadowIntensity)

	u, v := calculateUV(hit.Normal, hit.Point)
	surfaceColor := mat.SurfaceColor(u, v)

	// Factors are multiplied as floats and truncated to 8 bits once per term, not once per factor.
	diffuseIntensity := math.Max(0, math.Min(1, hit.Normal.Dot(lightDir)))
	diffuse := surfaceColor.Multiply(mat.Albedo[material.AlbedoDiffuse] * diffuseIntensity * lightIntensity)

	specularIntensity := math.Pow(math.Max(0, viewDir.Dot(reflectDir)), mat.Specular)
	specular := rt.light.Color.Multiply(mat.Albedo[material.AlbedoSpecular] * specularIntensity * lightIntensity)

	reflectColor := core.Black()
	reflectivity := mat.Reflectivity()
	if reflectivity > 0 {
		dir := reflect(direction, hit.Normal).Normalize()
		reflectColor = rt.CastRay(offsetOrigin(hit, dir), dir, depth+1)
	}

	refractColor := core.Black()
	transparency := mat.Transparency()
	if transparency > 0 {
		dir := refract(direction, hit.Normal, mat.RefractiveIndex)
		refractColor = rt.CastRay(offsetOrigin(hit, dir), dir, depth+1)
	}

	return diffuse.Add(specular).Multiply(1 - reflectivity - transparency).
		Add(reflectColor.Multiply(reflectivity)).
		Add(refractColor.Multiply(transparency)).
		Add(mat.Emissive)
}

// hitWorld returns the nearest hit over all shapes, or a miss
func (rt *Raytracer) hitWorld(ray core.Ray) geometry.Intersection {
	closest := geometry.EmptyIntersection()
	zBuffer := math.Inf(1)

	for _, shape := range rt.shapes {
		hit := shape.Intersect(ray)
		if hit.Hit && hit.Distance < zBuffer {
			zBuffer = hit.Distance
			closest = hit
		}
	}

	return closest
}

// castShadow returns how much of the light is blocked at the hit point, in [0, 1].
// The first shape in scan order that blocks the light decides the result,
// even when a nearer blocker comes later.
func (rt *Raytracer) castShadow(hit geometry.Intersection) float64 {
	lightDir, lightDistance := rt.light.DirectionFrom(hit.Point)
	shadowRay := core.NewRay(offsetOrigin(hit, lightDir), lightDir)

	for _, shape := range rt.shapes {
		blocker := shape.Intersect(shadowRay)
		if blocker.Hit && blocker.Distance < lightDistance {
			ratio := blocker.Distance / lightDistance
			return 1 - math.Min(1, ratio*ratio)
		}
	}

	return 0
}

// reflect mirrors incident about normal
func reflect(incident, normal core.Vec3) core.Vec3 {
	return incident.Subtract(normal.Multiply(2 * incident.Dot(normal)))
}

// refract bends incident through a surface with index etaT using Snell's law.
// When the incident ray leaves through the back of the surface the normal is
// flipped and the ratio inverted. Total internal reflection falls back to reflect.
func refract(incident, normal core.Vec3, etaT float64) core.Vec3 {
	cosi := -math.Max(-1, math.Min(1, incident.Dot(normal)))

	n := normal
	eta := etaT
	if cosi < 0 {
		cosi = -cosi
		eta = 1 / etaT
		n = normal.Negate()
	}

	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return reflect(incident, n)
	}

	return incident.Multiply(eta).Add(n.Multiply(eta*cosi - math.Sqrt(k)))
}

// offsetOrigin nudges the hit point to the side of the surface the outgoing ray travels into
func offsetOrigin(hit geometry.Intersection, direction core.Vec3) core.Vec3 {
	offset := hit.Normal.Multiply(OriginBias)
	if direction.Dot(hit.Normal) < 0 {
		return hit.Point.Subtract(offset)
	}
	return hit.Point.Add(offset)
}

// calculateUV projects the world-space hit point onto the plane of its dominant
// normal axis. Y wins only when strictly largest, then X; everything else maps through Z.
// Points farther than UVScale from the world axes clamp to the texture edge.
func calculateUV(normal, point core.Vec3) (float64, float64) {
	p := point.Divide(UVScale)

	n := normal.Abs()
	var u, v float64
	switch {
	case n.Y > n.X && n.Y > n.Z:
		u, v = p.X, p.Z
	case n.X > n.Y && n.X > n.Z:
		u, v = p.Z, p.Y
	default:
		u, v = p.X, p.Y
	}

	return clamp01(u*0.5 + 0.5), clamp01(v*0.5 + 0.5)
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
