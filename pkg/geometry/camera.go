package geometry

import (
	"math"

	"github.com/df07/diorama-raytracer/pkg/core"
)

const (
	// MaxPitch keeps the orbit away from the poles where the basis degenerates
	MaxPitch = math.Pi/2 - 0.1
	// MinZoomDistance is the closest the eye may get to the center
	MinZoomDistance = 0.1
)

// CameraConfig contains the parameters for creating a camera
type CameraConfig struct {
	Eye    core.Vec3 // Camera position
	Center core.Vec3 // Point the camera looks at and orbits around
	Up     core.Vec3 // Up direction
}

// Camera holds the eye position and the view basis used to turn camera-space
// directions into world space. It is mutated by Orbit and Zoom between render passes only.
type Camera struct {
	Eye    core.Vec3
	Center core.Vec3
	Up     core.Vec3
}

// NewCamera creates a new camera from configuration
func NewCamera(config CameraConfig) *Camera {
	up := config.Up
	if up.LengthSquared() == 0 {
		up = core.NewVec3(0, 1, 0)
	}
	return &Camera{
		Eye:    config.Eye,
		Center: config.Center,
		Up:     up,
	}
}

// Config returns the camera's current configuration
func (c *Camera) Config() CameraConfig {
	return CameraConfig{Eye: c.Eye, Center: c.Center, Up: c.Up}
}

// Basis returns the orthonormal forward, right and up vectors
func (c *Camera) Basis() (forward, right, up core.Vec3) {
	forward = c.Center.Subtract(c.Eye).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// BaseChange converts a camera-space direction (looking down -Z) into a world-space unit direction
func (c *Camera) BaseChange(v core.Vec3) core.Vec3 {
	forward, right, up := c.Basis()

	return right.Multiply(v.X).
		Add(up.Multiply(v.Y)).
		Subtract(forward.Multiply(v.Z)).
		Normalize()
}

// Orbit rotates the eye around the center. Yaw wraps around the full circle,
// pitch is clamped to ±MaxPitch and the distance to the center is preserved.
func (c *Camera) Orbit(yawDelta, pitchDelta float64) {
	radiusVector := c.Eye.Subtract(c.Center)
	radius := radiusVector.Length()
	if radius == 0 {
		return
	}

	yaw := math.Atan2(radiusVector.Z, radiusVector.X)
	pitch := math.Asin(math.Max(-1, math.Min(1, radiusVector.Y/radius)))

	yaw = math.Mod(yaw+yawDelta, 2*math.Pi)
	pitch = math.Max(-MaxPitch, math.Min(MaxPitch, pitch+pitchDelta))

	c.Eye = c.Center.Add(core.NewVec3(
		radius*math.Cos(yaw)*math.Cos(pitch),
		radius*math.Sin(pitch),
		radius*math.Sin(yaw)*math.Cos(pitch),
	))
}

// Zoom moves the eye along the view direction; positive delta moves closer.
// The eye stops MinZoomDistance short of the center.
func (c *Camera) Zoom(delta float64) {
	offset := c.Center.Subtract(c.Eye)
	distance := offset.Length()
	if distance == 0 {
		return
	}

	newDistance := math.Max(MinZoomDistance, distance-delta)
	c.Eye = c.Center.Subtract(offset.Divide(distance).Multiply(newDistance))
}
