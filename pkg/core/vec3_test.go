package core

import (
	"math"
	"testing"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"X cross Y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"Y cross Z", NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"Forward cross up", NewVec3(0, 0, -1), NewVec3(0, 1, 0), NewVec3(1, 0, 0)},
		{"Parallel vectors", NewVec3(2, 0, 0), NewVec3(1, 0, 0), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)
			if result.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if math.Abs(v.X-0.6) > 1e-9 || math.Abs(v.Y-0.8) > 1e-9 {
		t.Errorf("Expected (0.6, 0.8, 0), got %v", v)
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector to normalize to itself, got %v", zero)
	}
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for axis, expected := range []float64{1, 2, 3} {
		if got := v.Axis(axis); got != expected {
			t.Errorf("Axis(%d): expected %f, got %f", axis, expected, got)
		}
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 0, -2))
	point := ray.At(1.5)
	expected := NewVec3(1, 0, -3)
	if point != expected {
		t.Errorf("Expected %v, got %v", expected, point)
	}
}
