package core

import (
	"math"
	"testing"
)

func TestAABB_Slab(t *testing.T) {
	box := NewAABBFromCenter(NewVec3(0, 0, -5), 1)

	tests := []struct {
		name      string
		ray       Ray
		shouldHit bool
		tNear     float64
	}{
		{
			name:      "Axis parallel ray through center",
			ray:       NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1)),
			shouldHit: true,
			tNear:     4.5,
		},
		{
			name:      "Unnormalized direction scales t",
			ray:       NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -2)),
			shouldHit: true,
			tNear:     2.25,
		},
		{
			name:      "Misses on X",
			ray:       NewRay(NewVec3(2, 0, 0), NewVec3(0, 0, -1)),
			shouldHit: false,
		},
		{
			name:      "Misses on Y",
			ray:       NewRay(NewVec3(0, 2, 0), NewVec3(0, 0, -1)),
			shouldHit: false,
		},
		{
			name:      "Misses on Z",
			ray:       NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)),
			shouldHit: false,
		},
		{
			name:      "Diagonal ray",
			ray:       NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, -1)),
			shouldHit: true,
			tNear:     4.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tNear, _, ok := box.Slab(tt.ray)
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, ok)
			}
			if ok && math.Abs(tNear-tt.tNear) > 1e-9 {
				t.Errorf("Expected tNear=%f, got %f", tt.tNear, tNear)
			}
		})
	}
}

func TestAABB_SlabBehindOrigin(t *testing.T) {
	box := NewAABBFromCenter(NewVec3(0, 0, -5), 1)
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 1))

	tNear, tFar, ok := box.Slab(ray)
	if !ok {
		t.Fatal("Expected the infinite line to overlap the box")
	}
	if tNear >= 0 || tFar >= 0 {
		t.Errorf("Expected both parameters negative, got [%f, %f]", tNear, tFar)
	}
}

func TestAABB_ContainsXZ(t *testing.T) {
	box := NewAABBFromCenter(NewVec3(-2, 0.7, -4), 10)
	if !box.ContainsXZ(NewVec3(3, 100, 1)) {
		t.Error("Expected corner point to be inside footprint")
	}
	if box.ContainsXZ(NewVec3(3.01, 0.7, 0)) {
		t.Error("Expected point beyond max X to be outside footprint")
	}
}
