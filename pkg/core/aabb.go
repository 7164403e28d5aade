package core

import "math"

// AABB is an axis-aligned bounding box, used by Geom.BoundBox. The baseline
// LinearTime accelerator never queries it for traversal (it scans every
// Geom), but composite/refining Geoms use it to report their extent.
type AABB struct {
	Min Vec
	Max Vec
}

// NewAABB constructs an AABB from two corner points.
func NewAABB(a, b Vec) AABB {
	return AABB{
		Min: Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)},
		Max: Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)},
	}
}

// Union returns the smallest AABB enclosing both aabb and other.
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Center returns the midpoint of the box.
func (aabb AABB) Center() Vec {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}
