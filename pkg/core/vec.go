// Package core holds the value types shared by every other package in the
// engine: vectors, rays, throughput-carrying light rays, intersections, and
// the per-pixel samples the image accumulator consumes.
package core

import (
	"fmt"
	"math"
)

// Vec is a 3-component float vector used for points, directions and colors.
type Vec struct {
	X, Y, Z float64
}

// NewVec constructs a Vec from its three components.
func NewVec(x, y, z float64) Vec { return Vec{X: x, Y: y, Z: z} }

func (v Vec) String() string {
	return fmt.Sprintf("{%.4g, %.4g, %.4g}", v.X, v.Y, v.Z)
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference of two vectors.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Multiply returns the vector scaled by a scalar.
func (v Vec) Multiply(s float64) Vec { return Vec{v.X * s, v.Y * s, v.Z * s} }

// MultiplyVec returns the component-wise (Hadamard) product of two vectors.
func (v Vec) MultiplyVec(o Vec) Vec { return Vec{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Divide returns the vector divided by a scalar.
func (v Vec) Divide(s float64) Vec { return Vec{v.X / s, v.Y / s, v.Z / s} }

// Dot returns the dot product of two vectors.
func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors.
func (v Vec) Cross(o Vec) Vec {
	return Vec{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean magnitude of the vector.
func (v Vec) Length() float64 { return math.Sqrt(v.Dot(v)) }

// LengthSquared avoids a sqrt when only relative distances matter.
func (v Vec) LengthSquared() float64 { return v.Dot(v) }

// Normalize returns a unit vector in the same direction, or the zero vector
// if v has zero length.
func (v Vec) Normalize() Vec {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Divide(l)
}

// Negate returns the additive inverse of the vector.
func (v Vec) Negate() Vec { return Vec{-v.X, -v.Y, -v.Z} }

// Clamp clamps every component to [lo, hi].
func (v Vec) Clamp(lo, hi float64) Vec {
	return Vec{
		X: clampFloat(v.X, lo, hi),
		Y: clampFloat(v.Y, lo, hi),
		Z: clampFloat(v.Z, lo, hi),
	}
}

func clampFloat(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Luminance returns the Rec. 709 perceptual luminance of the vector treated
// as an RGB color.
func (v Vec) Luminance() float64 {
	return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z
}

// IsBlack reports whether every component is at or below a small epsilon.
func (v Vec) IsBlack() bool {
	const eps = 1e-6
	return v.X <= eps && v.Y <= eps && v.Z <= eps
}

// Vec2 is a 2-component float vector, used for subpixel sample positions.
type Vec2 struct {
	X, Y float64
}

// NewVec2 constructs a Vec2.
func NewVec2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Vec4 is a 4-component float vector, used for the (r, g, b, weight)
// accumulator channels in the image buffer.
type Vec4 struct {
	X, Y, Z, W float64
}

// NewVec4 constructs a Vec4.
func NewVec4(x, y, z, w float64) Vec4 { return Vec4{X: x, Y: y, Z: z, W: w} }

// Add returns the component-wise sum of two Vec4 values.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}
