package core

import "math"

// Ray is an origin point and a unit direction. Direction is normalized at
// construction; any transform that could denormalize it must re-normalize.
type Ray struct {
	Origin    Vec
	Direction Vec
}

// NewRay constructs a Ray, normalizing direction.
func NewRay(origin, direction Vec) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// LightRay is a Ray carrying the accumulated path throughput (the product of
// BSDF-over-PDF ratios along the path so far).
type LightRay struct {
	Ray   Ray
	Color Vec
}

// NewLightRay constructs a LightRay.
func NewLightRay(origin, direction, color Vec) LightRay {
	return LightRay{Ray: NewRay(origin, direction), Color: color}
}

// IsBlack reports whether the throughput is at or below epsilon in every
// channel.
func (lr LightRay) IsBlack() bool { return lr.Color.IsBlack() }

// Luminance returns the Rec. 709 luminance of the throughput.
func (lr LightRay) Luminance() float64 { return lr.Color.Luminance() }

// Intersection describes a ray-geometry hit. The zero value has Distance ==
// 0; use NewIntersection for one that compares as "no hit" against any real
// hit.
type Intersection struct {
	Distance float64
	Position Vec
	Normal   Vec
}

// NewIntersection returns an Intersection with Distance initialized to +Inf.
func NewIntersection() Intersection {
	return Intersection{Distance: math.Inf(1)}
}

// Sample is one path-tracing sample: a subpixel position and the estimated
// radiance arriving from it.
type Sample struct {
	Position Vec2
	Color    Vec
}
