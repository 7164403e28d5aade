// Package rng supplies the per-thread pseudo-random source consumed by the
// renderer: uniform floats, and the disk/hemisphere/sphere warps materials
// and lights sample from. The generator itself is a xorshift32, the same
// algorithm used elsewhere in the retrieved corpus for per-thread PRNGs; it
// is not cryptographic and isn't meant to be.
package rng

import (
	"math"

	"github.com/quietarc/tracepath/pkg/core"
)

// Randomness is a xorshift32 generator. It is not safe for concurrent use;
// the renderer gives each row its own instance, reseeded every iteration.
type Randomness struct {
	state uint32
}

// New constructs a Randomness from a seed. A zero seed is remapped to 1
// since xorshift32 is fixed at the all-zero state.
func New(seed uint32) *Randomness {
	if seed == 0 {
		seed = 1
	}
	return &Randomness{state: seed}
}

// NextUnsigned returns the next raw 32-bit output and advances the state.
func (r *Randomness) NextUnsigned() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// NextUnitFloat returns a uniform float in [0, 1).
func (r *Randomness) NextUnitFloat() float64 {
	return float64(r.NextUnsigned()) / 4294967296.0
}

// NextFloat returns a uniform float in [lo, hi).
func (r *Randomness) NextFloat(lo, hi float64) float64 {
	return lo + r.NextUnitFloat()*(hi-lo)
}

// AreaSampleDisk returns a point uniformly distributed on the unit disk,
// using Shirley's concentric-square-to-disk mapping (avoids the distortion
// and wasted samples of simple polar rejection/warping). It takes the bare
// core.Sampler interface so material/light code can call it without
// depending on the concrete Randomness type.
func AreaSampleDisk(r core.Sampler) (x, y float64) {
	u1 := r.NextFloat(-1, 1)
	u2 := r.NextFloat(-1, 1)

	if u1 == 0 && u2 == 0 {
		return 0, 0
	}

	var radius, theta float64
	if math.Abs(u1) > math.Abs(u2) {
		radius = u1
		theta = (math.Pi / 4) * (u2 / u1)
	} else {
		radius = u2
		theta = (math.Pi / 2) - (math.Pi/4)*(u1/u2)
	}

	return radius * math.Cos(theta), radius * math.Sin(theta)
}

// CosineSampleHemisphere returns a direction about +Z weighted by cos(theta),
// the importance-sampling distribution matched to a Lambertian BRDF so its
// cosine term cancels against the sampling PDF.
func CosineSampleHemisphere(r core.Sampler) core.Vec {
	x, y := AreaSampleDisk(r)
	z := math.Sqrt(math.Max(0, 1-x*x-y*y))
	return core.NewVec(x, y, z)
}

// CosineSampleHemispherePDF returns the PDF of a direction returned by
// CosineSampleHemisphere, given cosTheta = dot(direction, normal).
func CosineSampleHemispherePDF(cosTheta float64) float64 {
	return cosTheta / math.Pi
}

// UniformSampleSphere returns a direction uniformly distributed over the
// full sphere, used to sample points on spherical area lights.
func UniformSampleSphere(r core.Sampler) core.Vec {
	z := 1 - 2*r.NextUnitFloat()
	radius := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * r.NextUnitFloat()
	return core.NewVec(radius*math.Cos(phi), radius*math.Sin(phi), z)
}

// UniformSphericalPDF is the PDF of a point returned by UniformSampleSphere,
// expressed per unit solid angle (1 / 4*pi steradians).
const UniformSphericalPDF = 1.0 / (4.0 * math.Pi)

// AlignToNormal builds an orthonormal basis around normal and transforms a
// hemisphere-local direction (sampled about +Z) into world space.
func AlignToNormal(local, normal core.Vec) core.Vec {
	var tangent core.Vec
	if math.Abs(normal.X) > math.Abs(normal.Y) {
		tangent = core.NewVec(-normal.Z, 0, normal.X).Normalize()
	} else {
		tangent = core.NewVec(0, normal.Z, -normal.Y).Normalize()
	}
	bitangent := normal.Cross(tangent)

	return tangent.Multiply(local.X).
		Add(bitangent.Multiply(local.Y)).
		Add(normal.Multiply(local.Z))
}
