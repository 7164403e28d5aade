// Package material supplies a minimal reference set of concrete Material
// implementations: Lambertian (diffuse) and Mirror (perfect specular), the
// two scattering behaviors spec.md's radiance estimator branches on.
package material

import (
	"math"

	"github.com/quietarc/tracepath/pkg/core"
	"github.com/quietarc/tracepath/pkg/rng"
)

// Lambertian is a perfectly diffuse material: cosine-weighted hemisphere
// sampling cancels the BRDF's cos(theta)/pi against the sampling PDF, so
// the outgoing throughput is just the incoming throughput tinted by Albedo.
type Lambertian struct {
	Albedo core.Vec
}

// NewLambertian constructs a Lambertian material.
func NewLambertian(albedo core.Vec) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter samples a cosine-weighted direction about the hit normal.
func (l *Lambertian) Scatter(sampler core.Sampler, incoming core.LightRay, isect core.Intersection) core.LightRay {
	local := rng.CosineSampleHemisphere(sampler)
	direction := rng.AlignToNormal(local, isect.Normal)
	color := incoming.Color.MultiplyVec(l.Albedo)
	return core.NewLightRay(isect.Position, direction, color)
}

// EvaluateBRDF returns the constant Lambertian BRDF, albedo / pi.
func (l *Lambertian) EvaluateBRDF(outgoing core.Vec, isect core.Intersection) core.Vec {
	return l.Albedo.Multiply(1 / math.Pi)
}

// ShouldDirectIlluminate is true: diffuse surfaces benefit from
// next-event-estimation direct lighting.
func (l *Lambertian) ShouldDirectIlluminate() bool { return true }
