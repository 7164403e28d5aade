package material

import "github.com/quietarc/tracepath/pkg/core"

// Mirror is a perfect specular material: the outgoing direction is the
// incoming direction reflected about the hit normal, with no sampling PDF
// to divide by (a delta distribution contributes its full weight).
type Mirror struct {
	Tint core.Vec
}

// NewMirror constructs a Mirror material. Tint is used as given; white
// (1,1,1) gives a non-tinted mirror.
func NewMirror(tint core.Vec) *Mirror {
	return &Mirror{Tint: tint}
}

// Scatter reflects incoming.Ray.Direction about isect.Normal.
func (m *Mirror) Scatter(sampler core.Sampler, incoming core.LightRay, isect core.Intersection) core.LightRay {
	d := incoming.Ray.Direction
	reflected := d.Sub(isect.Normal.Multiply(2 * d.Dot(isect.Normal)))
	color := incoming.Color.MultiplyVec(m.Tint)
	return core.NewLightRay(isect.Position, reflected, color)
}

// EvaluateBRDF is never called by the estimator (ShouldDirectIlluminate is
// false), since a specular surface's BSDF is a delta distribution with no
// well-defined value at an arbitrary light direction. It returns zero.
func (m *Mirror) EvaluateBRDF(outgoing core.Vec, isect core.Intersection) core.Vec {
	return core.Vec{}
}

// ShouldDirectIlluminate is false: a perfect specular hit has zero
// probability of directly facing any given light sample, so next-event
// estimation at this vertex would only add variance.
func (m *Mirror) ShouldDirectIlluminate() bool { return false }
