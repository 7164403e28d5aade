// Package arealight supplies a minimal reference AreaLight implementation:
// a uniformly-emissive surface, sampled for next-event estimation the way
// the original engine's uniformSampleOneLight consumes an AreaLight.
package arealight

import (
	"github.com/quietarc/tracepath/pkg/core"
)

// surfaceSampler is the capability a Geom needs beyond core.Geom to back a
// DiffuseAreaLight: a way to draw a uniform point on its surface, and the
// area that point is drawn from. pkg/geom's Sphere and Disc both implement
// it.
type surfaceSampler interface {
	SamplePoint(sampler core.Sampler) (point, normal core.Vec)
	SurfaceArea() float64
}

// DiffuseAreaLight emits a constant radiance uniformly over one side of its
// shape's surface (the side the shape's normal points toward).
type DiffuseAreaLight struct {
	Shape    surfaceSampler
	Radiance core.Vec
}

// NewDiffuseAreaLight constructs a DiffuseAreaLight over shape, which must
// also implement core.Geom (callers attach the returned light to that same
// Geom by setting its Light field, e.g. sphere.Light = light).
func NewDiffuseAreaLight(shape surfaceSampler, radiance core.Vec) *DiffuseAreaLight {
	return &DiffuseAreaLight{Shape: shape, Radiance: radiance}
}

// Emit returns Radiance when incoming arrives from the front face (the
// hit normal faces back along the incoming ray), and black otherwise —
// light only radiates from the side its normal points toward.
func (l *DiffuseAreaLight) Emit(incoming core.LightRay, isect core.Intersection) core.Vec {
	if isect.Normal.Dot(incoming.Ray.Direction) >= 0 {
		return core.Vec{}
	}
	return l.Radiance
}

// DirectIlluminate samples a uniform point on the shape's surface and
// returns the single-light next-event-estimation contribution: the
// emitted radiance, weighted by the shading material's BRDF and the
// geometric term, divided by the solid-angle sampling PDF. The caller
// (uniformSampleOneLight) is responsible for dividing by the light's
// selection probability, not this method.
func (l *DiffuseAreaLight) DirectIlluminate(
	sampler core.Sampler,
	incoming core.LightRay,
	isect core.Intersection,
	mat core.Material,
	emitterGeom core.Geom,
	accel core.Accelerator,
) core.Vec {
	lightPoint, lightNormal := l.Shape.SamplePoint(sampler)

	toLight := lightPoint.Sub(isect.Position)
	distance := toLight.Length()
	if distance < 1e-6 {
		return core.Vec{}
	}
	wi := toLight.Divide(distance)

	cosAtSurface := wi.Dot(isect.Normal)
	cosAtLight := -wi.Dot(lightNormal)
	if cosAtSurface <= 0 || cosAtLight <= 0 {
		return core.Vec{}
	}

	shadowRay := core.NewRay(isect.Position, wi)
	if accel.IntersectShadow(shadowRay, distance-1e-4) {
		return core.Vec{}
	}

	area := l.Shape.SurfaceArea()
	if area <= 0 {
		return core.Vec{}
	}
	solidAnglePDF := (distance * distance) / (area * cosAtLight)

	brdf := mat.EvaluateBRDF(wi, isect)
	return l.Radiance.MultiplyVec(brdf).Multiply(cosAtSurface / solidAnglePDF)
}
