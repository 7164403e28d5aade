package core

// Sampler is the per-thread random source consumed by materials and lights.
// pkg/rng.Randomness is the concrete implementation; it is passed around as
// this narrower interface so that material/light code in this package
// doesn't need to import pkg/rng.
type Sampler interface {
	NextUnitFloat() float64
	NextFloat(lo, hi float64) float64
}

// Geom is the capability every renderable primitive implements: sphere,
// disc, mesh, or a composite that refines into leaves. Geometry primitive
// implementations live outside this package (pkg/geom supplies a minimal
// reference set); the rendering core only ever consumes this interface.
type Geom interface {
	// Intersect returns the nearest hit along ray, if any.
	Intersect(ray Ray) (Intersection, bool)
	// IntersectShadow reports whether ray hits within maxDist, without
	// computing full intersection detail.
	IntersectShadow(ray Ray, maxDist float64) bool
	// BoundBox returns an axis-aligned box enclosing the geometry.
	BoundBox() AABB
	// Refine appends this Geom's leaf primitives to out. Leaf geometry
	// appends itself; composites recurse into their children.
	Refine(out []Geom) []Geom
	// Material returns the geom's material, or nil if it has none.
	Material() Material
	// AreaLight returns the geom's area light, or nil if it isn't emissive.
	AreaLight() AreaLight
}

// Material is the capability a surface's shading behavior implements.
type Material interface {
	// Scatter returns the outgoing LightRay given an incoming LightRay and
	// the hit it scatters from. The returned throughput is already divided
	// by its sampling PDF.
	Scatter(sampler Sampler, incoming LightRay, isect Intersection) LightRay
	// EvaluateBRDF returns the BSDF value (not multiplied by the cosine
	// term) for light arriving from outgoing at isect. Only called for
	// materials whose ShouldDirectIlluminate is true, to weight a
	// next-event-estimation sample toward a light.
	EvaluateBRDF(outgoing Vec, isect Intersection) Vec
	// ShouldDirectIlluminate declares whether the estimator should perform
	// next-event estimation at hits on this material (true for
	// diffuse/glossy, false for perfect specular/dielectric).
	ShouldDirectIlluminate() bool
}

// AreaLight is the capability an emissive surface implements.
type AreaLight interface {
	// Emit returns emitted radiance in the direction back along incoming.
	Emit(incoming LightRay, isect Intersection) Vec
	// DirectIlluminate returns the direct-lighting estimator, already
	// divided by the light-sampling PDF, including the BSDF evaluation and
	// a shadow test through accel.
	DirectIlluminate(sampler Sampler, incoming LightRay, isect Intersection, mat Material, emitterGeom Geom, accel Accelerator) Vec
}

// Accelerator is the capability a spatial index over the scene's Geoms
// implements. pkg/accel supplies the linear-scan baseline this engine
// requires; faster structures (BVH, grid, ...) are out of scope here.
type Accelerator interface {
	// Intersect returns the nearest hit across the whole scene and the Geom
	// it belongs to.
	Intersect(ray Ray) (Geom, Intersection, bool)
	// IntersectShadow reports whether any geom occludes ray within maxDist.
	IntersectShadow(ray Ray, maxDist float64) bool
}

// Logger is the narrow logging capability the renderer writes progress and
// debug lines through.
type Logger interface {
	Printf(format string, args ...interface{})
}
