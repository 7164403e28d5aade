// Package geom supplies a minimal reference set of concrete Geom
// implementations: sphere and disc, the two primitives spec.md names by
// example. Geometry is otherwise out of scope — any type implementing
// core.Geom can stand in for these.
package geom

import (
	"math"

	"github.com/quietarc/tracepath/pkg/core"
	"github.com/quietarc/tracepath/pkg/rng"
)

// Sphere is a Geom bounded by a center and radius, with an attached
// material and (optional) area light, matching the base Geom record in
// the original source (a material/light pair borrowed by every concrete
// primitive).
type Sphere struct {
	Center core.Vec
	Radius float64
	Mat    core.Material
	Light  core.AreaLight
}

// NewSphere constructs a Sphere.
func NewSphere(center core.Vec, radius float64, mat core.Material, light core.AreaLight) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat, Light: light}
}

// Intersect solves the quadratic for ray-sphere intersection, returning the
// nearest root ahead of the ray origin.
func (s *Sphere) Intersect(ray core.Ray) (core.Intersection, bool) {
	oc := ray.Origin.Sub(s.Center)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return core.Intersection{}, false
	}

	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 1e-6 {
		t = -b + sq
	}
	if t < 1e-6 {
		return core.Intersection{}, false
	}

	pos := ray.At(t)
	normal := pos.Sub(s.Center).Divide(s.Radius)
	return core.Intersection{Distance: t, Position: pos, Normal: normal}, true
}

// IntersectShadow reports whether Intersect finds a hit no farther than
// maxDist.
func (s *Sphere) IntersectShadow(ray core.Ray, maxDist float64) bool {
	isect, hit := s.Intersect(ray)
	return hit && isect.Distance <= maxDist
}

// BoundBox returns the axis-aligned box enclosing the sphere.
func (s *Sphere) BoundBox() core.AABB {
	r := core.NewVec(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Sub(r), s.Center.Add(r))
}

// Refine appends the sphere itself; it has no children to recurse into.
func (s *Sphere) Refine(out []core.Geom) []core.Geom { return append(out, s) }

// Material returns the sphere's material, or nil if it has none.
func (s *Sphere) Material() core.Material { return s.Mat }

// AreaLight returns the sphere's area light, or nil if it isn't emissive.
func (s *Sphere) AreaLight() core.AreaLight { return s.Light }

// SurfaceArea is the area of the sphere, used by area-light sampling to
// derive a uniform PDF over its surface.
func (s *Sphere) SurfaceArea() float64 {
	return 4 * math.Pi * s.Radius * s.Radius
}

// SamplePoint returns a point uniformly distributed over the sphere's
// surface, along with the outward normal there.
func (s *Sphere) SamplePoint(sampler core.Sampler) (point, normal core.Vec) {
	normal = rng.UniformSampleSphere(sampler)
	point = s.Center.Add(normal.Multiply(s.Radius))
	return point, normal
}
