package geom

import (
	"math"

	"github.com/quietarc/tracepath/pkg/core"
	"github.com/quietarc/tracepath/pkg/rng"
)

// Disc is a flat circular Geom defined by a center, a unit normal, and a
// radius.
type Disc struct {
	Center core.Vec
	Normal core.Vec
	Radius float64
	Mat    core.Material
	Light  core.AreaLight
}

// NewDisc constructs a Disc, normalizing Normal.
func NewDisc(center, normal core.Vec, radius float64, mat core.Material, light core.AreaLight) *Disc {
	return &Disc{Center: center, Normal: normal.Normalize(), Radius: radius, Mat: mat, Light: light}
}

// Intersect finds where ray crosses the disc's plane and checks the hit
// point falls within Radius of Center.
func (d *Disc) Intersect(ray core.Ray) (core.Intersection, bool) {
	denom := d.Normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-9 {
		return core.Intersection{}, false
	}

	t := d.Center.Sub(ray.Origin).Dot(d.Normal) / denom
	if t < 1e-6 {
		return core.Intersection{}, false
	}

	pos := ray.At(t)
	if pos.Sub(d.Center).LengthSquared() > d.Radius*d.Radius {
		return core.Intersection{}, false
	}

	normal := d.Normal
	if denom > 0 {
		normal = normal.Negate()
	}
	return core.Intersection{Distance: t, Position: pos, Normal: normal}, true
}

// IntersectShadow reports whether Intersect finds a hit no farther than
// maxDist.
func (d *Disc) IntersectShadow(ray core.Ray, maxDist float64) bool {
	isect, hit := d.Intersect(ray)
	return hit && isect.Distance <= maxDist
}

// BoundBox returns a box enclosing the disc, padded slightly along its
// normal since a disc is zero-thickness and a zero-extent axis would make
// the box degenerate for any Accelerator that tests against it.
func (d *Disc) BoundBox() core.AABB {
	const pad = 1e-4
	tangent := perpendicular(d.Normal).Multiply(d.Radius)
	bitangent := d.Normal.Cross(tangent)
	extent := core.NewVec(
		math.Abs(tangent.X)+math.Abs(bitangent.X)+pad,
		math.Abs(tangent.Y)+math.Abs(bitangent.Y)+pad,
		math.Abs(tangent.Z)+math.Abs(bitangent.Z)+pad,
	)
	return core.NewAABB(d.Center.Sub(extent), d.Center.Add(extent))
}

// Refine appends the disc itself.
func (d *Disc) Refine(out []core.Geom) []core.Geom { return append(out, d) }

// Material returns the disc's material, or nil if it has none.
func (d *Disc) Material() core.Material { return d.Mat }

// AreaLight returns the disc's area light, or nil if it isn't emissive.
func (d *Disc) AreaLight() core.AreaLight { return d.Light }

// SurfaceArea is the area of the disc.
func (d *Disc) SurfaceArea() float64 {
	return math.Pi * d.Radius * d.Radius
}

// SamplePoint returns a point uniformly distributed over the disc's area,
// along with its (constant) normal.
func (d *Disc) SamplePoint(sampler core.Sampler) (point, normal core.Vec) {
	x, y := rng.AreaSampleDisk(sampler)
	tangent := perpendicular(d.Normal)
	bitangent := d.Normal.Cross(tangent)
	point = d.Center.Add(tangent.Multiply(x * d.Radius)).Add(bitangent.Multiply(y * d.Radius))
	return point, d.Normal
}

func perpendicular(n core.Vec) core.Vec {
	if math.Abs(n.X) > math.Abs(n.Y) {
		return core.NewVec(-n.Z, 0, n.X).Normalize()
	}
	return core.NewVec(0, n.Z, -n.Y).Normalize()
}
