// Package accel supplies the baseline spatial index over a scene's
// geometry: an unaccelerated linear scan. Faster structures (BVH, grid,
// ...) are out of scope; every query here is O(n) in the object count.
package accel

import (
	"github.com/quietarc/tracepath/pkg/core"
)

// LinearTime is an Accelerator that scans every Geom on every query. It is
// the one acceleration structure this engine requires.
type LinearTime struct {
	objs []core.Geom
}

// New constructs a LinearTime accelerator over objs. objs should already be
// refined (Geom.Refine) into leaf primitives; LinearTime does not recurse
// into composites itself.
func New(objs []core.Geom) *LinearTime {
	return &LinearTime{objs: objs}
}

// Intersect scans every object, keeping whichever hit has the smallest
// distance. It returns the hit Geom and Intersection, and false if nothing
// was hit.
func (lt *LinearTime) Intersect(ray core.Ray) (core.Geom, core.Intersection, bool) {
	best := core.NewIntersection()
	var bestGeom core.Geom

	for _, g := range lt.objs {
		cur, hit := g.Intersect(ray)
		if hit && cur.Distance < best.Distance {
			best = cur
			bestGeom = g
		}
	}

	if bestGeom == nil {
		return nil, core.Intersection{}, false
	}
	return bestGeom, best, true
}

// IntersectShadow short-circuits on the first object occluding ray within
// maxDist; it never needs to know which object it was or compute the full
// intersection for it.
func (lt *LinearTime) IntersectShadow(ray core.Ray, maxDist float64) bool {
	for _, g := range lt.objs {
		if g.IntersectShadow(ray, maxDist) {
			return true
		}
	}
	return false
}
