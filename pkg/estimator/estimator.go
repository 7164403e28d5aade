// Package estimator implements the radiance estimator: the iterative
// bounce loop a traced ray follows, including Russian-roulette
// termination, next-event-estimation direct lighting, and biased radiance
// clamping. The algorithm is the original engine's Camera::trace, kept as
// an iterative loop with a didDirectIlluminate flag rather than recast as
// the teacher's recursive multiple-importance-sampling integrator.
package estimator

import (
	"fmt"

	"github.com/quietarc/tracepath/pkg/core"
)

// Config holds the estimator's tunables. Defaults match the original
// engine's named constants.
type Config struct {
	// RussianRouletteDepth1 is the bounce depth at which roulette testing
	// begins.
	RussianRouletteDepth1 int
	// RussianRouletteDepth2 is the bounce depth at which roulette becomes
	// more aggressive.
	RussianRouletteDepth2 int
	// BiasedRadianceClamping bounds the per-channel radiance returned for
	// any single sample, trading a small amount of bias for much lower
	// variance from rare, very bright paths.
	BiasedRadianceClamping float64
}

// DefaultConfig returns the tunables the original engine shipped with.
func DefaultConfig() Config {
	return Config{
		RussianRouletteDepth1:  3,
		RussianRouletteDepth2:  5,
		BiasedRadianceClamping: 10.0,
	}
}

// Estimator evaluates radiance along a ray by tracing it through a scene.
type Estimator struct {
	Config  Config
	Accel   core.Accelerator
	Lights  []core.Geom // emitters: Geoms whose AreaLight() is non-nil
	Verbose bool
}

// New constructs an Estimator over accel, given the refined list of
// emitting Geoms (built by refining every lit object in the scene, as the
// original Camera constructor does for its emitters slice).
func New(cfg Config, accel core.Accelerator, lights []core.Geom) *Estimator {
	return &Estimator{Config: cfg, Accel: accel, Lights: lights}
}

// Trace evaluates the radiance arriving at r.Origin along r.Direction,
// bouncing through the scene until Russian roulette kills the path or it
// escapes into empty space.
func (e *Estimator) Trace(r core.LightRay, sampler core.Sampler) core.Vec {
	var l core.Vec
	didDirectIlluminate := false

	for depth := 0; ; depth++ {
		if depth >= e.Config.RussianRouletteDepth1 || r.IsBlack() {
			rv := sampler.NextUnitFloat()

			var probLive float64
			if depth >= e.Config.RussianRouletteDepth2 {
				probLive = clampedLerp(0.25, 0.75, r.Luminance())
			} else {
				probLive = clampedLerp(0.25, 1.00, r.Luminance())
			}

			if rv < probLive {
				r.Color = r.Color.Divide(probLive)
			} else {
				e.logf("      trace[%d]  killed: russian roulette\n", depth)
				break
			}
		}

		g, isect, hit := e.Accel.Intersect(r.Ray)
		if !hit {
			e.logf("      trace[%d]    empty: path escaped scene\n", depth)
			break
		}

		if light := g.AreaLight(); light != nil {
			if !didDirectIlluminate {
				l = l.Add(r.Color.MultiplyVec(light.Emit(r, isect)))
			}
			// else: already accounted for by the previous vertex's
			// direct-lighting sample; counting it again here would double
			// the contribution.
		}

		mat := g.Material()
		if mat == nil {
			e.logf("      trace[%d] absorbed: no material\n", depth)
			break
		}

		if mat.ShouldDirectIlluminate() {
			l = l.Add(r.Color.MultiplyVec(e.uniformSampleOneLight(sampler, r, isect, mat)))
			r = mat.Scatter(sampler, r, isect)
			didDirectIlluminate = true
		} else {
			r = mat.Scatter(sampler, r, isect)
			didDirectIlluminate = false
		}
	}

	clamp := e.Config.BiasedRadianceClamping
	return l.Clamp(0, clamp)
}

// uniformSampleOneLight picks one emitter uniformly at random and returns
// its direct-lighting contribution scaled by 1/P[this light], matching the
// original engine's uniformSampleOneLight.
func (e *Estimator) uniformSampleOneLight(sampler core.Sampler, incoming core.LightRay, isect core.Intersection, mat core.Material) core.Vec {
	numLights := len(e.Lights)
	if numLights == 0 {
		return core.Vec{}
	}

	idx := int(sampler.NextUnitFloat() * float64(numLights))
	if idx >= numLights {
		idx = numLights - 1
	}
	emitter := e.Lights[idx]
	light := emitter.AreaLight()

	contribution := light.DirectIlluminate(sampler, incoming, isect, mat, emitter, e.Accel)
	return contribution.Multiply(float64(numLights))
}

func (e *Estimator) logf(format string, args ...interface{}) {
	if e.Verbose {
		fmt.Printf(format, args...)
	}
}

func clampedLerp(lo, hi, t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lo + (hi-lo)*t
}
