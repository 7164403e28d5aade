// Package camera is the render driver: a thin-lens camera owning the
// accelerator, image accumulator, master RNG, per-row RNG seeds, worker
// pool, and camera-to-world transform, driving renderOnce/renderMultiple
// over the worker pool exactly as the original engine's Camera does
// (core/camera.cc).
package camera

import (
	"math"
	"time"

	"github.com/quietarc/tracepath/pkg/core"
	"github.com/quietarc/tracepath/pkg/estimator"
	"github.com/quietarc/tracepath/pkg/image"
	"github.com/quietarc/tracepath/pkg/present"
	"github.com/quietarc/tracepath/pkg/rng"
	"github.com/quietarc/tracepath/pkg/workerpool"
	"github.com/quietarc/tracepath/pkg/xform"
)

// Config is the set of parameters a scene document's camera record
// supplies, matching spec.md §6's field table.
type Config struct {
	Width, Height int
	FOV           float64 // radians
	FocalLength   float64
	FStop         float64
	SamplesPerPixel int
	FilterWidth     float64
	MasterSeed      uint32
	MaxThreads      int

	Translate   core.Vec
	RotateAxis  core.Vec
	RotateAngle float64
}

// Camera renders a scene of Geoms into an Image, presenting each
// iteration's accumulation to a PresentBuffer.
type Camera struct {
	accel core.Accelerator
	img   *image.Image
	est   *estimator.Estimator
	pool  *workerpool.WorkerPool

	camToWorld xform.CameraToWorld

	focalPlaneOrigin core.Vec
	focalPlaneRight  float64
	focalPlaneUp     float64
	lensRadius       float64

	masterRng *rng.Randomness
	rowSeeds  []uint32

	iters  int
	Logger core.Logger
}

// New constructs a Camera over objs (already refined into leaf
// primitives) using cfg. Emitters are derived once here by refining every
// Geom whose AreaLight is non-nil, matching the original constructor's
// "refine emitters so we can compute direct illumination" pass.
func New(cfg Config, accel core.Accelerator, objs []core.Geom, estCfg estimator.Config, logger core.Logger) *Camera {
	var emitters []core.Geom
	for _, g := range objs {
		if g.AreaLight() != nil {
			emitters = g.Refine(emitters)
		}
	}

	c := &Camera{
		accel:     accel,
		img:       image.New(cfg.Width, cfg.Height, cfg.SamplesPerPixel, cfg.FilterWidth),
		est:       estimator.New(estCfg, accel, emitters),
		pool:      workerpool.New(cfg.MaxThreads),
		camToWorld: xform.New(cfg.Translate, cfg.RotateAxis, cfg.RotateAngle),
		lensRadius: (cfg.FocalLength / cfg.FStop) * 0.5,
		masterRng:  rng.New(cfg.MasterSeed),
		rowSeeds:   make([]uint32, cfg.Height),
		Logger:     logger,
	}

	var halfUp, halfRight float64
	if cfg.Width > cfg.Height {
		halfUp = cfg.FocalLength * math.Tan(0.5*cfg.FOV)
		halfRight = halfUp * float64(cfg.Width) / float64(cfg.Height)
	} else {
		halfRight = cfg.FocalLength * math.Tan(0.5*cfg.FOV)
		halfUp = halfRight * float64(cfg.Height) / float64(cfg.Width)
	}

	c.focalPlaneUp = -2.0 * halfUp
	c.focalPlaneRight = 2.0 * halfRight
	c.focalPlaneOrigin = core.NewVec(-halfRight, halfUp, -cfg.FocalLength)

	return c
}

// Image returns the camera's sample accumulator.
func (c *Camera) Image() *image.Image { return c.img }

// RenderOnce runs one full iteration: reseeds every row's RNG, dispatches
// one rowTask per row across the worker pool (a barrier), commits the
// accumulated samples, and presents the result to buffer. Wall-clock time
// around the dispatch is reported through Logger.
func (c *Camera) RenderOnce(buffer *present.PresentBuffer) {
	c.iters++
	c.logf("Iteration %d", c.iters)

	h := c.img.Height()
	for y := 0; y < h; y++ {
		c.rowSeeds[y] = c.masterRng.NextUnsigned()
	}

	start := time.Now()
	c.pool.Dispatch(h, func(y int) { c.rowTask(y) })
	elapsed := time.Since(start)

	c.img.CommitSamples()
	c.img.Present(buffer)

	c.logf(" [%.3f seconds]\n", elapsed.Seconds())
}

// RenderMultiple runs iterations renders, or forever if iterations < 0.
// Each iteration is independent and additive in the image's rawData.
func (c *Camera) RenderMultiple(buffer *present.PresentBuffer, iterations int) {
	if iterations < 0 {
		c.logf("Rendering infinitely, press Ctrl-c to terminate program\n")
		for {
			c.RenderOnce(buffer)
		}
	}

	c.logf("Rendering %d iterations\n", iterations)
	for i := 0; i < iterations; i++ {
		c.RenderOnce(buffer)
	}
}

// rowTask traces every sample in row y: for each pixel and each sample
// index, jitters a subpixel position within the reconstruction filter's
// support, maps it onto the focal plane, samples an eye point on the lens
// disk, and traces the resulting LightRay through the estimator.
func (c *Camera) rowTask(y int) {
	w := c.img.Width()
	spp := c.img.SamplesPerPixel()
	fw := c.img.FilterWidth()

	r := rng.New(c.rowSeeds[y])

	for x := 0; x < w; x++ {
		for samp := 0; samp < spp; samp++ {
			offsetY := r.NextFloat(-fw, fw)
			offsetX := r.NextFloat(-fw, fw)

			posY := float64(y) + offsetY
			posX := float64(x) + offsetX

			fracY := posY / (float64(c.img.Height()) - 1.0)
			fracX := posX / (float64(w) - 1.0)

			lookAt := c.focalPlaneOrigin.Add(core.NewVec(
				c.focalPlaneRight*fracX,
				c.focalPlaneUp*fracY,
				0,
			))

			lensX, lensY := rng.AreaSampleDisk(r)
			eye := core.NewVec(lensX, lensY, 0).Multiply(c.lensRadius)

			eyeWorld := c.camToWorld.Point(eye)
			lookAtWorld := c.camToWorld.Point(lookAt)
			dir := lookAtWorld.Sub(eyeWorld).Normalize()

			l := c.est.Trace(core.NewLightRay(eyeWorld, dir, core.NewVec(1, 1, 1)), r)
			c.img.SetSample(x, y, posX, posY, samp, l)
		}
	}
}

func (c *Camera) logf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
