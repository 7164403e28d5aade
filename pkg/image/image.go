// Package image is the filtered sample accumulator: per-iteration scratch
// samples splatted through a Mitchell-Netravali reconstruction filter into
// a persistent raw buffer, then presented to a display consumer. Grounded
// on the original engine's Image (core/image.cc): setSample writes
// unlocked scratch (each pixel is touched by exactly one worker),
// commitSamples and present both take the image's lock so a display
// consumer never observes a partially-accumulated iteration.
package image

import (
	"image/color"
	"math"
	"sync"

	"github.com/quietarc/tracepath/pkg/core"
	"github.com/quietarc/tracepath/pkg/present"
)

// Image accumulates filtered radiance samples into a w by h raw buffer
// over repeated iterations.
type Image struct {
	w, h, spp int
	fw        float64

	mu      sync.Mutex
	current [][][]core.Sample // [y][x][sampleIndex], scratch for one iteration
	rawData [][]core.Vec4     // [y][x], (r, g, b, weight) accumulator

	counter int64
}

// New constructs an Image of the given dimensions, samples-per-pixel, and
// reconstruction filter width.
func New(w, h, spp int, filterWidth float64) *Image {
	img := &Image{w: w, h: h, spp: spp, fw: filterWidth}

	img.current = make([][][]core.Sample, h)
	img.rawData = make([][]core.Vec4, h)
	for y := 0; y < h; y++ {
		img.current[y] = make([][]core.Sample, w)
		for x := 0; x < w; x++ {
			img.current[y][x] = make([]core.Sample, spp)
		}
		img.rawData[y] = make([]core.Vec4, w)
	}

	return img
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.w }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.h }

// SamplesPerPixel returns the configured SPP.
func (img *Image) SamplesPerPixel() int { return img.spp }

// FilterWidth returns the reconstruction filter's support radius.
func (img *Image) FilterWidth() float64 { return img.fw }

// SetSample writes one scratch sample for pixel (x, y), sample index idx.
// It takes no lock: every (x, y) is written by exactly one worker during
// an iteration's dispatch.
func (img *Image) SetSample(x, y int, ptX, ptY float64, idx int, color core.Vec) {
	img.current[y][x][idx] = core.Sample{Position: core.NewVec2(ptX, ptY), Color: color}
}

// CommitSamples splats every scratch sample into rawData through the
// Mitchell-Netravali filter, then advances the iteration counter by one.
// It holds the image lock for the duration of the
// splat, so Present never observes a partial commit.
func (img *Image) CommitSamples() {
	img.mu.Lock()
	defer img.mu.Unlock()

	for y := 0; y < img.h; y++ {
		for x := 0; x < img.w; x++ {
			for _, s := range img.current[y][x] {
				img.splat(s)
			}
		}
	}
	img.counter++
}

func (img *Image) splat(s core.Sample) {
	fw := img.fw
	minX := clampInt(int(math.Ceil(s.Position.X-fw)), 0, img.w-1)
	maxX := clampInt(int(math.Floor(s.Position.X+fw)), 0, img.w-1)
	minY := clampInt(int(math.Ceil(s.Position.Y-fw)), 0, img.h-1)
	maxY := clampInt(int(math.Floor(s.Position.Y+fw)), 0, img.h-1)

	for yy := minY; yy <= maxY; yy++ {
		for xx := minX; xx <= maxX; xx++ {
			weight := mitchellFilter(s.Position.X-float64(xx), s.Position.Y-float64(yy), fw)
			px := &img.rawData[yy][xx]
			px.X += s.Color.X * weight
			px.Y += s.Color.Y * weight
			px.Z += s.Color.Z * weight
			px.W += weight
		}
	}
}

// MakeRGBA clamps each channel to [0, 1] and quantizes to 8 bits, forcing
// alpha opaque — the original engine's MakeRgbaColor.
func MakeRGBA(r, g, b float64) (rr, gg, bb, aa uint8) {
	quant := func(v float64) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255.0)
	}
	return quant(r), quant(g), quant(b), 255
}

// Present writes the accumulated rawData into buffer's raw pixel region
// under the image's lock (mutually exclusive with CommitSamples), then
// notifies the consumer and advances its counter. Pixels with zero
// accumulated weight present as black.
func (img *Image) Present(buffer *present.PresentBuffer) {
	img.mu.Lock()
	defer img.mu.Unlock()

	buffer.Acquire()
	raw := buffer.RawPixels()
	for y := 0; y < img.h; y++ {
		for x := 0; x < img.w; x++ {
			px := img.rawData[y][x]
			var r, g, b float64
			if px.W > 0 {
				r, g, b = px.X/px.W, px.Y/px.W, px.Z/px.W
			}
			rr, gg, bb, aa := MakeRGBA(r, g, b)
			raw.SetRGBA(x, y, color.RGBA{R: rr, G: gg, B: bb, A: aa})
		}
	}
	buffer.IncrementCounter()
	buffer.Notify()
	buffer.Release()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
