// Package present implements the lock-protected handoff from the renderer
// to an external display surface: a raw accumulator-sized pixel buffer the
// renderer writes into each iteration, and a lazily-rescaled screen-sized
// copy a display thread reads concurrently. It is grounded on the original
// engine's SyncedImage (core/synced_image.cc): an owner-writable raw
// buffer, a mutex-guarded critical section, and an atomically-dirty screen
// copy rebuilt on demand.
package present

import (
	"image"
	"image/color"
	"sync"
	"sync/atomic"

	"golang.org/x/image/draw"
)

// PresentBuffer is the raw/screen pixel handoff. The zero value is not
// usable; construct with New.
type PresentBuffer struct {
	mu sync.Mutex

	raw *image.RGBA

	screenSize image.Point
	screen     *image.RGBA
	dirty      atomic.Bool

	counter atomic.Int64
}

// New constructs a PresentBuffer whose raw surface is w by h pixels.
func New(w, h int) *PresentBuffer {
	pb := &PresentBuffer{
		raw: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
	pb.screenSize = image.Pt(w, h)
	pb.dirty.Store(true)
	return pb
}

// Acquire takes exclusive access to the raw pixel region. Callers must
// call Release when done; RawPixels is only safe to use while held.
func (pb *PresentBuffer) Acquire() { pb.mu.Lock() }

// Release releases exclusive access taken by Acquire.
func (pb *PresentBuffer) Release() { pb.mu.Unlock() }

// RawPixels returns the mutable accumulator-sized surface. Must be called
// with the lock held (between Acquire and Release).
func (pb *PresentBuffer) RawPixels() *image.RGBA {
	return pb.raw
}

// Notify marks the screen-sized copy dirty, so the next ScreenPixels call
// rebuilds it. Safe to call from any thread without holding the lock.
func (pb *PresentBuffer) Notify() {
	pb.dirty.Store(true)
}

// IncrementCounter advances the iteration counter the presenter observes.
func (pb *PresentBuffer) IncrementCounter() {
	pb.counter.Add(1)
}

// SetScreenSize atomically updates the display size and marks the screen
// copy dirty so it is rebuilt at the new size on next access.
func (pb *PresentBuffer) SetScreenSize(w, h int) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.screenSize = image.Pt(w, h)
	pb.Notify()
}

// ScreenPixels returns a display-sized copy of the raw buffer, rescaling
// it if the dirty flag is set since the last call, and reports the
// iteration counter observed at the time of the read. Regions outside the
// raw buffer's aspect-correct extent are padded opaque white, matching the
// original engine's "undefined region" fill.
func (pb *PresentBuffer) ScreenPixels() (*image.RGBA, int64) {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	counter := pb.counter.Load()
	if !pb.dirty.Load() && pb.screen != nil {
		return pb.screen, counter
	}

	dst := image.NewRGBA(image.Rect(0, 0, pb.screenSize.X, pb.screenSize.Y))
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: white}, image.Point{}, draw.Src)
	draw.ApproxBiLinear.Scale(dst, aspectCorrectRect(pb.raw.Bounds(), dst.Bounds()), pb.raw, pb.raw.Bounds(), draw.Src, nil)

	pb.screen = dst
	pb.dirty.Store(false)
	return pb.screen, counter
}

// aspectCorrectRect returns the largest rectangle within dst that preserves
// src's aspect ratio, centered in dst. Anything in dst outside this
// rectangle is left at whatever background ScreenPixels already painted
// (opaque white) rather than stretched to fill — the "undefined region"
// padding the original SyncedImage performs for mismatched aspect ratios.
func aspectCorrectRect(src, dst image.Rectangle) image.Rectangle {
	srcW, srcH := src.Dx(), src.Dy()
	dstW, dstH := dst.Dx(), dst.Dy()
	if srcW == 0 || srcH == 0 || dstW == 0 || dstH == 0 {
		return dst
	}

	scale := float64(dstW) / float64(srcW)
	if alt := float64(dstH) / float64(srcH); alt < scale {
		scale = alt
	}

	scaledW := int(float64(srcW) * scale)
	scaledH := int(float64(srcH) * scale)
	offsetX := (dstW - scaledW) / 2
	offsetY := (dstH - scaledH) / 2

	return image.Rect(offsetX, offsetY, offsetX+scaledW, offsetY+scaledH)
}
