// Package headless is a host with no screen: ticks run on demand and the
// last presented frame can be written out as a PNG.
package headless

import (
	"image"
	"image/png"
	"io"
	"time"
)

// Host implements viewport.Surface and chaos.Scheduler for offline use.
type Host struct {
	width, height int

	onResize []func(int, int)
	tick     func()
	interval time.Duration

	frame *image.RGBA
}

// New returns a host whose available area is width x height.
func New(width, height int) *Host {
	return &Host{width: width, height: height}
}

func (h *Host) Available() (int, int) { return h.width, h.height }

// Present keeps a copy of frame.
func (h *Host) Present(frame *image.RGBA) error {
	if h.frame == nil || h.frame.Rect != frame.Rect {
		h.frame = image.NewRGBA(frame.Rect)
	}
	copy(h.frame.Pix, frame.Pix)
	return nil
}

func (h *Host) OnResize(fn func(int, int)) { h.onResize = append(h.onResize, fn) }

// Resize changes the available area and notifies subscribers.
func (h *Host) Resize(width, height int) {
	h.width, h.height = width, height
	for _, fn := range h.onResize {
		fn(width, height)
	}
}

// Every stores fn; it only runs from Advance. A later call replaces it.
func (h *Host) Every(d time.Duration, fn func()) func() {
	h.tick, h.interval = fn, d
	return func() { h.tick = nil }
}

// Advance runs up to n ticks back to back and returns the simulated time
// they would have taken.
func (h *Host) Advance(n int) time.Duration {
	var elapsed time.Duration
	for i := 0; i < n && h.tick != nil; i++ {
		h.tick()
		elapsed += h.interval
	}
	return elapsed
}

// Frame returns the last presented frame, or nil.
func (h *Host) Frame() *image.RGBA { return h.frame }

// WritePNG encodes the last presented frame. With no frame yet it writes
// an empty image of the available size.
func (h *Host) WritePNG(w io.Writer) error {
	img := h.frame
	if img == nil {
		img = image.NewRGBA(image.Rect(0, 0, max(h.width, 1), max(h.height, 1)))
	}
	return png.Encode(w, img)
}
