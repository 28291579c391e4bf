// Package window shows the fractal in a resizable desktop window.
package window

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"sierpinski/internal/applog"
)

// Host implements viewport.Surface and chaos.Scheduler on top of an ebiten
// game loop. Update and Draw run on the same goroutine, so no locking.
type Host struct {
	availW, availH int
	onResize       []func(int, int)

	tick     func()
	interval time.Duration
	last     time.Time
	now      func() time.Time

	frame *image.RGBA
	img   *ebiten.Image
	dirty bool
}

// NewHost returns a host sized to the initial window.
func NewHost(width, height int) *Host {
	return &Host{availW: width, availH: height, now: time.Now}
}

func (h *Host) Available() (int, int) { return h.availW, h.availH }

// Present keeps frame for the next Draw.
func (h *Host) Present(frame *image.RGBA) error {
	h.frame = frame
	h.dirty = true
	return nil
}

func (h *Host) OnResize(fn func(int, int)) { h.onResize = append(h.onResize, fn) }

// Every arms the repeating tick; it runs from Update once at least d has
// passed since the previous run.
func (h *Host) Every(d time.Duration, fn func()) func() {
	h.tick, h.interval, h.last = fn, d, h.now()
	return func() { h.tick = nil }
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if h.tick == nil {
		return nil
	}
	if now := h.now(); now.Sub(h.last) >= h.interval {
		h.last = now
		h.tick()
	}
	return nil
}

// Draw implements ebiten.Game. The frame is already scaled by the viewport
// and is centered on the screen.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.frame == nil {
		return
	}
	w, ht := h.frame.Rect.Dx(), h.frame.Rect.Dy()
	if h.img == nil || h.img.Bounds().Dx() != w || h.img.Bounds().Dy() != ht {
		if h.img != nil {
			h.img.Deallocate()
		}
		h.img = ebiten.NewImage(w, ht)
		h.dirty = true
	}
	if h.dirty {
		h.img.WritePixels(h.frame.Pix)
		h.dirty = false
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Translate(float64((h.availW-w)/2), float64((h.availH-ht)/2))
	screen.DrawImage(h.img, op)
}

// Layout implements ebiten.Game. A change in the outside size is reported
// to resize subscribers.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (h *Host) resize(w, ht int) {
	if w == h.availW && ht == h.availH {
		return
	}
	h.availW, h.availH = w, ht
	for _, fn := range h.onResize {
		fn(w, ht)
	}
}

// Run opens the window and blocks until it is closed. start is called once
// before the loop begins.
func Run(h *Host, title string, start func() error) error {
	if err := start(); err != nil {
		return err
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(h.availW, h.availH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	applog.Logger().Info("window: opening", "title", title, "width", h.availW, "height", h.availH)
	return ebiten.RunGame(h)
}
