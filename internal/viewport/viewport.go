// Package viewport presents a raster buffer on a host surface of a
// different size, scaling with nearest-neighbor sampling and preserving
// the buffer's aspect ratio.
package viewport

import (
	"errors"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"sierpinski/internal/applog"
)

// ErrUnavailable may be returned by a Surface that cannot show a frame
// right now. The viewport skips that frame.
var ErrUnavailable = errors.New("viewport: surface unavailable")

// Surface is the visible output a host provides.
type Surface interface {
	// Available reports the area the viewport may fill.
	Available() (width, height int)
	// Present shows frame. The frame is reused by the next Update.
	Present(frame *image.RGBA) error
	// OnResize registers fn to run whenever the available area changes.
	OnResize(fn func(width, height int))
}

// Source is anything exposing its pixels as an RGBA image.
type Source interface {
	RGBA() *image.RGBA
}

// Viewport tracks display dimensions and copies a Source onto a Surface.
type Viewport struct {
	surface Surface
	aspect  float64

	width  int
	height int
	frame  *image.RGBA
}

// New sizes a viewport to the surface's current area and subscribes to its
// resize notifications. aspect is width over height.
func New(surface Surface, aspect float64) *Viewport {
	v := &Viewport{surface: surface, aspect: aspect}
	if surface != nil {
		v.Resize(surface.Available())
		surface.OnResize(v.Resize)
	}
	return v
}

// Fit returns the largest size with the given aspect ratio that fits
// inside availW x availH.
func Fit(availW, availH int, aspect float64) (width, height int) {
	if availW <= 0 || availH <= 0 || !(aspect > 0) {
		return 0, 0
	}
	aw, ah := float64(availW), float64(availH)
	width = int(math.Floor(math.Min(aw, ah*aspect)))
	height = int(math.Floor(math.Min(aw/aspect, ah)))
	return width, height
}

// Resize recomputes the display size for a new available area.
func (v *Viewport) Resize(availW, availH int) {
	w, h := Fit(availW, availH, v.aspect)
	if w == v.width && h == v.height {
		return
	}
	v.width, v.height = w, h
	applog.Logger().Info("viewport resized", "available", [2]int{availW, availH}, "width", w, "height", h)
}

// Size returns the current display size.
func (v *Viewport) Size() (width, height int) { return v.width, v.height }

// Update scales src to the display size with nearest-neighbor sampling and
// presents it. src is only read. An empty display or an unavailable surface
// skips the frame.
func (v *Viewport) Update(src Source) {
	if v.surface == nil || v.width == 0 || v.height == 0 {
		applog.Logger().Debug("viewport: nothing to present", "width", v.width, "height", v.height)
		return
	}
	if v.frame == nil || v.frame.Rect.Dx() != v.width || v.frame.Rect.Dy() != v.height {
		v.frame = image.NewRGBA(image.Rect(0, 0, v.width, v.height))
	}
	img := src.RGBA()
	xdraw.NearestNeighbor.Scale(v.frame, v.frame.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	if err := v.surface.Present(v.frame); err != nil {
		if errors.Is(err, ErrUnavailable) {
			applog.Logger().Debug("viewport: surface unavailable, frame skipped")
			return
		}
		applog.Logger().Warn("viewport: present failed", "err", err)
	}
}
