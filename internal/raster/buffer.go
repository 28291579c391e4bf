package raster

import (
	"errors"
	"fmt"
	"image"
	"math"

	"sierpinski/internal/applog"
	"sierpinski/internal/geom"
)

// ErrSize is returned for non-positive buffer dimensions.
var ErrSize = errors.New("raster: buffer size must be positive")

// Buffer is a fixed-size RGBA pixel grid, 4 bytes per pixel, row major.
// It is never resized; build a new one instead.
type Buffer struct {
	width  int
	height int
	pix    []uint8
	img    *image.RGBA
}

// NewBuffer allocates a transparent width x height buffer.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, width, height)
	}
	pix := make([]uint8, width*height*NumChannels)
	return &Buffer{
		width:  width,
		height: height,
		pix:    pix,
		img: &image.RGBA{
			Pix:    pix,
			Stride: width * NumChannels,
			Rect:   image.Rect(0, 0, width, height),
		},
	}, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Pix returns the raw pixel bytes. The slice is owned by the buffer.
func (b *Buffer) Pix() []uint8 { return b.pix }

// RGBA returns an image view sharing the buffer's pixels.
func (b *Buffer) RGBA() *image.RGBA { return b.img }

// Plot writes c at the pixel containing p. Coordinates are floored.
//
// Positions outside [0,width) x [0,height) are dropped. With the default
// triangle this happens for the corners on the right and bottom edges,
// which land exactly one pixel past the grid.
func (b *Buffer) Plot(p geom.Point, c Color) {
	fx, fy := math.Floor(p.X), math.Floor(p.Y)
	if !(fx >= 0 && fx < float64(b.width) && fy >= 0 && fy < float64(b.height)) {
		applog.Logger().Debug("raster: plot out of range", "x", p.X, "y", p.Y)
		return
	}
	off := (int(fy)*b.width + int(fx)) * NumChannels
	for i, v := range c.Channels() {
		b.pix[off+i] = v
	}
}

// Clear resets every byte to zero.
func (b *Buffer) Clear() {
	clear(b.pix)
}
