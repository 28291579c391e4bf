package raster

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrChannelRange is returned for channel values outside [0, 255].
var ErrChannelRange = errors.New("raster: channel value out of range")

// Channel indexes, in byte order within a pixel.
const (
	Red = iota
	Green
	Blue
	Opacity

	NumChannels
)

// Color is a fixed 4-channel drawing color.
type Color struct {
	ch [NumChannels]uint8
}

// NewColor validates and builds a Color.
func NewColor(red, green, blue, opacity int) (Color, error) {
	var c Color
	for i, v := range [NumChannels]int{red, green, blue, opacity} {
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("%w: channel %d = %d", ErrChannelRange, i, v)
		}
		c.ch[i] = uint8(v)
	}
	return c, nil
}

// RGBA8 builds a Color from byte channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{ch: [NumChannels]uint8{r, g, b, a}}
}

// Channels returns the channel values ordered red, green, blue, opacity.
// The index of each value is its byte offset within a pixel.
func (c Color) Channels() [NumChannels]uint8 { return c.ch }

// NRGBA converts to the standard library color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.ch[Red], G: c.ch[Green], B: c.ch[Blue], A: c.ch[Opacity]}
}

// Hex formats the color as #rrggbb, ignoring opacity.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.ch[Red], c.ch[Green], c.ch[Blue])
}
