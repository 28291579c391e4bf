// Package config holds the startup settings of the renderer.
package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"sierpinski/internal/raster"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is read once at startup and passed by value.
type Config struct {
	Resolution   int           // horizontal pixel count of the raster buffer
	AspectRatio  float64       // width over height
	Color        [4]int        // red, green, blue, opacity
	DotsPerTick  int           // points plotted before each presentation
	TickInterval time.Duration // minimum delay between ticks
	Surface      string        // identifies the host surface
}

// Default draws an equilateral triangle in purple.
func Default() Config {
	return Config{
		Resolution:   249,
		AspectRatio:  2 / math.Sqrt(3),
		Color:        [4]int{128, 0, 192, 255},
		DotsPerTick:  1,
		TickInterval: 30 * time.Millisecond,
		Surface:      "chaos_game_canvas",
	}
}

// Height is the buffer height derived from the resolution and aspect ratio.
func (c Config) Height() int {
	if !(c.AspectRatio > 0) {
		return 0
	}
	return int(math.Floor(float64(c.Resolution) / c.AspectRatio))
}

// DrawColor converts the configured channels.
func (c Config) DrawColor() (raster.Color, error) {
	return raster.NewColor(c.Color[0], c.Color[1], c.Color[2], c.Color[3])
}

// Validate reports the first problem found.
func (c Config) Validate() error {
	switch {
	case c.Resolution <= 0:
		return fmt.Errorf("%w: resolution %d must be positive", ErrInvalid, c.Resolution)
	case !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0):
		return fmt.Errorf("%w: aspect ratio %v must be positive and finite", ErrInvalid, c.AspectRatio)
	case c.Height() <= 0:
		return fmt.Errorf("%w: resolution %d gives zero height at aspect ratio %v", ErrInvalid, c.Resolution, c.AspectRatio)
	case c.DotsPerTick <= 0:
		return fmt.Errorf("%w: dots per tick %d must be positive", ErrInvalid, c.DotsPerTick)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval %v must be positive", ErrInvalid, c.TickInterval)
	}
	if _, err := c.DrawColor(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Parse registers the config flags on fs, starting from the values in c,
// parses args and validates the result. Callers may add their own flags to
// fs beforehand.
func (c Config) Parse(fs *flag.FlagSet, args []string) (Config, error) {
	fs.IntVar(&c.Resolution, "resolution", c.Resolution, "horizontal pixel count of the fractal")
	fs.Float64Var(&c.AspectRatio, "aspect", c.AspectRatio, "width over height of the fractal")
	fs.IntVar(&c.DotsPerTick, "dots", c.DotsPerTick, "points plotted per tick")
	fs.DurationVar(&c.TickInterval, "interval", c.TickInterval, "minimum delay between ticks")
	fs.StringVar(&c.Surface, "surface", c.Surface, "name of the presentation surface")
	fs.Func("color", "draw color as r,g,b,a (default "+formatColor(c.Color)+")", func(s string) error {
		col, err := parseColor(s)
		if err != nil {
			return err
		}
		c.Color = col
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func parseColor(s string) ([4]int, error) {
	var out [4]int
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return out, fmt.Errorf("color %q: want 4 comma-separated values", s)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return out, fmt.Errorf("color %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}

func formatColor(c [4]int) string {
	return fmt.Sprintf("%d,%d,%d,%d", c[0], c[1], c[2], c[3])
}
