package config

import (
	"errors"
	"flag"
	"io"
	"math"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if got := c.Height(); got != 215 {
		t.Errorf("Height() = %d, want 215", got)
	}
	col, err := c.DrawColor()
	if err != nil {
		t.Fatalf("DrawColor: %v", err)
	}
	if ch := col.Channels(); ch != [4]uint8{128, 0, 192, 255} {
		t.Errorf("DrawColor channels = %v", ch)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"zero resolution", func(c *Config) { c.Resolution = 0 }},
		{"negative resolution", func(c *Config) { c.Resolution = -1 }},
		{"zero aspect", func(c *Config) { c.AspectRatio = 0 }},
		{"nan aspect", func(c *Config) { c.AspectRatio = math.NaN() }},
		{"inf aspect", func(c *Config) { c.AspectRatio = math.Inf(1) }},
		{"zero height", func(c *Config) { c.Resolution = 1; c.AspectRatio = 4 }},
		{"zero dots", func(c *Config) { c.DotsPerTick = 0 }},
		{"zero interval", func(c *Config) { c.TickInterval = 0 }},
		{"channel high", func(c *Config) { c.Color[2] = 256 }},
		{"channel low", func(c *Config) { c.Color[3] = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mod(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c, err := Default().Parse(fs, []string{
		"-resolution", "120", "-dots", "5", "-interval", "10ms",
		"-color", "1, 2,3,4", "-surface", "win",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Resolution != 120 || c.DotsPerTick != 5 || c.TickInterval != 10*time.Millisecond || c.Surface != "win" {
		t.Errorf("Parse = %+v", c)
	}
	if c.Color != [4]int{1, 2, 3, 4} {
		t.Errorf("Color = %v", c.Color)
	}
	if c.AspectRatio != Default().AspectRatio {
		t.Errorf("AspectRatio changed to %v", c.AspectRatio)
	}
}

func TestParseRejects(t *testing.T) {
	for _, args := range [][]string{
		{"-color", "1,2,3"},
		{"-color", "a,b,c,d"},
		{"-color", "1,2,3,999"},
		{"-dots", "0"},
	} {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		if _, err := Default().Parse(fs, args); err == nil {
			t.Errorf("Parse(%v) succeeded, want error", args)
		}
	}
}
