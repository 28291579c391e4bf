package raster

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"sierpinski/internal/geom"
)

func TestNewColorRange(t *testing.T) {
	tests := []struct {
		r, g, b, a int
		ok         bool
	}{
		{128, 0, 192, 255, true},
		{0, 0, 0, 0, true},
		{255, 255, 255, 255, true},
		{256, 0, 0, 0, false},
		{0, -1, 0, 0, false},
		{0, 0, 0, 300, false},
	}
	for _, tt := range tests {
		_, err := NewColor(tt.r, tt.g, tt.b, tt.a)
		if tt.ok && err != nil {
			t.Errorf("NewColor(%d,%d,%d,%d) error = %v", tt.r, tt.g, tt.b, tt.a, err)
		}
		if !tt.ok && !errors.Is(err, ErrChannelRange) {
			t.Errorf("NewColor(%d,%d,%d,%d) error = %v, want ErrChannelRange", tt.r, tt.g, tt.b, tt.a, err)
		}
	}
}

func TestColorChannelsOrder(t *testing.T) {
	c, _ := NewColor(1, 2, 3, 4)
	got := c.Channels()
	want := [NumChannels]uint8{1, 2, 3, 4}
	if got != want {
		t.Errorf("Channels() = %v, want %v", got, want)
	}
	if got[Red] != 1 || got[Green] != 2 || got[Blue] != 3 || got[Opacity] != 4 {
		t.Errorf("named channel indexes do not match order: %v", got)
	}
	if h := RGBA8(128, 0, 192, 255).Hex(); h != "#8000c0" {
		t.Errorf("Hex() = %q, want #8000c0", h)
	}
}

func TestNewBufferSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 1}, {1, 0}, {-3, 4}} {
		if _, err := NewBuffer(sz[0], sz[1]); !errors.Is(err, ErrSize) {
			t.Errorf("NewBuffer(%d, %d) error = %v, want ErrSize", sz[0], sz[1], err)
		}
	}
	b, err := NewBuffer(10, 7)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	if len(b.Pix()) != 10*7*4 {
		t.Errorf("len(Pix) = %d, want %d", len(b.Pix()), 10*7*4)
	}
	if r := b.RGBA().Bounds(); r.Dx() != 10 || r.Dy() != 7 {
		t.Errorf("RGBA bounds = %v", r)
	}
}

func TestPlotChannelFidelity(t *testing.T) {
	b, _ := NewBuffer(10, 10)
	c := RGBA8(128, 0, 192, 255)
	b.Plot(geom.Pt(3, 4), c)

	want := make([]uint8, len(b.Pix()))
	i := (4*10 + 3) * 4
	want[i+0], want[i+1], want[i+2], want[i+3] = 128, 0, 192, 255
	if !bytes.Equal(b.Pix(), want) {
		t.Errorf("pixel bytes mismatch at offset %d: got %v", i, b.Pix()[i:i+4])
	}
}

func TestPlotFloors(t *testing.T) {
	b, _ := NewBuffer(10, 10)
	c := RGBA8(1, 2, 3, 4)
	b.Plot(geom.Pt(3.99, 4.01), c)
	i := (4*10 + 3) * 4
	if got := b.Pix()[i : i+4]; !bytes.Equal(got, []uint8{1, 2, 3, 4}) {
		t.Errorf("pixel (3,4) = %v, want [1 2 3 4]", got)
	}
	// view shares bytes
	if got := b.RGBA().RGBAAt(3, 4); got.R != 1 || got.A != 4 {
		t.Errorf("RGBAAt(3,4) = %v", got)
	}
}

func TestPlotOutOfRangeDropped(t *testing.T) {
	b, _ := NewBuffer(10, 10)
	c := RGBA8(255, 255, 255, 255)
	for _, p := range []geom.Point{
		geom.Pt(-0.5, 5), geom.Pt(10, 5), geom.Pt(5, 10), geom.Pt(5, -1),
		geom.Pt(1e12, 1e12), geom.Pt(math.NaN(), 1), geom.Pt(math.Inf(1), 0),
	} {
		b.Plot(p, c)
	}
	if !bytes.Equal(b.Pix(), make([]uint8, len(b.Pix()))) {
		t.Error("out-of-range plot modified buffer")
	}
}

func TestClear(t *testing.T) {
	b, _ := NewBuffer(4, 4)
	b.Plot(geom.Pt(1, 1), RGBA8(9, 9, 9, 9))
	b.Clear()
	if !bytes.Equal(b.Pix(), make([]uint8, len(b.Pix()))) {
		t.Error("Clear left non-zero bytes")
	}
}
