package window

import (
	"image"
	"testing"
	"time"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestUpdateHonoursInterval(t *testing.T) {
	c := &clock{t: time.Unix(0, 0)}
	h := NewHost(640, 480)
	h.now = c.now
	runs := 0
	cancel := h.Every(30*time.Millisecond, func() { runs++ })

	steps := []struct {
		advance time.Duration
		want    int
	}{
		{16 * time.Millisecond, 0},
		{16 * time.Millisecond, 1},
		{16 * time.Millisecond, 1},
		{16 * time.Millisecond, 2},
		{100 * time.Millisecond, 3},
	}
	for i, s := range steps {
		c.t = c.t.Add(s.advance)
		if err := h.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if runs != s.want {
			t.Errorf("step %d: runs = %d, want %d", i, runs, s.want)
		}
	}

	cancel()
	c.t = c.t.Add(time.Second)
	h.Update()
	if runs != 3 {
		t.Errorf("runs after cancel = %d, want 3", runs)
	}
}

func TestLayoutNotifiesResize(t *testing.T) {
	h := NewHost(640, 480)
	var got [][2]int
	h.OnResize(func(w, ht int) { got = append(got, [2]int{w, ht}) })

	if w, ht := h.Layout(640, 480); w != 640 || ht != 480 {
		t.Errorf("Layout = %dx%d", w, ht)
	}
	h.Layout(800, 600)
	h.Layout(800, 600)
	if len(got) != 1 || got[0] != [2]int{800, 600} {
		t.Errorf("resize notifications = %v, want [[800 600]]", got)
	}
	if w, ht := h.Available(); w != 800 || ht != 600 {
		t.Errorf("Available() = %dx%d", w, ht)
	}
}

func TestPresentKeepsFrame(t *testing.T) {
	h := NewHost(10, 10)
	f := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := h.Present(f); err != nil {
		t.Fatal(err)
	}
	if h.frame != f || !h.dirty {
		t.Error("Present did not store the frame")
	}
}
