package tui

import (
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg fires the scheduled callback. gen guards against ticks queued
// before a cancel.
type tickMsg struct{ gen int }

// Host is the terminal presentation surface and tick scheduler. All of its
// methods run on the bubbletea event loop.
type Host struct {
	availW, availH int
	onResize       []func(int, int)

	tick     func()
	interval time.Duration
	gen      int

	lines          []string
	frameW, frameH int
}

// NewHost returns a host with no area until the first window size arrives.
func NewHost() *Host { return &Host{} }

// Available reports the canvas area in braille micro-pixels.
func (h *Host) Available() (int, int) { return h.availW, h.availH }

// Present renders the frame to braille for the next View.
func (h *Host) Present(frame *image.RGBA) error {
	h.lines = renderFrame(frame)
	h.frameW, h.frameH = frame.Rect.Dx(), frame.Rect.Dy()
	return nil
}

func (h *Host) OnResize(fn func(int, int)) { h.onResize = append(h.onResize, fn) }

// Every arms the repeating tick. Only one callback is kept.
func (h *Host) Every(d time.Duration, fn func()) func() {
	h.tick, h.interval = fn, d
	h.gen++
	return func() {
		h.tick = nil
		h.gen++
	}
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

func (h *Host) tickCmd() tea.Cmd {
	if h.tick == nil {
		return nil
	}
	gen := h.gen
	return tea.Tick(h.interval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// handleTick runs the callback for a live tick and schedules the next one.
// The next tick is only queued after the callback returns, so ticks never
// overlap.
func (h *Host) handleTick(msg tickMsg) tea.Cmd {
	if h.tick == nil || msg.gen != h.gen {
		return nil
	}
	h.tick()
	return h.tickCmd()
}
