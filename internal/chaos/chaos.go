// Package chaos runs the chaos game: a point repeatedly jumps halfway to a
// randomly chosen corner of a shape and every landing spot is plotted.
//
// A Game is driven by a host Scheduler. Each tick plots a fixed batch of
// points and then presents the buffer once, so presentation cost is paid per
// tick rather than per point. Hosts invoke callbacks from a single goroutine
// and never overlap ticks, so the game holds no locks.
package chaos

import (
	"errors"
	"fmt"
	"time"

	"sierpinski/internal/applog"
	"sierpinski/internal/config"
	"sierpinski/internal/geom"
	"sierpinski/internal/raster"
	"sierpinski/internal/viewport"
)

// ErrRunning is returned by Start on a game that is already running.
var ErrRunning = errors.New("chaos: game already running")

// Scheduler runs fn repeatedly, at least d apart, until cancel is called.
type Scheduler interface {
	Every(d time.Duration, fn func()) (cancel func())
}

// Canvas receives plotted points and can be handed to a Display.
type Canvas interface {
	viewport.Source
	Plot(p geom.Point, c raster.Color)
}

// Display presents a canvas.
type Display interface {
	Update(src viewport.Source)
}

// State is the lifecycle state of a Game.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Stats counts work done since the game was built.
type Stats struct {
	Ticks uint64
	Dots  uint64
}

// Game is the chaos game loop.
type Game struct {
	shape    geom.Shape
	canvas   Canvas
	display  Display
	color    raster.Color
	dots     int
	interval time.Duration
	sched    Scheduler

	state  State
	pos    geom.Point
	cancel func()
	stats  Stats
}

// NewGame wires a game from its parts. dots and interval must be positive.
func NewGame(shape geom.Shape, canvas Canvas, display Display, color raster.Color, dots int, interval time.Duration, sched Scheduler) *Game {
	return &Game{
		shape:    shape,
		canvas:   canvas,
		display:  display,
		color:    color,
		dots:     dots,
		interval: interval,
		sched:    sched,
	}
}

// New validates cfg and builds an idle game drawing into a fresh buffer and
// presenting on surface, with ticks driven by sched.
func New(cfg config.Config, sched Scheduler, surface viewport.Surface) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	color, err := cfg.DrawColor()
	if err != nil {
		return nil, err
	}
	buf, err := raster.NewBuffer(cfg.Resolution, cfg.Height())
	if err != nil {
		return nil, err
	}
	w := float64(cfg.Resolution)
	h := w / cfg.AspectRatio
	vp := viewport.New(surface, cfg.AspectRatio)
	return NewGame(geom.Triangle(w, h), buf, vp, color, cfg.DotsPerTick, cfg.TickInterval, sched), nil
}

// Start moves the game to Running: the point starts on a random corner and
// ticks are scheduled.
func (g *Game) Start() error {
	if g.state == Running {
		return ErrRunning
	}
	g.pos = g.shape.RandomCorner()
	g.state = Running
	g.cancel = g.sched.Every(g.interval, g.Tick)
	applog.Logger().Info("chaos game started", "dots_per_tick", g.dots, "interval", g.interval)
	return nil
}

// Stop cancels further ticks and returns the game to Idle.
func (g *Game) Stop() {
	if g.state != Running {
		return
	}
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.state = Idle
	applog.Logger().Info("chaos game stopped", "ticks", g.stats.Ticks, "dots", g.stats.Dots)
}

// Tick plots one batch of points and presents the canvas once.
// It does nothing unless the game is running.
func (g *Game) Tick() {
	if g.state != Running {
		return
	}
	for i := 0; i < g.dots; i++ {
		target := g.shape.RandomCorner()
		g.pos = geom.Midpoint(g.pos, target)
		g.canvas.Plot(g.pos, g.color)
	}
	g.stats.Dots += uint64(g.dots)
	g.stats.Ticks++
	g.display.Update(g.canvas)
}

// State returns the lifecycle state.
func (g *Game) State() State { return g.state }

// Position returns the current running point.
func (g *Game) Position() geom.Point { return g.pos }

// Stats returns the work counters.
func (g *Game) Stats() Stats { return g.stats }

// Canvas returns the plotting target.
func (g *Game) Canvas() Canvas { return g.canvas }
