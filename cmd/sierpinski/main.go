package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sierpinski/internal/applog"
	"sierpinski/internal/chaos"
	"sierpinski/internal/config"
	"sierpinski/internal/headless"
	"sierpinski/internal/tui"
	"sierpinski/internal/window"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	gui := fs.Bool("gui", false, "draw in a desktop window instead of the terminal")
	snapshot := fs.String("snapshot", "", "run headless and write a PNG to this file")
	ticks := fs.Int("ticks", 1000, "ticks to run in snapshot mode")
	size := fs.Int("size", 800, "snapshot width and height in pixels")
	logPath := fs.String("log", "", "write logs to this file")
	verbose := fs.Bool("v", false, "debug logging")

	cfg, err := config.Default().Parse(fs, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		level := slog.LevelInfo
		if *verbose {
			level = slog.LevelDebug
		}
		applog.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	}
	col, err := cfg.DrawColor()
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case *snapshot != "":
		h := headless.New(*size, *size)
		g, err := chaos.New(cfg, h, h)
		if err != nil {
			log.Fatal(err)
		}
		if err := g.Start(); err != nil {
			log.Fatal(err)
		}
		h.Advance(*ticks)
		f, err := os.Create(*snapshot)
		if err != nil {
			log.Fatal(err)
		}
		if err := h.WritePNG(f); err != nil {
			f.Close()
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
	case *gui:
		h := window.NewHost(cfg.Resolution*3, cfg.Height()*3)
		g, err := chaos.New(cfg, h, h)
		if err != nil {
			log.Fatal(err)
		}
		if err := window.Run(h, cfg.Surface, g.Start); err != nil {
			log.Fatal(err)
		}
	default:
		h := tui.NewHost()
		g, err := chaos.New(cfg, h, h)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := tea.NewProgram(tui.New(h, g, cfg.Surface, col), tea.WithAltScreen()).Run(); err != nil {
			log.Fatal(err)
		}
	}
}
