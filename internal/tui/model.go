package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sierpinski/internal/applog"
	"sierpinski/internal/chaos"
	"sierpinski/internal/raster"
)

const (
	headerHeight = 1
	footerHeight = 1
)

type keyMap struct {
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var keys = keyMap{
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the bubbletea model hosting a chaos game in the terminal.
type Model struct {
	width  int
	height int

	title string
	host  *Host
	game  *chaos.Game

	canvasStyle lipgloss.Style
	help        help.Model
	status      string
}

// New builds a model around a game whose scheduler and surface are host.
// title names the surface in the header; color tints the fractal.
func New(host *Host, game *chaos.Game, title string, color raster.Color) Model {
	return Model{
		title:       title,
		host:        host,
		game:        game,
		canvasStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(color.Hex())),
		help:        help.New(),
		status:      "waiting for window size",
	}
}

// Init starts the game and queues its first tick.
func (m Model) Init() tea.Cmd {
	if err := m.game.Start(); err != nil {
		applog.Logger().Warn("tui: start", "err", err)
	}
	return m.host.tickCmd()
}
