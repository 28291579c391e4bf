package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.host.resize(microArea(m.width, m.canvasHeight()))
		m.status = "running"
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.game.Stop()
			return m, tea.Quit
		}
	case tickMsg:
		return m, m.host.handleTick(msg)
	}
	return m, nil
}

// canvasHeight is the number of rows left for the fractal.
func (m Model) canvasHeight() int {
	return max(1, m.height-headerHeight-footerHeight)
}
