package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(10, m.width)
	contentHeight := m.canvasHeight()

	header := titleStyle.Render(" sierpinski ─ " + m.title + " ")
	header = lipgloss.NewStyle().Width(contentWidth).MaxHeight(headerHeight).Render(header)

	canvas := m.canvasStyle.Render(strings.Join(m.host.lines, "\n"))
	body := lipgloss.Place(contentWidth, contentHeight, lipgloss.Center, lipgloss.Center, canvas)

	st := m.game.Stats()
	status := dimStyle.Render(fmt.Sprintf(" %s  ticks=%d dots=%d view=%dx%d ",
		m.status, st.Ticks, st.Dots, m.host.frameW, m.host.frameH))
	footer := lipgloss.JoinHorizontal(lipgloss.Bottom, status, dimStyle.Render(" "+m.help.View(keys)))
	footer = lipgloss.NewStyle().Width(contentWidth).MaxHeight(footerHeight).Render(footer)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}
