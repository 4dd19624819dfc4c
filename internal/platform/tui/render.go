package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raster/internal/draw"
	"github.com/vovakirdan/tui-raster/internal/grid"
)

// RenderGrid converts a grid to styled text, top row first so that y=0
// ends up at the bottom. Adjacent cells with the same state share one
// styled run to minimize ANSI escape sequences.
func RenderGrid(g *grid.Grid, marked, empty string, theme Theme) string {
	var sb strings.Builder
	size := g.Size()
	sb.Grow(size * size * (len(marked) + 1))

	for row := 0; row < size; row++ {
		y := size - 1 - row
		if row > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < size {
			state := g.IsMarked(x, y)

			var run strings.Builder
			for x < size && g.IsMarked(x, y) == state {
				if state {
					run.WriteString(marked)
				} else {
					run.WriteString(empty)
				}
				x++
			}

			style := theme.Empty
			if state {
				style = theme.Marked
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// renderPanel draws one bordered panel.
func (m Model) renderPanel(p draw.Panel) string {
	var b strings.Builder
	b.WriteString(m.theme.PanelTitle.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(RenderGrid(p.Grid, m.style.Marked, m.style.Empty, m.theme))
	b.WriteString("\n")
	b.WriteString(m.theme.PanelStats.Render(fmt.Sprintf("cells %d  calls %d",
		p.Grid.MarkedCount(), p.Stats.Calls)))
	return m.theme.PanelBorder.Render(b.String())
}

// renderPanels lays the panels out side by side, wrapping rows that would
// not fit the terminal width.
func (m Model) renderPanels() string {
	var rows []string
	var current []string
	width := 0

	for _, p := range m.panels {
		block := m.renderPanel(p)
		w := lipgloss.Width(block)
		if m.width > 0 && len(current) > 0 && width+w > m.width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
			width = 0
		}
		current = append(current, block)
		width += w
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderForm draws the six labelled inputs on one line.
func (m Model) renderForm() string {
	fields := make([]string, 0, fieldCount)
	for i, in := range m.inputs {
		label := m.theme.Label
		if i == m.focus {
			label = m.theme.LabelFocused
		}
		fields = append(fields, label.Render(fieldLabels[i]+":")+" "+in.View())
	}
	return strings.Join(fields, "  ")
}

// renderScreen draws the whole draw screen.
func (m Model) renderScreen() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("RASTER"))
	b.WriteString("\n\n")
	b.WriteString(m.renderForm())
	b.WriteString("\n\n")
	b.WriteString(m.renderPanels())
	b.WriteString("\n")

	if m.status != "" {
		style := m.theme.StatusOK
		if m.statusErr {
			style = m.theme.StatusErr
		}
		b.WriteString(style.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
