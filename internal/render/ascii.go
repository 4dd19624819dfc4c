// Package render turns grids into text and images. Grids are stored with
// y=0 at the bottom; every renderer here flips rows so the origin ends up
// in the bottom-left corner of the output.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raster/internal/draw"
	"github.com/vovakirdan/tui-raster/internal/grid"
)

// Style selects the glyphs used for text output.
type Style struct {
	Marked string // Glyph for a marked cell
	Empty  string // Glyph for an unmarked cell
	Axes   bool   // Print row and column numbers
}

// DefaultStyle returns two-column glyphs so cells come out roughly square.
func DefaultStyle() Style {
	return Style{
		Marked: "██",
		Empty:  "··",
		Axes:   true,
	}
}

// PlainStyle returns single-character ASCII glyphs, for logs and tests.
func PlainStyle() Style {
	return Style{
		Marked: "#",
		Empty:  ".",
	}
}

// cellWidth returns the column count of one rendered cell.
func (s Style) cellWidth() int {
	return max(utf8.RuneCountInString(s.Marked), utf8.RuneCountInString(s.Empty), 1)
}

// ASCII renders g as text, top row first.
func ASCII(g *grid.Grid, style Style) string {
	var sb strings.Builder
	size := g.Size()
	labelW := len(fmt.Sprint(max(size-1, 0)))

	for row := 0; row < size; row++ {
		y := size - 1 - row
		if row > 0 {
			sb.WriteRune('\n')
		}
		if style.Axes {
			sb.WriteString(fmt.Sprintf("%*d ", labelW, y))
		}
		for x := 0; x < size; x++ {
			if g.IsMarked(x, y) {
				sb.WriteString(style.Marked)
			} else {
				sb.WriteString(style.Empty)
			}
		}
	}

	if style.Axes && size > 0 {
		sb.WriteRune('\n')
		sb.WriteString(strings.Repeat(" ", labelW+1))
		cw := style.cellWidth()
		for x := 0; x < size; x++ {
			label := fmt.Sprint(x % 10)
			if cw > 1 {
				label = fmt.Sprintf("%-*d", cw, x)
				if len(label) > cw {
					label = label[len(label)-cw:]
				}
			}
			sb.WriteString(label)
		}
	}
	return sb.String()
}

// Panel renders one panel with its title and a marked-cell summary.
func Panel(p draw.Panel, style Style) string {
	var sb strings.Builder
	sb.WriteString(p.Title)
	sb.WriteRune('\n')
	sb.WriteString(ASCII(p.Grid, style))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("cells: %d  calls: %d  dropped: %d",
		p.Grid.MarkedCount(), p.Stats.Calls, p.Stats.Dropped))
	return sb.String()
}

// Panels lays panels out side by side, wrapping to a new row once the
// accumulated width would exceed maxWidth. A non-positive maxWidth never
// wraps.
func Panels(panels []draw.Panel, style Style, maxWidth int) string {
	var rows []string
	var current []string
	width := 0
	const gap = "   "

	for _, p := range panels {
		block := Panel(p, style)
		w := lipgloss.Width(block)
		if maxWidth > 0 && len(current) > 0 && width+len(gap)+w > maxWidth {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
			width = 0
		}
		if len(current) > 0 {
			current = append(current, gap)
			width += len(gap)
		}
		current = append(current, block)
		width += w
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return strings.Join(rows, "\n\n")
}
