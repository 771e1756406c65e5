package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blob-arcade/internal/core"
)

// cellStyle identifies one foreground/background pair.
type cellStyle struct {
	fg, bg core.Color
}

// styleCache memoizes lipgloss styles per color pair. Themes use only a
// handful of colors, so the cache stays small.
var styleCache = map[cellStyle]lipgloss.Style{}

func styleFor(key cellStyle) lipgloss.Style {
	if style, ok := styleCache[key]; ok {
		return style
	}
	style := lipgloss.NewStyle()
	if key.fg != core.ColorDefault {
		style = style.Foreground(lipgloss.Color(string(key.fg)))
	}
	if key.bg != core.ColorDefault {
		style = style.Background(lipgloss.Color(string(key.bg)))
	}
	styleCache[key] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.FG, bg: cell.BG}

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.FG, bg: cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
