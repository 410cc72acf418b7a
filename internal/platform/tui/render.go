package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridbreak/internal/core"
)

// cellStyle identifies one foreground/background pair.
type cellStyle struct {
	fg, bg core.RGB
}

// styleCache keeps one lipgloss style per color pair seen on screen.
// Only touched from the Bubble Tea event loop.
var styleCache = map[cellStyle]lipgloss.Style{}

func styleFor(cs cellStyle) lipgloss.Style {
	if st, ok := styleCache[cs]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(cs.fg.Hex()))
	if !cs.bg.IsBlack() {
		st = st.Background(lipgloss.Color(cs.bg.Hex()))
	}
	styleCache[cs] = st
	return st
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

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Color, bg: cell.Fill}

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Color, bg: cell.Fill}) != start {
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
