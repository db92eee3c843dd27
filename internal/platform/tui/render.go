package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pedal-arcade/internal/core"
)

var plainStyle = lipgloss.NewStyle()

// styleFor returns the lipgloss style painting a cell of color c.
func styleFor(c core.Color) lipgloss.Style {
	code := c.ANSI()
	if code == "" {
		return plainStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each run of same-colored cells on a row is styled once, which keeps the
// escape sequences per frame proportional to color changes, not cells.
func RenderScreen(s *core.Screen) string {
	var (
		sb     strings.Builder
		run    strings.Builder
		styles = make(map[core.Color]lipgloss.Style)
	)
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	flush := func(c core.Color) {
		if run.Len() == 0 {
			return
		}
		st, ok := styles[c]
		if !ok {
			st = styleFor(c)
			styles[c] = st
		}
		sb.WriteString(st.Render(run.String()))
		run.Reset()
	}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		runColor := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				flush(runColor)
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush(runColor)
	}
	return sb.String()
}
