package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paddleball/internal/core"
)

// Styles caches one lipgloss style per cell color. Filled cells paint the
// glyph in their color; blank cells paint the background.
type Styles struct {
	background core.Color
	cache      map[core.Color]lipgloss.Style
}

// NewStyles creates an empty style cache.
func NewStyles() *Styles {
	return &Styles{cache: make(map[core.Color]lipgloss.Style)}
}

func (st *Styles) style(c core.Color, bg core.Color) lipgloss.Style {
	if bg != st.background {
		clear(st.cache)
		st.background = bg
	}
	if s, ok := st.cache[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	st.cache[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (st *Styles) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	bg := s.Background()
	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(st.style(startColor, bg).Render(run.String()))
		}
	}
	return sb.String()
}
