package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilewalk/internal/core"
)

// Palette maps cell colors to terminal styles.
type Palette map[core.Color]lipgloss.Style

// DefaultPalette is used for every screen the walk view draws.
var DefaultPalette = Palette{
	core.ColorWall:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorFloor:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorSolid:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	core.ColorActor:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	core.ColorExit:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorText:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorDim:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	core.ColorAccent: lipgloss.NewStyle().Foreground(lipgloss.Color("57")).Bold(true),
}

// Style returns the style for c, or an unstyled one.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if style, ok := p[c]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Render converts a screen buffer to a styled string. Each run of
// same-colored cells in a row gets a single style.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		p.renderRow(&sb, s, y)
	}
	return sb.String()
}

func (p Palette) renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run []rune
	color := core.ColorDefault

	flush := func() {
		if len(run) > 0 {
			sb.WriteString(p.Style(color).Render(string(run)))
			run = run[:0]
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != color {
			flush()
			color = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()
}

// RenderScreen renders s with DefaultPalette.
func RenderScreen(s *core.Screen) string {
	return DefaultPalette.Render(s)
}
