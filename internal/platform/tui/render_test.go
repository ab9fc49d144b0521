package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilewalk/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, '#', core.ColorWall)
	s.SetColored(1, 0, '@', core.ColorActor)
	s.SetColored(2, 0, '@', core.ColorActor)
	s.Set(3, 1, 'x')

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 4 {
			t.Errorf("line %d width = %d, expected 4", i, w)
		}
	}
	if !strings.Contains(lines[0], "#") || strings.Count(lines[0], "@") != 2 {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "x") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestPaletteStyleFallback(t *testing.T) {
	p := Palette{}
	if got := p.Style(core.ColorActor).Render("a"); got != "a" {
		t.Errorf("unknown color rendered as %q, expected plain text", got)
	}
}
