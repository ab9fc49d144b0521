package tui

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/levels"
	"github.com/vovakirdan/tilewalk/internal/physics"
)

// Glyphs used by the world view.
const (
	glyphWall  = '█'
	glyphFloor = ' '
	glyphExit  = '░'
	glyphActor = '▓'
)

// draw renders the world, the actor and the status line into m.screen.
// The camera follows the actor when the level is larger than the screen.
func (m *Model) draw() {
	s := m.screen
	s.Clear()
	if s.Width() == 0 || s.Height() == 0 {
		return
	}

	tw := m.config.TileWidth
	view := core.NewRect(0, 0, s.Width(), max(s.Height()-1, 0)) // Bottom row is the status line
	actorX, actorY := m.drawnPosition()
	drawn := physics.Body{X: actorX, Y: actorY, W: m.body.W, H: m.body.H}
	cx, cy := drawn.Center()

	offX := core.Follow(int(cx*float64(tw)), view.W, m.grid.Width()*tw)
	offY := core.Follow(int(cy), view.H, m.grid.Height())

	exits := m.exitEdges()

	for sy := range view.H {
		wy := sy + offY
		for sx := range view.W {
			col := sx + offX
			if col < 0 || wy < 0 {
				continue
			}
			wx := col / tw
			if !m.grid.InBounds(wx, wy) {
				continue
			}
			r, c := m.tileGlyph(wx, wy, exits)
			s.SetColored(sx, sy, r, c)
		}
	}

	// Actor at its sub-cell position, rounded to the nearest column.
	ax := int(math.Round(actorX*float64(tw))) - offX
	ay := int(math.Round(actorY)) - offY
	aw := max(int(math.Round(m.body.W*float64(tw))), 1)
	ah := max(int(math.Round(m.body.H)), 1)
	for y := ay; y < ay+ah; y++ {
		for x := ax; x < ax+aw; x++ {
			if view.Contains(x, y) {
				s.SetColored(x, y, glyphActor, core.ColorActor)
			}
		}
	}

	if m.now().Before(m.bannerUntil) {
		m.drawBanner(view)
	}
	m.drawStatus(view.Bottom())
}

// drawnPosition interpolates the body between the last two fixed steps
// by the clock's unspent fraction of a step.
func (m *Model) drawnPosition() (x, y float64) {
	alpha := m.clock.Alpha()
	x = m.prev.X + (m.body.X-m.prev.X)*alpha
	y = m.prev.Y + (m.body.Y-m.prev.Y)*alpha
	return x, y
}

// drawBanner shows the level title in a box at the top of the view.
func (m *Model) drawBanner(view core.Rect) {
	title := m.level.Title()
	w := min(utf8.RuneCountInString(title)+6, view.W)
	if w < 3 || view.H < 3 {
		return
	}
	box := core.NewRect(view.X, view.Y, view.W, 3).Centered(w, 3)
	m.screen.DrawRect(box, ' ', core.ColorDefault)
	m.screen.DrawBox(box, core.ColorAccent)
	m.screen.DrawTextCentered(box.Y+1, title, core.ColorAccent)
}

// tileGlyph picks the rune and color for a world cell.
func (m *Model) tileGlyph(x, y int, exits map[string]bool) (rune, core.Color) {
	sym := m.grid.At(x, y)

	switch {
	case sym == m.grid.Wall():
		return glyphWall, core.ColorWall
	case m.grid.IsSolid(sym):
		return rune(sym), core.ColorSolid
	}

	if m.onExitEdge(x, y, exits) {
		return glyphExit, core.ColorExit
	}
	if rune(sym) == m.level.Legend.Floor {
		return glyphFloor, core.ColorFloor
	}
	return rune(sym), core.ColorFloor
}

// exitEdges returns the grid edges that lead somewhere.
func (m *Model) exitEdges() map[string]bool {
	edges := make(map[string]bool, len(m.level.Exits))
	for label := range m.level.Exits {
		edges[label] = true
	}
	return edges
}

func (m *Model) onExitEdge(x, y int, exits map[string]bool) bool {
	return (exits[levels.ExitWest] && x == 0) ||
		(exits[levels.ExitEast] && x == m.grid.Width()-1) ||
		(exits[levels.ExitNorth] && y == 0) ||
		(exits[levels.ExitSouth] && y == m.grid.Height()-1)
}

// drawStatus writes the level title, position and hints on row y.
func (m *Model) drawStatus(y int) {
	left := fmt.Sprintf(" %s  (%.2f, %.2f)", m.level.Title(), m.body.X, m.body.Y)
	if m.status != "" {
		left += "  " + m.status
	}
	m.screen.DrawText(0, y, left, core.ColorText)

	hint := "n/b level  esc menu  q quit "
	if x := m.screen.Width() - len(hint); x > utf8.RuneCountInString(left) {
		m.screen.DrawText(x, y, hint, core.ColorDim)
	}
}

// Sequence overlay styles.
var (
	sequenceBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 3)
	sequenceCaptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	sequenceTextStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	sequenceHintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

// sequenceView renders the active sequence frame full screen.
func (m Model) sequenceView() string {
	frame, pos, total, ok := m.director.Frame()
	if !ok {
		return ""
	}

	width := min(max(m.config.ScreenW-10, 20), 64)

	var parts []string
	if frame.Image != "" {
		parts = append(parts, sequenceCaptionStyle.Render("["+frame.Image+"]"))
	}
	for _, line := range frame.Text {
		parts = append(parts, sequenceTextStyle.Width(width).Render(line))
	}
	parts = append(parts, sequenceHintStyle.Render(fmt.Sprintf("%s  (%d/%d)", m.director.Hint(), pos, total)))

	box := sequenceBoxStyle.Render(strings.Join(parts, "\n\n"))
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, box)
}
