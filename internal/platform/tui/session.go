package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// SessionModel manages the full session flow: picker -> level -> picker.
// This is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	opts     Options
	picker   PickerModel
	walk     *Model
	inWalk   bool
	quitting bool
	err      error
}

// NewSessionModel creates a session. With opts.Start set the session
// opens directly on that level; otherwise it opens on the picker.
func NewSessionModel(opts Options) (SessionModel, error) {
	m := SessionModel{opts: opts}
	m.picker = m.newPicker()

	if opts.Start != "" {
		walk, err := NewModel(opts)
		if err != nil {
			return SessionModel{}, err
		}
		m.walk = &walk
		m.inWalk = true
	}
	return m, nil
}

func (m SessionModel) newPicker() PickerModel {
	return NewPickerModel(m.opts.Levels, m.opts.Seen, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.inWalk {
		return m.walk.Init()
	}
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	if m.inWalk && m.walk != nil {
		return m.updateWalk(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates when the picker is shown.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := m.picker.Update(msg)
	if picker, ok := newPicker.(PickerModel); ok {
		m.picker = picker
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if id := m.picker.Selected(); id != "" {
		opts := m.opts
		opts.Start = id
		walk, err := NewModel(opts)
		if err != nil {
			// Level cannot be entered; stay on the picker.
			m.err = err
			m.picker = m.newPicker()
			return m, nil
		}
		m.err = nil
		m.walk = &walk
		m.inWalk = true
		return m, m.walk.Init()
	}

	return m, cmd
}

// updateWalk handles updates while walking.
func (m SessionModel) updateWalk(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.walk.Update(msg)
	if walk, ok := newModel.(Model); ok {
		m.walk = &walk
	}

	if m.walk.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.walk.BackToMenu() {
		m.inWalk = false
		m.walk = nil
		m.picker = m.newPicker()
		return m, m.picker.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inWalk && m.walk != nil {
		return m.walk.View()
	}

	view := m.picker.View()
	if m.err != nil {
		view += "\n" + errorStyle.Render(m.err.Error())
	}
	return view
}

// Err returns why the last level chosen in the picker could not be entered.
func (m SessionModel) Err() error {
	return m.err
}

// RunSession starts a local Bubble Tea program for the session.
func RunSession(opts Options) error {
	model, err := NewSessionModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	// Report a level that could not be entered if the user quit on it.
	if sm, ok := final.(SessionModel); ok {
		return sm.Err()
	}
	return nil
}
