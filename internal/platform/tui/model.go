package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilewalk/internal/actor"
	"github.com/vovakirdan/tilewalk/internal/config"
	"github.com/vovakirdan/tilewalk/internal/core"
	"github.com/vovakirdan/tilewalk/internal/engine"
	"github.com/vovakirdan/tilewalk/internal/levels"
	"github.com/vovakirdan/tilewalk/internal/physics"
	"github.com/vovakirdan/tilewalk/internal/sequences"
	"github.com/vovakirdan/tilewalk/internal/world"
)

var (
	// ErrNoLevels is returned when a model is created without levels.
	ErrNoLevels = errors.New("tui: no levels to play")
	// ErrScreenshotsDisabled is reported when screenshots are turned off.
	ErrScreenshotsDisabled = errors.New("tui: screenshots disabled")
)

// bannerTime is how long the level title stays on screen after entering.
const bannerTime = 1500 * time.Millisecond

// Options configures a walking session.
type Options struct {
	Levels    []levels.Level
	Start     string // Level ID to start on; empty means the first level
	Game      config.Config
	Runtime   core.RuntimeConfig
	Sequences sequences.Catalog
	Seen      sequences.SeenStore // Nil keeps seen flags in memory
	Logger    *log.Logger         // Nil discards

	// ScreenshotDir defaults to ~/.tilewalk/screenshots.
	ScreenshotDir      string
	DisableScreenshots bool
}

// Model is the Bubble Tea model for walking through levels.
type Model struct {
	levels []levels.Level
	index  int
	level  levels.Level
	grid   *world.Grid
	body   *physics.Body
	prev   physics.Body // Body before the last fixed step

	player   config.PlayerConfig
	clock    *engine.Clock
	held     *core.HeldKeys
	director *sequences.Director
	lastTick time.Time

	screen        *core.Screen
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	logger        *log.Logger
	screenshotDir string
	noScreenshots bool
	now           func() time.Time

	status      string
	bannerUntil time.Time
	quitting    bool
	backToMenu  bool
}

// NewModel creates a model positioned on the start level.
func NewModel(opts Options) (Model, error) {
	if len(opts.Levels) == 0 {
		return Model{}, ErrNoLevels
	}

	cfg := opts.Runtime
	if cfg.TileWidth <= 0 {
		cfg.TileWidth = opts.Game.Render.TileWidth
	}
	if cfg.TileWidth <= 0 {
		cfg.TileWidth = 1
	}
	if cfg.Hold <= 0 {
		cfg.Hold = opts.Game.Input.Hold()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		levels:        opts.Levels,
		player:        opts.Game.Player,
		clock:         engine.NewClock(opts.Game.Engine.Step(), opts.Game.Engine.MaxFrame()),
		held:          core.NewHeldKeys(cfg.Hold),
		director:      sequences.NewDirector(opts.Sequences, opts.Seen),
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:        cfg,
		keyMapper:     NewKeyMapper(),
		logger:        logger,
		screenshotDir: opts.ScreenshotDir,
		noScreenshots: opts.DisableScreenshots,
		now:           time.Now,
	}

	start := 0
	if opts.Start != "" {
		start = -1
		for i, l := range opts.Levels {
			if l.ID == opts.Start {
				start = i
				break
			}
		}
		if start < 0 {
			return Model{}, fmt.Errorf("%w: %s", levels.ErrLevelNotFound, opts.Start)
		}
	}

	if err := m.enterLevel(start); err != nil {
		return Model{}, err
	}
	return m, nil
}

// enterLevel replaces the world with level i and respawns the player.
// On error the current level is left untouched.
func (m *Model) enterLevel(i int) error {
	lvl := m.levels[i]

	g, err := lvl.World()
	if err != nil {
		return err
	}

	body := actor.NewPlayer(lvl.Spawn(), m.player)
	if err := actor.ValidateSpawn(g, body); err != nil {
		return fmt.Errorf("level %s: %w", lvl.ID, err)
	}

	m.index = i
	m.level = lvl
	m.grid = g
	m.body = body
	m.prev = *body
	m.clock.Reset()
	m.held.Release()
	m.status = ""
	m.bannerUntil = m.now().Add(bannerTime)
	m.logger.Debug("entered level", "level", lvl.ID, "spawn", lvl.Spawn())

	if _, err := m.director.Start(lvl.Sequence); err != nil {
		m.logger.Warn("sequence state unavailable", "sequence", lvl.Sequence, "error", err)
	}
	return nil
}

// switchLevel enters level i and reports failures in the status line.
func (m *Model) switchLevel(i int) {
	n := len(m.levels)
	i = ((i % n) + n) % n
	if err := m.enterLevel(i); err != nil {
		m.logger.Warn("cannot enter level", "level", m.levels[i].ID, "error", err)
		m.status = err.Error()
	}
}

// levelIndex returns the index of the level with the given ID.
func (m *Model) levelIndex(id string) (int, bool) {
	for i, l := range m.levels {
		if l.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.status = "screenshot failed: " + err.Error()
		} else {
			m.status = "saved " + path
		}
		return m, nil
	}

	// Any other key advances a playing sequence.
	if m.director.Active() {
		id := m.director.Current()
		more, err := m.director.Advance()
		if err != nil {
			m.logger.Warn("sequence state unavailable", "sequence", id, "error", err)
		}
		if !more {
			m.logger.Debug("sequence finished", "sequence", id)
		}
		return m, nil
	}

	switch {
	case action.IsDirection():
		m.held.Press(action, m.now())
	case action == core.ActionNext:
		m.switchLevel(m.index + 1)
	case action == core.ActionPrev:
		m.switchLevel(m.index - 1)
	case action == core.ActionBack:
		m.backToMenu = true
	}

	return m, nil
}

// input samples the held directions.
func (m Model) input(now time.Time) actor.Input {
	return actor.Input{
		Left:  m.held.Held(core.ActionLeft, now),
		Right: m.held.Held(core.ActionRight, now),
		Up:    m.held.Held(core.ActionUp, now),
		Down:  m.held.Held(core.ActionDown, now),
	}
}

// handleTick advances the simulation by the real time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if m.backToMenu {
		return m, nil
	}
	if m.director.Active() {
		return m, tickCmd(m.config.TickRate)
	}

	in := m.input(now)
	m.clock.Run(elapsed, func(dt float64) {
		m.prev = *m.body
		actor.Update(m.body, in, dt, m.grid)
	})

	if label, target, ok := m.level.ExitFor(m.body); ok && in.Any() {
		if i, found := m.levelIndex(target); found {
			m.logger.Info("exit", "from", m.level.ID, "edge", label, "to", target)
			m.switchLevel(i)
		} else {
			m.status = fmt.Sprintf("exit %s leads to unknown level %q", label, target)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	if m.noScreenshots {
		return "", ErrScreenshotsDisabled
	}
	m.draw()

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".tilewalk", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.level.ID, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.director.Active() {
		return m.sequenceView()
	}

	m.draw()
	return RenderScreen(m.screen)
}

// Level returns the level being played.
func (m Model) Level() levels.Level {
	return m.level
}

// Body returns the player's body.
func (m Model) Body() physics.Body {
	return *m.body
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested the level picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}
