package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pedal-arcade/internal/core"
	"github.com/vovakirdan/pedal-arcade/internal/input"
	"github.com/vovakirdan/pedal-arcade/internal/loop"
	"github.com/vovakirdan/pedal-arcade/internal/registry"
	"github.com/vovakirdan/pedal-arcade/internal/share"
	"github.com/vovakirdan/pedal-arcade/internal/storage"
)

// statusDuration is how long a status line (share, screenshot) stays visible.
const statusDuration = 2 * time.Second

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	sharer    *share.Sharer
	config    core.RuntimeConfig
	keys      *KeyMapper
	held      *input.HeldKeys
	pending   core.InputFrame
	delta     loop.Delta
	gameState core.GameState
	clock     func() time.Time
	gen       uint64

	status      string
	statusUntil time.Time

	embedded   bool // Hosted inside a session; back returns to its menu
	backToMenu bool
	quitting   bool
	scoreSaved bool // Whether the current run is in the score history
}

// NewModel creates a new Bubble Tea model for the given game. Share
// sequences are written to out; a nil out skips the clipboard step.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, out io.Writer) Model {
	cfg = cfg.WithDefaults()
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if u, ok := game.(registry.HighScoreUser); ok && store != nil {
		u.UseHighScoreStore(store)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		sharer:  share.New(out),
		config:  cfg,
		keys:    NewKeyMapper(),
		held:    input.NewHeldKeys(cfg.HoldWindow),
		pending: core.NewInputFrame(),
		clock:   time.Now,
		gen:     nextTickGen(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := m.keys.MapMouse(msg); a != core.ActionNone {
			m.pending.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := m.keys.MapKey(msg)

	if ev.Quit {
		return m.quit()
	}
	if ev.Screenshot {
		m.saveScreenshot()
		return m, nil
	}

	now := m.clock()
	for _, a := range ev.Held {
		m.held.Press(a, now)
	}
	for _, a := range ev.Discrete {
		switch a {
		case core.ActionBack:
			if m.embedded {
				m.recordRun(m.gameState.Score)
				m.backToMenu = true
				return m, nil
			}
			return m.quit()
		case core.ActionShare:
			m.shareRun()
		default:
			m.pending.Set(a)
		}
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.recordRun(m.gameState.Score)
	m.quitting = true
	return m, tea.Quit
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.pending.Clone()
	m.pending.Clear()
	m.held.Apply(&frame, now)

	prev := m.gameState
	result := m.game.Step(core.Tick{
		Dt:    m.delta.Next(now),
		Now:   now,
		Input: frame,
	})
	m.gameState = result.State

	// A restart ends the previous run
	if (prev.GameOver && !m.gameState.GameOver) || m.gameState.Score < prev.Score {
		m.recordRun(prev.Score)
		m.scoreSaved = false
		m.held.Reset()
	}

	// Save score on game over (once)
	if m.gameState.GameOver {
		m.recordRun(m.gameState.Score)
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate, m.gen)
}

// recordRun appends the run to the score history once.
func (m *Model) recordRun(score int) {
	if m.scoreSaved || score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}
	runID, err := m.store.SaveScore(m.game.ID(), score)
	if err != nil {
		log.Warn("tui: cannot save score", "game", m.game.ID(), "score", score, "err", err)
		return
	}
	log.Debug("tui: run saved", "game", m.game.ID(), "score", score, "run", runID)
}

// shareRun sends the game's share text down the share chain.
func (m *Model) shareRun() {
	s, ok := m.game.(registry.Sharer)
	if !ok {
		m.setStatus("Sharing is not available for this game")
		return
	}

	method, err := m.sharer.Share(context.Background(), share.Message{
		Title: m.game.Title(),
		Text:  s.ShareText(),
		URL:   share.ProjectURL,
	})
	if err != nil {
		m.setStatus("Could not share")
		return
	}
	m.setStatus("Score " + method.String())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn("tui: screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("tui: screenshot failed", "err", err)
		return
	}

	timestamp := m.clock().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("tui: screenshot failed", "path", path, "err", err)
		return
	}
	m.setStatus("Screenshot saved")
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusUntil = m.clock().Add(statusDuration)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" && m.clock().Before(m.statusUntil) {
		m.screen.DrawTextCentered(m.screen.Height()-1, m.status, core.ColorBrightYellow)
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if an embedded model asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg, os.Stdout)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses pedal
	)

	_, err := p.Run()
	return err
}
