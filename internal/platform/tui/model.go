package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/audio"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/registry"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// footerRows is the number of terminal rows reserved under the arena.
const footerRows = 1

// Options holds the optional collaborators of a Model.
// Zero values are valid: no score store, silent audio, discarded logs.
type Options struct {
	Store       *storage.Store
	Sink        audio.Sink
	Logger      *log.Logger
	Difficulty  string        // Recorded with saved rounds
	HoldRelease time.Duration // See HoldTracker
	HideHelp    bool
}

// roundStats is implemented by games that report details beyond the score.
type roundStats interface {
	Kills() int
	PlayTime() time.Duration
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	reseed   bool // Pick a fresh seed on every restart
	store    *storage.Store
	sink     audio.Sink
	logger   *log.Logger
	preset   string
	keys     KeyMap
	help     help.Model
	showHelp bool

	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool
	best       int // Best stored score of this game
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	reseed := cfg.Seed == 0
	if reseed {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Sink == nil {
		opts.Sink = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		config:     cfg,
		reseed:     reseed,
		store:      opts.Store,
		sink:       opts.Sink,
		logger:     opts.Logger,
		preset:     opts.Difficulty,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		showHelp:   !opts.HideHelp,
		hold:       NewHoldTracker(opts.HoldRelease),
		inputFrame: core.NewInputFrame(),
	}
	if m.store != nil {
		best, err := m.store.HighScore(game.ID())
		if err != nil {
			m.logger.Warn("cannot read high score", "error", err)
		}
		m.best = best
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.arenaRows(cfg.ScreenH))
	m.help.Width = cfg.ScreenW
	return m
}

// arenaRows returns the screen rows left for the game.
func (m Model) arenaRows(height int) int {
	if m.showHelp {
		height -= footerRows
	}
	return max(height, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("round ready", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.FrameDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, held := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case held:
		m.hold.Press(action)
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize adapts the screen buffer. The arena is measured in pixels
// and scaled on render, so the round itself is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.arenaRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && (m.gameState.GameOver() || m.gameState.Paused()) {
		m.restart()
	}

	m.hold.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.sink.Notify(result.Events)

	if m.gameState.GameOver() && !m.scoreSaved {
		m.saveRound()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.FrameDuration())
}

// restart begins a new round on a fresh seed and starts it on this frame.
func (m *Model) restart() {
	if m.reseed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.hold.ReleaseAll()
	m.scoreSaved = false
	m.inputFrame.Clear()
	m.inputFrame.Set(core.ActionStart)
	m.logger.Debug("round restarted", "game", m.game.ID(), "seed", m.config.Seed)
}

// saveRound records the finished round. Failures are logged and ignored.
func (m *Model) saveRound() {
	round := storage.Round{
		GameID:     m.game.ID(),
		Score:      m.gameState.Score,
		Difficulty: m.preset,
	}
	if rs, ok := m.game.(roundStats); ok {
		round.Kills = rs.Kills()
		round.PlayTime = rs.PlayTime()
	}
	m.logger.Info("round over", "game", round.GameID, "score", round.Score,
		"kills", round.Kills, "time", round.PlayTime.Round(time.Millisecond))

	if m.store == nil || round.Score == 0 {
		return
	}
	if _, err := m.store.SaveRound(round); err != nil {
		m.logger.Warn("cannot save score", "error", err)
		return
	}
	m.best = max(m.best, round.Score)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".invasion", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if !m.showHelp {
		return RenderScreen(m.screen)
	}
	footer := m.help.View(m.keys)
	if m.best > 0 {
		footer = fmt.Sprintf("best %d  %s", m.best, footer)
	}
	return renderFrame(m.screen, footer)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
