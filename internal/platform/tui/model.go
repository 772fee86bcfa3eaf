package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/canyon-runner/internal/core"
	"github.com/vovakirdan/canyon-runner/internal/storage"
)

// Game is the contract the terminal loop needs from a simulation.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(input core.InputFrame) core.StepResult
	Render(screen *core.Screen)
	State() core.GameState
}

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       Game
	screen     *core.Screen
	board      storage.Leaderboard
	logger     *log.Logger
	config     core.RuntimeConfig
	clockSeed  bool // reseed from the clock on every new session
	keys       *KeyMapper
	inputFrame *core.InputFrame
	gameState  core.GameState
	quitting   bool
	saved      int // records written this run
}

// NewModel creates a new Bubble Tea model for the given game.
// board and logger may be nil.
func NewModel(game Game, board storage.Leaderboard, logger *log.Logger, cfg core.RuntimeConfig) Model {
	clockSeed := cfg.Seed == 0
	if clockSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	frame := core.NewInputFrame()
	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		board:      board,
		logger:     logger,
		config:     cfg,
		clockSeed:  clockSeed,
		keys:       NewKeyMapper(),
		inputFrame: &frame,
	}

	// Reset here rather than in Init: Init has a value receiver.
	game.Reset(cfg)
	m.gameState = game.State()
	logger.Info("session started", "game", game.ID(), "player", cfg.PlayerName, "seed", cfg.Seed)
	return m
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
		m.step()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, m.inputFrame) {
		m.quitting = true
		m.logger.Info("session ended", "score", m.gameState.Score, "game_over", m.gameState.GameOver)
		return m, tea.Quit
	}
	return m, nil
}

// step runs one simulation tick with the input gathered since the last one.
func (m *Model) step() {
	if m.inputFrame.Has(core.ActionRestart) && m.clockSeed {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		m.logger.Info("session restarted", "seed", m.config.Seed)
		return
	}

	result := m.game.Step(*m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logEvent(ev)
	}
	if result.Record != nil {
		m.saveRecord(*result.Record)
	}
}

func (m *Model) logEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventPlayerHit:
		m.logger.Debug(ev.Kind.String(), "tick", ev.Tick, "detail", ev.Detail)
	default:
		m.logger.Info(ev.Kind.String(), "tick", ev.Tick, "detail", ev.Detail)
	}
}

// saveRecord writes the session score. Failures are logged and play goes on.
func (m *Model) saveRecord(rec core.ScoreRecord) {
	if m.board == nil {
		return
	}
	if err := m.board.Save(rec.Name, rec.Score); err != nil {
		m.logger.Error("failed to save score", "name", rec.Name, "score", rec.Score, "err", err)
		return
	}
	m.saved++
	m.logger.Info("score saved", "name", rec.Name, "score", rec.Score)
}

// saveScreenshot writes the current frame as plain text under ~/.canyon/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".canyon", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the state after the most recent tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one game session.
func Run(game Game, board storage.Leaderboard, logger *log.Logger, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, board, logger, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
