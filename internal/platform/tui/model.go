package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shooter-arcade/internal/core"
	"github.com/vovakirdan/shooter-arcade/internal/engine"
	"github.com/vovakirdan/shooter-arcade/internal/highscore"
	"github.com/vovakirdan/shooter-arcade/internal/registry"
	"github.com/vovakirdan/shooter-arcade/internal/storage"
)

// Services are the collaborators a game session talks to. Every field is
// optional.
type Services struct {
	Store        *storage.Store  // run history
	HighScoreDir string          // directory of per-game high-score files
	Listener     engine.Listener // receives engine events, e.g. audio
	Logger       *log.Logger
}

func (s Services) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.New(io.Discard)
}

// Model is the Bubble Tea model for running an arcade game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	svc        Services
	log        *log.Logger
	highScores *highscore.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	holds      *HoldTracker
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	embedded   bool // running inside a session that has a game picker
	quitting   bool
	backToMenu bool
	runSaved   bool // whether the current game over was recorded
}

// NewModel creates a new Bubble Tea model for the given game. The stored
// high score is loaded here so the game starts with it.
func NewModel(game registry.Game, svc Services, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		svc:        svc,
		log:        svc.logger().With("game", game.ID()),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		holds:      NewHoldTracker(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.playHeight())
	m.config.HighScore = core.Max(cfg.HighScore, m.loadHighScore())

	if obs, ok := game.(registry.Observable); ok && svc.Listener != nil {
		obs.AddListener(svc.Listener)
	}
	return m
}

// loadHighScore reads the high-score file and the run history and returns
// the larger value. Failures are logged and count as 0.
func (m *Model) loadHighScore() int {
	best := 0

	hs, err := highscore.OpenFor(m.svc.HighScoreDir, m.game.ID())
	if err != nil {
		m.log.Warn("cannot open high score file", "error", err)
	} else {
		m.highScores = hs
		n, err := hs.Load()
		if err != nil {
			m.log.Warn("cannot load high score, starting from 0", "path", hs.Path(), "error", err)
		}
		best = n
	}

	if m.svc.Store != nil {
		if n, err := m.svc.Store.HighScore(m.game.ID()); err == nil {
			best = core.Max(best, n)
		} else {
			m.log.Warn("cannot read best run", "error", err)
		}
	}
	return best
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if r, ok := m.game.(registry.ConfigReporter); ok {
		for _, err := range r.ConfigWarnings() {
			m.log.Warn("config file ignored, using defaults", "error", err)
		}
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.persistHighScore()
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if key.Matches(msg, m.keyMapper.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.playHeight())
		return m, nil
	}

	action, _ := m.keyMapper.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}
	if action.IsMovement() {
		m.holds.Press(action, time.Now())
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events. The playfield is scaled on
// render, so the game itself is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.playHeight())
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, a := range m.holds.Expire(now) {
		m.inputFrame.Release(a)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.Quit {
		m.persistHighScore()
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	// Record the run once per game over
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.persistHighScore()
		m.runSaved = true
	}
	if !m.gameState.GameOver {
		m.runSaved = false
	}

	return m, tickAfter(m.config.TickRate, result.Freeze)
}

func (m *Model) saveRun() {
	st := m.gameState
	if m.svc.Store == nil || st.Score <= 0 {
		return
	}
	id, err := m.svc.Store.SaveRun(storage.RunRecord{
		GameID:     m.game.ID(),
		Score:      st.Score,
		Level:      st.Level,
		Difficulty: st.Difficulty,
	})
	if err != nil {
		m.log.Warn("cannot save run", "error", err)
		return
	}
	m.log.Debug("run saved", "id", id, "score", st.Score, "level", st.Level)
}

// persistHighScore writes the high score when it beats the stored one.
func (m *Model) persistHighScore() {
	if m.highScores == nil {
		return
	}
	high := m.game.State().HighScore
	saved, err := m.highScores.SaveIfHigher(high)
	if err != nil {
		m.log.Warn("cannot save high score", "path", m.highScores.Path(), "error", err)
		return
	}
	if saved {
		m.log.Debug("high score saved", "score", high)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("cannot save screenshot", "error", err)
	}
}

// playHeight is the number of rows left for the game above the help bar.
func (m Model) playHeight() int {
	rows := 1
	if m.help.ShowAll {
		rows = len(m.keyMapper.Keys().FullHelp()[0])
	}
	return core.Max(m.height-rows, 1)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the state reported by the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user asked to return to the game picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, svc Services, cfg core.RuntimeConfig) error {
	model := NewModel(game, svc, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
