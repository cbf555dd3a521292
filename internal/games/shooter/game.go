// Package shooter implements the arcade shooters built on the shared engine.
// Each variant is one YAML configuration: a formation fleet or randomly
// spawned opponents, attacking vertically or from the side.
package shooter

import (
	"github.com/vovakirdan/shooter-arcade/internal/config"
	"github.com/vovakirdan/shooter-arcade/internal/core"
	"github.com/vovakirdan/shooter-arcade/internal/engine"
	"github.com/vovakirdan/shooter-arcade/internal/registry"
)

// Game adapts an engine.Engine to the registry.Game interface.
type Game struct {
	id        string
	cfg       config.ShooterConfig
	loaded    bool
	runtime   core.RuntimeConfig
	eng       *engine.Engine
	listeners []engine.Listener
	warnings  []error // config files skipped by the last lookup
	quit      bool
}

// New creates the variant with the given ID using its built-in tuning.
// The on-disk configuration is looked up on the first Reset.
func New(id string) *Game {
	g := &Game{
		id:      id,
		cfg:     config.DefaultShooterConfig(id),
		runtime: core.DefaultConfig(),
	}
	g.eng = g.newEngine(config.DifficultyMedium, 0)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Title
}

// Config returns the active configuration.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// LoadConfig replaces the tuning with the file at path. It takes effect on
// the next Reset.
func (g *Game) LoadConfig(path string) error {
	cfg, err := config.LoadShooter(g.id, path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.loaded = true
	return nil
}

// ConfigWarnings returns the config files that were found but ignored.
func (g *Game) ConfigWarnings() []error {
	return g.warnings
}

// AddListener subscribes l to engine events of this and every later run.
func (g *Game) AddListener(l engine.Listener) {
	g.listeners = append(g.listeners, l)
}

// Reset builds a fresh engine in the Menu state. The high score carries
// over from the previous engine when it beats the configured one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.loaded {
		// Without a custom path the loader falls back instead of failing.
		var report config.LoadReport
		g.cfg, report, _ = config.LoadShooterReport(g.id, "")
		g.warnings = report.Skipped
		g.loaded = true
	}
	g.runtime = cfg
	g.quit = false

	level, err := config.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		level = config.DifficultyMedium
	}
	high := cfg.HighScore
	if g.eng != nil {
		high = core.Max(high, g.eng.Score().HighScore)
	}
	g.eng = g.newEngine(level, high)
}

func (g *Game) newEngine(level config.DifficultyLevel, high int) *engine.Engine {
	return engine.New(g.cfg,
		engine.WithSeed(g.runtime.Seed),
		engine.WithProfile(level),
		engine.WithHighScore(high),
		engine.WithListener(engine.ListenerFunc(g.publish)),
	)
}

func (g *Game) publish(ev engine.Event) {
	for _, l := range g.listeners {
		l.OnEvent(ev)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		g.quit = true
	}
	res := g.eng.Step(in)
	return core.StepResult{
		State:  g.State(),
		Freeze: res.Freeze,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	sk := g.eng.Score()
	st := g.eng.State()
	return core.GameState{
		Phase:      string(st),
		Score:      sk.Score,
		HighScore:  sk.HighScore,
		Level:      sk.Level,
		Lives:      sk.Lives,
		Difficulty: string(g.eng.Selected()),
		GameOver:   st == engine.StateGameOver,
		Paused:     st == engine.StatePaused,
		Quit:       g.quit,
	}
}

// Snapshot exposes the engine state for rendering and tests.
func (g *Game) Snapshot() engine.Snapshot {
	return g.eng.Snapshot()
}

// Register every variant with the registry
func init() {
	for _, id := range config.GameIDs() {
		registry.Register(id, func() registry.Game {
			return New(id)
		})
	}
}
