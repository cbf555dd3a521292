package engine

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/shooter-arcade/internal/config"
	"github.com/vovakirdan/shooter-arcade/internal/core"
)

// moveFlags holds the movement keys currently held. Pressing one direction
// releases the opposite one on the same axis.
type moveFlags struct {
	left, right, up, down bool
}

func (m *moveFlags) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		m.left, m.right = true, false
	case core.ActionRight:
		m.right, m.left = true, false
	case core.ActionUp:
		m.up, m.down = true, false
	case core.ActionDown:
		m.down, m.up = true, false
	}
}

func (m *moveFlags) release(a core.Action) {
	switch a {
	case core.ActionLeft:
		m.left = false
	case core.ActionRight:
		m.right = false
	case core.ActionUp:
		m.up = false
	case core.ActionDown:
		m.down = false
	}
}

// inputOrder fixes the order in which the actions of one frame are applied.
var inputOrder = []core.Action{
	core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown,
	core.ActionEasy, core.ActionMedium, core.ActionHard,
	core.ActionMenu, core.ActionBack, core.ActionPause,
	core.ActionConfirm, core.ActionRestart,
}

// StepResult is what one call to Step produced.
type StepResult struct {
	State  State
	Events []Event

	// Freeze is the pause the loop driver should insert before the next
	// tick, set after the avatar loses a life.
	Freeze time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed sets the RNG seed. The same seed and inputs replay identically.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// WithHighScore seeds the score keeper with a stored high score.
func WithHighScore(n int) Option {
	return func(e *Engine) { e.score.HighScore = n }
}

// WithProfile selects the difficulty used by the first run.
func WithProfile(level config.DifficultyLevel) Option {
	return func(e *Engine) { e.selected = level }
}

// WithListener registers an event listener.
func WithListener(l Listener) Option {
	return func(e *Engine) { e.listeners = append(e.listeners, l) }
}

// Engine drives one shooter: it owns the world, the live difficulty profile,
// the score keeper and the state machine, and advances them one tick per Step.
type Engine struct {
	cfg    config.ShooterConfig
	orient orientation
	seed   int64
	rng    *rand.Rand

	world   *World
	spawner *SpawnController
	collide *CollisionSystem
	fleet   Fleet
	machine *Machine

	score    ScoreKeeper
	selected config.DifficultyLevel
	profile  config.DifficultyProfile // live copy, scaled by level-ups
	moves    moveFlags
	kills    int  // kills since the last level-up or hit
	recorded bool // high score already announced this run

	tick      uint64
	events    []Event
	listeners []Listener
}

// New creates an engine in the Menu state.
func New(cfg config.ShooterConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:      cfg,
		orient:   newOrientation(cfg.Orientation),
		seed:     1,
		score:    NewScoreKeeper(0),
		selected: config.DifficultyMedium,
		fleet:    NewFleet(),
		machine:  NewMachine(),
	}
	for _, opt := range opts {
		opt(e)
	}

	pf := core.NewRect(0, 0, cfg.Playfield.Width, cfg.Playfield.Height)
	e.rng = rand.New(rand.NewSource(e.seed))
	e.world = NewWorld(pf)
	e.spawner = NewSpawnController(cfg, e.rng)
	e.collide = NewCollisionSystem(pf, cfg.Sprites, cfg.Effects.ExplosionTTL)
	e.profile = cfg.Difficulty.Profile(e.selected)
	e.score.Lives = e.profile.Lives
	e.recenter()
	return e
}

// State returns the active state machine state.
func (e *Engine) State() State {
	return e.machine.State()
}

// Score returns a copy of the score keeper.
func (e *Engine) Score() ScoreKeeper {
	return e.score
}

// Profile returns a copy of the live difficulty profile.
func (e *Engine) Profile() config.DifficultyProfile {
	return e.profile
}

// Selected returns the difficulty the next run will start with.
func (e *Engine) Selected() config.DifficultyLevel {
	return e.selected
}

// Handle feeds one discrete action to the state machine and carries out the
// command it returns. Movement and fire are handled by Step.
func (e *Engine) Handle(a core.Action) Transition {
	t := e.machine.Handle(a)

	switch t.Command {
	case CmdStartRun:
		e.startRun()
	case CmdSelectProfile:
		e.selected = t.Level
		if e.machine.InRun() {
			e.profile = e.profileAt(t.Level, e.score.Level)
		}
	}

	switch {
	case t.From == StatePlaying && t.To == StatePaused:
		e.emit(EventPaused)
	case t.From == StatePaused && t.To == StatePlaying && t.Command == CmdNone:
		e.emit(EventResumed)
	}
	return t
}

// Step applies one frame of input and, while Playing, advances the
// simulation by one tick in a fixed order: avatar, fire, spawning, movement
// and retirement, collisions, scoring and leveling, hit resolution.
func (e *Engine) Step(in core.InputFrame) StepResult {
	e.tick++
	e.events = nil

	for _, a := range inputOrder {
		if a.IsMovement() {
			if in.Released(a) {
				e.moves.release(a)
			}
			if in.Has(a) {
				e.moves.press(a)
			}
			continue
		}
		if in.Has(a) {
			e.Handle(a)
		}
	}

	var freeze time.Duration
	if e.machine.State() == StatePlaying {
		freeze = e.simulate(in.Has(core.ActionFire))
		e.world.Compact()
	}

	return StepResult{
		State:  e.machine.State(),
		Events: e.events,
		Freeze: freeze,
	}
}

func (e *Engine) simulate(fire bool) time.Duration {
	w := e.world
	p := &e.profile

	dx, dy := e.orient.steer(e.moves)
	w.Avatar.VX, w.Avatar.VY = dx*p.AvatarSpeed, dy*p.AvatarSpeed
	w.Avatar.Move()
	w.Avatar.Rect = w.Avatar.Rect.ClampInto(w.Playfield)

	if fire && e.spawner.Fire(w.Avatar.Rect, w.Shots, p) {
		e.emit(EventFire)
	}

	e.spawner.MaybeSpawnOpponent(w.Opponents, w.Playfield, p)
	if e.spawner.MaybeEnemyFire(w.Opponents, w.EnemyShots, p) {
		e.emit(EventEnemyFire)
	}

	retire := func(pool *Pool) func(*Entity) {
		return func(ent *Entity) {
			ent.Move()
			if ent.Exited(w.Playfield) {
				pool.Kill(ent)
			}
		}
	}
	w.Shots.Each(retire(w.Shots))
	w.EnemyShots.Each(retire(w.EnemyShots))
	breachers := e.moveOpponents()
	w.Effects.Each(func(fx *Entity) {
		if fx.Tick() {
			w.Effects.Kill(fx)
		}
	})

	report := e.collide.Resolve(w)

	if n := len(report.Kills); n > 0 {
		e.score.AddKill(p.ScorePerKill, n)
		e.kills += n
		e.emit(EventExplosion)
		if e.score.CheckHighScore() && !e.recorded {
			e.recorded = true
			e.emit(EventHighScore)
		}
	}
	// A formation emptied by escapes advances the wave too
	e.checkLevelUp()

	if report.AvatarHit || len(breachers) > 0 {
		return e.avatarHit(report, breachers)
	}
	return 0
}

// moveOpponents advances the opposing group and returns the IDs of
// opponents whose escape counts as a hit on the avatar.
func (e *Engine) moveOpponents() []uint64 {
	w := e.world
	p := &e.profile
	var breachers []uint64

	if e.cfg.SpawnPolicy == config.SpawnFormation {
		e.fleet.Advance(w.Opponents, e.orient, w.Playfield, p.OpponentSpeed, e.cfg.Waves.FleetDrop)
		w.Opponents.Each(func(o *Entity) {
			if !e.orient.breached(o.Rect, w.Playfield) {
				return
			}
			if e.cfg.Waves.EscapeIsHit {
				breachers = append(breachers, o.ID)
			} else {
				w.Opponents.Kill(o)
			}
		})
		return breachers
	}

	fx, fy := e.orient.forward()
	w.Opponents.Each(func(o *Entity) {
		o.VX, o.VY = -fx*p.OpponentSpeed, -fy*p.OpponentSpeed
		o.Move()
		if o.Exited(w.Playfield) {
			w.Opponents.Kill(o)
			if e.cfg.Waves.EscapeIsHit {
				breachers = append(breachers, o.ID)
			}
		}
	})
	return breachers
}

func (e *Engine) checkLevelUp() {
	switch e.cfg.SpawnPolicy {
	case config.SpawnFormation:
		if e.world.Opponents.Count() > 0 {
			return
		}
		e.spawner.FillFormation(e.world.Opponents, e.world.Playfield, &e.profile)
		if e.world.Opponents.Count() == 0 {
			// nothing fits, so there is no wave to advance
			return
		}
		e.world.ClearProjectiles()
	case config.SpawnRandom:
		if e.cfg.Waves.KillsPerLevel <= 0 || e.kills < e.cfg.Waves.KillsPerLevel {
			return
		}
	}
	e.levelUp(&e.profile)
	e.kills = 0
	e.score.Level++
	e.emit(EventLevelUp)
}

// levelUp scales p by one level. Only random-spawn variants scale the spawn
// frequency.
func (e *Engine) levelUp(p *config.DifficultyProfile) {
	spawnScale := 0.0
	if e.cfg.SpawnPolicy == config.SpawnRandom {
		spawnScale = e.cfg.Waves.SpawnFrequencyScale
	}
	p.LevelUp(e.cfg.Waves.SpeedupScale, spawnScale)
}

// profileAt returns the named preset with every level-up up to level applied.
func (e *Engine) profileAt(l config.DifficultyLevel, level int) config.DifficultyProfile {
	p := e.cfg.Difficulty.Profile(l)
	for range level - 1 {
		e.levelUp(&p)
	}
	return p
}

// avatarHit spends a life and applies the hit policy, or ends the run when
// no lives are left.
func (e *Engine) avatarHit(report CollisionReport, breachers []uint64) time.Duration {
	w := e.world
	e.emit(EventHit)

	if !e.score.LoseLife() {
		e.machine.LivesExhausted()
		e.score.CheckHighScore()
		e.moves = moveFlags{}
		e.emit(EventGameOver)
		return 0
	}

	switch e.cfg.HitPolicy {
	case config.HitKeepOpponents:
		for _, id := range report.Rammed {
			w.Opponents.Remove(id)
		}
		for _, id := range breachers {
			w.Opponents.Remove(id)
		}
		w.ClearProjectiles()
	default:
		w.ClearAll()
		e.fleet = NewFleet()
		e.spawner.FillFormation(w.Opponents, w.Playfield, &e.profile)
	}

	e.kills = 0
	e.recenter()
	return time.Duration(e.cfg.Effects.HitFreezeMS) * time.Millisecond
}

func (e *Engine) startRun() {
	w := e.world
	e.profile = e.cfg.Difficulty.Profile(e.selected)
	e.score.Reset(e.profile.Lives)
	e.recorded = false
	e.kills = 0
	e.moves = moveFlags{}
	e.fleet = NewFleet()
	e.spawner.Reset()

	w.ClearAll()
	w.Compact()
	e.spawner.FillFormation(w.Opponents, w.Playfield, &e.profile)
	e.recenter()
	e.emit(EventRunStarted)
}

func (e *Engine) recenter() {
	e.world.Avatar.Rect = e.orient.home(e.world.Playfield, e.cfg.Sprites.Avatar)
	e.world.Avatar.VX, e.world.Avatar.VY = 0, 0
}

func (e *Engine) emit(kind EventKind) {
	ev := Event{Kind: kind, Tick: e.tick}
	e.events = append(e.events, ev)
	for _, l := range e.listeners {
		l.OnEvent(ev)
	}
}

// Snapshot returns a read-only copy of the current state for rendering.
func (e *Engine) Snapshot() Snapshot {
	w := e.world
	return Snapshot{
		Tick:          e.tick,
		State:         e.machine.State(),
		Difficulty:    e.selected,
		RestartArmed:  e.machine.RestartArmed(),
		Vertical:      e.orient.vertical,
		Score:         e.score.Score,
		HighScore:     e.score.HighScore,
		Level:         e.score.Level,
		Lives:         e.score.Lives,
		Playfield:     w.Playfield,
		Avatar:        w.Avatar.Rect,
		Opponents:     w.Opponents.Entities(),
		Shots:         w.Shots.Entities(),
		OpponentShots: w.EnemyShots.Entities(),
		Effects:       w.Effects.Entities(),
	}
}
