package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/shooter-arcade/internal/config"
	"github.com/vovakirdan/shooter-arcade/internal/core"
)

// startedEngine returns an engine for the variant that is already Playing.
func startedEngine(t *testing.T, gameID string, opts ...Option) *Engine {
	t.Helper()
	e := New(config.DefaultShooterConfig(gameID), opts...)
	e.Handle(core.ActionConfirm)
	if e.State() != StatePlaying {
		t.Fatalf("State() = %q after Confirm, expected playing", e.State())
	}
	return e
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func TestStartRunSeedsFormation(t *testing.T) {
	e := startedEngine(t, "invasion", WithProfile(config.DifficultyHard))

	if e.world.Opponents.Count() != 72 {
		t.Errorf("opponents = %d, expected a full grid of 72", e.world.Opponents.Count())
	}
	s := e.Score()
	if s.Lives != 3 || s.Score != 0 || s.Level != 1 {
		t.Errorf("score keeper after start = %+v", s)
	}
	if e.Profile() != config.FormationProfiles().Hard {
		t.Error("the selected profile should be applied at run start")
	}
}

func TestMenuStateIsInert(t *testing.T) {
	e := New(config.DefaultShooterConfig("penguin"), WithSeed(5))
	before := e.Snapshot()
	for i := 0; i < 100; i++ {
		e.Step(frame(core.ActionFire, core.ActionLeft))
	}
	after := e.Snapshot()
	if len(after.Shots) != 0 || len(after.Opponents) != 0 || after.Avatar != before.Avatar {
		t.Error("entities must not change outside Playing")
	}
}

func TestLivesExhaustedHitEndsRun(t *testing.T) {
	e := startedEngine(t, "invasion")
	e.score.Lives = 0
	e.world.EnemyShots.Add(e.world.Avatar.Rect, 0, 0, 0)
	avatarBefore := e.world.Avatar.Rect
	oppsBefore := e.world.Opponents.Count()

	res := e.Step(core.NewInputFrame())

	if res.State != StateGameOver {
		t.Fatalf("State = %q, expected gameover", res.State)
	}
	if res.Freeze != 0 {
		t.Errorf("Freeze = %v, expected none on game over", res.Freeze)
	}
	if !hasEvent(res.Events, EventHit) || !hasEvent(res.Events, EventGameOver) {
		t.Errorf("events = %v, expected hit and game-over", res.Events)
	}
	// No respawn: nothing was reset
	if e.world.Avatar.Rect != avatarBefore || e.world.Opponents.Count() != oppsBefore {
		t.Error("game over must not respawn the avatar or rebuild the wave")
	}

	// Simulation is stopped
	snap := e.Snapshot()
	e.Step(frame(core.ActionFire))
	if e.Snapshot().Avatar != snap.Avatar || len(e.Snapshot().Shots) != len(snap.Shots) {
		t.Error("simulation must not run after game over")
	}
}

func TestHitWithLivesLeftResetsWave(t *testing.T) {
	e := startedEngine(t, "invasion")
	e.world.Opponents.Clear()
	e.world.Opponents.Add(core.NewRect(100, 100, 48, 24), 0, 0, 0)
	e.world.Avatar.Rect = e.world.Avatar.Rect.Translate(-200, 0)
	e.world.EnemyShots.Add(e.world.Avatar.Rect, 0, 0, 0)
	lives := e.Score().Lives

	res := e.Step(core.NewInputFrame())

	if res.State != StatePlaying {
		t.Fatalf("State = %q, expected playing", res.State)
	}
	if e.Score().Lives != lives-1 {
		t.Errorf("Lives = %d, expected %d", e.Score().Lives, lives-1)
	}
	if res.Freeze != 500*time.Millisecond {
		t.Errorf("Freeze = %v, expected 500ms", res.Freeze)
	}
	if e.world.Opponents.Count() != 72 {
		t.Errorf("opponents = %d, expected a fresh grid of 72", e.world.Opponents.Count())
	}
	if e.world.EnemyShots.Count() != 0 {
		t.Error("projectiles should be cleared")
	}
	home := e.orient.home(e.world.Playfield, e.cfg.Sprites.Avatar)
	if e.world.Avatar.Rect != home {
		t.Errorf("avatar = %v, expected recentered at %v", e.world.Avatar.Rect, home)
	}
}

func TestHitKeepOpponentsPolicy(t *testing.T) {
	e := startedEngine(t, "penguin")
	rammer := e.world.Opponents.Add(e.world.Avatar.Rect, 0, 0, 0)
	bystander := e.world.Opponents.Add(core.NewRect(100, 100, 60, 48), 0, 0, 0)
	e.world.Shots.Add(core.NewRect(500, 200, 12, 24), 0, 0, 0)

	res := e.Step(core.NewInputFrame())

	if !hasEvent(res.Events, EventHit) {
		t.Fatal("expected a hit")
	}
	if _, ok := e.world.Opponents.Get(rammer); ok {
		t.Error("the opponent that touched the avatar should be removed")
	}
	if _, ok := e.world.Opponents.Get(bystander); !ok {
		t.Error("other opponents should be kept")
	}
	if e.world.Shots.Count() != 0 {
		t.Error("projectiles should be cleared on hit")
	}
}

func TestFormationBreachCountsAsHit(t *testing.T) {
	e := startedEngine(t, "invasion")
	e.world.Opponents.Clear()
	pf := e.world.Playfield
	e.world.Opponents.Add(core.NewRect(10, pf.Bottom()-24, 48, 24), 0, 0, 0)
	lives := e.Score().Lives

	res := e.Step(core.NewInputFrame())
	if !hasEvent(res.Events, EventHit) {
		t.Fatal("an opponent reaching the bottom should hit the avatar")
	}
	if e.Score().Lives != lives-1 {
		t.Errorf("Lives = %d, expected %d", e.Score().Lives, lives-1)
	}
}

func TestRandomOpponentEscapeIsFree(t *testing.T) {
	e := startedEngine(t, "penguin")
	pf := e.world.Playfield
	id := e.world.Opponents.Add(core.NewRect(0, pf.Bottom()-0.1, 60, 48), 0, 0, 0)
	lives := e.Score().Lives

	res := e.Step(core.NewInputFrame())
	if hasEvent(res.Events, EventHit) {
		t.Error("an escaping opponent should not hit the avatar")
	}
	if _, ok := e.world.Opponents.Get(id); ok {
		t.Error("the escaped opponent should be removed")
	}
	if e.Score().Lives != lives {
		t.Error("lives should be unchanged")
	}
}

func TestFormationLevelUp(t *testing.T) {
	e := startedEngine(t, "invasion")
	e.world.Opponents.Clear()
	e.world.Compact()
	target := e.world.Opponents.Add(core.NewRect(300, 200, 48, 24), 0, 0, 0)
	o, _ := e.world.Opponents.Get(target)
	cx, _ := o.Rect.Center()
	e.world.Shots.Add(core.NewRect(cx, 205, 12, 24), 0, 0, 0)
	before := e.Profile()

	res := e.Step(core.NewInputFrame())

	if !hasEvent(res.Events, EventLevelUp) {
		t.Fatalf("events = %v, expected a level-up", res.Events)
	}
	s := e.Score()
	if s.Level != 2 {
		t.Errorf("Level = %d, expected 2", s.Level)
	}
	if s.Score != before.ScorePerKill {
		t.Errorf("Score = %d, expected %d", s.Score, before.ScorePerKill)
	}
	after := e.Profile()
	if after.ScorePerKill != int(float64(before.ScorePerKill)*before.ScoreScale) {
		t.Errorf("ScorePerKill = %d after level-up", after.ScorePerKill)
	}
	if after.OpponentSpeed <= before.OpponentSpeed {
		t.Error("opponent speed should increase on level-up")
	}
	if e.world.Opponents.Count() != 72 {
		t.Errorf("opponents = %d, expected a new grid", e.world.Opponents.Count())
	}
}

func TestRandomSpawnLevelUpAfterKillThreshold(t *testing.T) {
	e := startedEngine(t, "sideways")
	e.kills = e.cfg.Waves.KillsPerLevel - 1
	e.world.Opponents.Add(core.NewRect(500, 100, 48, 48), 0, 0, 0)
	e.world.Shots.Add(core.NewRect(498, 110, 24, 12), 0, 0, 0)
	freq := e.Profile().SpawnFrequency

	res := e.Step(core.NewInputFrame())
	if !hasEvent(res.Events, EventLevelUp) {
		t.Fatalf("events = %v, expected a level-up after %d kills", res.Events, e.cfg.Waves.KillsPerLevel)
	}
	if e.kills != 0 {
		t.Errorf("kill counter = %d, expected reset", e.kills)
	}
	if e.Profile().SpawnFrequency <= freq {
		t.Error("spawn frequency should increase on level-up")
	}
}

func TestPausedDifficultyAppliesLive(t *testing.T) {
	e := startedEngine(t, "invasion", WithProfile(config.DifficultyEasy))
	e.Step(frame(core.ActionPause))
	lives := e.Score().Lives

	e.Step(frame(core.ActionHard))
	if e.Profile() != config.FormationProfiles().Hard {
		t.Error("choosing Hard while paused should replace the live profile")
	}
	if e.Score().Lives != lives {
		t.Error("a live profile change must not touch lives")
	}
	if e.Selected() != config.DifficultyHard {
		t.Errorf("Selected() = %q, expected hard", e.Selected())
	}
	if !e.machine.RestartArmed() {
		t.Error("a mid-run difficulty change should arm a restart")
	}
}

func TestPausedDifficultyChangeNeedsRestart(t *testing.T) {
	e := startedEngine(t, "invasion", WithProfile(config.DifficultyEasy))
	pf := e.world.Playfield
	for i := range config.FormationProfiles().Easy.AvatarCapacity {
		e.world.Shots.Add(core.NewRect(100+float64(i)*30, pf.Bottom()-200, 12, 24), 0, 0, 0)
	}
	e.Step(frame(core.ActionPause))
	e.Step(frame(core.ActionHard))

	res := e.Step(frame(core.ActionPause))
	if res.State != StatePaused || hasEvent(res.Events, EventResumed) {
		t.Fatalf("resume after a difficulty change: state %q, events %v", res.State, res.Events)
	}
	e.Step(core.NewInputFrame())
	if e.State() != StatePaused {
		t.Fatalf("State() = %q, expected the run to stay paused", e.State())
	}

	res = e.Step(frame(core.ActionRestart))
	if res.State != StatePlaying || !hasEvent(res.Events, EventRunStarted) {
		t.Fatalf("restart: state %q, events %v", res.State, res.Events)
	}
	if got, limit := e.world.Shots.Count(), e.Profile().AvatarCapacity; got > limit {
		t.Errorf("shots = %d, exceeds capacity %d", got, limit)
	}
	if e.Profile() != config.FormationProfiles().Hard {
		t.Error("the restarted run should use the chosen profile")
	}
}

func TestPausedDifficultyKeepsLevelScaling(t *testing.T) {
	e := startedEngine(t, "invasion", WithProfile(config.DifficultyHard))
	e.world.Opponents.Clear()
	e.Step(core.NewInputFrame())
	if e.Score().Level != 2 {
		t.Fatalf("Level = %d, expected 2 after the wave was cleared", e.Score().Level)
	}
	leveled := e.Profile()

	e.Step(frame(core.ActionPause))
	e.Step(frame(core.ActionHard))
	if e.Profile() != leveled {
		t.Errorf("reselecting Hard at level 2 = %+v, expected %+v", e.Profile(), leveled)
	}

	e.Step(frame(core.ActionEasy))
	easy := config.FormationProfiles().Easy
	want := int(float64(easy.ScorePerKill) * easy.ScoreScale)
	if got := e.Profile().ScorePerKill; got != want {
		t.Errorf("Easy ScorePerKill at level 2 = %d, expected %d", got, want)
	}
	if e.Profile().OpponentSpeed <= easy.OpponentSpeed {
		t.Error("speeds should keep the level-up scaling")
	}
}

func TestFleetEmptiedByEscapesAdvancesWave(t *testing.T) {
	cfg := config.DefaultShooterConfig("invasion")
	cfg.Waves.EscapeIsHit = false
	e := New(cfg)
	e.Handle(core.ActionConfirm)

	e.world.Opponents.Clear()
	pf := e.world.Playfield
	e.world.Opponents.Add(core.NewRect(10, pf.Bottom()-24, 48, 24), 0, 0, 0)
	lives := e.Score().Lives

	res := e.Step(core.NewInputFrame())
	if hasEvent(res.Events, EventHit) || e.Score().Lives != lives {
		t.Error("an escape should not hit the avatar when escapes are free")
	}
	if !hasEvent(res.Events, EventLevelUp) || e.Score().Level != 2 {
		t.Errorf("events %v, level %d: expected the next wave", res.Events, e.Score().Level)
	}
	if e.world.Opponents.Count() == 0 {
		t.Error("the formation should be refilled")
	}
}

func TestEmptyFormationDoesNotLevelUp(t *testing.T) {
	cfg := config.DefaultShooterConfig("invasion")
	cfg.Difficulty.Medium.OpponentCapacity = 0
	e := New(cfg)
	e.Handle(core.ActionConfirm)

	for range 5 {
		if res := e.Step(core.NewInputFrame()); hasEvent(res.Events, EventLevelUp) {
			t.Fatal("a formation that cannot be filled should not advance the level")
		}
	}
	if e.Score().Level != 1 {
		t.Errorf("Level = %d, expected 1", e.Score().Level)
	}
}

func TestMovementPressAndRelease(t *testing.T) {
	e := startedEngine(t, "invasion")
	start := e.world.Avatar.Rect
	speed := e.Profile().AvatarSpeed

	e.Step(frame(core.ActionRight))
	e.Step(core.NewInputFrame())
	if got := e.world.Avatar.Rect.X; got != start.X+2*speed {
		t.Errorf("X = %v after two held ticks, expected %v", got, start.X+2*speed)
	}

	rel := core.NewInputFrame()
	rel.Release(core.ActionRight)
	e.Step(rel)
	x := e.world.Avatar.Rect.X
	e.Step(core.NewInputFrame())
	if e.world.Avatar.Rect.X != x {
		t.Error("avatar should stop after release")
	}

	// Vertical keys do nothing in a vertical game
	e.Step(frame(core.ActionUp))
	if e.world.Avatar.Rect.Y != start.Y {
		t.Error("up should not move a bottom-anchored avatar")
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	for _, id := range config.GameIDs() {
		t.Run(id, func(t *testing.T) {
			e := startedEngine(t, id, WithSeed(42), WithProfile(config.DifficultyHard))
			rng := rand.New(rand.NewSource(99))
			actions := []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionFire}
			p := e.Profile()

			lastScore := 0
			lastHigh := 0
			for tick := 0; tick < 5000; tick++ {
				f := core.NewInputFrame()
				for _, a := range actions {
					if rng.Intn(4) == 0 {
						f.Set(a)
					}
					if rng.Intn(8) == 0 {
						f.Release(a)
					}
				}
				res := e.Step(f)

				snap := e.Snapshot()
				if !snap.Avatar.Inside(snap.Playfield) {
					t.Fatalf("tick %d: avatar %v left the playfield", tick, snap.Avatar)
				}
				if len(snap.Shots) > p.AvatarCapacity {
					t.Fatalf("tick %d: %d player shots exceed %d", tick, len(snap.Shots), p.AvatarCapacity)
				}
				if len(snap.OpponentShots) > p.OpponentProjectileCap {
					t.Fatalf("tick %d: %d opponent shots exceed %d", tick, len(snap.OpponentShots), p.OpponentProjectileCap)
				}
				if snap.Score < lastScore {
					t.Fatalf("tick %d: score dropped from %d to %d", tick, lastScore, snap.Score)
				}
				if snap.HighScore < lastHigh {
					t.Fatalf("tick %d: high score dropped", tick)
				}
				lastScore, lastHigh = snap.Score, snap.HighScore

				if res.State == StateGameOver {
					e.Handle(core.ActionConfirm)
					lastScore = 0
				}
			}
		})
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() []uint64 {
		e := startedEngine(t, "sideways", WithSeed(7))
		var hashes []uint64
		for tick := 0; tick < 600; tick++ {
			f := core.NewInputFrame()
			if tick%7 == 0 {
				f.Set(core.ActionFire)
			}
			if tick%90 < 45 {
				f.Set(core.ActionUp)
			} else {
				f.Set(core.ActionDown)
			}
			e.Step(f)
			hashes = append(hashes, e.Snapshot().Hash())
		}
		return hashes
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d: hashes differ (%x != %x)", i, a[i], b[i])
		}
	}
}

func TestListenerReceivesEvents(t *testing.T) {
	var got []EventKind
	e := New(config.DefaultShooterConfig("invasion"),
		WithListener(ListenerFunc(func(ev Event) { got = append(got, ev.Kind) })))

	e.Step(frame(core.ActionConfirm))
	e.Step(frame(core.ActionFire))

	if len(got) < 2 || got[0] != EventRunStarted || got[1] != EventFire {
		t.Errorf("listener got %v, expected run-started then fire", got)
	}
}

func TestHighScoreCarriesOver(t *testing.T) {
	e := startedEngine(t, "invasion", WithHighScore(1000))
	if e.Snapshot().HighScore != 1000 {
		t.Errorf("HighScore = %d, expected 1000", e.Snapshot().HighScore)
	}
	e.score.Score = 1500
	e.score.Lives = 0
	e.world.EnemyShots.Add(e.world.Avatar.Rect, 0, 0, 0)
	e.Step(core.NewInputFrame())
	if e.Score().HighScore != 1500 {
		t.Errorf("HighScore = %d after game over, expected 1500", e.Score().HighScore)
	}
}
