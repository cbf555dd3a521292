package engine

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/shooter-arcade/internal/config"
	"github.com/vovakirdan/shooter-arcade/internal/core"
)

func TestFireRespectsCapacity(t *testing.T) {
	cfg := config.DefaultShooterConfig("invasion")
	s := NewSpawnController(cfg, rand.New(rand.NewSource(1)))
	p := cfg.Difficulty.Medium
	shots := NewPool(KindPlayerShot)
	avatar := core.NewRect(450, 480, 60, 48)

	for i := 0; i < p.AvatarCapacity+3; i++ {
		s.Fire(avatar, shots, &p)
	}
	if shots.Count() != p.AvatarCapacity {
		t.Errorf("shots = %d, expected cap %d", shots.Count(), p.AvatarCapacity)
	}

	shot := shots.Entities()[0]
	if shot.VY != -p.ProjectileSpeed || shot.VX != 0 {
		t.Errorf("shot velocity = (%v, %v), expected (0, %v)", shot.VX, shot.VY, -p.ProjectileSpeed)
	}
	cx, _ := shot.Rect.Center()
	if acx, _ := avatar.Center(); cx != acx {
		t.Errorf("shot center x = %v, expected avatar center %v", cx, acx)
	}
}

func TestFireHorizontal(t *testing.T) {
	cfg := config.DefaultShooterConfig("sideways")
	s := NewSpawnController(cfg, rand.New(rand.NewSource(1)))
	p := cfg.Difficulty.Easy
	shots := NewPool(KindPlayerShot)

	s.Fire(core.NewRect(0, 100, 48, 48), shots, &p)
	shot := shots.Entities()[0]
	if shot.VX != p.ProjectileSpeed || shot.VY != 0 {
		t.Errorf("shot velocity = (%v, %v), expected (%v, 0)", shot.VX, shot.VY, p.ProjectileSpeed)
	}
}

func TestEnemyFireEmptyPool(t *testing.T) {
	cfg := config.DefaultShooterConfig("invasion")
	cfg.Fire.ShootingFrequency = 1
	s := NewSpawnController(cfg, rand.New(rand.NewSource(1)))
	p := cfg.Difficulty.Hard

	opps := NewPool(KindOpponent)
	shots := NewPool(KindOpponentShot)
	for i := 0; i < 10; i++ {
		if s.MaybeEnemyFire(opps, shots, &p) {
			t.Fatal("MaybeEnemyFire() fired with no opponents")
		}
	}
}

func TestEnemyFireCapAndCooldown(t *testing.T) {
	cfg := config.DefaultShooterConfig("sideways")
	cfg.Fire.ShootingFrequency = 1
	cfg.Fire.CooldownTicks = 3
	s := NewSpawnController(cfg, rand.New(rand.NewSource(1)))
	p := cfg.Difficulty.Medium

	opps := NewPool(KindOpponent)
	opps.Add(core.NewRect(500, 100, 48, 48), 0, 0, 0)
	shots := NewPool(KindOpponentShot)

	fired := 0
	for tick := 0; tick < 40; tick++ {
		if s.MaybeEnemyFire(opps, shots, &p) {
			fired++
		}
		if shots.Count() > p.OpponentProjectileCap {
			t.Fatalf("tick %d: %d opponent shots exceed cap %d", tick, shots.Count(), p.OpponentProjectileCap)
		}
	}
	if fired != p.OpponentProjectileCap {
		t.Errorf("fired = %d, expected %d", fired, p.OpponentProjectileCap)
	}

	// Cooldown: one shot, then three quiet ticks
	s.Reset()
	shots.Clear()
	results := make([]bool, 5)
	for i := range results {
		results[i] = s.MaybeEnemyFire(opps, shots, &p)
	}
	expected := []bool{true, false, false, false, true}
	for i := range expected {
		if results[i] != expected[i] {
			t.Errorf("tick %d fired = %v, expected %v", i, results[i], expected[i])
		}
	}
	if shot := shots.Entities()[0]; shot.VX >= 0 {
		t.Errorf("opponent shot should travel toward the avatar, VX = %v", shot.VX)
	}
}

func TestRandomSpawn(t *testing.T) {
	cfg := config.DefaultShooterConfig("penguin")
	s := NewSpawnController(cfg, rand.New(rand.NewSource(3)))
	p := cfg.Difficulty.Medium
	p.SpawnFrequency = 1
	pf := core.NewRect(0, 0, cfg.Playfield.Width, cfg.Playfield.Height)

	opps := NewPool(KindOpponent)
	for i := 0; i < 50; i++ {
		s.MaybeSpawnOpponent(opps, pf, &p)
	}
	if opps.Count() != p.OpponentCapacity {
		t.Errorf("opponents = %d, expected cap %d", opps.Count(), p.OpponentCapacity)
	}
	opps.Each(func(e *Entity) {
		if e.Rect.Bottom() != pf.Y {
			t.Errorf("opponent %v should start just above the playfield", e.Rect)
		}
		if e.Rect.X < 0 || e.Rect.Right() > pf.W {
			t.Errorf("opponent %v should spawn within the lateral span", e.Rect)
		}
		if e.VY != p.OpponentSpeed {
			t.Errorf("VY = %v, expected %v", e.VY, p.OpponentSpeed)
		}
	})

	if s.FillFormation(opps, pf, &p) != 0 {
		t.Error("FillFormation() should do nothing for random-spawn games")
	}
}

func TestRandomSpawnNeverWithZeroFrequency(t *testing.T) {
	cfg := config.DefaultShooterConfig("sideways")
	s := NewSpawnController(cfg, rand.New(rand.NewSource(3)))
	p := cfg.Difficulty.Medium
	p.SpawnFrequency = 0
	pf := core.NewRect(0, 0, cfg.Playfield.Width, cfg.Playfield.Height)

	opps := NewPool(KindOpponent)
	for i := 0; i < 1000; i++ {
		s.MaybeSpawnOpponent(opps, pf, &p)
	}
	if opps.Count() != 0 {
		t.Errorf("opponents = %d, expected none", opps.Count())
	}
}

func TestFillFormationRespectsCapacity(t *testing.T) {
	cfg := config.DefaultShooterConfig("invasion")
	s := NewSpawnController(cfg, rand.New(rand.NewSource(1)))
	p := cfg.Difficulty.Easy
	p.OpponentCapacity = 5
	pf := core.NewRect(0, 0, cfg.Playfield.Width, cfg.Playfield.Height)

	opps := NewPool(KindOpponent)
	if n := s.FillFormation(opps, pf, &p); n != 5 {
		t.Errorf("FillFormation() = %d, expected 5", n)
	}
}
