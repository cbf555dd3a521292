package engine

import (
	"math/rand"

	"github.com/vovakirdan/shooter-arcade/internal/config"
	"github.com/vovakirdan/shooter-arcade/internal/core"
)

// SpawnController creates opponents and projectiles. Every spawn respects
// the matching capacity in the active profile; spawning into a full pool is
// a silent no-op.
type SpawnController struct {
	policy   config.SpawnPolicy
	sprites  config.SpriteConfig
	fire     config.FireConfig
	orient   orientation
	rng      *rand.Rand
	cooldown int // ticks until opponents may fire again
}

// NewSpawnController creates a controller drawing randomness from rng.
func NewSpawnController(cfg config.ShooterConfig, rng *rand.Rand) *SpawnController {
	return &SpawnController{
		policy:  cfg.SpawnPolicy,
		sprites: cfg.Sprites,
		fire:    cfg.Fire,
		orient:  newOrientation(cfg.Orientation),
		rng:     rng,
	}
}

// Reset clears the enemy fire cooldown.
func (s *SpawnController) Reset() {
	s.cooldown = 0
}

// FillFormation lays out a full grid of opponents and returns how many were
// added. It does nothing for random-spawn games.
func (s *SpawnController) FillFormation(opps *Pool, pf core.Rect, p *config.DifficultyProfile) int {
	if s.policy != config.SpawnFormation {
		return 0
	}
	added := 0
	for _, r := range s.orient.grid(pf, s.sprites.Opponent) {
		if opps.Count() >= p.OpponentCapacity {
			break
		}
		opps.Add(r, 0, 0, 0)
		added++
	}
	return added
}

// MaybeSpawnOpponent rolls the per-tick spawn chance for random-spawn games
// and adds one opponent just outside the far edge when it hits.
func (s *SpawnController) MaybeSpawnOpponent(opps *Pool, pf core.Rect, p *config.DifficultyProfile) bool {
	if s.policy != config.SpawnRandom {
		return false
	}
	if s.rng.Float64() >= p.SpawnFrequency {
		return false
	}
	if opps.Count() >= p.OpponentCapacity {
		return false
	}
	r := s.orient.entry(pf, s.sprites.Opponent, s.rng.Float64())
	fx, fy := s.orient.forward()
	opps.Add(r, -fx*p.OpponentSpeed, -fy*p.OpponentSpeed, 0)
	return true
}

// MaybeEnemyFire rolls the per-tick shooting chance. On a hit, and when no
// cooldown is running, it picks one live opponent uniformly at random and
// fires from it. An empty opponent pool is a no-op.
func (s *SpawnController) MaybeEnemyFire(opps, shots *Pool, p *config.DifficultyProfile) bool {
	if s.cooldown > 0 {
		s.cooldown--
		return false
	}
	if s.rng.Float64() >= s.fire.ShootingFrequency {
		return false
	}
	if shots.Count() >= p.OpponentProjectileCap {
		return false
	}
	shooter, ok := opps.Pick(s.rng)
	if !ok {
		return false
	}

	r := s.orient.enemyMuzzle(shooter.Rect, s.sprites.OpponentShot)
	fx, fy := s.orient.forward()
	shots.Add(r, -fx*p.OpponentProjectileSpeed, -fy*p.OpponentProjectileSpeed, 0)
	s.cooldown = s.fire.CooldownTicks
	return true
}

// Fire spawns one player shot at the avatar if the own-projectile pool has
// room.
func (s *SpawnController) Fire(avatar core.Rect, shots *Pool, p *config.DifficultyProfile) bool {
	if shots.Count() >= p.AvatarCapacity {
		return false
	}
	r := s.orient.muzzle(avatar, s.sprites.Shot)
	fx, fy := s.orient.forward()
	shots.Add(r, fx*p.ProjectileSpeed, fy*p.ProjectileSpeed, 0)
	return true
}
