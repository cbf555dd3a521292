// Package config provides YAML-based game configuration loading and the
// difficulty profiles shared by every shooter variant.
package config

import (
	"errors"
	"fmt"
)

// Orientation selects the axis projectiles travel along.
type Orientation string

const (
	// Vertical: avatar at the bottom moving left/right, shots travel up.
	Vertical Orientation = "vertical"
	// Horizontal: avatar at the left edge moving up/down, shots travel right.
	Horizontal Orientation = "horizontal"
)

// SpawnPolicy selects how opponents enter the playfield.
type SpawnPolicy string

const (
	SpawnFormation SpawnPolicy = "formation"
	SpawnRandom    SpawnPolicy = "random"
)

// HitPolicy selects what happens to the opposing group when the avatar is hit
// and still has lives left.
type HitPolicy string

const (
	// HitResetWave clears every pool and lays out a fresh wave.
	HitResetWave HitPolicy = "reset_wave"
	// HitKeepOpponents removes only the entities that touched the avatar and
	// all projectiles in flight.
	HitKeepOpponents HitPolicy = "keep_opponents"
)

// ShooterConfig contains all configuration for one shooter variant.
type ShooterConfig struct {
	Title       string          `yaml:"title"`
	Orientation Orientation     `yaml:"orientation"`
	SpawnPolicy SpawnPolicy     `yaml:"spawn_policy"`
	HitPolicy   HitPolicy       `yaml:"hit_policy"`
	Playfield   PlayfieldConfig `yaml:"playfield"`
	Sprites     SpriteConfig    `yaml:"sprites"`
	Waves       WaveConfig      `yaml:"waves"`
	Fire        FireConfig      `yaml:"fire"`
	Effects     EffectConfig    `yaml:"effects"`
	Difficulty  DifficultySet   `yaml:"difficulty"`
}

// PlayfieldConfig is the size of the simulated area in playfield units.
// The renderer scales it onto the terminal.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Size is a sprite's bounding box.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// SpriteConfig defines the bounding boxes of each entity kind.
type SpriteConfig struct {
	Avatar       Size `yaml:"avatar"`
	Opponent     Size `yaml:"opponent"`
	Shot         Size `yaml:"shot"`
	OpponentShot Size `yaml:"opponent_shot"`
	Effect       Size `yaml:"effect"`
}

// WaveConfig defines opponent movement and level progression.
type WaveConfig struct {
	FleetDrop           float64 `yaml:"fleet_drop"`
	SpeedupScale        float64 `yaml:"speedup_scale"`
	SpawnFrequencyScale float64 `yaml:"spawn_frequency_scale"`
	KillsPerLevel       int     `yaml:"kills_per_level"` // random spawn only
	EscapeIsHit         bool    `yaml:"escape_is_hit"`
}

// FireConfig defines how opponents shoot back.
type FireConfig struct {
	ShootingFrequency float64 `yaml:"shooting_frequency"` // probability per tick
	CooldownTicks     int     `yaml:"cooldown_ticks"`
}

// EffectConfig defines feedback timings.
type EffectConfig struct {
	ExplosionTTL int `yaml:"explosion_ttl"`
	HitFreezeMS  int `yaml:"hit_freeze_ms"`
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid shooter config")

// Validate checks structural constraints the engine relies on.
func (c ShooterConfig) Validate() error {
	if c.Orientation != Vertical && c.Orientation != Horizontal {
		return fmt.Errorf("%w: unknown orientation %q", ErrInvalid, c.Orientation)
	}
	if c.SpawnPolicy != SpawnFormation && c.SpawnPolicy != SpawnRandom {
		return fmt.Errorf("%w: unknown spawn policy %q", ErrInvalid, c.SpawnPolicy)
	}
	if c.HitPolicy != HitResetWave && c.HitPolicy != HitKeepOpponents {
		return fmt.Errorf("%w: unknown hit policy %q", ErrInvalid, c.HitPolicy)
	}
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("%w: playfield must be positive, got %vx%v", ErrInvalid, c.Playfield.Width, c.Playfield.Height)
	}
	if c.Waves.SpeedupScale <= 1 {
		return fmt.Errorf("%w: speedup_scale must be > 1, got %v", ErrInvalid, c.Waves.SpeedupScale)
	}
	for _, lvl := range Levels() {
		p := c.Difficulty.Profile(lvl)
		if p.AvatarCapacity < 0 || p.OpponentCapacity < 0 || p.OpponentProjectileCap < 0 {
			return fmt.Errorf("%w: %s capacities must not be negative", ErrInvalid, lvl)
		}
		if p.Lives < 0 {
			return fmt.Errorf("%w: %s lives must not be negative", ErrInvalid, lvl)
		}
	}
	if err := c.Difficulty.checkOrdering(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
