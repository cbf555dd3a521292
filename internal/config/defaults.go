package config

import (
	_ "embed"
)

//go:embed defaults/invasion.yaml
var defaultInvasionYAML []byte

//go:embed defaults/hungryfox.yaml
var defaultHungryFoxYAML []byte

//go:embed defaults/sideways.yaml
var defaultSidewaysYAML []byte

//go:embed defaults/penguin.yaml
var defaultPenguinYAML []byte

// GameIDs lists the shooter variants that ship with embedded defaults.
func GameIDs() []string {
	return []string{"hungryfox", "invasion", "penguin", "sideways"}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invasion":
		return defaultInvasionYAML
	case "hungryfox":
		return defaultHungryFoxYAML
	case "sideways":
		return defaultSidewaysYAML
	case "penguin":
		return defaultPenguinYAML
	default:
		return nil
	}
}

// FormationProfiles returns the Easy/Medium/Hard table used by the
// formation games.
func FormationProfiles() DifficultySet {
	return DifficultySet{
		Easy: DifficultyProfile{
			AvatarSpeed: 3.0, AvatarCapacity: 6, ProjectileSpeed: 2.5,
			OpponentSpeed: 0.75, OpponentCapacity: 120,
			OpponentProjectileSpeed: 1.0, OpponentProjectileCap: 2,
			ScorePerKill: 40, ScoreScale: 1.5, Lives: 5,
		},
		Medium: DifficultyProfile{
			AvatarSpeed: 4.0, AvatarCapacity: 5, ProjectileSpeed: 3.5,
			OpponentSpeed: 1.0, OpponentCapacity: 120,
			OpponentProjectileSpeed: 1.5, OpponentProjectileCap: 3,
			ScorePerKill: 50, ScoreScale: 1.7, Lives: 4,
		},
		Hard: DifficultyProfile{
			AvatarSpeed: 5.0, AvatarCapacity: 4, ProjectileSpeed: 4.5,
			OpponentSpeed: 1.25, OpponentCapacity: 120,
			OpponentProjectileSpeed: 2.0, OpponentProjectileCap: 3,
			ScorePerKill: 60, ScoreScale: 1.9, Lives: 3,
		},
	}
}

// RandomSpawnProfiles returns the table used by the random-spawn games:
// slower opponents, a population cap of ten and a per-tick spawn chance.
func RandomSpawnProfiles() DifficultySet {
	set := FormationProfiles()
	set.Easy.OpponentSpeed, set.Easy.OpponentCapacity, set.Easy.SpawnFrequency = 0.6, 10, 0.008
	set.Medium.OpponentSpeed, set.Medium.OpponentCapacity, set.Medium.SpawnFrequency = 0.8, 10, 0.009
	set.Hard.OpponentSpeed, set.Hard.OpponentCapacity, set.Hard.SpawnFrequency = 1.0, 10, 0.01
	return set
}

// DefaultShooterConfig returns the hardcoded configuration for a variant.
// It mirrors the embedded YAML and is used when that cannot be parsed.
// Unknown IDs get the invasion layout.
func DefaultShooterConfig(gameID string) ShooterConfig {
	cfg := ShooterConfig{
		Title:       "Alien Invasion",
		Orientation: Vertical,
		SpawnPolicy: SpawnFormation,
		HitPolicy:   HitResetWave,
		Playfield:   PlayfieldConfig{Width: 960, Height: 528},
		Sprites: SpriteConfig{
			Avatar:       Size{W: 60, H: 48},
			Opponent:     Size{W: 48, H: 24},
			Shot:         Size{W: 12, H: 24},
			OpponentShot: Size{W: 12, H: 24},
			Effect:       Size{W: 48, H: 24},
		},
		Waves: WaveConfig{
			FleetDrop:           10,
			SpeedupScale:        1.1,
			SpawnFrequencyScale: 1.05,
			EscapeIsHit:         true,
		},
		Fire:       FireConfig{ShootingFrequency: 0.009},
		Effects:    EffectConfig{ExplosionTTL: 20, HitFreezeMS: 500},
		Difficulty: FormationProfiles(),
	}

	switch gameID {
	case "hungryfox":
		cfg.Title = "Hungry Fox"
		cfg.Sprites.Avatar = Size{W: 48, H: 48}
		cfg.Sprites.Opponent = Size{W: 36, H: 24}
		cfg.Sprites.Effect = Size{W: 36, H: 24}
	case "sideways":
		cfg.Title = "Sideways Shooter"
		cfg.Orientation = Horizontal
		cfg.SpawnPolicy = SpawnRandom
		cfg.Sprites = SpriteConfig{
			Avatar:       Size{W: 48, H: 48},
			Opponent:     Size{W: 48, H: 48},
			Shot:         Size{W: 24, H: 12},
			OpponentShot: Size{W: 24, H: 12},
			Effect:       Size{W: 48, H: 48},
		}
		cfg.Waves.FleetDrop = 0
		cfg.Waves.KillsPerLevel = 10
		cfg.Waves.EscapeIsHit = false
		cfg.Fire.CooldownTicks = 120
		cfg.Difficulty = RandomSpawnProfiles()
	case "penguin":
		cfg.Title = "Sliding Penguin"
		cfg.SpawnPolicy = SpawnRandom
		cfg.HitPolicy = HitKeepOpponents
		cfg.Sprites.Avatar = Size{W: 48, H: 48}
		cfg.Sprites.Opponent = Size{W: 60, H: 48}
		cfg.Sprites.Effect = Size{W: 60, H: 48}
		cfg.Waves.FleetDrop = 0
		cfg.Waves.KillsPerLevel = 10
		cfg.Waves.EscapeIsHit = false
		cfg.Fire.CooldownTicks = 120
		cfg.Difficulty = RandomSpawnProfiles()
	}
	return cfg
}
