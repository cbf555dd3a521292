package config

import (
	"fmt"
	"strings"
)

// DifficultyLevel names one of the three predefined profiles.
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// Levels returns the profiles in increasing order of challenge.
func Levels() []DifficultyLevel {
	return []DifficultyLevel{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty accepts a profile name in any case.
// "normal" is accepted as an alias for medium.
func ParseDifficulty(s string) (DifficultyLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "normal", "":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
}

// Title returns the display name of the level.
func (l DifficultyLevel) Title() string {
	switch l {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Medium"
	}
}

// DifficultyProfile is a bundle of speed, capacity and scoring parameters.
// The engine keeps a working copy that level-ups mutate.
type DifficultyProfile struct {
	AvatarSpeed             float64 `yaml:"avatar_speed"`
	AvatarCapacity          int     `yaml:"avatar_capacity"`
	ProjectileSpeed         float64 `yaml:"projectile_speed"`
	OpponentSpeed           float64 `yaml:"opponent_speed"`
	OpponentCapacity        int     `yaml:"opponent_capacity"`
	OpponentProjectileSpeed float64 `yaml:"opponent_projectile_speed"`
	OpponentProjectileCap   int     `yaml:"opponent_projectile_cap"`
	ScorePerKill            int     `yaml:"score_per_kill"`
	ScoreScale              float64 `yaml:"score_scale"`
	Lives                   int     `yaml:"lives"`
	SpawnFrequency          float64 `yaml:"spawn_frequency"`
}

// LevelUp scales the profile for the next level: every speed is multiplied
// by speedup, the kill reward by ScoreScale (truncated), and the random
// spawn frequency by spawnScale.
func (p *DifficultyProfile) LevelUp(speedup, spawnScale float64) {
	p.AvatarSpeed *= speedup
	p.ProjectileSpeed *= speedup
	p.OpponentSpeed *= speedup
	p.OpponentProjectileSpeed *= speedup
	p.ScorePerKill = int(float64(p.ScorePerKill) * p.ScoreScale)
	if spawnScale > 0 {
		p.SpawnFrequency *= spawnScale
	}
}

// DifficultySet holds the three predefined profiles.
type DifficultySet struct {
	Easy   DifficultyProfile `yaml:"easy"`
	Medium DifficultyProfile `yaml:"medium"`
	Hard   DifficultyProfile `yaml:"hard"`
}

// Profile returns a copy of the named profile. Unknown names yield Medium.
func (s DifficultySet) Profile(l DifficultyLevel) DifficultyProfile {
	switch l {
	case DifficultyEasy:
		return s.Easy
	case DifficultyHard:
		return s.Hard
	default:
		return s.Medium
	}
}

func (s DifficultySet) checkOrdering() error {
	e, m, h := s.Easy, s.Medium, s.Hard
	if !(e.OpponentSpeed < m.OpponentSpeed && m.OpponentSpeed < h.OpponentSpeed) {
		return fmt.Errorf("opponent_speed must increase easy < medium < hard")
	}
	if !(e.ScorePerKill < m.ScorePerKill && m.ScorePerKill < h.ScorePerKill) {
		return fmt.Errorf("score_per_kill must increase easy < medium < hard")
	}
	if !(e.ScoreScale <= m.ScoreScale && m.ScoreScale <= h.ScoreScale) {
		return fmt.Errorf("score_scale must not decrease with difficulty")
	}
	return nil
}
