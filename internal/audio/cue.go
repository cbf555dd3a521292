package audio

import "github.com/vovakirdan/shooter-arcade/internal/engine"

// Cue is one synthesized sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueFire
	CueEnemyFire
	CueExplosion
	CueHit
	CueLevelUp
	CueGameOver
	CueHighScore
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueEnemyFire:
		return "enemy-fire"
	case CueExplosion:
		return "explosion"
	case CueHit:
		return "hit"
	case CueLevelUp:
		return "level-up"
	case CueGameOver:
		return "game-over"
	case CueHighScore:
		return "high-score"
	default:
		return "none"
	}
}

// CueFor maps an engine event to its sound. Control events map to CueNone.
func CueFor(kind engine.EventKind) Cue {
	switch kind {
	case engine.EventFire:
		return CueFire
	case engine.EventEnemyFire:
		return CueEnemyFire
	case engine.EventExplosion:
		return CueExplosion
	case engine.EventHit:
		return CueHit
	case engine.EventLevelUp:
		return CueLevelUp
	case engine.EventGameOver:
		return CueGameOver
	case engine.EventHighScore:
		return CueHighScore
	default:
		return CueNone
	}
}
