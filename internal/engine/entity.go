// Package engine implements the shared real-time core of the shooter games:
// entity pools, spawning, collision resolution, scoring, leveling and the
// menu/pause/difficulty state machine. It is pure and deterministic for a
// given seed and input sequence; rendering, audio and persistence observe it
// from the outside.
package engine

import "github.com/vovakirdan/shooter-arcade/internal/core"

// Kind tags what an entity is and which update rule moves it.
type Kind uint8

const (
	KindAvatar Kind = iota
	KindOpponent
	KindPlayerShot
	KindOpponentShot
	KindEffect
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAvatar:
		return "avatar"
	case KindOpponent:
		return "opponent"
	case KindPlayerShot:
		return "player-shot"
	case KindOpponentShot:
		return "opponent-shot"
	case KindEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// Entity is a moving rectangle. TTL counts remaining frames for effects and
// is zero for everything else.
type Entity struct {
	ID   uint64
	Kind Kind
	Rect core.Rect
	VX   float64
	VY   float64
	TTL  int

	dead bool
}

// Alive reports whether the entity has not been removed this tick.
func (e *Entity) Alive() bool {
	return !e.dead
}

// Move applies one tick of velocity.
func (e *Entity) Move() {
	e.Rect = e.Rect.Translate(e.VX, e.VY)
}

// Exited reports whether the entity has fully left bounds through the edge
// it is travelling toward. Entities that start outside the playfield and
// move into it are not considered exited.
func (e *Entity) Exited(bounds core.Rect) bool {
	switch {
	case e.VX > 0 && e.Rect.X >= bounds.Right():
		return true
	case e.VX < 0 && e.Rect.Right() <= bounds.X:
		return true
	case e.VY > 0 && e.Rect.Y >= bounds.Bottom():
		return true
	case e.VY < 0 && e.Rect.Bottom() <= bounds.Y:
		return true
	}
	return false
}

// Tick decrements the TTL of an effect and reports whether it expired.
func (e *Entity) Tick() bool {
	if e.TTL > 0 {
		e.TTL--
	}
	return e.TTL <= 0
}
