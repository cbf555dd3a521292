package engine

import "github.com/vovakirdan/shooter-arcade/internal/core"

// World owns the avatar and the four entity pools of a run.
type World struct {
	Playfield  core.Rect
	Avatar     Entity
	Opponents  *Pool
	Shots      *Pool // player projectiles
	EnemyShots *Pool // opponent projectiles
	Effects    *Pool

	ids idSource
}

// NewWorld creates an empty world over the given playfield.
func NewWorld(pf core.Rect) *World {
	w := &World{Playfield: pf}
	w.Avatar = Entity{ID: w.ids.take(), Kind: KindAvatar}
	w.Opponents = newPool(KindOpponent, &w.ids)
	w.Shots = newPool(KindPlayerShot, &w.ids)
	w.EnemyShots = newPool(KindOpponentShot, &w.ids)
	w.Effects = newPool(KindEffect, &w.ids)
	return w
}

// ClearProjectiles removes every projectile in flight.
func (w *World) ClearProjectiles() {
	w.Shots.Clear()
	w.EnemyShots.Clear()
}

// ClearAll empties every pool.
func (w *World) ClearAll() {
	w.Opponents.Clear()
	w.ClearProjectiles()
	w.Effects.Clear()
}

// Compact drops this tick's tombstones from every pool.
func (w *World) Compact() {
	w.Opponents.Compact()
	w.Shots.Compact()
	w.EnemyShots.Compact()
	w.Effects.Compact()
}
