package engine

import (
	"math"

	"github.com/vovakirdan/shooter-arcade/internal/config"
	"github.com/vovakirdan/shooter-arcade/internal/core"
)

// Kill records one player shot destroying one opponent.
type Kill struct {
	ShotID     uint64
	OpponentID uint64
	At         core.Rect // the opponent's rect when it was hit
}

// CollisionReport lists what the collision pass matched in one tick.
type CollisionReport struct {
	Kills     []Kill
	AvatarHit bool
	Rammed    []uint64 // opponents touching the avatar
	Struck    []uint64 // opponent shots touching the avatar
}

// CollisionSystem runs the pairwise tests for one tick:
// PlayerShot x Opponent, Avatar x Opponent and Avatar x OpponentShot.
type CollisionSystem struct {
	grid      *spatialGrid
	effect    config.Size
	effectTTL int
}

// NewCollisionSystem sizes the broad-phase grid for the playfield.
func NewCollisionSystem(pf core.Rect, sprites config.SpriteConfig, effectTTL int) *CollisionSystem {
	cell := 2 * math.Max(sprites.Opponent.W, sprites.Opponent.H)
	return &CollisionSystem{
		grid:      newSpatialGrid(pf, cell),
		effect:    sprites.Effect,
		effectTTL: effectTTL,
	}
}

// Resolve matches and removes shot/opponent pairs, spawning an effect at
// each destroyed opponent's center, then reports avatar contacts without
// removing anything. A shot matches at most one opponent: the lowest-slot
// live opponent it overlaps.
func (c *CollisionSystem) Resolve(w *World) CollisionReport {
	var report CollisionReport
	opps := w.Opponents

	c.grid.reset(len(opps.slots))
	for i := range opps.slots {
		if !opps.slots[i].dead {
			c.grid.insert(opps.slots[i].Rect, i)
		}
	}

	w.Shots.Each(func(shot *Entity) {
		match := -1
		c.grid.query(shot.Rect, func(idx int) {
			o := &opps.slots[idx]
			if o.dead || (match >= 0 && idx > match) {
				return
			}
			if shot.Rect.Intersects(o.Rect) {
				match = idx
			}
		})
		if match < 0 {
			return
		}

		o := &opps.slots[match]
		report.Kills = append(report.Kills, Kill{ShotID: shot.ID, OpponentID: o.ID, At: o.Rect})
		w.Shots.Kill(shot)
		opps.Kill(o)

		cx, cy := o.Rect.Center()
		fx := core.NewRect(0, 0, c.effect.W, c.effect.H).CenteredAt(cx, cy)
		w.Effects.Add(fx, 0, 0, c.effectTTL)
	})

	avatar := w.Avatar.Rect
	opps.Each(func(o *Entity) {
		if avatar.Intersects(o.Rect) {
			report.AvatarHit = true
			report.Rammed = append(report.Rammed, o.ID)
		}
	})
	w.EnemyShots.Each(func(s *Entity) {
		if avatar.Intersects(s.Rect) {
			report.AvatarHit = true
			report.Struck = append(report.Struck, s.ID)
		}
	})

	return report
}
