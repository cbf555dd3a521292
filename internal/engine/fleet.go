package engine

import "github.com/vovakirdan/shooter-arcade/internal/core"

// Fleet moves a formation as one unit: all opponents slide laterally in the
// same direction, and when any of them touches a lateral edge the whole
// formation reverses and steps toward the avatar.
type Fleet struct {
	Direction float64 // +1 or -1 along the lateral axis
}

// NewFleet returns a fleet heading in the positive lateral direction.
func NewFleet() Fleet {
	return Fleet{Direction: 1}
}

// Advance moves every opponent one tick. The edge check happens before the
// move. It reports whether the fleet bounced this tick.
func (f *Fleet) Advance(opps *Pool, o orientation, pf core.Rect, speed, drop float64) bool {
	lo, hi := o.lateral(pf)
	bounced := false
	opps.Each(func(e *Entity) {
		if bounced {
			return
		}
		elo, ehi := o.lateral(e.Rect)
		if ehi >= hi || elo <= lo {
			bounced = true
		}
	})

	if bounced {
		f.Direction = -f.Direction
	}
	step := speed * f.Direction
	opps.Each(func(e *Entity) {
		if bounced {
			e.Rect = o.advance(e.Rect, drop)
		}
		e.Rect = o.slide(e.Rect, step)
	})
	return bounced
}
