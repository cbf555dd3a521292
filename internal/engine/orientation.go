package engine

import (
	"github.com/vovakirdan/shooter-arcade/internal/config"
	"github.com/vovakirdan/shooter-arcade/internal/core"
)

// orientation maps the abstract "forward" and "lateral" axes of a shooter
// onto playfield coordinates. Player shots travel forward; opponents and
// their shots travel backward toward the avatar; the avatar and a formation
// slide along the lateral axis.
type orientation struct {
	vertical bool
}

func newOrientation(o config.Orientation) orientation {
	return orientation{vertical: o != config.Horizontal}
}

// forward returns the unit vector player shots travel along.
func (o orientation) forward() (float64, float64) {
	if o.vertical {
		return 0, -1
	}
	return 1, 0
}

// steer converts held movement flags into a unit velocity. Only the lateral
// pair of directions applies.
func (o orientation) steer(m moveFlags) (float64, float64) {
	if o.vertical {
		switch {
		case m.left:
			return -1, 0
		case m.right:
			return 1, 0
		}
		return 0, 0
	}
	switch {
	case m.up:
		return 0, -1
	case m.down:
		return 0, 1
	}
	return 0, 0
}

// home returns the avatar's start position: bottom center for vertical
// games, left middle for horizontal ones.
func (o orientation) home(pf core.Rect, size config.Size) core.Rect {
	if o.vertical {
		return core.NewRect(pf.X+(pf.W-size.W)/2, pf.Bottom()-size.H, size.W, size.H)
	}
	return core.NewRect(pf.X, pf.Y+(pf.H-size.H)/2, size.W, size.H)
}

// muzzle places a player shot on the avatar's leading edge.
func (o orientation) muzzle(avatar core.Rect, size config.Size) core.Rect {
	cx, cy := avatar.Center()
	if o.vertical {
		return core.NewRect(cx-size.W/2, avatar.Y, size.W, size.H)
	}
	return core.NewRect(avatar.Right()-size.W, cy-size.H/2, size.W, size.H)
}

// enemyMuzzle places an opponent shot on the opponent's edge facing the avatar.
func (o orientation) enemyMuzzle(opp core.Rect, size config.Size) core.Rect {
	cx, cy := opp.Center()
	if o.vertical {
		return core.NewRect(cx-size.W/2, opp.Bottom()-size.H, size.W, size.H)
	}
	return core.NewRect(opp.X, cy-size.H/2, size.W, size.H)
}

// entry returns a random-spawn rect just outside the far edge at lateral
// offset t in [0, 1).
func (o orientation) entry(pf core.Rect, size config.Size, t float64) core.Rect {
	if o.vertical {
		return core.NewRect(pf.X+t*(pf.W-size.W), pf.Y-size.H, size.W, size.H)
	}
	return core.NewRect(pf.Right(), pf.Y+t*(pf.H-size.H), size.W, size.H)
}

// lateral returns the low and high edges of r on the lateral axis.
func (o orientation) lateral(r core.Rect) (float64, float64) {
	if o.vertical {
		return r.X, r.Right()
	}
	return r.Y, r.Bottom()
}

// slide moves r along the lateral axis.
func (o orientation) slide(r core.Rect, d float64) core.Rect {
	if o.vertical {
		return r.Translate(d, 0)
	}
	return r.Translate(0, d)
}

// advance moves r toward the avatar's side by d.
func (o orientation) advance(r core.Rect, d float64) core.Rect {
	fx, fy := o.forward()
	return r.Translate(-fx*d, -fy*d)
}

// breached reports whether r has reached the avatar's side of the playfield.
func (o orientation) breached(r, pf core.Rect) bool {
	if o.vertical {
		return r.Bottom() >= pf.Bottom()
	}
	return r.X <= pf.X
}

// grid lays out a formation: starting one sprite in from the lateral edge and
// the far edge, spaced by one sprite, leaving room for the avatar's side.
func (o orientation) grid(pf core.Rect, size config.Size) []core.Rect {
	latSpan, depthSpan := pf.W, pf.H
	latStep, depthStep := size.W, size.H
	if !o.vertical {
		latSpan, depthSpan = pf.H, pf.W
		latStep, depthStep = size.H, size.W
	}
	if latStep <= 0 || depthStep <= 0 {
		return nil
	}

	var cells []core.Rect
	for depth := depthStep; depth < depthSpan-5*depthStep; depth += 2 * depthStep {
		for lat := latStep; lat < latSpan-2*latStep; lat += 2 * latStep {
			if o.vertical {
				cells = append(cells, core.NewRect(pf.X+lat, pf.Y+depth, size.W, size.H))
			} else {
				cells = append(cells, core.NewRect(pf.Right()-depth-size.W, pf.Y+lat, size.W, size.H))
			}
		}
	}
	return cells
}
