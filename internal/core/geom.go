// Package core provides fundamental types shared by the simulation and the
// platform layer. It has no external dependencies so game logic stays pure
// and testable.
package core

// Rect is an axis-aligned bounding box in playfield units.
// Width and height are never negative.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a rectangle. Negative sizes are clamped to zero.
func NewRect(x, y, w, h float64) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenteredAt returns a copy of r moved so its center is (cx, cy).
func (r Rect) CenteredAt(cx, cy float64) Rect {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
	return r
}

// Translate returns r offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersects reports whether the two rectangles overlap on both axes.
// Edges are half-open: rects that only touch do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) is inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inside reports whether r lies entirely within bounds.
func (r Rect) Inside(bounds Rect) bool {
	return r.X >= bounds.X && r.Y >= bounds.Y &&
		r.Right() <= bounds.Right() && r.Bottom() <= bounds.Bottom()
}

// ClampInto moves r the minimum distance needed to lie within bounds.
// A rect larger than bounds is aligned to the top-left corner.
func (r Rect) ClampInto(bounds Rect) Rect {
	r.X = ClampF(r.X, bounds.X, bounds.Right()-r.W)
	r.Y = ClampF(r.Y, bounds.Y, bounds.Bottom()-r.H)
	if r.W > bounds.W {
		r.X = bounds.X
	}
	if r.H > bounds.H {
		r.Y = bounds.Y
	}
	return r
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
