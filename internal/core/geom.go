// Package core holds the types shared by games and the platform: geometry,
// the cell screen, draw lists and the input frame. It imports nothing from
// the terminal stack so game logic stays pure and testable.
package core

import "math"

// Rect is an axis-aligned box in screen cells, used by the rasterizer once
// logical coordinates have been scaled down.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the cell box at (x, y) of size w by h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectF is an axis-aligned bounding box in logical surface pixels.
// Game physics work in this space; rendering scales it down to cells.
type RectF struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports strict overlap. Boxes that only touch do not intersect.
func (r RectF) Intersects(other RectF) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Wrap maps v into [0, period) the way a looping background expects,
// including for negative offsets.
func Wrap(v, period float64) float64 {
	if period <= 0 {
		return 0
	}
	m := math.Mod(v, period)
	if m < 0 {
		m += period
	}
	return m
}
