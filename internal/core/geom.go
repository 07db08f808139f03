// Package core provides fundamental types and utilities for the timing game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in either field pixels or screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Scale maps a rectangle from a (fromW x fromH) space into a (toW x toH) space.
// Edges are scaled independently and the result is at least one unit in each
// dimension, so small objects never disappear on a coarse screen.
func (r Rect) Scale(fromW, fromH, toW, toH int) Rect {
	if fromW <= 0 || fromH <= 0 {
		return Rect{}
	}
	x0 := floorDiv(r.X*toW, fromW)
	y0 := floorDiv(r.Y*toH, fromH)
	x1 := floorDiv(r.Right()*toW, fromW)
	y1 := floorDiv(r.Bottom()*toH, fromH)
	return Rect{
		X: x0,
		Y: y0,
		W: Max(1, x1-x0),
		H: Max(1, y1-y0),
	}
}

// floorDiv divides rounding toward negative infinity, so rectangles partly
// above the field top map to negative rows instead of row zero.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
