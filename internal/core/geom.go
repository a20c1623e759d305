// Package core provides the engine-agnostic building blocks of the game:
// geometry, opacity masks, sprites, input frames, clocks and the character
// screen buffer. It has no external dependencies (especially no Bubble Tea)
// so the simulation stays pure and testable.
package core

import "math"

// Rect is an axis-aligned bounding box in cell coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt builds the rectangle of a w*h box whose left edge is at x and whose
// bottom edge is at bottom. Fractional positions are floored, so a sprite
// moving by sub-cell steps snaps to the cell it currently covers.
func RectAt(x, bottom float64, w, h int) Rect {
	left := int(math.Floor(x))
	b := int(math.Floor(bottom))
	return Rect{X: left, Y: b - h, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Intersection returns the overlapping area of two rectangles.
// The result is empty when they do not intersect.
func (r Rect) Intersection(other Rect) Rect {
	x0 := Max(r.X, other.X)
	y0 := Max(r.Y, other.Y)
	x1 := Min(r.Right(), other.Right())
	y1 := Min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
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

// Wrap returns v modulo n, always in [0, n). Used for fractional animation
// indices that cycle over a frame count.
func Wrap(v float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	w := math.Mod(v, float64(n))
	if w < 0 {
		w += float64(n)
	}
	return w
}
