package dino

import "github.com/vovakirdan/tui-dino/internal/core"

// Collide reports whether two colliders touch. The bounding boxes are tested
// first; only overlapping boxes pay for the per-cell mask comparison.
func Collide(a, b Collider) bool {
	ab, bb := a.Bounds(), b.Bounds()
	if !ab.Intersects(bb) {
		return false
	}
	return core.MaskOverlap(a.Mask(), ab.X, ab.Y, b.Mask(), bb.X, bb.Y)
}
