package dino

import "github.com/vovakirdan/tui-dino/internal/core"

// groundMargin is added to the screen width when sizing ground segments so
// one segment alone still covers the screen at the moment its partner wraps.
const groundMargin = 4

// GroundSegment is one of two identical ground tiles laid end to end.
type GroundSegment struct {
	x     float64
	y     int
	frame *core.Frame
	speed float64
}

// newGroundPair lays two segments of equal width edge to edge from x=0.
func newGroundPair(width, y int, speed float64) [2]GroundSegment {
	frame := groundFrame(width)
	return [2]GroundSegment{
		{x: 0, y: y, frame: frame, speed: speed},
		{x: float64(width), y: y, frame: frame, speed: speed},
	}
}

// groundWidth returns the segment width for a screen.
func groundWidth(tileWidth, screenW int) int {
	return core.Max(tileWidth, screenW+groundMargin)
}

// Update scrolls the segment left. Once it has fully left the screen it
// jumps two widths ahead, which is exactly the right edge of its partner.
func (s *GroundSegment) Update(fc FrameContext) {
	s.x -= s.speed * fc.Scale

	if s.Bounds().Right() < 0 {
		s.x += 2 * float64(s.frame.Width())
	}
}

// X returns the exact left edge.
func (s *GroundSegment) X() float64 { return s.x }

// Frame returns the tile image.
func (s *GroundSegment) Frame() *core.Frame { return s.frame }

// Mask returns the tile mask. Ground never takes part in collisions.
func (s *GroundSegment) Mask() *core.Mask { return s.frame.Mask() }

// Bounds returns the screen rectangle of the segment, top edge on the
// ground line.
func (s *GroundSegment) Bounds() core.Rect {
	return core.RectAt(s.x, float64(s.y+s.frame.Height()), s.frame.Width(), s.frame.Height())
}
