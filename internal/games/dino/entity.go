package dino

import "github.com/vovakirdan/tui-dino/internal/core"

// Visual characters for rendering
const (
	GroundChar = '▔'
)

// FrameContext carries what an entity may read while updating itself.
type FrameContext struct {
	Input core.InputFrame
	Scale float64 // Per-frame constants are multiplied by this (see core.RuntimeConfig.StepScale)
	Cues  Cues
}

// Collider is anything that takes part in collision tests.
type Collider interface {
	Bounds() core.Rect
	Mask() *core.Mask
}

// Entity is a simulated object owned by the game. Each entity mutates only
// its own state in Update.
type Entity interface {
	Collider
	Update(fc FrameContext)
	Frame() *core.Frame
}

var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Obstacle)(nil)
	_ Entity = (*GroundSegment)(nil)
)

// Cues receives the audio-style notifications of a run. Implementations
// must not block: they are called from inside the simulation step.
type Cues interface {
	Jump()
	Death()
	HighScore()
}

// NopCues ignores every cue.
type NopCues struct{}

func (NopCues) Jump()      {}
func (NopCues) Death()     {}
func (NopCues) HighScore() {}
