package dino

import (
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// ObstacleKind selects the look and placement of an obstacle.
type ObstacleKind int

const (
	KindCactus ObstacleKind = iota // Sits on the ground, jump over it
	KindBird                       // Flies at head height, duck under it
)

// obstacleKinds is the number of kinds the spawner picks from.
const obstacleKinds = 2

func (k ObstacleKind) String() string {
	switch k {
	case KindCactus:
		return "cactus"
	case KindBird:
		return "bird"
	default:
		return "unknown"
	}
}

// Obstacle is a hazard scrolling from right to left.
type Obstacle struct {
	kind   ObstacleKind
	x      float64
	bottom float64
	frames core.Animation
	index  float64
	flap   float64 // Frame index advance per frame
	speed  float64 // Leftward scroll per frame
}

// NewObstacle creates an obstacle of the given kind with its left edge at x.
// Cacti stand on the ground line, birds hover BirdAltitude cells above it.
func NewObstacle(kind ObstacleKind, x float64, groundY int, cfg config.DinoConfig) Obstacle {
	o := Obstacle{
		kind:   kind,
		x:      x,
		bottom: float64(groundY),
		frames: cactusFrames,
		speed:  cfg.Physics.ScrollSpeed,
	}
	if kind == KindBird {
		o.bottom = float64(groundY - cfg.Obstacles.BirdAltitude)
		o.frames = birdFrames
		o.flap = cfg.Obstacles.BirdFlapSpeed
	}
	return o
}

// Update animates the obstacle and scrolls it left.
func (o *Obstacle) Update(fc FrameContext) {
	k := fc.Scale
	o.index = core.Wrap(o.index+o.flap*k, len(o.frames))
	o.x -= o.speed * k
}

// Gone reports whether the obstacle has fully left the screen.
func (o *Obstacle) Gone() bool {
	return o.Bounds().Right() < 0
}

// Kind returns the obstacle kind.
func (o *Obstacle) Kind() ObstacleKind { return o.kind }

// X returns the exact left edge.
func (o *Obstacle) X() float64 { return o.x }

// Frame returns the current animation frame.
func (o *Obstacle) Frame() *core.Frame { return o.frames.FrameAt(o.index) }

// Mask returns the opacity mask of the current frame.
func (o *Obstacle) Mask() *core.Mask { return o.Frame().Mask() }

// Bounds returns the screen rectangle of the current frame.
func (o *Obstacle) Bounds() core.Rect {
	f := o.Frame()
	return core.RectAt(o.x, o.bottom, f.Width(), f.Height())
}
