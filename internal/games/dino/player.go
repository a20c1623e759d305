package dino

import (
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
)

// Player is the runner. Its horizontal position is fixed; only the vertical
// position, velocity and pose change.
type Player struct {
	x        int
	bottom   float64 // Bottom edge, screen coordinates (grows downward)
	velocity float64 // Vertical velocity, negative = up
	ducking  bool
	index    float64 // Walk/duck animation index
	frame    *core.Frame

	groundY int
	physics config.DinoPhysics
	speed   float64 // Animation index advance per frame
}

// NewPlayer creates a player standing on the ground line.
func NewPlayer(cfg config.DinoConfig, groundY int) *Player {
	p := &Player{
		x:       cfg.Player.X,
		groundY: groundY,
		physics: cfg.Physics,
		speed:   cfg.Player.AnimationSpeed,
	}
	p.Reset()
	return p
}

// Reset puts the player back on the ground, at rest and standing.
func (p *Player) Reset() {
	p.bottom = float64(p.groundY)
	p.velocity = 0
	p.ducking = false
	p.index = 0
	p.frame = playerStand
}

// Update advances the player one frame: gravity first, then the walk
// animation, then input. The pose is re-derived last so it always matches
// the state the frame ended in.
func (p *Player) Update(fc FrameContext) {
	k := fc.Scale

	p.fall(k)

	if p.OnGround() && !p.ducking {
		p.index = core.Wrap(p.index+p.speed*k, len(playerWalk))
	}

	if fc.Input.Has(core.ActionJump) && p.OnGround() && !p.ducking {
		p.velocity = p.physics.JumpImpulse
		if fc.Cues != nil {
			fc.Cues.Jump()
		}
	}

	if fc.Input.Has(core.ActionDuck) && p.OnGround() {
		p.index = core.Wrap(p.index+p.speed*k, len(playerDuck))
		p.ducking = true
	} else {
		p.ducking = false
	}

	p.frame = p.pose()
}

// fall applies gravity and clamps the player to the ground line. Landing
// zeroes the velocity.
func (p *Player) fall(k float64) {
	p.velocity += p.physics.Gravity * k
	p.bottom += p.velocity * k

	if p.bottom >= float64(p.groundY) {
		p.bottom = float64(p.groundY)
		p.velocity = 0
	}
}

func (p *Player) pose() *core.Frame {
	switch {
	case !p.OnGround():
		return playerStand
	case p.ducking:
		return playerDuck.FrameAt(p.index)
	default:
		return playerWalk.FrameAt(p.index)
	}
}

// OnGround reports whether the bottom edge rests on the ground line.
func (p *Player) OnGround() bool {
	return p.bottom >= float64(p.groundY)
}

// Ducking reports whether the duck pose is active.
func (p *Player) Ducking() bool { return p.ducking }

// Velocity returns the vertical velocity.
func (p *Player) Velocity() float64 { return p.velocity }

// Bottom returns the exact bottom edge.
func (p *Player) Bottom() float64 { return p.bottom }

// Frame returns the image of the current pose.
func (p *Player) Frame() *core.Frame { return p.frame }

// Mask returns the opacity mask of the current pose.
func (p *Player) Mask() *core.Mask { return p.frame.Mask() }

// Bounds returns the screen rectangle of the current pose.
func (p *Player) Bounds() core.Rect {
	return core.RectAt(float64(p.x), p.bottom, p.frame.Width(), p.frame.Height())
}
