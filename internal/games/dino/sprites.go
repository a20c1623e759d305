package dino

import (
	"strings"

	"github.com/vovakirdan/tui-dino/internal/core"
)

// Player frames. The stand pose doubles as the airborne pose.
var (
	playerStand = core.NewFrame(
		"   ▄██",
		"█▄███▀",
		" ███  ",
		" █ █  ",
	)

	playerWalk = core.Animation{
		core.NewFrame(
			"   ▄██",
			"█▄███▀",
			" ███  ",
			" █ ▀  ",
		),
		core.NewFrame(
			"   ▄██",
			"█▄███▀",
			" ███  ",
			" ▀ █  ",
		),
	}

	playerDuck = core.Animation{
		core.NewFrame(
			"█▄▄▄▄██▀",
			" █  ▀   ",
		),
		core.NewFrame(
			"█▄▄▄▄██▀",
			" ▀  █   ",
		),
	}
)

// Obstacle frames.
var (
	cactusFrames = core.Animation{
		core.NewFrame(
			" █ ",
			"▀█▀",
			" █ ",
		),
	}

	birdFrames = core.Animation{
		core.NewFrame(
			"  ▄▀  ",
			"<██▀▀▀",
		),
		core.NewFrame(
			"<██▀▀▀",
			"  ▀▄  ",
		),
	}
)

// groundDetail is tiled along the second ground row so scrolling is visible.
const groundDetail = "  .    ˙   _    .  ,     ˙  .   _   "

// groundFrame builds a ground tile of the given width: a solid surface line
// and a sparse row of pebbles. Both tiles share the same pattern so they
// join seamlessly.
func groundFrame(width int) *core.Frame {
	detail := []rune(groundDetail)

	var surface, pebbles strings.Builder
	for i := 0; i < width; i++ {
		surface.WriteRune(GroundChar)
		pebbles.WriteRune(detail[i%len(detail)])
	}
	return core.NewFrame(surface.String(), pebbles.String())
}
