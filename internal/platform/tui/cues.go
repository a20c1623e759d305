package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-dino/internal/core"
)

// flashDuration is how long a cue message stays on screen.
const flashDuration = 1500 * time.Millisecond

// FlashCues shows game cues as short messages over the playfield, the
// terminal stand-in for sound effects.
type FlashCues struct {
	mu    sync.Mutex
	clock core.Clock
	text  string
	color core.Color
	until time.Duration
	jumps int
}

// NewFlashCues creates cues timed by clock.
func NewFlashCues(clock core.Clock) *FlashCues {
	return &FlashCues{clock: clock}
}

// Jump counts jumps; they happen too often to flash.
func (c *FlashCues) Jump() {
	c.mu.Lock()
	c.jumps++
	c.mu.Unlock()
}

// Death flashes a crash message.
func (c *FlashCues) Death() {
	c.flash("CRASH!", core.ColorRed)
}

// HighScore flashes the new record message.
func (c *FlashCues) HighScore() {
	c.flash("NEW HIGH SCORE!", core.ColorYellow)
}

func (c *FlashCues) flash(text string, color core.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.text = text
	c.color = color
	c.until = c.clock.Now() + flashDuration
}

// Jumps returns and resets the jump count.
func (c *FlashCues) Jumps() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.jumps
	c.jumps = 0
	return n
}

// Draw writes the active message, if any, centered on row y.
func (c *FlashCues) Draw(dst *core.Screen, y int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.text == "" || c.clock.Now() >= c.until {
		return
	}
	dst.DrawTextCentered(y, c.text, c.color)
}
