package dino

import (
	"fmt"

	"github.com/vovakirdan/tui-dino/internal/core"
)

const (
	titleText  = "DINO RUNNER"
	overText   = "GAME OVER"
	beginText  = "SPACE to Begin"
	pausedText = "PAUSED"
	resumeText = "Press P to resume"
)

// introFrame is the enlarged player shown on the idle screen.
var introFrame = playerStand.Scale(2)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.phase == core.PhaseIdle {
		g.renderIdle(dst)
		return
	}

	for i := range g.ground {
		drawEntity(dst, &g.ground[i], core.ColorGray)
	}
	for i := range g.obstacles {
		o := &g.obstacles[i]
		c := core.ColorGreen
		if o.Kind() == KindBird {
			c = core.ColorOrange
		}
		drawEntity(dst, o, c)
	}
	drawEntity(dst, g.player, core.ColorBrightWhite)

	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, pausedText, resumeText)
	}
}

// renderIdle draws the title or game-over screen.
func (g *Game) renderIdle(dst *core.Screen) {
	h := dst.Height()

	if g.runs == 0 {
		dst.DrawTextCentered(h/6, titleText, core.ColorYellow)
	} else {
		g.drawHUD(dst)
		dst.DrawTextCentered(h/6, overText, core.ColorRed)
	}

	intro := introFrame
	x := (dst.Width() - intro.Width()) / 2
	y := (h - intro.Height()) / 2
	dst.DrawFrame(x, y, intro, core.ColorBrightWhite)

	dst.DrawTextCentered(h-h/6-1, beginText, core.ColorWhite)
}

// drawHUD shows the current and best score in the top right corner.
func (g *Game) drawHUD(dst *core.Screen) {
	st := g.score.State()
	text := fmt.Sprintf("HI %06d  %06d", st.HighScore, st.Score)
	dst.DrawTextColor(dst.Width()-len(text)-2, 0, text, core.ColorWhite)
}

func drawEntity(dst *core.Screen, e Entity, c core.Color) {
	b := e.Bounds()
	dst.DrawFrame(b.X, b.Y, e.Frame(), c)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
