package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/buzzy-bird/internal/config"
	"github.com/vovakirdan/buzzy-bird/internal/core"
)

// Visual characters for rendering
const (
	FlyerChar     = '●'
	FlyerBeakChar = '▶'
	PipeChar      = '█'
	PipeCapChar   = '▓'
	GroundChar    = '▔'
)

// Render draws the round onto dst, scaling playfield units to cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	if dst.Width() == 0 || dst.Height() == 0 || snap.Width <= 0 || snap.Height <= 0 {
		return
	}

	if snap.Status == StatusIdle {
		drawMessage(dst, "BUZZY BIRD", "Sing to fly  |  Enter to start")
		return
	}

	sx := float64(dst.Width()) / snap.Width
	sy := float64(dst.Height()) / snap.Height

	for _, p := range snap.Pipes {
		drawPipe(dst, p, g.sim, sx, sy)
	}
	drawFlyer(dst, snap.Flyer, sx, sy)

	drawHUD(dst, snap)

	switch {
	case snap.Status == StatusGameOver:
		drawMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  Q quit", snap.Score))
	case snap.Paused:
		drawMessage(dst, "PAUSED", "Press P to resume")
	case snap.Phase == PhaseOnBreak:
		secs := snap.BreakRemaining.Seconds()
		drawMessage(dst, "REST BREAK", fmt.Sprintf("Breathe... %.1fs", secs))
	}
}

// drawPipe renders one pipe's four parts.
func drawPipe(dst *core.Screen, p Pipe, sim config.Simulation, sx, sy float64) {
	x0, x1 := span(p.X, p.X+PipeWidth, sx)
	for i, r := range p.Rects(sim) {
		y0, y1 := span(r.Y, r.Bottom(), sy)
		fill, color := PipeChar, core.ColorPipe
		if i == 1 || i == 2 {
			fill, color = PipeCapChar, core.ColorPipeCap
		}
		dst.FillRect(x0, y0, x1-x0, y1-y0, fill, color)
	}
}

// drawFlyer renders the bird as a block of body cells with a beak on the right.
func drawFlyer(dst *core.Screen, r core.Rect, sx, sy float64) {
	x0, x1 := span(r.X, r.Right(), sx)
	y0, y1 := span(r.Y, r.Bottom(), sy)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	dst.FillRect(x0, y0, x1-x0, y1-y0, FlyerChar, core.ColorFlyer)
	dst.SetColor(x1-1, y0, FlyerBeakChar, core.ColorBeak)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGround)
	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorScore)

	var status string
	color := core.ColorStatus
	switch snap.Phase {
	case PhaseActive:
		status = fmt.Sprintf(" Break in %d ", snap.PipesToBreak)
	case PhasePendingBreak:
		status = " Break next "
		color = core.ColorBreakWarn
	case PhaseOnBreak:
		status = " Resting "
	}
	dst.DrawTextColor(dst.Width()-len(status)-2, 0, status, color)
}

// drawMessage draws a boxed two-line message in the center of the screen.
func drawMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}

// span maps [a, b) in playfield units onto a cell range.
func span(a, b, scale float64) (int, int) {
	return int(math.Floor(a * scale)), int(math.Floor(b * scale))
}
