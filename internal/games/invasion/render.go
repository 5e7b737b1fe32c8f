package invasion

import (
	"fmt"
	"math"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '▲'
	PlayerHullChar = '█'
	WreckChar      = '✕'
	ProjectileChar = '│'
	AlienChar      = '▼'
	GroundChar     = '─'
)

// skinColors gives each adversary sprite variant its own color.
var skinColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightMagenta,
	core.ColorOrange,
	core.ColorBrightCyan,
}

// hudRows is the number of screen rows above the arena.
const hudRows = 1

// viewport maps arena pixels onto screen cells.
type viewport struct {
	sx, sy float64
	top    int
	w, h   int
}

func newViewport(dst *core.Screen, arenaW, arenaH float64) viewport {
	w := dst.Width()
	h := max(dst.Height()-hudRows, 1)
	return viewport{
		sx:  float64(w) / arenaW,
		sy:  float64(h) / arenaH,
		top: hudRows,
		w:   w,
		h:   h,
	}
}

// cells converts a box into the screen cells it covers. Every visible box
// covers at least one cell. ok is false when the box is entirely off screen.
func (v viewport) cells(b core.Box) (r core.Rect, ok bool) {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := max(int(math.Ceil(b.Right()*v.sx)), x0+1)
	y1 := max(int(math.Ceil(b.Bottom()*v.sy)), y0+1)

	x0, x1 = max(x0, 0), min(x1, v.w)
	y0, y1 = max(y0, 0), min(y1, v.h)
	if x0 >= x1 || y0 >= y1 {
		return core.Rect{}, false
	}
	return core.NewRect(x0, y0+v.top, x1-x0, y1-y0), true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := newViewport(dst, g.cfg.Arena.Width, g.cfg.Arena.Height)

	for _, a := range g.adversaries {
		if r, ok := vp.cells(a.Box()); ok {
			dst.DrawRect(r, AlienChar, skinColors[a.Skin()%len(skinColors)])
		}
	}

	for _, p := range g.projectiles {
		if r, ok := vp.cells(p.Box()); ok {
			dst.DrawRect(r, ProjectileChar, core.ColorBrightYellow)
		}
	}

	g.drawPlayer(dst, vp)
	g.drawHUD(dst)

	switch g.phase {
	case core.PhaseNotStarted:
		g.drawCenteredMessage(dst, g.Title(), "Press Enter to Start")
	case core.PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "P to resume  |  R to restart")
	case core.PhaseOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Your score: %d  |  R to restart", g.score))
	}
}

// drawPlayer renders the ship with its nose on the top row.
func (g *Game) drawPlayer(dst *core.Screen, vp viewport) {
	r, ok := vp.cells(g.player.Box())
	if !ok {
		return
	}
	if !g.player.Alive() {
		dst.DrawRect(r, WreckChar, core.ColorRed)
		return
	}
	dst.DrawRect(r, PlayerHullChar, core.ColorBrightGreen)
	dst.SetColored(r.X+r.W/2, r.Y, PlayerChar, core.ColorBrightGreen)
}

// drawHUD renders the score line above the arena.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), GroundChar)
	score := fmt.Sprintf(" Score: %d ", g.score)
	dst.DrawTextColored((dst.Width()-len(score))/2, 0, score, core.ColorBrightWhite)
	dst.DrawTextColored(1, 0, fmt.Sprintf(" Speed %.2f ", g.spawner.Speed()), core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
