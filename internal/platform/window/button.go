package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// ButtonKind identifies one of the on-screen buttons.
type ButtonKind int

const (
	ButtonStart ButtonKind = iota
	ButtonPause
	ButtonContinue
	ButtonRestart
)

// Button layout in arena pixels.
const (
	buttonW   = 100
	buttonH   = 50
	buttonTop = 10
)

var (
	buttonColor = color.RGBA{0x40, 0x40, 0x40, 0xff}
	buttonHover = color.RGBA{0x70, 0x70, 0x70, 0xff}
)

// Button is a clickable rectangle that triggers a game action.
type Button struct {
	Kind   ButtonKind
	Label  string
	Action core.Action
	Rect   image.Rectangle
}

// buttons lists every button with its fixed position.
var buttons = []Button{
	{Kind: ButtonStart, Label: "Start", Action: core.ActionStart, Rect: image.Rect(10, buttonTop, 10+buttonW, buttonTop+buttonH)},
	{Kind: ButtonPause, Label: "Pause", Action: core.ActionPause, Rect: image.Rect(120, buttonTop, 120+buttonW, buttonTop+buttonH)},
	{Kind: ButtonContinue, Label: "Continue", Action: core.ActionPause, Rect: image.Rect(120, buttonTop, 120+buttonW, buttonTop+buttonH)},
	{Kind: ButtonRestart, Label: "Restart", Action: core.ActionRestart, Rect: image.Rect(230, buttonTop, 230+buttonW, buttonTop+buttonH)},
}

// visible reports whether the button applies to the given phase.
// Pause and Continue share a slot and swap with the phase.
func (b Button) visible(p core.Phase) bool {
	switch b.Kind {
	case ButtonStart:
		return p == core.PhaseNotStarted
	case ButtonPause:
		return p == core.PhaseRunning
	case ButtonContinue:
		return p == core.PhasePaused
	case ButtonRestart:
		return p == core.PhasePaused || p == core.PhaseOver
	}
	return false
}

// buttonAt returns the visible button under the point, if any.
func buttonAt(p core.Phase, pt image.Point) (Button, bool) {
	for _, b := range buttons {
		if b.visible(p) && pt.In(b.Rect) {
			return b, true
		}
	}
	return Button{}, false
}

// draw renders the button with its image or as a labelled rectangle.
func (b Button) draw(dst *ebiten.Image, img *ebiten.Image, hovered bool) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())

	if img != nil {
		op := &ebiten.DrawImageOptions{}
		sz := img.Bounds().Size()
		op.GeoM.Scale(float64(w)/float64(sz.X), float64(h)/float64(sz.Y))
		op.GeoM.Translate(float64(x), float64(y))
		if hovered {
			op.ColorScale.Scale(1.2, 1.2, 1.2, 1)
		}
		dst.DrawImage(img, op)
		return
	}

	fill := buttonColor
	if hovered {
		fill = buttonHover
	}
	vector.DrawFilledRect(dst, x, y, w, h, fill, false)
	vector.StrokeRect(dst, x, y, w, h, 2, color.White, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, b.Label)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+face.Ascent)/2
	text.Draw(dst, b.Label, face, tx, ty, color.White)
}
