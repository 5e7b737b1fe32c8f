// Package window runs the invasion game in a desktop window using ebiten.
// ebiten reports real key presses and releases, so held keys map directly
// onto the input frame.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/alien-invasion/internal/audio"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

var (
	backgroundColor = color.RGBA{0x08, 0x08, 0x18, 0xff}
	projectileColor = color.RGBA{0xff, 0xe0, 0x40, 0xff}
	bannerColor     = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

// heldKeys maps continuous actions to the keys that drive them.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionFire:  {ebiten.KeySpace},
}

// commandKeys maps discrete actions to the keys that trigger them.
var commandKeys = map[core.Action][]ebiten.Key{
	core.ActionStart:   {ebiten.KeyEnter},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionRestart: {ebiten.KeyR},
}

// Options holds the optional collaborators of the window frontend.
type Options struct {
	Store      *storage.Store
	Sink       audio.Sink
	Logger     *log.Logger
	Difficulty string
}

// Frontend adapts an invasion game to ebiten.Game.
type Frontend struct {
	game    *invasion.Game
	config  core.RuntimeConfig
	reseed  bool
	sprites *sprites
	store   *storage.Store
	sink    audio.Sink
	logger  *log.Logger
	preset  string

	frame core.InputFrame
	state core.GameState
	saved bool
}

// NewFrontend creates a frontend and loads the images named in the game's
// asset configuration.
func NewFrontend(game *invasion.Game, rc core.RuntimeConfig, opts Options) *Frontend {
	if opts.Sink == nil {
		opts.Sink = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	reseed := rc.Seed == 0
	if reseed {
		rc.Seed = time.Now().UnixNano()
	}

	cfg := game.Config()
	f := &Frontend{
		game:    game,
		config:  rc,
		reseed:  reseed,
		sprites: loadSprites(cfg.Assets, cfg, opts.Logger),
		store:   opts.Store,
		sink:    opts.Sink,
		logger:  opts.Logger,
		preset:  opts.Difficulty,
		frame:   core.NewInputFrame(),
	}
	game.Reset(rc)
	f.state = game.State()
	return f
}

// Update runs one simulation frame. Escape closes the window.
func (f *Frontend) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	f.frame.Clear()
	f.readInput()

	if f.frame.Has(core.ActionRestart) && (f.state.GameOver() || f.state.Paused()) {
		f.restart()
	}

	result := f.game.Step(f.frame)
	f.state = result.State
	f.sink.Notify(result.Events)

	if f.state.GameOver() && !f.saved {
		f.saveRound()
		f.saved = true
	}
	return nil
}

// readInput fills the frame from the keyboard and button clicks.
func (f *Frontend) readInput() {
	for action, keys := range heldKeys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				f.frame.Hold(action)
				break
			}
		}
	}
	for action, keys := range commandKeys {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				f.frame.Set(action)
				break
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if b, ok := buttonAt(f.state.Phase, image.Pt(ebiten.CursorPosition())); ok {
			f.frame.Set(b.Action)
		}
	}
}

// restart resets the game on a fresh seed and starts it on this frame.
func (f *Frontend) restart() {
	if f.reseed {
		f.config.Seed = time.Now().UnixNano()
	}
	f.game.Reset(f.config)
	f.saved = false
	f.frame.Clear()
	f.frame.Set(core.ActionStart)
}

// saveRound records the finished round. Failures are logged and ignored.
func (f *Frontend) saveRound() {
	round := storage.Round{
		GameID:     f.game.ID(),
		Score:      f.state.Score,
		Kills:      f.game.Kills(),
		PlayTime:   f.game.PlayTime(),
		Difficulty: f.preset,
	}
	f.logger.Info("round over", "game", round.GameID, "score", round.Score, "kills", round.Kills)
	if f.store == nil || round.Score == 0 {
		return
	}
	if _, err := f.store.SaveRound(round); err != nil {
		f.logger.Warn("cannot save score", "error", err)
	}
}

// Draw renders the arena, HUD and buttons.
func (f *Frontend) Draw(screen *ebiten.Image) {
	snap := f.game.Snapshot()
	screen.Fill(backgroundColor)

	for _, a := range snap.Adversaries {
		drawSprite(screen, f.sprites.alien(a.Skin), a.Box, false)
	}
	for _, p := range snap.Projectiles {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), projectileColor, false)
	}
	drawSprite(screen, f.sprites.player, snap.Player, !snap.PlayerAlive)

	face := basicfont.Face7x13
	score := fmt.Sprintf("Score: %d", snap.Score)
	text.Draw(screen, score, face, (int(snap.ArenaW)-text.BoundString(face, score).Dx())/2, 30, color.White)

	cursor := image.Pt(ebiten.CursorPosition())
	for _, b := range buttons {
		if b.visible(snap.Phase) {
			b.draw(screen, f.sprites.buttons[b.Kind], cursor.In(b.Rect))
		}
	}

	switch snap.Phase {
	case core.PhaseNotStarted:
		drawBanner(screen, snap, f.game.Title(), "Press Enter or click Start")
	case core.PhasePaused:
		drawBanner(screen, snap, "PAUSED", "P or Continue to resume")
	case core.PhaseOver:
		drawBanner(screen, snap, "GAME OVER", fmt.Sprintf("Your score: %d  -  R to restart", snap.Score))
	}
}

// drawSprite stretches img over the box. Wrecks are tinted red.
func drawSprite(dst, img *ebiten.Image, b core.Box, wreck bool) {
	sz := img.Bounds().Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(b.W/float64(sz.X), b.H/float64(sz.Y))
	op.GeoM.Translate(b.X, b.Y)
	if wreck {
		op.ColorScale.Scale(1, 0.3, 0.3, 1)
	}
	dst.DrawImage(img, op)
}

// drawBanner draws a two-line message in the middle of the arena.
func drawBanner(dst *ebiten.Image, snap invasion.Snapshot, title, subtitle string) {
	face := basicfont.Face7x13
	cx, cy := int(snap.ArenaW)/2, int(snap.ArenaH)/2

	w := max(text.BoundString(face, title).Dx(), text.BoundString(face, subtitle).Dx()) + 40
	vector.DrawFilledRect(dst, float32(cx-w/2), float32(cy-40), float32(w), 70, bannerColor, false)

	text.Draw(dst, title, face, cx-text.BoundString(face, title).Dx()/2, cy-15, color.White)
	text.Draw(dst, subtitle, face, cx-text.BoundString(face, subtitle).Dx()/2, cy+15, color.White)
}

// Layout keeps the logical screen at arena size; ebiten scales the window.
func (f *Frontend) Layout(_, _ int) (int, int) {
	cfg := f.game.Config()
	return int(cfg.Arena.Width), int(cfg.Arena.Height)
}

// Run opens the window and blocks until it is closed.
func Run(game *invasion.Game, rc core.RuntimeConfig, opts Options) error {
	cfg := game.Config()
	ebiten.SetWindowSize(int(cfg.Arena.Width), int(cfg.Arena.Height))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if rc.TickRate > 0 {
		ebiten.SetTPS(rc.TickRate)
	}

	err := ebiten.RunGame(NewFrontend(game, rc, opts))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
