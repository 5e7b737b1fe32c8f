package window

import (
	"image/color"
	_ "image/jpeg" // Decoders for ebitenutil.NewImageFromFile
	_ "image/png"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/alien-invasion/internal/config"
)

// Placeholder colors used when an image is missing.
var (
	playerColor = color.RGBA{0x00, 0xc8, 0x00, 0xff}
	alienColor  = color.RGBA{0xd0, 0x20, 0x20, 0xff}
)

// sprites holds every image the window draws.
type sprites struct {
	player  *ebiten.Image
	aliens  []*ebiten.Image
	buttons map[ButtonKind]*ebiten.Image // Missing entries are drawn as plain buttons
}

// loadSprites loads the configured images. Any image that cannot be read
// is replaced by a solid placeholder and logged once.
func loadSprites(a config.AssetsConfig, cfg config.InvasionConfig, logger *log.Logger) *sprites {
	s := &sprites{
		buttons: make(map[ButtonKind]*ebiten.Image),
	}

	s.player = loadImage(a.PlayerImage, logger)
	if s.player == nil {
		s.player = placeholder(cfg.Player.Width, cfg.Player.Height, playerColor)
	}

	for _, path := range a.AlienImages {
		if img := loadImage(path, logger); img != nil {
			s.aliens = append(s.aliens, img)
		}
	}
	if len(s.aliens) == 0 {
		s.aliens = []*ebiten.Image{placeholder(cfg.Adversary.Width, cfg.Adversary.Height, alienColor)}
	}

	for kind, path := range map[ButtonKind]string{
		ButtonStart:    a.StartButtonImage,
		ButtonPause:    a.PauseButtonImage,
		ButtonContinue: a.ContinueButtonImg,
		ButtonRestart:  a.RestartButtonImg,
	} {
		if img := loadImage(path, logger); img != nil {
			s.buttons[kind] = img
		}
	}

	return s
}

// alien returns the image for an adversary skin.
func (s *sprites) alien(skin int) *ebiten.Image {
	return s.aliens[skin%len(s.aliens)]
}

// loadImage reads an image file, returning nil for an empty path or on error.
func loadImage(path string, logger *log.Logger) *ebiten.Image {
	if path == "" {
		return nil
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		logger.Warn("image unavailable, using placeholder", "path", path, "error", err)
		return nil
	}
	return img
}

func placeholder(w, h float64, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(max(int(w), 1), max(int(h), 1))
	img.Fill(c)
	return img
}
