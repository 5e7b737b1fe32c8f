package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	_ "github.com/vovakirdan/alien-invasion/internal/games/invasion" // Registers the variants
	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
	"github.com/vovakirdan/alien-invasion/internal/registry"
)

var (
	flagMute     bool
	flagSynth    bool
	flagHoldMs   int
	flagHideHelp bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal.

Controls:
  Arrows/WASD - Move
  Space       - Fire (hold for continuous fire)
  Enter       - Start
  P/Esc       - Pause / resume
  R           - Restart (when paused or after game over)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Terminals do not report key releases, so a key counts as held until its
auto-repeat stops for --hold-ms milliseconds.

Difficulty options:
  easy   - Slower aliens, fewer spawns
  normal - Configured values
  hard   - Faster aliens, more spawns
  fixed  - Aliens never speed up

Examples:
  invasion play
  invasion play invasion_recycle
  invasion play --difficulty hard
  invasion play --config ./my-invasion.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().BoolVar(&flagSynth, "synth", false, "Generate tones for events without a sound file")
	playCmd.Flags().IntVar(&flagHoldMs, "hold-ms", 250, "Key release window in milliseconds")
	playCmd.Flags().BoolVar(&flagHideHelp, "no-help", false, "Hide the key help line")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := variantArg(args)

	logger, closeLog, err := newLogger("invasion", true)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	cfg, preset, err := loadGameConfig()
	if err != nil {
		exitf("%v", err)
	}

	game, err := registry.Create(gameID, cfg)
	if err != nil {
		exitf("creating game: %v", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sink, stopAudio := startAudio(cfg, flagMute, flagSynth, logger)
	defer stopAudio()

	runErr := tui.Run(game, runtimeConfig(width, height), tui.Options{
		Store:       store,
		Sink:        sink,
		Logger:      logger,
		Difficulty:  string(preset),
		HoldRelease: msToDuration(flagHoldMs),
		HideHelp:    flagHideHelp,
	})
	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		exitf("running game: %v", runErr)
	}
}
