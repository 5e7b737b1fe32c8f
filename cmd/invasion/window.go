package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/platform/window"
	"github.com/vovakirdan/alien-invasion/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window with sprites, sound and clickable
Start / Pause / Continue / Restart buttons.

Images and sounds are read from the assets section of the configuration,
overridden by PLAYER_IMG, ALIEN_IMG_1..4, SHOOT_SOUND, HIT_SOUND,
COLLISION_SOUND and *_BUTTON_IMG from the environment or --env-file.
Missing images are drawn as coloured blocks, missing sounds stay silent.

Controls:
  Arrows/WASD - Move
  Space       - Fire
  Enter       - Start
  P           - Pause / resume
  R           - Restart
  Esc         - Quit

Examples:
  invasion window
  invasion window invasion_recycle --env-file ./assets.env`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	windowCmd.Flags().BoolVar(&flagSynth, "synth", false, "Generate tones for events without a sound file")
}

func runWindow(cmd *cobra.Command, args []string) {
	gameID := variantArg(args)

	logger, closeLog, err := newLogger("invasion", false)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	cfg, preset, err := loadGameConfig()
	if err != nil {
		exitf("%v", err)
	}

	created, err := registry.Create(gameID, cfg)
	if err != nil {
		exitf("creating game: %v", err)
	}
	game, ok := created.(*invasion.Game)
	if !ok {
		exitf("variant %q cannot be played in a window", gameID)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sink, stopAudio := startAudio(cfg, flagMute, flagSynth, logger)
	defer stopAudio()

	runErr := window.Run(game, runtimeConfig(int(cfg.Arena.Width), int(cfg.Arena.Height)), window.Options{
		Store:      store,
		Sink:       sink,
		Logger:     logger.WithPrefix("window"),
		Difficulty: string(preset),
	})
	if runErr != nil {
		exitf("%v", runErr)
	}
}
