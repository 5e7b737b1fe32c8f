package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/audio"
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/registry"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// exitf prints an error and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// variantArg returns the requested variant, defaulting to the classic game.
func variantArg(args []string) string {
	id := "invasion"
	if len(args) > 0 {
		id = args[0]
	}
	if _, ok := registry.Lookup(id); !ok {
		exitf("unknown variant %q\nRun 'invasion list' to see available variants.", id)
	}
	return id
}

// loadGameConfig resolves the configuration from file, preset and environment.
func loadGameConfig() (config.InvasionConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadInvasion(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, "", err
	}
	config.ApplyInvasionPreset(&cfg, preset)

	lookup, err := config.EnvLookup(flagEnvFile)
	if err != nil {
		return cfg, "", err
	}
	config.ApplyEnv(&cfg, lookup)

	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, preset, nil
}

// newLogger builds the process logger. Interactive modes log to a file by
// default so the game screen stays clean.
func newLogger(prefix string, interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	closeLog := func() {}
	path := flagLogFile
	if path == "" && interactive {
		if home, homeErr := os.UserHomeDir(); homeErr == nil {
			path = filepath.Join(home, ".invasion", "invasion.log")
		}
	}
	if path != "" && path != "-" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeLog, nil
}

// openStore opens the score database. Failure is logged and play continues
// without saving.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}

// startAudio prepares the sound player. Without a speaker the game stays silent.
func startAudio(cfg config.InvasionConfig, mute, synth bool, logger *log.Logger) (audio.Sink, func()) {
	if mute {
		return audio.Nop{}, func() {}
	}
	opts := audio.OptionsFromAssets(cfg.Assets)
	opts.Synth = synth
	player := audio.New(opts, logger.WithPrefix("audio"))
	if err := player.Start(); err != nil {
		logger.Warn("audio disabled", "error", err)
		return audio.Nop{}, func() {}
	}
	return player, player.Close
}

// runtimeConfig builds the runtime settings from global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
