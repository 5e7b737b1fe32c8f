package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// EnvLookup returns a lookup that reads the process environment first and
// falls back to the values in envFile. A missing envFile is not an error.
func EnvLookup(envFile string) (LookupFunc, error) {
	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVars = vars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return os.LookupEnv, fmt.Errorf("config: cannot read env file %s: %w", envFile, err)
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides asset paths from environment variables.
// Variable names match the original asset layout: PLAYER_IMG, ALIEN_IMG_1..4,
// SHOOT_SOUND, HIT_SOUND, COLLISION_SOUND and the *_BUTTON_IMG family.
func ApplyEnv(cfg *InvasionConfig, lookup LookupFunc) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	set("PLAYER_IMG", &cfg.Assets.PlayerImage)
	set("SHOOT_SOUND", &cfg.Assets.ShootSound)
	set("HIT_SOUND", &cfg.Assets.HitSound)
	set("COLLISION_SOUND", &cfg.Assets.CollisionSound)
	set("START_BUTTON_IMG", &cfg.Assets.StartButtonImage)
	set("PAUSE_BUTTON_IMG", &cfg.Assets.PauseButtonImage)
	set("CONTINUE_BUTTON_IMG", &cfg.Assets.ContinueButtonImg)
	set("RESTART_BUTTON_IMG", &cfg.Assets.RestartButtonImg)

	var aliens []string
	for i := 1; i <= 4; i++ {
		if v, ok := lookup("ALIEN_IMG_" + strconv.Itoa(i)); ok && v != "" {
			aliens = append(aliens, v)
		}
	}
	if len(aliens) > 0 {
		cfg.Assets.AlienImages = aliens
	}
}
