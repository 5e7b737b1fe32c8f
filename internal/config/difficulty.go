package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// SpeedFactorForPreset returns the multiplier applied to the initial speed, ramp and cap.
func SpeedFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ApplyInvasionPreset modifies the config based on a difficulty preset.
func ApplyInvasionPreset(cfg *InvasionConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}

	if preset == DifficultyFixed {
		cfg.Difficulty.Increment = 0
		return
	}

	factor := SpeedFactorForPreset(preset)
	cfg.Difficulty.InitialSpeed *= factor
	cfg.Difficulty.Increment *= factor
	cfg.Difficulty.MaxSpeed *= factor

	// Adjust spawn pressure based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Spawner.IntervalTicks += cfg.Spawner.IntervalTicks / 5
	case DifficultyHard:
		cfg.Spawner.IntervalTicks -= cfg.Spawner.IntervalTicks / 5
	}
	if cfg.Spawner.IntervalTicks < 1 {
		cfg.Spawner.IntervalTicks = 1
	}
}
