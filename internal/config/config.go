// Package config provides YAML-based game configuration loading and
// difficulty presets for the invasion arcade.
package config

import (
	"errors"
	"fmt"
)

// InvasionConfig contains all configuration for the Alien Invasion game.
type InvasionConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Adversary  AdversaryConfig  `yaml:"adversary"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Assets     AssetsConfig     `yaml:"assets"`
}

// ArenaConfig defines the playfield size in pixels.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	BottomMargin   float64 `yaml:"bottom_margin"`
	ClampVertical  bool    `yaml:"clamp_vertical"`
	FireCooldownMs int     `yaml:"fire_cooldown_ms"`
}

// ProjectileConfig defines projectile parameters.
type ProjectileConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AdversaryConfig defines adversary parameters.
type AdversaryConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpawnMinY     float64 `yaml:"spawn_min_y"`
	SpawnMaxY     float64 `yaml:"spawn_max_y"`
	Skins         int     `yaml:"skins"`          // Number of sprite variants to pick from
	RecycleJitter float64 `yaml:"recycle_jitter"` // Extra speed fraction for recycled adversaries
}

// SpawnerConfig defines how often adversaries appear.
type SpawnerConfig struct {
	IntervalTicks int `yaml:"interval_ticks"`
}

// DifficultyConfig defines the continuous speed ramp.
// Each running tick adds Increment/Divisor to the adversary speed.
type DifficultyConfig struct {
	InitialSpeed float64 `yaml:"initial_speed"`
	Increment    float64 `yaml:"increment"`
	Divisor      float64 `yaml:"divisor"`
	MaxSpeed     float64 `yaml:"max_speed"` // 0 = uncapped
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	PointsPerKill int `yaml:"points_per_kill"`
}

// AssetsConfig holds optional image and sound paths used by frontends.
// Empty or unreadable paths fall back to placeholders or silence.
type AssetsConfig struct {
	PlayerImage       string   `yaml:"player_image"`
	AlienImages       []string `yaml:"alien_images"`
	ShootSound        string   `yaml:"shoot_sound"`
	HitSound          string   `yaml:"hit_sound"`
	CollisionSound    string   `yaml:"collision_sound"`
	StartButtonImage  string   `yaml:"start_button_image"`
	PauseButtonImage  string   `yaml:"pause_button_image"`
	ContinueButtonImg string   `yaml:"continue_button_image"`
	RestartButtonImg  string   `yaml:"restart_button_image"`
}

// RampStep returns the speed added per running tick.
func (d DifficultyConfig) RampStep() float64 {
	if d.Divisor == 0 {
		return 0
	}
	return d.Increment / d.Divisor
}

// Validate checks the configuration for values the simulation cannot run with.
func (c InvasionConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("player.speed", c.Player.Speed)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("projectile.speed", c.Projectile.Speed)
	positive("projectile.width", c.Projectile.Width)
	positive("projectile.height", c.Projectile.Height)
	positive("adversary.width", c.Adversary.Width)
	positive("adversary.height", c.Adversary.Height)
	positive("difficulty.initial_speed", c.Difficulty.InitialSpeed)

	if c.Player.FireCooldownMs < 0 {
		errs = append(errs, fmt.Errorf("player.fire_cooldown_ms must not be negative, got %d", c.Player.FireCooldownMs))
	}
	if c.Spawner.IntervalTicks <= 0 {
		errs = append(errs, fmt.Errorf("spawner.interval_ticks must be positive, got %d", c.Spawner.IntervalTicks))
	}
	if c.Adversary.SpawnMinY > c.Adversary.SpawnMaxY {
		errs = append(errs, fmt.Errorf("adversary.spawn_min_y (%g) exceeds spawn_max_y (%g)",
			c.Adversary.SpawnMinY, c.Adversary.SpawnMaxY))
	}
	if c.Adversary.Width > c.Arena.Width {
		errs = append(errs, fmt.Errorf("adversary.width (%g) exceeds arena.width (%g)", c.Adversary.Width, c.Arena.Width))
	}
	if c.Player.Width > c.Arena.Width || c.Player.Height > c.Arena.Height {
		errs = append(errs, errors.New("player does not fit in the arena"))
	}
	if c.Difficulty.Increment < 0 {
		errs = append(errs, fmt.Errorf("difficulty.increment must not be negative, got %g", c.Difficulty.Increment))
	}
	if c.Difficulty.Increment > 0 && c.Difficulty.Divisor <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.divisor must be positive, got %g", c.Difficulty.Divisor))
	}
	if c.Difficulty.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("difficulty.max_speed must not be negative, got %g", c.Difficulty.MaxSpeed))
	}
	if c.Difficulty.MaxSpeed > 0 && c.Difficulty.MaxSpeed < c.Difficulty.InitialSpeed {
		errs = append(errs, fmt.Errorf("difficulty.max_speed (%g) is below initial_speed (%g)",
			c.Difficulty.MaxSpeed, c.Difficulty.InitialSpeed))
	}
	if c.Adversary.RecycleJitter < 0 {
		errs = append(errs, fmt.Errorf("adversary.recycle_jitter must not be negative, got %g", c.Adversary.RecycleJitter))
	}
	if c.Scoring.PointsPerKill < 0 {
		errs = append(errs, fmt.Errorf("scoring.points_per_kill must not be negative, got %d", c.Scoring.PointsPerKill))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid invasion config: %w", errors.Join(errs...))
	}
	return nil
}
