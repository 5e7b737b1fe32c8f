package config

import (
	_ "embed"
)

//go:embed defaults/invasion.yaml
var defaultInvasionYAML []byte

// DefaultInvasionConfig returns the default Alien Invasion configuration.
func DefaultInvasionConfig() InvasionConfig {
	return InvasionConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Speed:          5,
			Width:          50,
			Height:         50,
			BottomMargin:   10,
			ClampVertical:  true,
			FireCooldownMs: 250,
		},
		Projectile: ProjectileConfig{
			Speed:  7,
			Width:  5,
			Height: 10,
		},
		Adversary: AdversaryConfig{
			Width:         50,
			Height:        50,
			SpawnMinY:     -100,
			SpawnMaxY:     -40,
			Skins:         4,
			RecycleJitter: 0.5,
		},
		Spawner: SpawnerConfig{
			IntervalTicks: 50,
		},
		Difficulty: DifficultyConfig{
			InitialSpeed: 1.0,
			Increment:    0.1,
			Divisor:      1000,
		},
		Scoring: ScoringConfig{
			PointsPerKill: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvasionYAML
}
