package invasion

import (
	"testing"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

func TestSpawnerInterval(t *testing.T) {
	cfg := config.DefaultInvasionConfig()
	s := NewSpawner(99, cfg)

	spawned := 0
	for i := 1; i <= 500; i++ {
		a, ok := s.Tick()
		if ok != (i%50 == 0) {
			t.Fatalf("tick %d: spawned=%v", i, ok)
		}
		if ok {
			spawned++
			b := a.Box()
			if b.X < 0 || b.Right() > cfg.Arena.Width {
				t.Errorf("tick %d: adversary x range [%v, %v] outside arena", i, b.X, b.Right())
			}
			if b.Y < cfg.Adversary.SpawnMinY || b.Y > cfg.Adversary.SpawnMaxY {
				t.Errorf("tick %d: adversary y %v outside spawn band", i, b.Y)
			}
			if a.Skin() < 0 || a.Skin() >= cfg.Adversary.Skins {
				t.Errorf("tick %d: skin %d out of range", i, a.Skin())
			}
		}
	}
	if spawned != 10 {
		t.Errorf("spawned %d adversaries in 500 ticks, expected 10", spawned)
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	cfg := config.DefaultInvasionConfig()
	s1 := NewSpawner(7, cfg)
	s2 := NewSpawner(7, cfg)

	for i := 0; i < 300; i++ {
		a1, ok1 := s1.Tick()
		a2, ok2 := s2.Tick()
		if ok1 != ok2 {
			t.Fatalf("tick %d: spawn mismatch", i)
		}
		if ok1 && (a1.Box() != a2.Box() || a1.Skin() != a2.Skin()) {
			t.Fatalf("tick %d: adversaries differ: %+v vs %+v", i, a1.Box(), a2.Box())
		}
	}
}

func TestSpawnerRampAndReset(t *testing.T) {
	cfg := config.DefaultInvasionConfig()
	cfg.Difficulty.MaxSpeed = 1.005
	s := NewSpawner(1, cfg)

	for i := 0; i < 20; i++ {
		s.Ramp()
	}
	want := 1.0 + 20*cfg.Difficulty.RampStep()
	if diff := s.Speed() - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Speed after 20 ramps = %v, expected %v", s.Speed(), want)
	}

	for i := 0; i < 1000; i++ {
		s.Ramp()
	}
	if s.Speed() != 1.005 {
		t.Errorf("Speed should be capped at 1.005, got %v", s.Speed())
	}

	for i := 0; i < 30; i++ {
		s.Tick()
	}
	s.Reset(1)
	if s.Speed() != cfg.Difficulty.InitialSpeed {
		t.Errorf("Reset speed = %v, expected %v", s.Speed(), cfg.Difficulty.InitialSpeed)
	}
	for i := 1; i < 50; i++ {
		if _, ok := s.Tick(); ok {
			t.Fatalf("Reset should clear the counter, spawned on tick %d", i)
		}
	}
}

func TestSpawnerRampNeverLowersSpeed(t *testing.T) {
	tests := []struct {
		name     string
		initial  float64
		maxSpeed float64
		preset   config.DifficultyPreset
	}{
		{"cap below initial", 1.0, 0.5, ""},
		{"cap equal to initial", 1.0, 1.0, ""},
		{"hard preset scales the cap", 1.0, 1.2, config.DifficultyHard},
		{"easy preset", 1.0, 1.2, config.DifficultyEasy},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultInvasionConfig()
			cfg.Difficulty.InitialSpeed = tc.initial
			cfg.Difficulty.MaxSpeed = tc.maxSpeed
			config.ApplyInvasionPreset(&cfg, tc.preset)
			s := NewSpawner(1, cfg)

			prev := s.Speed()
			for i := 0; i < 5000; i++ {
				s.Ramp()
				if s.Speed() < prev {
					t.Fatalf("ramp %d lowered speed from %v to %v", i, prev, s.Speed())
				}
				prev = s.Speed()
			}
			if want := max(cfg.Difficulty.InitialSpeed, cfg.Difficulty.MaxSpeed); s.Speed() > want {
				t.Errorf("speed %v passed the cap %v", s.Speed(), want)
			}
		})
	}
}

func TestSpawnerFixedDifficulty(t *testing.T) {
	cfg := config.DefaultInvasionConfig()
	config.ApplyInvasionPreset(&cfg, config.DifficultyFixed)
	s := NewSpawner(1, cfg)

	for i := 0; i < 500; i++ {
		s.Ramp()
	}
	if s.Speed() != cfg.Difficulty.InitialSpeed {
		t.Errorf("fixed preset should not ramp, speed = %v", s.Speed())
	}
}

func TestSpawnerRecycleSpeed(t *testing.T) {
	cfg := config.DefaultInvasionConfig()
	s := NewSpawner(3, cfg)
	for i := 0; i < 200; i++ {
		s.Ramp()
	}
	base := s.Speed()
	hi := base * (1 + cfg.Adversary.RecycleJitter)

	a := newAdversary(core.NewBox(0, 700, cfg.Adversary.Width, cfg.Adversary.Height), 1, 0, cfg.Arena.Height)
	for i := 0; i < 100; i++ {
		s.Recycle(a)
		if a.Speed() < base || a.Speed() > hi {
			t.Fatalf("recycled speed %v outside [%v, %v]", a.Speed(), base, hi)
		}
		b := a.Box()
		if b.X < 0 || b.Right() > cfg.Arena.Width {
			t.Fatalf("recycled x range [%v, %v] outside arena", b.X, b.Right())
		}
		if b.Y < cfg.Adversary.SpawnMinY || b.Y > cfg.Adversary.SpawnMaxY {
			t.Fatalf("recycled y %v outside spawn band", b.Y)
		}
	}
}
