package invasion

import (
	"math/rand"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Spawner releases adversaries at a fixed tick interval and owns the
// difficulty speed they are released with.
type Spawner struct {
	adv      config.AdversaryConfig
	diff     config.DifficultyConfig
	interval int
	arenaW   float64
	arenaH   float64
	rng      *rand.Rand
	ticks    int     // Ticks since the last spawn
	speed    float64 // Current difficulty speed, never decreases within a round
}

// NewSpawner creates a spawner seeded for deterministic placement.
func NewSpawner(seed int64, cfg config.InvasionConfig) *Spawner {
	s := &Spawner{
		adv:      cfg.Adversary,
		diff:     cfg.Difficulty,
		interval: cfg.Spawner.IntervalTicks,
		arenaW:   cfg.Arena.Width,
		arenaH:   cfg.Arena.Height,
	}
	s.Reset(seed)
	return s
}

// Reset restores the initial speed, clears the counter and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.ticks = 0
	s.speed = s.diff.InitialSpeed
}

// Speed returns the current difficulty speed.
func (s *Spawner) Speed() float64 { return s.speed }

// Tick counts one running tick and returns a new adversary once the interval is reached.
func (s *Spawner) Tick() (*Adversary, bool) {
	s.ticks++
	if s.ticks < s.interval {
		return nil, false
	}
	s.ticks = 0

	x, y := s.entryPoint()
	box := core.NewBox(x, y, s.adv.Width, s.adv.Height)
	skin := 0
	if s.adv.Skins > 1 {
		skin = s.rng.Intn(s.adv.Skins)
	}
	return newAdversary(box, s.speed, skin, s.arenaH), true
}

// Ramp raises the difficulty speed by one step, honouring the optional cap.
// A speed already above the cap is kept as is.
func (s *Spawner) Ramp() {
	next := s.speed + s.diff.RampStep()
	if s.diff.MaxSpeed > 0 {
		next = min(next, s.diff.MaxSpeed)
	}
	s.speed = max(s.speed, next)
}

// Recycle sends an exited adversary back to the top with a fresh speed in
// [speed, speed*(1+jitter)].
func (s *Spawner) Recycle(a *Adversary) {
	x, y := s.entryPoint()
	speed := s.speed * (1 + s.rng.Float64()*s.adv.RecycleJitter)
	a.reenter(x, y, speed)
}

// entryPoint picks a spawn position fully inside the arena width, above the visible area.
func (s *Spawner) entryPoint() (float64, float64) {
	x := s.rng.Float64() * (s.arenaW - s.adv.Width)
	y := s.adv.SpawnMinY + s.rng.Float64()*(s.adv.SpawnMaxY-s.adv.SpawnMinY)
	return x, y
}
