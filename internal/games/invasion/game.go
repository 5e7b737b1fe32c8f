// Package invasion implements the Alien Invasion shooter.
// The player moves along the bottom of the arena and shoots down adversaries
// that descend from above at a slowly rising speed. Any adversary reaching
// the player ends the round.
//
// All positions are in arena pixels; rendering scales them to the target
// screen. The simulation is frame-stepped and deterministic for a given seed.
package invasion

import (
	"time"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/registry"
)

// Variant selects what happens to adversaries that leave the bottom of the arena.
type Variant int

const (
	VariantRemove  Variant = iota // Exited adversaries are dropped
	VariantRecycle                // Exited adversaries re-enter from the top with a new speed
)

// Registered game IDs.
const (
	IDRemove  = "invasion"
	IDRecycle = "invasion_recycle"
)

// variants describes each variant for the registry and the start screen.
var variants = map[Variant]registry.Variant{
	VariantRemove: {
		ID:          IDRemove,
		Title:       "Alien Invasion",
		Description: "Adversaries that slip past the bottom are gone for good",
	},
	VariantRecycle: {
		ID:          IDRecycle,
		Title:       "Alien Invasion (endless wave)",
		Description: "Adversaries that slip past come back from the top, often faster",
	},
}

// Game implements the Alien Invasion game logic.
type Game struct {
	cfg     config.InvasionConfig
	variant Variant
	runtime core.RuntimeConfig

	phase core.Phase
	score int
	kills int
	tick  uint64
	clock time.Duration // Play clock, advances only on running ticks

	player      *Player
	projectiles []*Projectile
	adversaries []*Adversary
	spawner     *Spawner
	resolver    CollisionResolver
}

// New creates a game for the given configuration and variant.
// The configuration must already be validated.
func New(cfg config.InvasionConfig, variant Variant) *Game {
	g := &Game{
		cfg:     cfg,
		variant: variant,
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return variants[g.variant].ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return variants[g.variant].Title
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.InvasionConfig {
	return g.cfg
}

// Reset reinitializes every owned object in place and returns to NotStarted.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.phase = core.PhaseNotStarted
	g.score = 0
	g.kills = 0
	g.tick = 0
	g.clock = 0

	if g.player == nil {
		g.player = NewPlayer(g.cfg.Player, g.cfg.Projectile, g.cfg.Arena.Width, g.cfg.Arena.Height)
	} else {
		g.player.Reset()
	}
	if g.spawner == nil {
		g.spawner = NewSpawner(rc.Seed, g.cfg)
	} else {
		g.spawner.Reset(rc.Seed)
	}

	clear(g.projectiles)
	g.projectiles = g.projectiles[:0]
	clear(g.adversaries)
	g.adversaries = g.adversaries[:0]
}

// Start begins the round. Only valid before the first start.
func (g *Game) Start() {
	if g.phase == core.PhaseNotStarted {
		g.phase = core.PhaseRunning
	}
}

// TogglePause switches between Running and Paused.
func (g *Game) TogglePause() {
	switch g.phase {
	case core.PhaseRunning:
		g.phase = core.PhasePaused
	case core.PhasePaused:
		g.phase = core.PhaseRunning
	}
}

// Restart discards the round and starts a fresh one.
// Only valid from Over or Paused.
func (g *Game) Restart() {
	if g.phase != core.PhaseOver && g.phase != core.PhasePaused {
		return
	}
	g.Reset(g.runtime)
	g.phase = core.PhaseRunning
}

// applyCommands honours at most one discrete command per tick.
// Restart wins over Start, which wins over Pause.
func (g *Game) applyCommands(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart) && (g.phase == core.PhaseOver || g.phase == core.PhasePaused):
		g.Restart()
	case in.Has(core.ActionStart) && g.phase == core.PhaseNotStarted:
		g.Start()
	case in.Has(core.ActionPause):
		g.TogglePause()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.applyCommands(in)

	if g.phase != core.PhaseRunning {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.clock += g.runtime.FrameDuration()

	var events []core.Event

	g.player.Advance(in)
	g.player.SetFiring(in.IsHeld(core.ActionFire))
	if g.player.Firing() {
		if p, ok := g.player.TryFire(g.clock); ok {
			g.projectiles = append(g.projectiles, p)
			events = append(events, core.EventFired)
		}
	}

	for _, p := range g.projectiles {
		p.Advance()
	}
	for _, a := range g.adversaries {
		a.Advance()
		if a.Exited() && g.variant == VariantRecycle {
			g.spawner.Recycle(a)
		}
	}

	if a, ok := g.spawner.Tick(); ok {
		g.adversaries = append(g.adversaries, a)
	}

	hits := g.resolver.Resolve(g.player, g.projectiles, g.adversaries)
	g.kills += hits.Hits
	for i := 0; i < hits.Hits; i++ {
		g.score += g.cfg.Scoring.PointsPerKill
		events = append(events, core.EventHit)
	}
	if hits.PlayerStruck {
		events = append(events, core.EventPlayerCollided)
		g.gameOver()
	}

	g.projectiles = compact(g.projectiles)
	g.adversaries = compact(g.adversaries)

	if g.phase == core.PhaseRunning {
		g.spawner.Ramp()
	}

	return core.StepResult{State: g.State(), Events: events}
}

// gameOver ends the round. Calling it again has no effect.
func (g *Game) gameOver() {
	if g.phase == core.PhaseOver {
		return
	}
	g.phase = core.PhaseOver
	g.player.SetFiring(false)
}

// Kills returns the number of adversaries shot down this round.
func (g *Game) Kills() int { return g.kills }

// PlayTime returns the running time of this round, pauses excluded.
func (g *Game) PlayTime() time.Duration { return g.clock }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Phase: g.phase,
	}
}

// Register both variants with the registry
func init() {
	for _, v := range []Variant{VariantRemove, VariantRecycle} {
		registry.Register(variants[v], func(cfg config.InvasionConfig) registry.Game {
			return New(cfg, v)
		})
	}
}
