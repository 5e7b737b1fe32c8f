package invasion

import (
	"time"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Player is the ship under direct input control.
type Player struct {
	box      core.Box
	cfg      config.PlayerConfig
	shot     config.ProjectileConfig
	arenaW   float64
	arenaH   float64
	cooldown time.Duration
	lastFire time.Duration // Play-clock time of the last accepted shot
	firing   bool          // Fire latch: true while fire is held
	dead     bool
}

// NewPlayer creates a player positioned at its start spot.
func NewPlayer(cfg config.PlayerConfig, shot config.ProjectileConfig, arenaW, arenaH float64) *Player {
	p := &Player{
		cfg:      cfg,
		shot:     shot,
		arenaW:   arenaW,
		arenaH:   arenaH,
		cooldown: time.Duration(cfg.FireCooldownMs) * time.Millisecond,
	}
	p.Reset()
	return p
}

// Reset recentres the player and re-arms the gun.
func (p *Player) Reset() {
	x := (p.arenaW - p.cfg.Width) / 2
	y := p.arenaH - p.cfg.BottomMargin - p.cfg.Height
	p.box = core.NewBox(x, y, p.cfg.Width, p.cfg.Height)
	// The first shot after a reset is never throttled
	p.lastFire = -p.cooldown
	p.firing = false
	p.dead = false
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box { return p.box }

// Alive reports whether the player has not been struck.
func (p *Player) Alive() bool { return !p.dead }

// Kill marks the player as struck.
func (p *Player) Kill() { p.dead = true }

// Advance applies held direction keys and clamps to the arena.
// Each held direction contributes independently, so diagonals are faster than axial moves.
func (p *Player) Advance(in core.InputFrame) {
	var dx, dy float64
	if in.IsHeld(core.ActionLeft) {
		dx -= p.cfg.Speed
	}
	if in.IsHeld(core.ActionRight) {
		dx += p.cfg.Speed
	}
	if in.IsHeld(core.ActionUp) {
		dy -= p.cfg.Speed
	}
	if in.IsHeld(core.ActionDown) {
		dy += p.cfg.Speed
	}

	p.box = p.box.Translate(dx, dy).ClampX(p.arenaW)
	if p.cfg.ClampVertical {
		p.box = p.box.ClampY(p.arenaH)
	}
}

// SetFiring sets the fire latch.
func (p *Player) SetFiring(on bool) { p.firing = on }

// Firing reports the fire latch.
func (p *Player) Firing() bool { return p.firing }

// TryFire returns a new projectile if the cooldown has elapsed at now.
// A suppressed attempt leaves the cooldown untouched.
func (p *Player) TryFire(now time.Duration) (*Projectile, bool) {
	if now-p.lastFire < p.cooldown {
		return nil, false
	}
	p.lastFire = now
	return newProjectile(p.box, p.shot), true
}
