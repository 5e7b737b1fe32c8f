package invasion

import (
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Projectile is a shot travelling straight up from the player.
type Projectile struct {
	box  core.Box
	vy   float64 // Pixels per tick, negative = up
	dead bool
}

// newProjectile creates a projectile centred on the shooter with its top
// edge on the shooter's top edge.
func newProjectile(shooter core.Box, cfg config.ProjectileConfig) *Projectile {
	return &Projectile{
		box: core.NewBox(shooter.CenterX()-cfg.Width/2, shooter.Y, cfg.Width, cfg.Height),
		vy:  -cfg.Speed,
	}
}

// Box returns the projectile's bounding box.
func (p *Projectile) Box() core.Box { return p.box }

// Alive reports whether the projectile is still in play.
func (p *Projectile) Alive() bool { return !p.dead }

// Kill marks the projectile for removal.
func (p *Projectile) Kill() { p.dead = true }

// Advance moves the projectile and marks it dead once it has left the top of the arena.
func (p *Projectile) Advance() {
	p.box.Y += p.vy
	if p.box.Bottom() < 0 {
		p.dead = true
	}
}
