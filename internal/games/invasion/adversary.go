package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Adversary descends from above the arena at a speed fixed when it spawned
// (or when it was last recycled).
type Adversary struct {
	box    core.Box
	speed  float64
	skin   int     // Sprite variant for the presentation layer
	floor  float64 // Arena height; passing it means the adversary exited
	exited bool
	dead   bool
}

func newAdversary(box core.Box, speed float64, skin int, floor float64) *Adversary {
	return &Adversary{box: box, speed: speed, skin: skin, floor: floor}
}

// Box returns the adversary's bounding box.
func (a *Adversary) Box() core.Box { return a.box }

// Alive reports whether the adversary is still in the arena and unhit.
func (a *Adversary) Alive() bool { return !a.dead && !a.exited }

// Kill marks the adversary as destroyed.
func (a *Adversary) Kill() { a.dead = true }

// Exited reports whether the adversary dropped below the arena.
func (a *Adversary) Exited() bool { return a.exited && !a.dead }

// Speed returns the descent speed in pixels per tick.
func (a *Adversary) Speed() float64 { return a.speed }

// Skin returns the sprite variant index.
func (a *Adversary) Skin() int { return a.skin }

// Advance moves the adversary down and flags it once its top edge is below the arena.
func (a *Adversary) Advance() {
	a.box.Y += a.speed
	if a.box.Y > a.floor {
		a.exited = true
	}
}

// reenter places an exited adversary back above the arena.
func (a *Adversary) reenter(x, y, speed float64) {
	a.box.X = x
	a.box.Y = y
	a.speed = speed
	a.exited = false
}
