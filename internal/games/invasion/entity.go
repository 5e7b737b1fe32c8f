package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Entity is the capability shared by everything simulated in the arena.
// Player, Projectile and Adversary are the only implementations.
type Entity interface {
	// Box returns the entity's bounding box in arena pixels.
	Box() core.Box
	// Alive reports whether the entity should survive end-of-frame compaction.
	Alive() bool
	// Kill marks the entity dead. Removal happens at end of frame.
	Kill()
}

var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Projectile)(nil)
	_ Entity = (*Adversary)(nil)
)

// compact drops dead entities in place, keeping order and reusing the backing array.
func compact[E Entity](s []E) []E {
	valid := s[:0]
	for _, e := range s {
		if e.Alive() {
			valid = append(valid, e)
		}
	}
	// Release dropped pointers so they can be collected
	clear(s[len(valid):])
	return valid
}
