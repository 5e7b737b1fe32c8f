package invasion

// Collisions summarises one resolution pass.
type Collisions struct {
	Hits         int  // Projectile-adversary kills this frame
	PlayerStruck bool // At least one adversary reached the player
}

// CollisionResolver detects overlaps between entity sets and marks the losers dead.
// It never removes entities itself; compaction runs after it.
type CollisionResolver struct{}

// Resolve runs the projectile pass before the player pass.
// A projectile destroys every live adversary it overlaps and an adversary
// dies on its first hit, so each kill scores once.
// Every live adversary overlapping the player is destroyed.
func (CollisionResolver) Resolve(player *Player, projectiles []*Projectile, adversaries []*Adversary) Collisions {
	var out Collisions

	for _, p := range projectiles {
		if !p.Alive() {
			continue
		}
		for _, a := range adversaries {
			if !a.Alive() {
				continue
			}
			if p.Box().Intersects(a.Box()) {
				p.Kill()
				a.Kill()
				out.Hits++
			}
		}
	}

	if !player.Alive() {
		return out
	}
	pb := player.Box()
	for _, a := range adversaries {
		if a.Alive() && pb.Intersects(a.Box()) {
			a.Kill()
			out.PlayerStruck = true
		}
	}
	if out.PlayerStruck {
		player.Kill()
	}

	return out
}
