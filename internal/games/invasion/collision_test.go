package invasion

import (
	"testing"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

func TestCollisionResolver(t *testing.T) {
	shot := config.DefaultInvasionConfig().Projectile
	// Player sits at (375, 540) with size 50x50
	shooterAt := func(x, y float64) *Projectile {
		return newProjectile(core.NewBox(x, y, 50, 50), shot)
	}
	alien := func(x, y float64) *Adversary {
		return newAdversary(core.NewBox(x, y, 50, 50), 1, 0, 600)
	}

	tests := []struct {
		name         string
		projectiles  []*Projectile
		adversaries  []*Adversary
		wantHits     int
		wantStruck   bool
		wantDeadShot int
		wantDeadFoes int
	}{
		{
			name:        "no overlap",
			projectiles: []*Projectile{shooterAt(0, 100)},
			adversaries: []*Adversary{alien(300, 100)},
		},
		{
			name:         "single hit",
			projectiles:  []*Projectile{shooterAt(100, 100)},
			adversaries:  []*Adversary{alien(100, 90)},
			wantHits:     1,
			wantDeadShot: 1,
			wantDeadFoes: 1,
		},
		{
			name:         "one projectile kills every stacked adversary",
			projectiles:  []*Projectile{shooterAt(100, 100)},
			adversaries:  []*Adversary{alien(80, 90), alien(90, 95)},
			wantHits:     2,
			wantDeadShot: 1,
			wantDeadFoes: 2,
		},
		{
			name:         "stacked adversaries split across two projectiles",
			projectiles:  []*Projectile{shooterAt(100, 100), shooterAt(100, 100)},
			adversaries:  []*Adversary{alien(80, 90), alien(90, 95)},
			wantHits:     2,
			wantDeadShot: 1,
			wantDeadFoes: 2,
		},
		{
			name:         "two projectiles into one adversary score once",
			projectiles:  []*Projectile{shooterAt(100, 100), shooterAt(105, 100)},
			adversaries:  []*Adversary{alien(100, 90)},
			wantHits:     1,
			wantDeadShot: 1,
			wantDeadFoes: 1,
		},
		{
			name:         "two projectiles two adversaries",
			projectiles:  []*Projectile{shooterAt(100, 100), shooterAt(500, 100)},
			adversaries:  []*Adversary{alien(100, 90), alien(500, 90)},
			wantHits:     2,
			wantDeadShot: 2,
			wantDeadFoes: 2,
		},
		{
			name:         "edge contact is not a hit",
			projectiles:  []*Projectile{shooterAt(100, 140)},
			adversaries:  []*Adversary{alien(100, 90)},
			wantHits:     0,
			wantDeadShot: 0,
			wantDeadFoes: 0,
		},
		{
			name:         "adversary on the player",
			adversaries:  []*Adversary{alien(380, 500), alien(0, 0)},
			wantStruck:   true,
			wantDeadFoes: 1,
		},
		{
			name:         "all adversaries on the player are removed",
			adversaries:  []*Adversary{alien(380, 500), alien(340, 520), alien(410, 560)},
			wantStruck:   true,
			wantDeadFoes: 3,
		},
		{
			name:         "projectile pass runs first",
			projectiles:  []*Projectile{shooterAt(375, 500)},
			adversaries:  []*Adversary{alien(375, 500)},
			wantHits:     1,
			wantDeadShot: 1,
			wantDeadFoes: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultInvasionConfig()
			player := NewPlayer(cfg.Player, cfg.Projectile, cfg.Arena.Width, cfg.Arena.Height)

			got := CollisionResolver{}.Resolve(player, tc.projectiles, tc.adversaries)

			if got.Hits != tc.wantHits {
				t.Errorf("Hits = %d, expected %d", got.Hits, tc.wantHits)
			}
			if got.PlayerStruck != tc.wantStruck {
				t.Errorf("PlayerStruck = %v, expected %v", got.PlayerStruck, tc.wantStruck)
			}
			if player.Alive() == tc.wantStruck {
				t.Errorf("player alive = %v with struck = %v", player.Alive(), tc.wantStruck)
			}

			deadShots := 0
			for _, p := range tc.projectiles {
				if !p.Alive() {
					deadShots++
				}
			}
			deadFoes := 0
			for _, a := range tc.adversaries {
				if !a.Alive() {
					deadFoes++
				}
			}
			if deadShots != tc.wantDeadShot {
				t.Errorf("dead projectiles = %d, expected %d", deadShots, tc.wantDeadShot)
			}
			if deadFoes != tc.wantDeadFoes {
				t.Errorf("dead adversaries = %d, expected %d", deadFoes, tc.wantDeadFoes)
			}
		})
	}
}

func TestCollisionSkipsDeadPlayer(t *testing.T) {
	cfg := config.DefaultInvasionConfig()
	player := NewPlayer(cfg.Player, cfg.Projectile, cfg.Arena.Width, cfg.Arena.Height)
	player.Kill()

	a := newAdversary(player.Box(), 1, 0, cfg.Arena.Height)
	got := CollisionResolver{}.Resolve(player, nil, []*Adversary{a})
	if got.PlayerStruck || !a.Alive() {
		t.Error("A player already struck should not collide again")
	}
}
