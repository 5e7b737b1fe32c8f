package invasion

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"time"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// AdversaryView is the read-only render data for one adversary.
type AdversaryView struct {
	Box  core.Box
	Skin int
}

// Snapshot is a read-only copy of everything a renderer or a determinism test needs.
// It shares no memory with the game.
type Snapshot struct {
	Tick   uint64
	Phase  core.Phase
	Score  int
	Kills  int
	Speed  float64       // Current difficulty speed
	Clock  time.Duration // Play clock
	ArenaW float64
	ArenaH float64

	Player      core.Box
	PlayerAlive bool
	Firing      bool

	Projectiles []core.Box
	Adversaries []AdversaryView
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	projectiles := make([]core.Box, len(g.projectiles))
	for i, p := range g.projectiles {
		projectiles[i] = p.Box()
	}

	adversaries := make([]AdversaryView, len(g.adversaries))
	for i, a := range g.adversaries {
		adversaries[i] = AdversaryView{Box: a.Box(), Skin: a.Skin()}
	}

	return Snapshot{
		Tick:        g.tick,
		Phase:       g.phase,
		Score:       g.score,
		Kills:       g.kills,
		Speed:       g.spawner.Speed(),
		Clock:       g.clock,
		ArenaW:      g.cfg.Arena.Width,
		ArenaH:      g.cfg.Arena.Height,
		Player:      g.player.Box(),
		PlayerAlive: g.player.Alive(),
		Firing:      g.player.Firing(),
		Projectiles: projectiles,
		Adversaries: adversaries,
	}
}

// Hash returns a digest of the snapshot for comparing runs.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	writeF := func(v float64) { writeU(math.Float64bits(v)) }
	writeBox := func(b core.Box) {
		writeF(b.X)
		writeF(b.Y)
		writeF(b.W)
		writeF(b.H)
	}

	writeU(s.Tick)
	writeU(uint64(s.Phase))
	writeU(uint64(s.Score))
	writeU(uint64(s.Kills))
	writeF(s.Speed)
	writeU(uint64(s.Clock))
	writeBox(s.Player)

	writeU(uint64(len(s.Projectiles)))
	for _, b := range s.Projectiles {
		writeBox(b)
	}
	writeU(uint64(len(s.Adversaries)))
	for _, a := range s.Adversaries {
		writeBox(a.Box)
		writeU(uint64(a.Skin))
	}

	return h.Sum64()
}
