// Package registry lists the playable variants of the invasion game.
// Each variant registers itself from an init function together with a short
// description, so the CLI, the SSH server and the scoreboard can offer it
// by ID without importing the game package directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Game is what a driver needs from a running variant.
// Implementations are pure simulations: no terminal, window or speaker.
type Game interface {
	// ID is the variant ID, also the key scores are stored under.
	ID() string

	// Title is the name shown on the start screen and in the window title.
	Title() string

	// Reset rebuilds the round in place for the given arena, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick and reports the state and the events it produced.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// Variant describes one registered way to play.
type Variant struct {
	ID          string
	Title       string
	Description string // One line for `invasion list`
}

// Factory builds a fresh round of a variant from a validated configuration.
type Factory func(cfg config.InvasionConfig) Game

type entry struct {
	Variant
	factory Factory
}

var (
	mu       sync.RWMutex
	variants = make(map[string]entry)
)

// Register makes a variant available under v.ID.
// Panics on an empty ID, a nil factory or a duplicate ID.
func Register(v Variant, f Factory) {
	if v.ID == "" || f == nil {
		panic("registry: variant needs an ID and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	if v.Title == "" {
		v.Title = v.ID
	}
	variants[v.ID] = entry{Variant: v, factory: f}
}

// List returns every registered variant ordered by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Variant, 0, len(variants))
	for _, e := range variants {
		out = append(out, e.Variant)
	}
	slices.SortFunc(out, func(a, b Variant) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Lookup returns the description of a variant.
func Lookup(id string) (Variant, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := variants[id]
	return e.Variant, ok
}

// Create starts a new round of the variant.
func Create(id string, cfg config.InvasionConfig) (Game, error) {
	mu.RLock()
	e, ok := variants[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q (known: %s)", id, strings.Join(ids(), ", "))
	}
	return e.factory(cfg), nil
}

func ids() []string {
	list := List()
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = v.ID
	}
	return out
}
