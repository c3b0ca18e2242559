// Package registry maps game identifiers to engine factories.
// Games register themselves in init() functions, allowing the host to
// select an engine at runtime without knowing its concrete type.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/RohitDatta06/gamehub/internal/engine"
)

// Factory builds a fresh engine bound to env.
type Factory func(env engine.Env) engine.Engine

// Descriptor describes a registered game.
type Descriptor struct {
	// ID is the route slug used for the CLI, storage and the API (e.g. "flappy-bird").
	ID          string
	Title       string
	Description string
	New         Factory
}

var (
	games = make(map[string]Descriptor)
	mu    sync.RWMutex
)

// Register adds a game to the registry.
// Panics if the ID is empty, the factory is nil or the ID is already registered.
func Register(d Descriptor) {
	mu.Lock()
	defer mu.Unlock()

	if d.ID == "" || d.New == nil {
		panic("registry: descriptor needs an ID and a factory")
	}
	if _, exists := games[d.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", d.ID))
	}
	games[d.ID] = d
}

// List returns every registered game, sorted by ID.
func List() []Descriptor {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Descriptor, 0, len(games))
	for _, d := range games {
		result = append(result, d)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the descriptor for id.
func Lookup(id string) (Descriptor, bool) {
	mu.RLock()
	defer mu.RUnlock()

	d, ok := games[id]
	return d, ok
}

// Create instantiates a new engine by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, env engine.Env) (engine.Engine, error) {
	d, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return d.New(env), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
