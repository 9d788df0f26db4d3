// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used when no STORE_DSN is configured, and in tests.
//
// Characteristics:
//   - Stores game values keyed by ID in a map.
//   - Concurrency-safe via RWMutex; Update holds the write lock for the whole
//     read-modify-write so one game has one writer at a time.
//   - Values are cloned on the way in and out; callers never share state.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/hads/internal/game"
)

var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or replaces a game.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Update loads a game, passes it to fn and stores whatever fn returns,
	// atomically with respect to other Updates of the same game.
	// If fn returns an error nothing is written and the error is returned.
	Update(ctx context.Context, id string, fn func(*game.Game) (*game.Game, error)) (*game.Game, error)

	Close() error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games map
	games map[string]*game.Game // keyed by Game.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = clone(g)
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return clone(g), nil
	}
	return nil, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Game) (*game.Game, error)) (*game.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	next, err := fn(clone(cur))
	if err != nil {
		return nil, err
	}
	m.games[id] = clone(next)
	return next, nil
}

func (m *memory) Close() error { return nil }

// clone copies g. Attempts are never mutated after creation, so the
// per-row slices can be shared.
func clone(g *game.Game) *game.Game {
	c := *g
	c.Attempts = append([]game.Attempt(nil), g.Attempts...)
	return &c
}
