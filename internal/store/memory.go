// internal/store/memory.go
//
// In-memory implementation of the session Store.
// Used by the HTTP server to hold one guess grid per session; nothing is
// persisted and state is lost when the process restarts.
//
// Characteristics:
//   - Stores *game.Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs the caller's mutation under the write lock, so each key
//     press against a board is applied atomically; View reads under the
//     read lock.
//   - Sessions older than the configured TTL are swept on Save.

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-grid/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the session persistence interface.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *game.Session) error

	// View runs fn against the session's board under a read lock. fn must
	// not mutate or retain the board.
	View(ctx context.Context, id string, fn func(b *game.Board)) error

	// Update runs fn against the session's board while holding the store
	// lock. fn must not retain the board.
	Update(ctx context.Context, id string, fn func(b *game.Board) error) error

	// Delete removes a session. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex             // guards sessions
	sessions map[string]*game.Session // keyed by Session.ID
	ttl      time.Duration            // 0 disables expiry
	now      func() time.Time
}

// NewMemoryStore constructs a new in-memory Store. Sessions older than a
// positive ttl are treated as missing.
func NewMemoryStore(ttl time.Duration) Store {
	return &memory{
		sessions: make(map[string]*game.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) View(ctx context.Context, id string, fn func(b *game.Board)) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok || m.expired(s) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	fn(s.Board)
	return nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(b *game.Board) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok || m.expired(s) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return fn(s.Board)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) expired(s *game.Session) bool {
	return m.ttl > 0 && m.now().Sub(s.CreatedAt) > m.ttl
}

// sweepLocked drops expired sessions. Caller holds mu.
func (m *memory) sweepLocked() {
	if m.ttl <= 0 {
		return
	}
	for id, s := range m.sessions {
		if m.expired(s) {
			delete(m.sessions, id)
			log.Debug().Str("session", id).Msg("session expired")
		}
	}
}
