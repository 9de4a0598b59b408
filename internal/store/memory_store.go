// Package store keeps the latest normalized season snapshot in memory so a
// failed refresh can fall back to the last known good data.
package store

import (
	"sync"
	"time"

	domaingames "mlb-insights-service/internal/domain/games"
)

// MemoryStore keeps a thread-safe snapshot of season game records in memory.
type MemoryStore struct {
	mu        sync.RWMutex
	games     map[string]domaingames.GameRecord
	refreshed time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[string]domaingames.GameRecord),
	}
}

// ListGames returns a copy of the current records.
func (s *MemoryStore) ListGames() []domaingames.GameRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domaingames.GameRecord, 0, len(s.games))
	for _, g := range s.games {
		result = append(result, g)
	}
	return result
}

// GetGame retrieves a record by ID.
func (s *MemoryStore) GetGame(id string) (domaingames.GameRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok
}

// SetGames replaces the existing records with a new season snapshot.
func (s *MemoryStore) SetGames(games []domaingames.GameRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]domaingames.GameRecord, len(games))
	for _, g := range games {
		s.games[g.ID] = g
	}
	s.refreshed = time.Now()
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.games)
}

// LastRefreshed returns when the snapshot was last replaced. The zero time
// means no snapshot has been stored yet.
func (s *MemoryStore) LastRefreshed() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.refreshed
}
