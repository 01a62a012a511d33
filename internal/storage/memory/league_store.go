package memory

import (
	"context"
	"sync"

	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
)

// LeagueStore is an in-memory implementation of storage.LeagueStore.
type LeagueStore struct {
	mu    sync.RWMutex
	state *domain.LeagueState
}

// NewLeagueStore creates a new in-memory league store.
func NewLeagueStore() *LeagueStore {
	return &LeagueStore{}
}

// Get retrieves the league state. Returns ErrNotFound before first Set.
func (s *LeagueStore) Get(_ context.Context) (*domain.LeagueState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state == nil {
		return nil, storage.ErrNotFound
	}

	cp := *s.state
	return &cp, nil
}

// Set saves the league state.
func (s *LeagueStore) Set(_ context.Context, l *domain.LeagueState) error {
	if l == nil {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *l
	s.state = &cp
	return nil
}

// Verify interface compliance at compile time.
var _ storage.LeagueStore = (*LeagueStore)(nil)
