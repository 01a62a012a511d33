package memory

import (
	"context"
	"sort"
	"sync"

	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
)

// PlayerStore is an in-memory implementation of storage.PlayerStore.
type PlayerStore struct {
	mu   sync.RWMutex
	data map[int64]*domain.PlayerRecord // keyed by player_id
}

// NewPlayerStore creates a new in-memory player store.
func NewPlayerStore() *PlayerStore {
	return &PlayerStore{data: make(map[int64]*domain.PlayerRecord)}
}

// Insert adds a new player. Returns ErrDuplicateKey if player_id exists.
func (s *PlayerStore) Insert(_ context.Context, p *domain.PlayerRecord) error {
	if p == nil || p.PlayerID == 0 {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[p.PlayerID]; exists {
		return storage.ErrDuplicateKey
	}

	s.data[p.PlayerID] = copyPlayer(p)
	return nil
}

// Update overwrites an existing player. Returns ErrNotFound if missing.
func (s *PlayerStore) Update(_ context.Context, p *domain.PlayerRecord) error {
	if p == nil || p.PlayerID == 0 {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[p.PlayerID]; !exists {
		return storage.ErrNotFound
	}

	s.data[p.PlayerID] = copyPlayer(p)
	return nil
}

// GetByID retrieves a player by ID. Returns ErrNotFound if not exists.
func (s *PlayerStore) GetByID(_ context.Context, playerID int64) (*domain.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.data[playerID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	return copyPlayer(p), nil
}

// GetByTeam retrieves all players on a team, ordered by roster_order ASC.
func (s *PlayerStore) GetByTeam(_ context.Context, teamID int64) ([]*domain.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.PlayerRecord
	for _, p := range s.data {
		if p.TeamID == teamID {
			result = append(result, copyPlayer(p))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].RosterOrder != result[j].RosterOrder {
			return result[i].RosterOrder < result[j].RosterOrder
		}
		return result[i].PlayerID < result[j].PlayerID
	})

	return result, nil
}

// GetByDraftYear retrieves all players of a draft class.
func (s *PlayerStore) GetByDraftYear(_ context.Context, season int) ([]*domain.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.PlayerRecord
	for _, p := range s.data {
		if p.DraftYear == season {
			result = append(result, copyPlayer(p))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].PlayerID < result[j].PlayerID
	})

	return result, nil
}

// copyPlayer deep-copies a record so callers cannot mutate stored state.
func copyPlayer(p *domain.PlayerRecord) *domain.PlayerRecord {
	cp := *p
	cp.Skills = append([]domain.SkillTag(nil), p.Skills...)
	cp.Stats = append([]domain.StatsRow(nil), p.Stats...)
	return &cp
}

// Verify interface compliance at compile time.
var _ storage.PlayerStore = (*PlayerStore)(nil)
