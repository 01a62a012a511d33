package memory

import (
	"context"
	"sort"
	"sync"

	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
)

// TeamStore is an in-memory implementation of storage.TeamStore.
type TeamStore struct {
	mu   sync.RWMutex
	data map[int64]*domain.TeamRecord // keyed by team_id
}

// NewTeamStore creates a new in-memory team store.
func NewTeamStore() *TeamStore {
	return &TeamStore{data: make(map[int64]*domain.TeamRecord)}
}

// Insert adds a new team. Returns ErrDuplicateKey if team_id exists.
func (s *TeamStore) Insert(_ context.Context, t *domain.TeamRecord) error {
	if t == nil || t.TeamID == 0 {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[t.TeamID]; exists {
		return storage.ErrDuplicateKey
	}

	s.data[t.TeamID] = copyTeam(t)
	return nil
}

// Update overwrites an existing team. Returns ErrNotFound if missing.
func (s *TeamStore) Update(_ context.Context, t *domain.TeamRecord) error {
	if t == nil || t.TeamID == 0 {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[t.TeamID]; !exists {
		return storage.ErrNotFound
	}

	s.data[t.TeamID] = copyTeam(t)
	return nil
}

// GetByID retrieves a team by ID. Returns ErrNotFound if not exists.
func (s *TeamStore) GetByID(_ context.Context, teamID int64) (*domain.TeamRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, exists := s.data[teamID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	return copyTeam(t), nil
}

// GetAll retrieves every team, ordered by team_id ASC.
func (s *TeamStore) GetAll(_ context.Context) ([]*domain.TeamRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.TeamRecord, 0, len(s.data))
	for _, t := range s.data {
		result = append(result, copyTeam(t))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].TeamID < result[j].TeamID
	})

	return result, nil
}

func copyTeam(t *domain.TeamRecord) *domain.TeamRecord {
	cp := *t
	cp.Seasons = append([]domain.TeamSeason(nil), t.Seasons...)
	return &cp
}

// Verify interface compliance at compile time.
var _ storage.TeamStore = (*TeamStore)(nil)
