package memory

import (
	"context"
	"sort"
	"sync"

	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
)

// DraftPickStore is an in-memory implementation of storage.DraftPickStore.
type DraftPickStore struct {
	mu   sync.RWMutex
	data map[int64]*domain.DraftPickRecord // keyed by pick_id
}

// NewDraftPickStore creates a new in-memory draft pick store.
func NewDraftPickStore() *DraftPickStore {
	return &DraftPickStore{data: make(map[int64]*domain.DraftPickRecord)}
}

// Insert adds a new pick. Returns ErrDuplicateKey if pick_id exists.
func (s *DraftPickStore) Insert(_ context.Context, dp *domain.DraftPickRecord) error {
	if dp == nil || dp.PickID == 0 {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[dp.PickID]; exists {
		return storage.ErrDuplicateKey
	}

	cp := *dp
	s.data[dp.PickID] = &cp
	return nil
}

// Update overwrites an existing pick. Returns ErrNotFound if missing.
func (s *DraftPickStore) Update(_ context.Context, dp *domain.DraftPickRecord) error {
	if dp == nil || dp.PickID == 0 {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[dp.PickID]; !exists {
		return storage.ErrNotFound
	}

	cp := *dp
	s.data[dp.PickID] = &cp
	return nil
}

// GetByID retrieves a pick by ID. Returns ErrNotFound if not exists.
func (s *DraftPickStore) GetByID(_ context.Context, pickID int64) (*domain.DraftPickRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dp, exists := s.data[pickID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	cp := *dp
	return &cp, nil
}

// GetByTeam retrieves all picks owned by a team, ordered by (season, round) ASC.
func (s *DraftPickStore) GetByTeam(_ context.Context, teamID int64) ([]*domain.DraftPickRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.DraftPickRecord
	for _, dp := range s.data {
		if dp.TeamID == teamID {
			cp := *dp
			result = append(result, &cp)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Season != result[j].Season {
			return result[i].Season < result[j].Season
		}
		if result[i].Round != result[j].Round {
			return result[i].Round < result[j].Round
		}
		return result[i].PickID < result[j].PickID
	})

	return result, nil
}

// Verify interface compliance at compile time.
var _ storage.DraftPickStore = (*DraftPickStore)(nil)
