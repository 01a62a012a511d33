package memory

import (
	"context"
	"sort"
	"sync"

	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
)

// EventStore is an in-memory implementation of storage.EventStore.
type EventStore struct {
	mu   sync.RWMutex
	data map[string]*domain.TradeEvent // keyed by event_id
}

// NewEventStore creates a new in-memory event store.
func NewEventStore() *EventStore {
	return &EventStore{data: make(map[string]*domain.TradeEvent)}
}

// Insert appends an event. Returns ErrDuplicateKey if event_id exists.
func (s *EventStore) Insert(_ context.Context, e *domain.TradeEvent) error {
	if e == nil || e.EventID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[e.EventID]; exists {
		return storage.ErrDuplicateKey
	}

	s.data[e.EventID] = copyEvent(e)
	return nil
}

// GetBySeason retrieves all events for a season, ordered by created_at ASC.
func (s *EventStore) GetBySeason(_ context.Context, season int) ([]*domain.TradeEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.TradeEvent
	for _, e := range s.data {
		if e.Season == season {
			result = append(result, copyEvent(e))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt != result[j].CreatedAt {
			return result[i].CreatedAt < result[j].CreatedAt
		}
		return result[i].EventID < result[j].EventID
	})

	return result, nil
}

func copyEvent(e *domain.TradeEvent) *domain.TradeEvent {
	cp := *e
	cp.TeamIDs = append([]int64(nil), e.TeamIDs...)
	cp.PlayerIDs = append([]int64(nil), e.PlayerIDs...)
	return &cp
}

// Verify interface compliance at compile time.
var _ storage.EventStore = (*EventStore)(nil)
