package memory

import (
	"context"
	"sync"

	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
)

// TradeStore is an in-memory implementation of storage.TradeStore. It
// holds the single open negotiation, like the simulator's trade record.
type TradeStore struct {
	mu       sync.RWMutex
	proposal *domain.TradeProposal
}

// NewTradeStore creates a new in-memory trade store.
func NewTradeStore() *TradeStore {
	return &TradeStore{}
}

// Get retrieves the current proposal. Returns ErrNotFound when no
// negotiation is open.
func (s *TradeStore) Get(_ context.Context) (*domain.TradeProposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.proposal == nil {
		return nil, storage.ErrNotFound
	}

	return s.proposal.Clone(), nil
}

// Put replaces the current proposal.
func (s *TradeStore) Put(_ context.Context, t *domain.TradeProposal) error {
	if t == nil {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.proposal = t.Clone()
	return nil
}

// Clear removes all assets from the current proposal, keeping the teams.
func (s *TradeStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.proposal == nil {
		return nil
	}

	for i := range s.proposal.Sides {
		s.proposal.Sides[i].PlayerIDs = nil
		s.proposal.Sides[i].PickIDs = nil
	}
	return nil
}

// Verify interface compliance at compile time.
var _ storage.TradeStore = (*TradeStore)(nil)
