package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
)

// TradeStore implements storage.TradeStore using PostgreSQL. The open
// negotiation is a single row holding the proposal as JSON.
type TradeStore struct {
	pool *Pool
}

// NewTradeStore creates a new TradeStore.
func NewTradeStore(pool *Pool) *TradeStore {
	return &TradeStore{pool: pool}
}

// Compile-time interface check.
var _ storage.TradeStore = (*TradeStore)(nil)

// Get retrieves the current proposal. Returns ErrNotFound when no
// negotiation is open.
func (s *TradeStore) Get(ctx context.Context) (*domain.TradeProposal, error) {
	query := `SELECT proposal FROM trade_state WHERE id = 1`

	var raw []byte
	if err := s.pool.QueryRow(ctx, query).Scan(&raw); err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get trade state: %w", err)
	}

	var t domain.TradeProposal
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("unmarshal trade state: %w", err)
	}
	return &t, nil
}

// Put replaces the current proposal.
func (s *TradeStore) Put(ctx context.Context, t *domain.TradeProposal) error {
	if t == nil {
		return storage.ErrInvalidInput
	}

	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal trade state: %w", err)
	}

	query := `
		INSERT INTO trade_state (id, proposal)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET proposal = EXCLUDED.proposal
	`

	if _, err := s.pool.Exec(ctx, query, raw); err != nil {
		return fmt.Errorf("put trade state: %w", err)
	}
	return nil
}

// Clear removes all assets from the current proposal, keeping the teams.
// A missing negotiation is not an error.
func (s *TradeStore) Clear(ctx context.Context) error {
	t, err := s.Get(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}

	for i := range t.Sides {
		t.Sides[i].PlayerIDs = nil
		t.Sides[i].PickIDs = nil
	}
	return s.Put(ctx, t)
}
