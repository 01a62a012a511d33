// Package storage defines the persistence contracts the trade engine
// depends on. Implementations: postgres (records), clickhouse (event
// log), memory (tests and fixtures).
package storage

import (
	"context"

	"frontoffice/internal/domain"
)

// PlayerStore provides access to player records.
type PlayerStore interface {
	// Insert adds a new player. Returns ErrDuplicateKey if player_id exists.
	Insert(ctx context.Context, p *domain.PlayerRecord) error

	// Update overwrites an existing player. Returns ErrNotFound if missing.
	Update(ctx context.Context, p *domain.PlayerRecord) error

	// GetByID retrieves a player by ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, playerID int64) (*domain.PlayerRecord, error)

	// GetByTeam retrieves all players on a team, ordered by roster_order ASC.
	GetByTeam(ctx context.Context, teamID int64) ([]*domain.PlayerRecord, error)

	// GetByDraftYear retrieves all players of a draft class, any team,
	// including undrafted prospects.
	GetByDraftYear(ctx context.Context, season int) ([]*domain.PlayerRecord, error)
}

// TeamStore provides access to team records.
type TeamStore interface {
	// Insert adds a new team. Returns ErrDuplicateKey if team_id exists.
	Insert(ctx context.Context, t *domain.TeamRecord) error

	// Update overwrites an existing team. Returns ErrNotFound if missing.
	Update(ctx context.Context, t *domain.TeamRecord) error

	// GetByID retrieves a team by ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, teamID int64) (*domain.TeamRecord, error)

	// GetAll retrieves every team, ordered by team_id ASC.
	GetAll(ctx context.Context) ([]*domain.TeamRecord, error)
}

// DraftPickStore provides access to draft pick records.
type DraftPickStore interface {
	// Insert adds a new pick. Returns ErrDuplicateKey if pick_id exists.
	Insert(ctx context.Context, dp *domain.DraftPickRecord) error

	// Update overwrites an existing pick. Returns ErrNotFound if missing.
	Update(ctx context.Context, dp *domain.DraftPickRecord) error

	// GetByID retrieves a pick by ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, pickID int64) (*domain.DraftPickRecord, error)

	// GetByTeam retrieves all picks currently owned by a team, ordered by
	// (season, round) ASC.
	GetByTeam(ctx context.Context, teamID int64) ([]*domain.DraftPickRecord, error)
}

// LeagueStore provides access to the league-wide state snapshot.
type LeagueStore interface {
	// Get retrieves the league state. Returns ErrNotFound before first Set.
	Get(ctx context.Context) (*domain.LeagueState, error)

	// Set saves the league state.
	Set(ctx context.Context, l *domain.LeagueState) error
}

// TradeStore holds the single in-progress trade negotiation.
type TradeStore interface {
	// Get retrieves the current proposal. Returns ErrNotFound when no
	// negotiation is open.
	Get(ctx context.Context) (*domain.TradeProposal, error)

	// Put replaces the current proposal.
	Put(ctx context.Context, t *domain.TradeProposal) error

	// Clear removes all assets from the current proposal, keeping the teams.
	Clear(ctx context.Context) error
}

// EventStore is the append-only league event log.
type EventStore interface {
	// Insert appends an event. Returns ErrDuplicateKey if event_id exists.
	Insert(ctx context.Context, e *domain.TradeEvent) error

	// GetBySeason retrieves all events for a season, ordered by created_at ASC.
	GetBySeason(ctx context.Context, season int) ([]*domain.TradeEvent, error)
}
