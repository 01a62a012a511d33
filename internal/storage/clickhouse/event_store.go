package clickhouse

import (
	"context"
	"fmt"

	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
)

// EventStore implements storage.EventStore using ClickHouse. The event
// log is append-only; MergeTree doesn't enforce uniqueness, so duplicate
// event IDs are checked explicitly before insert.
type EventStore struct {
	conn *Conn
}

// NewEventStore creates a new EventStore.
func NewEventStore(conn *Conn) *EventStore {
	return &EventStore{conn: conn}
}

// Compile-time interface check.
var _ storage.EventStore = (*EventStore)(nil)

// Insert appends an event. Returns ErrDuplicateKey if event_id exists.
func (s *EventStore) Insert(ctx context.Context, e *domain.TradeEvent) error {
	if e == nil || e.EventID == "" {
		return storage.ErrInvalidInput
	}

	exists, err := s.exists(ctx, e.EventID)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if exists {
		return storage.ErrDuplicateKey
	}

	query := `
		INSERT INTO trade_events (
			event_id, type, season, text, team_ids, player_ids, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	err = s.conn.Exec(ctx, query,
		e.EventID, e.Type, int32(e.Season), e.Text, e.TeamIDs, e.PlayerIDs, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetBySeason retrieves all events for a season, ordered by created_at ASC.
func (s *EventStore) GetBySeason(ctx context.Context, season int) ([]*domain.TradeEvent, error) {
	query := `
		SELECT event_id, type, season, text, team_ids, player_ids, created_at
		FROM trade_events
		WHERE season = ?
		ORDER BY created_at ASC, event_id ASC
	`

	rows, err := s.conn.Query(ctx, query, int32(season))
	if err != nil {
		return nil, fmt.Errorf("query events by season: %w", err)
	}
	defer rows.Close()

	var events []*domain.TradeEvent
	for rows.Next() {
		var e domain.TradeEvent
		var season int32

		err := rows.Scan(
			&e.EventID, &e.Type, &season, &e.Text, &e.TeamIDs, &e.PlayerIDs, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}

		e.Season = int(season)
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event rows: %w", err)
	}

	return events, nil
}

// exists checks if an event with the given ID exists.
func (s *EventStore) exists(ctx context.Context, eventID string) (bool, error) {
	query := `SELECT count(*) FROM trade_events WHERE event_id = ?`

	var count uint64
	if err := s.conn.QueryRow(ctx, query, eventID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
