package clickhouse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontoffice/internal/domain"
	"frontoffice/internal/storage"
)

func testEvent(id string, season int, createdAt int64) *domain.TradeEvent {
	return &domain.TradeEvent{
		EventID:   id,
		Type:      domain.EventTypeTrade,
		Season:    season,
		Text:      "The Boston Bears traded A One to the Tucson Totems for B Two.",
		TeamIDs:   []int64{1, 2},
		PlayerIDs: []int64{101, 201},
		CreatedAt: createdAt,
	}
}

func TestEventStore_InsertAndGetBySeason(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewEventStore(conn)

	require.NoError(t, store.Insert(ctx, testEvent("evt-2", 2026, 200)))
	require.NoError(t, store.Insert(ctx, testEvent("evt-1", 2026, 100)))
	require.NoError(t, store.Insert(ctx, testEvent("evt-3", 2025, 50)))

	events, err := store.GetBySeason(ctx, 2026)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Chronological order
	assert.Equal(t, "evt-1", events[0].EventID)
	assert.Equal(t, "evt-2", events[1].EventID)
	assert.Equal(t, domain.EventTypeTrade, events[0].Type)
	assert.Equal(t, []int64{1, 2}, events[0].TeamIDs)
	assert.Equal(t, []int64{101, 201}, events[0].PlayerIDs)
}

func TestEventStore_InsertDuplicate(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewEventStore(conn)

	require.NoError(t, store.Insert(ctx, testEvent("evt-1", 2026, 100)))
	assert.ErrorIs(t, store.Insert(ctx, testEvent("evt-1", 2026, 999)), storage.ErrDuplicateKey)
}

func TestEventStore_InsertInvalid(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewEventStore(conn)

	assert.ErrorIs(t, store.Insert(ctx, nil), storage.ErrInvalidInput)
	assert.ErrorIs(t, store.Insert(ctx, testEvent("", 2026, 100)), storage.ErrInvalidInput)
}

func TestEventStore_GetBySeasonEmpty(t *testing.T) {
	conn, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewEventStore(conn)
	events, err := store.GetBySeason(context.Background(), 1999)
	require.NoError(t, err)
	assert.Empty(t, events)
}
